package services

import (
	"errors"
	"time"

	"github.com/navacharity/charity-go/dto"
	"github.com/navacharity/charity-go/middleware"
	"github.com/navacharity/charity-go/models"
	"github.com/navacharity/charity-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken       = errors.New("username already taken")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

func RegisterUser(input dto.CreateUserInput) error {
	_, err := repositories.GetUserByUsername(input.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		return ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	user := models.User{
		Username:    input.Username,
		Password:    string(hashed),
		Phone:       input.Phone,
		Address:     input.Address,
		Gender:      input.Gender,
		Age:         input.Age,
		Description: input.Description,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
	}

	return repositories.CreateUser(&user)
}

func LoginUser(username, password string) (models.User, string, error) {
	user, err := repositories.GetUserByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UID, user.Username, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}
