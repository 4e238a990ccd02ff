package services

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/navacharity/charity-go/dto"
	"github.com/navacharity/charity-go/models"
	"github.com/navacharity/charity-go/repositories"
	"github.com/navacharity/charity-go/utils"
	"gorm.io/gorm"
)

var (
	ErrAlreadyBenefactor = errors.New("benefactor with this user already exists")
	ErrAlreadyCharity    = errors.New("charity with this user already exists")
)

// RegisterBenefactor binds a benefactor record to the calling user. The user
// reference always comes from the authenticated caller, never the payload.
func RegisterBenefactor(c *gin.Context, uid uint, input dto.CreateBenefactorInput) (models.Benefactor, error) {
	_, err := repositories.GetBenefactorByUserID(uid)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Benefactor{}, err
	}
	if err == nil {
		return models.Benefactor{}, ErrAlreadyBenefactor
	}

	benefactor := models.Benefactor{UserID: uid}
	if input.Experience != nil {
		benefactor.Experience = *input.Experience
	}
	if input.FreeTimePerWeek != nil {
		benefactor.FreeTimePerWeek = *input.FreeTimePerWeek
	}

	if err := repositories.CreateBenefactor(&benefactor); err != nil {
		return models.Benefactor{}, err
	}
	utils.LogAuditWithConsole(c, uid, "register", "benefactor", fmt.Sprintf("b_id=%d", benefactor.BID), nil, benefactor, "")
	return benefactor, nil
}

// RegisterCharity binds a charity record to the calling user.
func RegisterCharity(c *gin.Context, uid uint, input dto.CreateCharityInput) (models.Charity, error) {
	_, err := repositories.GetCharityByUserID(uid)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Charity{}, err
	}
	if err == nil {
		return models.Charity{}, ErrAlreadyCharity
	}

	charity := models.Charity{
		UserID:    uid,
		Name:      input.Name,
		RegNumber: input.RegNumber,
	}

	if err := repositories.CreateCharity(&charity); err != nil {
		return models.Charity{}, err
	}
	utils.LogAuditWithConsole(c, uid, "register", "charity", fmt.Sprintf("c_id=%d", charity.CID), nil, charity, "")
	return charity, nil
}
