package repositories

import (
	"github.com/navacharity/charity-go/db"
	"github.com/navacharity/charity-go/models"
)

func CreateCharity(c *models.Charity) error {
	return db.DB.Create(c).Error
}

func GetCharityByUserID(uid uint) (models.Charity, error) {
	var charity models.Charity
	err := db.DB.Where("u_id = ?", uid).First(&charity).Error
	return charity, err
}
