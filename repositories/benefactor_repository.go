package repositories

import (
	"github.com/navacharity/charity-go/db"
	"github.com/navacharity/charity-go/models"
)

func CreateBenefactor(b *models.Benefactor) error {
	return db.DB.Create(b).Error
}

func GetBenefactorByUserID(uid uint) (models.Benefactor, error) {
	var b models.Benefactor
	err := db.DB.Where("u_id = ?", uid).First(&b).Error
	return b, err
}
