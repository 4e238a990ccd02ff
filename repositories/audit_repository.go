package repositories

import (
	"github.com/navacharity/charity-go/db"
	"github.com/navacharity/charity-go/models"
)

func CreateAuditLog(entry *models.AuditLog) error {
	return db.DB.Create(entry).Error
}

func ListAuditLogs() ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := db.DB.Order("a_id desc").Find(&logs).Error
	return logs, err
}
