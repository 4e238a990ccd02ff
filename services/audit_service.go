package services

import (
	"github.com/navacharity/charity-go/models"
	"github.com/navacharity/charity-go/repositories"
)

func ListAuditLogs() ([]models.AuditLog, error) {
	return repositories.ListAuditLogs()
}
