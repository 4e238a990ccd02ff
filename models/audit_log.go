package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	AID          uint           `gorm:"primaryKey;column:a_id" json:"a_id"`
	UserID       uint           `gorm:"column:u_id;not null" json:"user_id"`
	Action       string         `gorm:"size:20;not null" json:"action"`
	ResourceType string         `gorm:"size:20;not null" json:"resource_type"`
	ResourceID   string         `gorm:"size:40" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data"`
	NewData      datatypes.JSON `json:"new_data"`
	IPAddress    string         `gorm:"size:45" json:"ip_address"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Description  string         `gorm:"size:255" json:"description"`
	CreatedAt    time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}
