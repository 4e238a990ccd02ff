package models

import "time"

// Charity extends a User with organizational attributes. A user may hold at
// most one charity record (unique index on u_id).
type Charity struct {
	CID       uint      `gorm:"primaryKey;column:c_id" json:"c_id"`
	UserID    uint      `gorm:"column:u_id;not null;uniqueIndex" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;references:UID" json:"-"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	RegNumber string    `gorm:"size:10;not null" json:"reg_number"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}
