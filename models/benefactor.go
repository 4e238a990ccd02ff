package models

import "time"

// Benefactor extends a User with volunteering attributes. A user may hold at
// most one benefactor record (unique index on u_id).
type Benefactor struct {
	BID             uint      `gorm:"primaryKey;column:b_id" json:"b_id"`
	UserID          uint      `gorm:"column:u_id;not null;uniqueIndex" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;references:UID" json:"-"`
	Experience      int16     `gorm:"not null;default:0" json:"experience"`
	FreeTimePerWeek int       `gorm:"not null;default:0" json:"free_time_per_week"`
	CreatedAt       time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}
