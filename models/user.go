package models

import "time"

type User struct {
	UID         uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username    string    `gorm:"size:50;not null;unique" json:"username"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	Phone       *string   `gorm:"size:15" json:"phone"`
	Address     *string   `gorm:"size:255" json:"address"`
	Gender      *string   `gorm:"size:1" json:"gender"`
	Age         *int      `json:"age"`
	Description *string   `json:"description"`
	FirstName   *string   `gorm:"size:50" json:"first_name"`
	LastName    *string   `gorm:"size:50" json:"last_name"`
	Email       *string   `gorm:"size:100" json:"email"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
