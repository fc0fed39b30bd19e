package models

import (
	"time"
)

type Staff struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"default:New Staff" json:"name"`
	Email       string    `gorm:"unique" json:"email"`
	Password    string    `json:"password"`
	PhoneNumber string    `gorm:"type:varchar(11)" json:"phoneNumber"`
	Avatar      string    `json:"avatar"`
	Role        int       `gorm:"default:3" json:"role"`
	Status      int       `gorm:"default:1" json:"status"`
}
