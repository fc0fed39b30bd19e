package models

import (
	"time"
)

// PricingPlan is a seasonal price adjustment applied to one room type over a
// date range. Adjustment is a percentage over the base price.
type PricingPlan struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RoomTypeID uint      `json:"roomTypeId"`
	RoomType   RoomType  `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Name       string    `json:"name"`
	FromDate   string    `json:"fromDate"`
	ToDate     string    `json:"toDate"`
	Adjustment int       `json:"adjustment"`
	IsActive   bool      `json:"isActive" gorm:"default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
