package models

import (
	"time"
)

// RatePlan is a named percentage rate with a validity window, applied at
// booking time by code.
type RatePlan struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Code      string    `json:"code" gorm:"uniqueIndex"`
	Percent   int       `json:"percent"`
	FromDate  string    `json:"fromDate"`
	ToDate    string    `json:"toDate"`
	Quantity  int       `json:"quantity"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
