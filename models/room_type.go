package models

import (
	"fmt"
	"time"
)

// RoomType is a category of bookable unit with a shared price and inventory
// count, not an individual physical room. TotalRooms is the inventory ceiling
// and only changes through administrative edit.
type RoomType struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Capacity   int       `json:"capacity"`
	BasePrice  int       `json:"basePrice"`
	TotalRooms int       `json:"totalRooms"`
	IsActive   bool      `json:"isActive" gorm:"default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *RoomType) ValidateInventory() error {
	if r.TotalRooms < 0 {
		return fmt.Errorf("invalid total rooms: %d, must not be negative", r.TotalRooms)
	}
	return nil
}
