package dto

import "time"

type RoomTypeRequest struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	BasePrice  int    `json:"basePrice"`
	TotalRooms int    `json:"totalRooms"`
}

type CreateRoomTypeRequest struct {
	Name       string `json:"name" validate:"required"`
	Capacity   int    `json:"capacity" validate:"required,min=1"`
	BasePrice  int    `json:"basePrice" validate:"min=0"`
	TotalRooms int    `json:"totalRooms" validate:"min=0"`
}

type RoomTypeResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Capacity   int       `json:"capacity"`
	BasePrice  int       `json:"basePrice"`
	TotalRooms int       `json:"totalRooms"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
