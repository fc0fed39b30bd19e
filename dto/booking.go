package dto

import "time"

type CreateBookingRequest struct {
	RoomTypeID    *uint  `json:"roomTypeId"`
	RoomTypeName  string `json:"roomTypeName"`
	CheckInDate   string `json:"checkInDate" validate:"required"`
	CheckOutDate  string `json:"checkOutDate" validate:"required"`
	CheckOutTime  string `json:"checkOutTime"`
	NumberOfRooms int    `json:"numberOfRooms" validate:"min=0"`
	GuestName     string `json:"guestName" validate:"required"`
	GuestEmail    string `json:"guestEmail"`
	GuestPhone    string `json:"guestPhone" validate:"required"`
	RatePlanCode  string `json:"ratePlanCode"`
}

type BookingStatusRequest struct {
	ID     uint   `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type ExtendBookingRequest struct {
	ID              uint   `json:"id" validate:"required"`
	NewCheckOutDate string `json:"newCheckOutDate" validate:"required"`
	NewCheckOutTime string `json:"newCheckOutTime"`
}

type BookingResponse struct {
	ID            uint      `json:"id"`
	BookingCode   string    `json:"bookingCode"`
	RoomTypeID    *uint     `json:"roomTypeId"`
	RoomTypeName  string    `json:"roomTypeName,omitempty"`
	CheckInDate   string    `json:"checkInDate"`
	CheckOutDate  string    `json:"checkOutDate"`
	CheckOutTime  string    `json:"checkOutTime"`
	NumberOfRooms int       `json:"numberOfRooms"`
	Status        string    `json:"status"`
	GuestName     string    `json:"guestName,omitempty"`
	GuestEmail    string    `json:"guestEmail,omitempty"`
	GuestPhone    string    `json:"guestPhone,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
