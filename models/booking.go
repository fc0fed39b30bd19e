package models

import (
	"time"

	"hotelpms/constants"
)

// Booking references its room type through a nullable foreign key; legacy rows
// imported without a room type keep a nil reference and never count against
// inventory.
type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	BookingCode   string    `json:"bookingCode" gorm:"uniqueIndex"`
	RoomTypeID    *uint     `json:"roomTypeId"`
	RoomType      *RoomType `json:"roomType,omitempty" gorm:"foreignKey:RoomTypeID"`
	CheckInDate   string    `json:"checkInDate"`
	CheckOutDate  string    `json:"checkOutDate"`
	CheckOutTime  string    `json:"checkOutTime"`
	NumberOfRooms int       `json:"numberOfRooms"`
	Status        string    `json:"status" gorm:"default:pending"`
	GuestName     string    `json:"guestName,omitempty"`
	GuestEmail    string    `json:"guestEmail,omitempty"`
	GuestPhone    string    `json:"guestPhone,omitempty"`
	CreatedByID   *uint     `json:"createdById"`
	CreatedBy     *Staff    `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ApplyDefaults fills the fields the admin form leaves blank. Missing
// number_of_rooms counts as zero rooms, not one.
func (b *Booking) ApplyDefaults() {
	if b.Status == "" {
		b.Status = constants.BookingStatusPending
	}
	if b.CheckOutTime == "" {
		b.CheckOutTime = constants.DefaultCheckOutTime
	}
	if b.NumberOfRooms < 0 {
		b.NumberOfRooms = 0
	}
}

// CheckOutAt combines the checkout date and time into a single timestamp.
func (b *Booking) CheckOutAt() (time.Time, error) {
	tm := b.CheckOutTime
	if tm == "" {
		tm = constants.DefaultCheckOutTime
	}
	return time.ParseInLocation(constants.DateLayout+" "+constants.TimeLayout, b.CheckOutDate+" "+tm, time.Local)
}

// ValidStatuses lists every lifecycle state a booking can hold.
func ValidStatuses() []string {
	return []string{
		constants.BookingStatusPending,
		constants.BookingStatusConfirmed,
		constants.BookingStatusCheckedIn,
		constants.BookingStatusCheckedOut,
		constants.BookingStatusCancelled,
	}
}

// IsValidStatus reports whether s is a known lifecycle state.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses() {
		if v == s {
			return true
		}
	}
	return false
}
