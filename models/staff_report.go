package models

import (
	"time"
)

// StaffReport is a persisted daily aggregate per staff member; the report
// endpoints recompute it from bookings and upsert by (staff, date).
type StaffReport struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	StaffID        uint      `json:"staffId"`
	Date           time.Time `json:"date"`
	BookingCount   int       `json:"bookingCount"`
	ConfirmedCount int       `json:"confirmedCount"`
	Revenue        float64   `json:"revenue"`
}
