package constants

// Booking lifecycle. Cancellation is a status change, bookings are never hard-deleted.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked-in"
	BookingStatusCheckedOut = "checked-out"
	BookingStatusCancelled  = "cancelled"
)

// Staff roles
const (
	RoleSuperAdmin = 1
	RoleAdmin      = 2
	RoleStaff      = 3
)

// Staff status
const (
	StaffStatusActive   = 1
	StaffStatusInactive = 0
)

// Availability badges
const (
	BadgeAvailable       = "Available"
	BadgeFullyBooked     = "Fully Booked"
	BadgePartiallyBooked = "Partially Booked"
)

// Date and time layouts used across bookings and plans.
const (
	DateLayout          = "2006-01-02"
	TimeLayout          = "15:04"
	DefaultCheckOutTime = "11:00"
)

// Tables watched by the change-notification hub.
const (
	TableRoomTypes = "room_types"
	TableBookings  = "bookings"
)
