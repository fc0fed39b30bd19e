package dto

// BookingBrief is the slice of a booking the availability view exposes.
type BookingBrief struct {
	ID            uint   `json:"id"`
	BookingCode   string `json:"bookingCode"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	NumberOfRooms int    `json:"numberOfRooms"`
	Status        string `json:"status"`
	GuestName     string `json:"guestName,omitempty"`
}

// RoomAvailability is one derived row of the availability view. AvailableCount
// is not clamped at zero: a negative number surfaces overbooking.
type RoomAvailability struct {
	ID             uint           `json:"id"`
	Name           string         `json:"name"`
	Capacity       int            `json:"capacity"`
	BasePrice      int            `json:"basePrice"`
	TotalRooms     int            `json:"totalRooms"`
	BookedCount    int            `json:"bookedCount"`
	AvailableCount int            `json:"availableCount"`
	Badge          string         `json:"badge"`
	ActiveBookings []BookingBrief `json:"activeBookings"`
}
