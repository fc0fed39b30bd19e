package services

import (
	"testing"
	"time"

	"hotelpms/constants"
	"hotelpms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint {
	return &v
}

func testDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation(constants.DateLayout, value, time.Local)
	require.NoError(t, err)
	return day
}

func TestIsActiveBooking(t *testing.T) {
	today := testDay(t, "2026-08-29")

	tests := []struct {
		name    string
		booking models.Booking
		want    bool
	}{
		{
			name:    "pending booking occupies inventory",
			booking: models.Booking{Status: constants.BookingStatusPending, CheckOutDate: "2026-09-01"},
			want:    true,
		},
		{
			name:    "confirmed booking occupies inventory",
			booking: models.Booking{Status: constants.BookingStatusConfirmed, CheckOutDate: "2026-09-01"},
			want:    true,
		},
		{
			name:    "checked-in booking occupies inventory",
			booking: models.Booking{Status: constants.BookingStatusCheckedIn, CheckOutDate: "2026-09-01"},
			want:    true,
		},
		{
			name:    "cancelled booking never counts",
			booking: models.Booking{Status: constants.BookingStatusCancelled, CheckOutDate: "2026-09-01"},
			want:    false,
		},
		{
			name:    "checked-out booking never counts",
			booking: models.Booking{Status: constants.BookingStatusCheckedOut, CheckOutDate: "2026-09-01"},
			want:    false,
		},
		{
			name:    "checkout today still counts",
			booking: models.Booking{Status: constants.BookingStatusConfirmed, CheckOutDate: "2026-08-29"},
			want:    true,
		},
		{
			name:    "checkout yesterday does not count",
			booking: models.Booking{Status: constants.BookingStatusConfirmed, CheckOutDate: "2026-08-28"},
			want:    false,
		},
		{
			name:    "unparseable checkout is skipped",
			booking: models.Booking{Status: constants.BookingStatusConfirmed, CheckOutDate: "29/08/2026"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsActiveBooking(tt.booking, today))
		})
	}
}

func TestClassifyBadge(t *testing.T) {
	assert.Equal(t, constants.BadgeAvailable, ClassifyBadge(0, 5))
	assert.Equal(t, constants.BadgePartiallyBooked, ClassifyBadge(3, 5))
	assert.Equal(t, constants.BadgeFullyBooked, ClassifyBadge(5, 5))
	assert.Equal(t, constants.BadgeFullyBooked, ClassifyBadge(7, 5))
	assert.Equal(t, constants.BadgeAvailable, ClassifyBadge(0, 0))
}

func TestComputeAvailability(t *testing.T) {
	today := testDay(t, "2026-08-29")

	roomTypes := []models.RoomType{
		{ID: 1, Name: "Deluxe Double", TotalRooms: 5},
		{ID: 2, Name: "Standard Twin", TotalRooms: 2},
	}
	bookings := []models.Booking{
		{ID: 10, RoomTypeID: uintPtr(1), Status: constants.BookingStatusConfirmed, CheckOutDate: "2026-09-02", NumberOfRooms: 2},
		{ID: 11, RoomTypeID: uintPtr(1), Status: constants.BookingStatusPending, CheckOutDate: "2026-08-30", NumberOfRooms: 1},
		{ID: 12, RoomTypeID: uintPtr(1), Status: constants.BookingStatusCancelled, CheckOutDate: "2026-09-02", NumberOfRooms: 4},
		{ID: 13, RoomTypeID: uintPtr(1), Status: constants.BookingStatusConfirmed, CheckOutDate: "2026-08-20", NumberOfRooms: 3},
		{ID: 14, RoomTypeID: nil, Status: constants.BookingStatusConfirmed, CheckOutDate: "2026-09-02", NumberOfRooms: 1},
	}

	view := ComputeAvailability(today, roomTypes, bookings)
	require.Len(t, view, 2)

	// Sorted by name.
	deluxe := view[0]
	twin := view[1]
	assert.Equal(t, "Deluxe Double", deluxe.Name)
	assert.Equal(t, "Standard Twin", twin.Name)

	assert.Equal(t, 3, deluxe.BookedCount)
	assert.Equal(t, 2, deluxe.AvailableCount)
	assert.Equal(t, constants.BadgePartiallyBooked, deluxe.Badge)
	assert.Len(t, deluxe.ActiveBookings, 2)

	assert.Equal(t, 0, twin.BookedCount)
	assert.Equal(t, 2, twin.AvailableCount)
	assert.Equal(t, constants.BadgeAvailable, twin.Badge)
	assert.Empty(t, twin.ActiveBookings)

	// Booked plus available always equals the inventory ceiling.
	for _, row := range view {
		assert.Equal(t, row.TotalRooms, row.BookedCount+row.AvailableCount)
	}
}

func TestComputeAvailabilityOverbooked(t *testing.T) {
	today := testDay(t, "2026-08-29")

	roomTypes := []models.RoomType{{ID: 1, Name: "Deluxe Double", TotalRooms: 2}}
	bookings := []models.Booking{
		{ID: 1, RoomTypeID: uintPtr(1), Status: constants.BookingStatusConfirmed, CheckOutDate: "2026-09-02", NumberOfRooms: 3},
	}

	view := ComputeAvailability(today, roomTypes, bookings)
	require.Len(t, view, 1)

	// Overbooking is surfaced, not clamped to zero.
	assert.Equal(t, 3, view[0].BookedCount)
	assert.Equal(t, -1, view[0].AvailableCount)
	assert.Equal(t, constants.BadgeFullyBooked, view[0].Badge)
}

func TestComputeAvailabilityNoBookings(t *testing.T) {
	today := testDay(t, "2026-08-29")

	roomTypes := []models.RoomType{{ID: 1, Name: "Deluxe Double", TotalRooms: 4}}

	view := ComputeAvailability(today, roomTypes, nil)
	require.Len(t, view, 1)
	assert.Equal(t, 0, view[0].BookedCount)
	assert.Equal(t, 4, view[0].AvailableCount)
	assert.Equal(t, constants.BadgeAvailable, view[0].Badge)
}
