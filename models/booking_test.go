package models

import (
	"testing"
	"time"

	"hotelpms/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	b := Booking{CheckOutDate: "2026-09-01"}
	b.ApplyDefaults()

	assert.Equal(t, constants.BookingStatusPending, b.Status)
	assert.Equal(t, constants.DefaultCheckOutTime, b.CheckOutTime)
	assert.Equal(t, 0, b.NumberOfRooms)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	b := Booking{
		Status:        constants.BookingStatusConfirmed,
		CheckOutTime:  "14:30",
		NumberOfRooms: 2,
	}
	b.ApplyDefaults()

	assert.Equal(t, constants.BookingStatusConfirmed, b.Status)
	assert.Equal(t, "14:30", b.CheckOutTime)
	assert.Equal(t, 2, b.NumberOfRooms)
}

func TestApplyDefaultsClampsNegativeRooms(t *testing.T) {
	b := Booking{NumberOfRooms: -3}
	b.ApplyDefaults()

	assert.Equal(t, 0, b.NumberOfRooms)
}

func TestCheckOutAt(t *testing.T) {
	b := Booking{CheckOutDate: "2026-09-01", CheckOutTime: "14:30"}

	at, err := b.CheckOutAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local), at)
}

func TestCheckOutAtDefaultsTime(t *testing.T) {
	b := Booking{CheckOutDate: "2026-09-01"}

	at, err := b.CheckOutAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 11, 0, 0, 0, time.Local), at)
}

func TestCheckOutAtRejectsGarbage(t *testing.T) {
	b := Booking{CheckOutDate: "01/09/2026"}

	_, err := b.CheckOutAt()
	assert.Error(t, err)
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range ValidStatuses() {
		assert.True(t, IsValidStatus(status))
	}
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
}
