package services

import (
	"testing"

	"hotelpms/dto"
	"hotelpms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 2, nightsBetween("2026-01-01", "2026-01-03"))
	assert.Equal(t, 1, nightsBetween("2026-08-29", "2026-08-30"))
	assert.Equal(t, 0, nightsBetween("2026-01-03", "2026-01-03"))
	assert.Equal(t, 0, nightsBetween("2026-01-03", "2026-01-01"))
	assert.Equal(t, 0, nightsBetween("garbage", "2026-01-03"))
	assert.Equal(t, 0, nightsBetween("2026-01-01", "garbage"))
}

func TestBookingRevenue(t *testing.T) {
	prices := map[uint]int{1: 100, 2: 250}

	b := models.Booking{
		RoomTypeID:    uintPtr(1),
		CheckInDate:   "2026-01-01",
		CheckOutDate:  "2026-01-04",
		NumberOfRooms: 2,
	}
	assert.Equal(t, float64(600), bookingRevenue(b, prices))

	b.RoomTypeID = uintPtr(2)
	assert.Equal(t, float64(1500), bookingRevenue(b, prices))

	b.RoomTypeID = nil
	assert.Equal(t, float64(0), bookingRevenue(b, prices))

	b.RoomTypeID = uintPtr(99)
	assert.Equal(t, float64(0), bookingRevenue(b, prices))
}

func TestExportStaffReportsXLSX(t *testing.T) {
	rows := []dto.StaffReportRow{
		{StaffID: 1, StaffName: "Alice", Date: "2026-08-28", BookingCount: 3, ConfirmedCount: 2, Revenue: 450},
		{StaffID: 2, StaffName: "Bob", Date: "2026-08-28", BookingCount: 1, ConfirmedCount: 0, Revenue: 0},
	}

	file, err := ExportStaffReportsXLSX(rows)
	require.NoError(t, err)
	defer file.Close()

	value, err := file.GetCellValue("Staff Reports", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", value)

	value, err = file.GetCellValue("Staff Reports", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", value)
}
