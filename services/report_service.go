package services

import (
	"fmt"
	"sort"
	"time"

	"hotelpms/constants"
	"hotelpms/dto"
	"hotelpms/errors"
	"hotelpms/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// nightsBetween counts whole nights between two ISO dates; malformed input
// counts as zero nights.
func nightsBetween(checkIn, checkOut string) int {
	in, err := time.ParseInLocation(constants.DateLayout, checkIn, time.Local)
	if err != nil {
		return 0
	}
	out, err := time.ParseInLocation(constants.DateLayout, checkOut, time.Local)
	if err != nil {
		return 0
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

func bookingRevenue(b models.Booking, prices map[uint]int) float64 {
	if b.RoomTypeID == nil {
		return 0
	}
	return float64(nightsBetween(b.CheckInDate, b.CheckOutDate) * b.NumberOfRooms * prices[*b.RoomTypeID])
}

// BuildStaffReports aggregates booking activity per staff member and day over
// [from, to]. Revenue only counts bookings that made it past pending.
func BuildStaffReports(db *gorm.DB, from, to time.Time) ([]dto.StaffReportRow, error) {
	var bookings []models.Booking
	if err := db.Where("created_at >= ? AND created_at < ?", from, to.AddDate(0, 0, 1)).Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDataFetch, "failed to load bookings for report", err)
	}

	var roomTypes []models.RoomType
	if err := db.Find(&roomTypes).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDataFetch, "failed to load room types for report", err)
	}
	prices := make(map[uint]int, len(roomTypes))
	for _, rt := range roomTypes {
		prices[rt.ID] = rt.BasePrice
	}

	var staffs []models.Staff
	if err := db.Find(&staffs).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDataFetch, "failed to load staff for report", err)
	}
	names := make(map[uint]string, len(staffs))
	for _, s := range staffs {
		names[s.ID] = s.Name
	}

	type key struct {
		staffID uint
		date    string
	}
	rowsByKey := make(map[key]*dto.StaffReportRow)

	for _, b := range bookings {
		if b.CreatedByID == nil {
			continue
		}
		k := key{staffID: *b.CreatedByID, date: b.CreatedAt.Format(constants.DateLayout)}
		row, ok := rowsByKey[k]
		if !ok {
			row = &dto.StaffReportRow{
				StaffID:   k.staffID,
				StaffName: names[k.staffID],
				Date:      k.date,
			}
			rowsByKey[k] = row
		}

		row.BookingCount++
		switch b.Status {
		case constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn, constants.BookingStatusCheckedOut:
			row.ConfirmedCount++
			row.Revenue += bookingRevenue(b, prices)
		}
	}

	rows := make([]dto.StaffReportRow, 0, len(rowsByKey))
	for _, row := range rowsByKey {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].StaffID < rows[j].StaffID
	})
	return rows, nil
}

// SaveStaffReports persists the computed rows, upserting by staff and date so
// re-running a report never duplicates a day.
func SaveStaffReports(db *gorm.DB, rows []dto.StaffReportRow) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			date, err := time.ParseInLocation(constants.DateLayout, row.Date, time.Local)
			if err != nil {
				continue
			}

			var existing models.StaffReport
			err = tx.Where("staff_id = ? AND date = ?", row.StaffID, date).First(&existing).Error
			if err != nil {
				report := models.StaffReport{
					StaffID:        row.StaffID,
					Date:           date,
					BookingCount:   row.BookingCount,
					ConfirmedCount: row.ConfirmedCount,
					Revenue:        row.Revenue,
				}
				if err := tx.Create(&report).Error; err != nil {
					return errors.NewAppError(errors.ErrCodeMutation, "failed to save staff report", err)
				}
				continue
			}

			updates := map[string]interface{}{
				"booking_count":   row.BookingCount,
				"confirmed_count": row.ConfirmedCount,
				"revenue":         row.Revenue,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeMutation, "failed to update staff report", err)
			}
		}
		return nil
	})
}

// ExportStaffReportsXLSX renders the report rows as a spreadsheet for download.
func ExportStaffReportsXLSX(rows []dto.StaffReportRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Staff Reports"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Staff", "Bookings", "Confirmed", "Revenue"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{row.Date, row.StaffName, row.BookingCount, row.ConfirmedCount, row.Revenue}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ReportFileName names the exported spreadsheet after the covered range.
func ReportFileName(from, to time.Time) string {
	return fmt.Sprintf("staff-reports-%s-%s.xlsx", from.Format(constants.DateLayout), to.Format(constants.DateLayout))
}
