package services

import (
	stderrors "errors"
	"time"

	"hotelpms/constants"
	"hotelpms/errors"
	"hotelpms/models"

	"gorm.io/gorm"
)

// ExtendResult is the structured outcome of the extension procedure. A
// rejected extension (Success false) is a business-rule outcome, distinct
// from a transport-level failure, and carries the store message.
type ExtendResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func combineCheckOut(date, tm string) (time.Time, error) {
	if tm == "" {
		tm = constants.DefaultCheckOutTime
	}
	return time.ParseInLocation(constants.DateLayout+" "+constants.TimeLayout, date+" "+tm, time.Local)
}

// ValidateExtension is the client-side precondition: the proposed checkout
// timestamp must be strictly greater than the current one (time defaults to
// 11:00 when unset). A violation fails with a VALIDATION error before any
// remote mutation is attempted.
func ValidateExtension(current models.Booking, newDate, newTime string) error {
	currentAt, err := combineCheckOut(current.CheckOutDate, current.CheckOutTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "current checkout date is invalid", err)
	}

	newAt, err := combineCheckOut(newDate, newTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "new checkout date is invalid", err)
	}

	if !newAt.After(currentAt) {
		return errors.NewAppError(errors.ErrCodeValidation, "new checkout must be after the current checkout", nil)
	}
	return nil
}

// BookingExtender runs the authoritative extension procedure inside a
// transaction, re-enforcing the rule the client already pre-validated.
type BookingExtender struct {
	db *gorm.DB
}

func NewBookingExtender(db *gorm.DB) *BookingExtender {
	return &BookingExtender{db: db}
}

// Extend moves the booking checkout to the proposed date and time. A non-nil
// error is a transport/store failure; a result with Success false is the
// procedure rejecting the change.
func (e *BookingExtender) Extend(bookingID uint, newDate, newTime string) (ExtendResult, error) {
	var result ExtendResult

	err := e.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", err)
			}
			return errors.NewAppError(errors.ErrCodeDataFetch, "failed to load booking", err)
		}

		switch booking.Status {
		case constants.BookingStatusCancelled, constants.BookingStatusCheckedOut:
			result = ExtendResult{Success: false, Error: errors.ErrNotExtendable.Error()}
			return nil
		}

		if err := ValidateExtension(booking, newDate, newTime); err != nil {
			result = ExtendResult{Success: false, Error: errors.GetAppError(err).Message}
			return nil
		}

		tm := newTime
		if tm == "" {
			tm = constants.DefaultCheckOutTime
		}
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"check_out_date": newDate,
			"check_out_time": tm,
		}).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeMutation, "failed to update booking checkout", err)
		}

		result = ExtendResult{Success: true}
		return nil
	})
	if err != nil {
		return ExtendResult{}, err
	}

	if result.Success {
		Changes.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeUpdate, ID: bookingID})
	}
	return result, nil
}
