package validator

import (
	"testing"

	"hotelpms/constants"
	"hotelpms/errors"
	"hotelpms/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateStaff(t *testing.T) {
	valid := models.Staff{
		Email:       "staff@hotel.test",
		Password:    "supersecret",
		PhoneNumber: "0912345678",
		Role:        constants.RoleStaff,
	}
	assert.NoError(t, ValidateStaff(&valid))

	noEmail := valid
	noEmail.Email = ""
	assert.True(t, errors.IsCode(ValidateStaff(&noEmail), errors.ErrCodeRequiredField))

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.True(t, errors.IsCode(ValidateStaff(&badEmail), errors.ErrCodeInvalidEmail))

	shortPassword := valid
	shortPassword.Password = "short"
	assert.True(t, errors.IsCode(ValidateStaff(&shortPassword), errors.ErrCodeValidation))

	badPhone := valid
	badPhone.PhoneNumber = "12ab"
	assert.True(t, errors.IsCode(ValidateStaff(&badPhone), errors.ErrCodeInvalidPhone))

	badRole := valid
	badRole.Role = 9
	assert.True(t, errors.IsCode(ValidateStaff(&badRole), errors.ErrCodeInvalidRole))
}

func TestValidateRoomType(t *testing.T) {
	valid := models.RoomType{Name: "Deluxe Double", Capacity: 2, TotalRooms: 5, BasePrice: 100}
	assert.NoError(t, ValidateRoomType(&valid))

	noName := valid
	noName.Name = ""
	assert.True(t, errors.IsCode(ValidateRoomType(&noName), errors.ErrCodeRequiredField))

	zeroCapacity := valid
	zeroCapacity.Capacity = 0
	assert.True(t, errors.IsCode(ValidateRoomType(&zeroCapacity), errors.ErrCodeValidation))

	negativeRooms := valid
	negativeRooms.TotalRooms = -1
	assert.True(t, errors.IsCode(ValidateRoomType(&negativeRooms), errors.ErrCodeValidation))
}

func TestValidateBooking(t *testing.T) {
	valid := models.Booking{
		CheckInDate:   "2026-09-01",
		CheckOutDate:  "2026-09-03",
		NumberOfRooms: 1,
		Status:        constants.BookingStatusPending,
		GuestName:     "Alice",
		GuestPhone:    "0912345678",
	}
	assert.NoError(t, ValidateBooking(&valid))

	badDate := valid
	badDate.CheckInDate = "01/09/2026"
	assert.True(t, errors.IsCode(ValidateBooking(&badDate), errors.ErrCodeInvalidFormat))

	reversed := valid
	reversed.CheckOutDate = "2026-08-30"
	assert.True(t, errors.IsCode(ValidateBooking(&reversed), errors.ErrCodeValidation))

	// Same-day checkout is a zero-night stay and still valid.
	sameDay := valid
	sameDay.CheckOutDate = valid.CheckInDate
	assert.NoError(t, ValidateBooking(&sameDay))

	badStatus := valid
	badStatus.Status = "archived"
	assert.True(t, errors.IsCode(ValidateBooking(&badStatus), errors.ErrCodeInvalidStatus))

	noGuest := valid
	noGuest.GuestName = ""
	assert.True(t, errors.IsCode(ValidateBooking(&noGuest), errors.ErrCodeRequiredField))

	badGuestEmail := valid
	badGuestEmail.GuestEmail = "nope"
	assert.True(t, errors.IsCode(ValidateBooking(&badGuestEmail), errors.ErrCodeInvalidEmail))
}

func TestValidateRatePlan(t *testing.T) {
	valid := models.RatePlan{
		Name:     "Summer Promo",
		Code:     "SUMMER26",
		Percent:  15,
		FromDate: "2026-06-01",
		ToDate:   "2026-08-31",
		Quantity: 100,
	}
	assert.NoError(t, ValidateRatePlan(&valid))

	badPercent := valid
	badPercent.Percent = 150
	assert.True(t, errors.IsCode(ValidateRatePlan(&badPercent), errors.ErrCodeValidation))

	reversed := valid
	reversed.ToDate = "2026-05-01"
	assert.True(t, errors.IsCode(ValidateRatePlan(&reversed), errors.ErrCodeValidation))
}

func TestValidatePricingPlan(t *testing.T) {
	valid := models.PricingPlan{
		RoomTypeID: 1,
		Name:       "High Season",
		FromDate:   "2026-12-20",
		ToDate:     "2027-01-05",
		Adjustment: 30,
	}
	assert.NoError(t, ValidatePricingPlan(&valid))

	noRoomType := valid
	noRoomType.RoomTypeID = 0
	assert.True(t, errors.IsCode(ValidatePricingPlan(&noRoomType), errors.ErrCodeRequiredField))

	reversed := valid
	reversed.ToDate = "2026-12-01"
	assert.True(t, errors.IsCode(ValidatePricingPlan(&reversed), errors.ErrCodeValidation))
}

func TestValidateStruct(t *testing.T) {
	type loginForm struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	assert.NoError(t, ValidateStruct(&loginForm{Email: "staff@hotel.test", Password: "secret"}))

	err := ValidateStruct(&loginForm{Email: "nope"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}
