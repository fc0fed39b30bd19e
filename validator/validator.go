package validator

import (
	"regexp"
	"time"

	"hotelpms/constants"
	"hotelpms/errors"
	"hotelpms/models"

	validatorv10 "github.com/go-playground/validator/v10"
)

var validate = validatorv10.New()

// ValidateStruct runs the `validate` tags declared on a request DTO.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}
	return nil
}

// ValidateStaff validates a staff account before it is stored.
func ValidateStaff(staff *models.Staff) error {
	if staff.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email must not be empty", nil)
	}

	if !isValidEmail(staff.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}

	if staff.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password must not be empty", nil)
	}

	if len(staff.Password) < 8 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must have at least 8 characters", nil)
	}

	if staff.PhoneNumber != "" && !isValidPhone(staff.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}

	if staff.Role < constants.RoleSuperAdmin || staff.Role > constants.RoleStaff {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role is not valid", nil)
	}

	return nil
}

// ValidateRoomType validates a room type before it is stored.
func ValidateRoomType(rt *models.RoomType) error {
	if rt.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room type name must not be empty", nil)
	}

	if rt.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Capacity must be positive", nil)
	}

	if err := rt.ValidateInventory(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}

	if rt.BasePrice < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Base price must not be negative", nil)
	}

	return nil
}

// ValidateBooking validates a booking before it is stored.
func ValidateBooking(booking *models.Booking) error {
	checkInDate, err := time.ParseInLocation(constants.DateLayout, booking.CheckInDate, time.Local)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Check-in date is not valid", err)
	}

	checkOutDate, err := time.ParseInLocation(constants.DateLayout, booking.CheckOutDate, time.Local)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Check-out date is not valid", err)
	}

	if checkOutDate.Before(checkInDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Check-out date must not be before check-in date", nil)
	}

	if booking.NumberOfRooms < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Number of rooms must not be negative", nil)
	}

	if !models.IsValidStatus(booking.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Booking status is not valid", nil)
	}

	if booking.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest name must not be empty", nil)
	}
	if booking.GuestPhone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest phone must not be empty", nil)
	}
	if !isValidPhone(booking.GuestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Guest phone is not valid", nil)
	}
	if booking.GuestEmail != "" && !isValidEmail(booking.GuestEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Guest email is not valid", nil)
	}

	return nil
}

// ValidateRatePlan validates a rate plan before it is stored.
func ValidateRatePlan(plan *models.RatePlan) error {
	if plan.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Rate plan name must not be empty", nil)
	}

	if plan.Percent < 0 || plan.Percent > 100 {
		return errors.NewAppError(errors.ErrCodeValidation, "Rate percent must be between 0 and 100", nil)
	}

	fromDate, err := time.ParseInLocation(constants.DateLayout, plan.FromDate, time.Local)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "From date is not valid", err)
	}

	toDate, err := time.ParseInLocation(constants.DateLayout, plan.ToDate, time.Local)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "To date is not valid", err)
	}

	if !toDate.After(fromDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "To date must be after from date", nil)
	}

	if plan.Quantity < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Quantity must not be negative", nil)
	}

	return nil
}

// ValidatePricingPlan validates a pricing plan before it is stored.
func ValidatePricingPlan(plan *models.PricingPlan) error {
	if plan.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Pricing plan name must not be empty", nil)
	}

	if plan.RoomTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room type must not be empty", nil)
	}

	fromDate, err := time.ParseInLocation(constants.DateLayout, plan.FromDate, time.Local)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "From date is not valid", err)
	}

	toDate, err := time.ParseInLocation(constants.DateLayout, plan.ToDate, time.Local)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "To date is not valid", err)
	}

	if toDate.Before(fromDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "To date must not be before from date", nil)
	}

	return nil
}

// ValidateBlogPost validates a blog post before it is stored.
func ValidateBlogPost(post *models.BlogPost) error {
	if post.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title must not be empty", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
