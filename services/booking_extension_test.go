package services

import (
	"testing"

	"hotelpms/errors"
	"hotelpms/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateExtension(t *testing.T) {
	current := models.Booking{
		CheckOutDate: "2026-09-01",
		CheckOutTime: "11:00",
	}

	tests := []struct {
		name    string
		newDate string
		newTime string
		wantErr bool
	}{
		{name: "later date passes", newDate: "2026-09-02", newTime: "11:00", wantErr: false},
		{name: "same date later time passes", newDate: "2026-09-01", newTime: "11:01", wantErr: false},
		{name: "same timestamp fails", newDate: "2026-09-01", newTime: "11:00", wantErr: true},
		{name: "same date earlier time fails", newDate: "2026-09-01", newTime: "10:59", wantErr: true},
		{name: "earlier date fails", newDate: "2026-08-31", newTime: "23:00", wantErr: true},
		{name: "empty time defaults to 11:00 and fails on same date", newDate: "2026-09-01", newTime: "", wantErr: true},
		{name: "empty time defaults to 11:00 and passes on next date", newDate: "2026-09-02", newTime: "", wantErr: false},
		{name: "garbage date fails", newDate: "01/09/2026", newTime: "11:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(current, tt.newDate, tt.newTime)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExtensionErrorCodes(t *testing.T) {
	current := models.Booking{CheckOutDate: "2026-09-01", CheckOutTime: "11:00"}

	err := ValidateExtension(current, "2026-09-01", "10:00")
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	err = ValidateExtension(current, "not-a-date", "10:00")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidFormat))
}

func TestValidateExtensionDefaultsCurrentTime(t *testing.T) {
	// A booking stored without a checkout time is treated as 11:00.
	current := models.Booking{CheckOutDate: "2026-09-01"}

	assert.Error(t, ValidateExtension(current, "2026-09-01", "10:59"))
	assert.NoError(t, ValidateExtension(current, "2026-09-01", "11:01"))
}
