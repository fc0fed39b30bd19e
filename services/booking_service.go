package services

import (
	"fmt"

	"hotelpms/constants"
	"hotelpms/models"
	"hotelpms/services/logger"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// BookingService owns the lifecycle maintenance that runs outside a request,
// currently the nightly auto-checkout sweep.
type BookingService struct {
	db  *gorm.DB
	log logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{db: opts.DB, log: l}
}

// CheckOutOverdue marks checked-in bookings whose checkout date has elapsed
// as checked-out, publishing a change event per booking so the availability
// view refreshes, and notifies connected dashboards.
func (s *BookingService) CheckOutOverdue(m *melody.Melody) error {
	today := Today().Format(constants.DateLayout)

	var overdue []models.Booking
	if err := s.db.Where("status = ? AND check_out_date < ?", constants.BookingStatusCheckedIn, today).Find(&overdue).Error; err != nil {
		s.log.Error("failed to load overdue bookings: %v", err)
		return err
	}

	if len(overdue) == 0 {
		s.log.Info("no overdue bookings to check out")
		return nil
	}

	tx := s.db.Begin()
	for _, booking := range overdue {
		if err := tx.Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Update("status", constants.BookingStatusCheckedOut).Error; err != nil {
			tx.Rollback()
			s.log.Error("failed to check out booking %d: %v", booking.ID, err)
			return err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}

	for _, booking := range overdue {
		Changes.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeUpdate, ID: booking.ID})
	}

	if m != nil {
		message := fmt.Sprintf("%d overdue bookings were checked out automatically", len(overdue))
		m.Broadcast([]byte(message))
	}

	s.log.Info("checked out %d overdue bookings", len(overdue))
	return nil
}
