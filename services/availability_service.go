package services

import (
	"sort"
	"time"

	"hotelpms/config"
	"hotelpms/constants"
	"hotelpms/dto"
	"hotelpms/errors"
	"hotelpms/models"
	"hotelpms/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// AvailabilityCacheKey holds the last computed view; it doubles as the
// last-known-good copy served when a refetch fails.
const AvailabilityCacheKey = "availability:view"

const availabilityCacheTTL = 10 * time.Minute

// Today truncates the clock to the server's local calendar day.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// IsActiveBooking reports whether b still occupies inventory as of today:
// its status is pending, confirmed, or checked-in and its checkout date is on
// or after today. Checked-out and cancelled bookings never count, and neither
// do stays that fully elapsed. Rows with an unparseable checkout are skipped.
func IsActiveBooking(b models.Booking, today time.Time) bool {
	switch b.Status {
	case constants.BookingStatusPending, constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn:
	default:
		return false
	}

	checkOut, err := time.ParseInLocation(constants.DateLayout, b.CheckOutDate, time.Local)
	if err != nil {
		return false
	}
	return !checkOut.Before(today)
}

// ClassifyBadge maps booked/total counts to the dashboard badge.
func ClassifyBadge(booked, total int) string {
	if booked == 0 {
		return constants.BadgeAvailable
	}
	if booked >= total {
		return constants.BadgeFullyBooked
	}
	return constants.BadgePartiallyBooked
}

// ComputeAvailability derives, per room type, how many units are booked and
// available as of today. Pure function of its inputs: roomTypes is the set of
// active room types, bookings the full booking table. The available count is
// total_rooms minus the booked sum and is deliberately not clamped, so an
// overbooked type shows a negative number.
func ComputeAvailability(today time.Time, roomTypes []models.RoomType, bookings []models.Booking) []dto.RoomAvailability {
	activeByType := make(map[uint][]models.Booking)
	for _, b := range bookings {
		if b.RoomTypeID == nil {
			continue
		}
		if IsActiveBooking(b, today) {
			activeByType[*b.RoomTypeID] = append(activeByType[*b.RoomTypeID], b)
		}
	}

	rows := make([]dto.RoomAvailability, 0, len(roomTypes))
	for _, rt := range roomTypes {
		active := activeByType[rt.ID]

		booked := 0
		briefs := make([]dto.BookingBrief, 0, len(active))
		for _, b := range active {
			booked += b.NumberOfRooms
			briefs = append(briefs, dto.BookingBrief{
				ID:            b.ID,
				BookingCode:   b.BookingCode,
				CheckInDate:   b.CheckInDate,
				CheckOutDate:  b.CheckOutDate,
				NumberOfRooms: b.NumberOfRooms,
				Status:        b.Status,
				GuestName:     b.GuestName,
			})
		}

		rows = append(rows, dto.RoomAvailability{
			ID:             rt.ID,
			Name:           rt.Name,
			Capacity:       rt.Capacity,
			BasePrice:      rt.BasePrice,
			TotalRooms:     rt.TotalRooms,
			BookedCount:    booked,
			AvailableCount: rt.TotalRooms - booked,
			Badge:          ClassifyBadge(booked, rt.TotalRooms),
			ActiveBookings: briefs,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// AvailabilityService loads both backing tables, recomputes the derived view,
// and keeps the cached projection current.
type AvailabilityService struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

type AvailabilityServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewAvailabilityService(opts AvailabilityServiceOptions) *AvailabilityService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AvailabilityService{db: opts.DB, rdb: opts.Redis, log: l}
}

// Load fetches the active room types and the full booking table. Either read
// failing maps to a DATA_FETCH error; the computation never sees bad input.
func (s *AvailabilityService) Load() ([]models.RoomType, []models.Booking, error) {
	var roomTypes []models.RoomType
	if err := s.db.Where("is_active = ?", true).Find(&roomTypes).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDataFetch, "failed to load room types", err)
	}

	var bookings []models.Booking
	if err := s.db.Find(&bookings).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDataFetch, "failed to load bookings", err)
	}

	return roomTypes, bookings, nil
}

// Refresh refetches both tables, recomputes the view for today, and replaces
// the cached projection. Every trigger does a full refetch; table sizes are
// small and the simplicity wins over delta tracking.
func (s *AvailabilityService) Refresh(today time.Time) ([]dto.RoomAvailability, error) {
	roomTypes, bookings, err := s.Load()
	if err != nil {
		return nil, err
	}

	view := ComputeAvailability(today, roomTypes, bookings)

	if s.rdb != nil {
		if err := SetToRedis(config.Ctx, s.rdb, AvailabilityCacheKey, view, availabilityCacheTTL); err != nil {
			s.log.Error("failed to cache availability view: %v", err)
		}
	}
	return view, nil
}

// LastKnownGood returns the cached projection, if any.
func (s *AvailabilityService) LastKnownGood() ([]dto.RoomAvailability, bool) {
	if s.rdb == nil {
		return nil, false
	}
	var view []dto.RoomAvailability
	if err := GetFromRedis(config.Ctx, s.rdb, AvailabilityCacheKey, &view); err != nil || len(view) == 0 {
		return nil, false
	}
	return view, true
}
