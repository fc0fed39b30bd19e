package controllers

import (
	stderrors "errors"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"hotelpms/config"
	"hotelpms/constants"
	"hotelpms/dto"
	"hotelpms/errors"
	"hotelpms/models"
	"hotelpms/response"
	"hotelpms/services"
	"hotelpms/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const bookingsCacheKey = "bookings:all"

func invalidateBookingCache() {
	if config.RedisClient != nil {
		services.DeleteFromRedis(config.Ctx, config.RedisClient, bookingsCacheKey)
	}
}

func convertToBookingResponse(b models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:            b.ID,
		BookingCode:   b.BookingCode,
		RoomTypeID:    b.RoomTypeID,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		CheckOutTime:  b.CheckOutTime,
		NumberOfRooms: b.NumberOfRooms,
		Status:        b.Status,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.RoomType != nil {
		resp.RoomTypeName = b.RoomType.Name
	}
	return resp
}

// GetBookings lists bookings with optional filters, newest first.
func GetBookings(c *gin.Context) {
	var allBookings []models.Booking

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, bookingsCacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		if err := config.DB.Preload("RoomType").Find(&allBookings).Error; err != nil {
			response.DataFetchError(c, "failed to load bookings")
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RedisClient, bookingsCacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("failed to cache bookings: %v", err)
		}
	}

	statusFilter := c.Query("status")
	roomTypeStr := c.Query("roomTypeId")
	guestFilter := c.Query("guestName")
	phoneFilter := c.Query("phoneNumber")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	filtered := make([]models.Booking, 0, len(allBookings))
	for _, b := range allBookings {
		if statusFilter != "" && b.Status != statusFilter {
			continue
		}
		if roomTypeStr != "" {
			id, err := strconv.Atoi(roomTypeStr)
			if err != nil || b.RoomTypeID == nil || *b.RoomTypeID != uint(id) {
				continue
			}
		}
		if guestFilter != "" {
			decoded, _ := url.QueryUnescape(guestFilter)
			if !strings.Contains(strings.ToLower(b.GuestName), strings.ToLower(decoded)) {
				continue
			}
		}
		if phoneFilter != "" && !strings.Contains(b.GuestPhone, phoneFilter) {
			continue
		}
		if fromDateStr != "" && b.CheckInDate < fromDateStr {
			continue
		}
		if toDateStr != "" && b.CheckInDate > toDateStr {
			continue
		}
		filtered = append(filtered, b)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	responses := make([]dto.BookingResponse, 0, end-start)
	for _, b := range filtered[start:end] {
		responses = append(responses, convertToBookingResponse(b))
	}

	response.SuccessWithPagination(c, responses, page, limit, total)
}

// resolveRoomType maps the request's room type reference to a stored row.
// A misspelled name comes back with the closest known name as a hint.
func resolveRoomType(req dto.CreateBookingRequest) (*models.RoomType, string, error) {
	var roomType models.RoomType

	if req.RoomTypeID != nil {
		if err := config.DB.First(&roomType, *req.RoomTypeID).Error; err != nil {
			return nil, "", errors.ErrRoomTypeNotFound
		}
		return &roomType, "", nil
	}

	if req.RoomTypeName == "" {
		return nil, "", nil
	}

	var roomTypes []models.RoomType
	if err := config.DB.Where("is_active = ?", true).Find(&roomTypes).Error; err != nil {
		return nil, "", err
	}

	target := services.NormalizeName(req.RoomTypeName)
	names := make([]string, 0, len(roomTypes))
	for i := range roomTypes {
		if services.NormalizeName(roomTypes[i].Name) == target {
			return &roomTypes[i], "", nil
		}
		names = append(names, roomTypes[i].Name)
	}

	suggestion, _ := services.NewNameSuggester(names).Suggest(req.RoomTypeName)
	return nil, suggestion, errors.ErrRoomTypeNotFound
}

// CreateBooking records a new booking made by the staff member on the phone
// or at the desk.
func CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	roomType, suggestion, err := resolveRoomType(req)
	if err != nil {
		if stderrors.Is(err, errors.ErrRoomTypeNotFound) {
			message := "Room type not found"
			if suggestion != "" {
				message = fmt.Sprintf("Room type not found, did you mean %q?", suggestion)
			}
			response.BadRequest(c, message)
			return
		}
		response.DataFetchError(c, "failed to load room types")
		return
	}

	if req.RatePlanCode != "" {
		var plan models.RatePlan
		if err := config.DB.Where("code = ? AND is_active = ?", req.RatePlanCode, true).First(&plan).Error; err != nil {
			response.BadRequest(c, "Rate plan code is not valid")
			return
		}
		today := services.Today().Format(constants.DateLayout)
		if today < plan.FromDate || today > plan.ToDate {
			response.BadRequest(c, "Rate plan is not active today")
			return
		}
	}

	booking := models.Booking{
		BookingCode:   uuid.New().String(),
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		CheckOutTime:  req.CheckOutTime,
		NumberOfRooms: req.NumberOfRooms,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
	}
	if roomType != nil {
		booking.RoomTypeID = &roomType.ID
	}
	if staffID, ok := c.Get("staffID"); ok {
		id := staffID.(uint)
		booking.CreatedByID = &id
	}
	booking.ApplyDefaults()

	if err := validator.ValidateBooking(&booking); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		appErr := errors.GetAppError(err)
		if appErr != nil {
			response.MutationError(c, appErr.Message)
			return
		}
		response.MutationError(c, "")
		return
	}

	services.Changes.Publish(services.ChangeEvent{
		Table:  constants.TableBookings,
		Action: services.ChangeInsert,
		ID:     booking.ID,
	})
	invalidateBookingCache()

	response.Success(c, convertToBookingResponse(booking))
}

// GetBookingDetail returns one booking with its room type and creator.
func GetBookingDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("RoomType").Preload("CreatedBy").First(&booking, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load booking")
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// ChangeBookingStatus moves a booking through its lifecycle. Cancelled and
// checked-out are terminal.
func ChangeBookingStatus(c *gin.Context) {
	var req dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if !models.IsValidStatus(req.Status) {
		response.ValidationError(c, "Booking status is not valid")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load booking")
		return
	}

	switch booking.Status {
	case constants.BookingStatusCancelled, constants.BookingStatusCheckedOut:
		response.MutationError(c, "booking status can no longer change")
		return
	}

	if err := config.DB.Model(&booking).Update("status", req.Status).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	services.Changes.Publish(services.ChangeEvent{
		Table:  constants.TableBookings,
		Action: services.ChangeUpdate,
		ID:     booking.ID,
	})
	invalidateBookingCache()

	booking.Status = req.Status
	response.Success(c, convertToBookingResponse(booking))
}

// ExtendBooking moves a booking checkout to a later date and time. The rule
// is checked here first so an obviously invalid request never reaches the
// store, then re-checked inside the transaction which stays authoritative.
func ExtendBooking(c *gin.Context) {
	var req dto.ExtendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load booking")
		return
	}

	if err := services.ValidateExtension(booking, req.NewCheckOutDate, req.NewCheckOutTime); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	result, err := services.NewBookingExtender(config.DB).Extend(req.ID, req.NewCheckOutDate, req.NewCheckOutTime)
	if err != nil {
		appErr := errors.GetAppError(err)
		switch {
		case appErr != nil && appErr.Code == errors.ErrCodeDBNotFound:
			response.NotFound(c)
		case appErr != nil && appErr.Code == errors.ErrCodeDataFetch:
			response.DataFetchError(c, appErr.Message)
		case appErr != nil:
			response.MutationError(c, appErr.Message)
		default:
			response.ServerError(c)
		}
		return
	}

	if !result.Success {
		response.MutationError(c, result.Error)
		return
	}

	invalidateBookingCache()
	response.Success(c, result)
}
