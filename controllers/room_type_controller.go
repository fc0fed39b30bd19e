package controllers

import (
	stderrors "errors"
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
	"gorm.io/gorm"
)

const roomTypesCacheKey = "room_types:all"

func invalidateRoomTypeCache() {
	if config.RedisClient != nil {
		services.DeleteFromRedis(config.Ctx, config.RedisClient, roomTypesCacheKey)
	}
}

func convertToRoomTypeResponse(rt models.RoomType) dto.RoomTypeResponse {
	return dto.RoomTypeResponse{
		ID:         rt.ID,
		Name:       rt.Name,
		Capacity:   rt.Capacity,
		BasePrice:  rt.BasePrice,
		TotalRooms: rt.TotalRooms,
		IsActive:   rt.IsActive,
		CreatedAt:  rt.CreatedAt,
		UpdatedAt:  rt.UpdatedAt,
	}
}

// GetRoomTypes lists room types with optional name and active filters.
func GetRoomTypes(c *gin.Context) {
	var allRoomTypes []models.RoomType

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomTypesCacheKey, &allRoomTypes); err != nil || len(allRoomTypes) == 0 {
		if err := config.DB.Find(&allRoomTypes).Error; err != nil {
			response.DataFetchError(c, "failed to load room types")
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RedisClient, roomTypesCacheKey, allRoomTypes, 10*time.Minute); err != nil {
			log.Printf("failed to cache room types: %v", err)
		}
	}

	nameFilter := c.Query("name")
	activeStr := c.Query("isActive")

	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	filtered := make([]models.RoomType, 0, len(allRoomTypes))
	for _, rt := range allRoomTypes {
		if nameFilter != "" {
			decoded, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(rt.Name), strings.ToLower(decoded)) {
				continue
			}
		}
		if activeStr != "" {
			active, err := strconv.ParseBool(activeStr)
			if err == nil && rt.IsActive != active {
				continue
			}
		}
		filtered = append(filtered, rt)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Name < filtered[j].Name
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

	responses := make([]dto.RoomTypeResponse, 0, end-start)
	for _, rt := range filtered[start:end] {
		responses = append(responses, convertToRoomTypeResponse(rt))
	}

	response.SuccessWithPagination(c, responses, page, limit, total)
}

// CreateRoomType adds a new room category.
func CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	roomType := models.RoomType{
		Name:       req.Name,
		Capacity:   req.Capacity,
		BasePrice:  req.BasePrice,
		TotalRooms: req.TotalRooms,
		IsActive:   true,
	}
	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	services.Changes.Publish(services.ChangeEvent{
		Table:  constants.TableRoomTypes,
		Action: services.ChangeInsert,
		ID:     roomType.ID,
	})
	invalidateRoomTypeCache()

	response.Success(c, convertToRoomTypeResponse(roomType))
}

// GetRoomTypeDetail returns one room type.
func GetRoomTypeDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room type id")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load room type")
		return
	}

	response.Success(c, convertToRoomTypeResponse(roomType))
}

// UpdateRoomType edits a room category, including its inventory ceiling.
func UpdateRoomType(c *gin.Context) {
	var req dto.RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Room type id is required")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load room type")
		return
	}

	if req.Name != "" {
		roomType.Name = req.Name
	}
	if req.Capacity > 0 {
		roomType.Capacity = req.Capacity
	}
	if req.BasePrice >= 0 {
		roomType.BasePrice = req.BasePrice
	}
	if req.TotalRooms >= 0 {
		roomType.TotalRooms = req.TotalRooms
	}
	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Save(&roomType).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	services.Changes.Publish(services.ChangeEvent{
		Table:  constants.TableRoomTypes,
		Action: services.ChangeUpdate,
		ID:     roomType.ID,
	})
	invalidateRoomTypeCache()

	response.Success(c, convertToRoomTypeResponse(roomType))
}

// ChangeRoomTypeStatus toggles a room type active or inactive. Inactive
// types drop out of the availability view but keep their bookings.
func ChangeRoomTypeStatus(c *gin.Context) {
	var req struct {
		ID       uint `json:"id" binding:"required"`
		IsActive bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load room type")
		return
	}

	if err := config.DB.Model(&roomType).Update("is_active", req.IsActive).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	services.Changes.Publish(services.ChangeEvent{
		Table:  constants.TableRoomTypes,
		Action: services.ChangeUpdate,
		ID:     roomType.ID,
	})
	invalidateRoomTypeCache()

	roomType.IsActive = req.IsActive
	response.Success(c, convertToRoomTypeResponse(roomType))
}
