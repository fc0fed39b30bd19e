package controllers

import (
	"hotelpms/config"
	"hotelpms/errors"
	"hotelpms/response"
	"hotelpms/services"

	"github.com/gin-gonic/gin"
)

var availabilitySvc *services.AvailabilityService

// SetAvailabilityService wires the shared availability service at startup.
func SetAvailabilityService(svc *services.AvailabilityService) {
	availabilitySvc = svc
}

func getAvailabilityService() *services.AvailabilityService {
	if availabilitySvc == nil {
		availabilitySvc = services.NewAvailabilityService(services.AvailabilityServiceOptions{
			DB:    config.DB,
			Redis: config.RedisClient,
		})
	}
	return availabilitySvc
}

// GetAvailability returns the per-room-type availability view as of today.
// When the backing store cannot be read, the last cached view is served
// instead of an error so the dashboard keeps showing data.
func GetAvailability(c *gin.Context) {
	svc := getAvailabilityService()

	view, err := svc.Refresh(services.Today())
	if err != nil {
		if cached, ok := svc.LastKnownGood(); ok {
			response.Success(c, cached)
			return
		}
		appErr := errors.GetAppError(err)
		if appErr != nil {
			response.DataFetchError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, view)
}
