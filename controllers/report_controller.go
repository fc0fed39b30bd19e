package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"hotelpms/config"
	"hotelpms/constants"
	"hotelpms/errors"
	"hotelpms/response"
	"hotelpms/services"

	"github.com/gin-gonic/gin"
)

// reportRange parses the fromDate/toDate query pair; a missing range defaults
// to the last 30 days.
func reportRange(c *gin.Context) (time.Time, time.Time, error) {
	from := services.Today().AddDate(0, 0, -30)
	to := services.Today()

	if fromStr := c.Query("fromDate"); fromStr != "" {
		parsed, err := time.ParseInLocation(constants.DateLayout, fromStr, time.Local)
		if err != nil {
			return from, to, fmt.Errorf("invalid fromDate")
		}
		from = parsed
	}
	if toStr := c.Query("toDate"); toStr != "" {
		parsed, err := time.ParseInLocation(constants.DateLayout, toStr, time.Local)
		if err != nil {
			return from, to, fmt.Errorf("invalid toDate")
		}
		to = parsed
	}

	if to.Before(from) {
		return from, to, fmt.Errorf("toDate is before fromDate")
	}
	return from, to, nil
}

// GetStaffReports computes per-staff daily booking activity over a date range
// and persists the aggregates.
func GetStaffReports(c *gin.Context) {
	from, to, err := reportRange(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rows, err := services.BuildStaffReports(config.DB, from, to)
	if err != nil {
		appErr := errors.GetAppError(err)
		if appErr != nil {
			response.DataFetchError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	if err := services.SaveStaffReports(config.DB, rows); err != nil {
		log.Printf("failed to persist staff reports: %v", err)
	}

	response.Success(c, rows)
}

// ExportStaffReports streams the staff report as an xlsx download.
func ExportStaffReports(c *gin.Context) {
	from, to, err := reportRange(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rows, err := services.BuildStaffReports(config.DB, from, to)
	if err != nil {
		appErr := errors.GetAppError(err)
		if appErr != nil {
			response.DataFetchError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	file, err := services.ExportStaffReportsXLSX(rows)
	if err != nil {
		response.ServerError(c)
		return
	}
	defer file.Close()

	filename := services.ReportFileName(from, to)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
