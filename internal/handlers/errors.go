package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/alimgiray/timecard/internal/services"
	"github.com/alimgiray/timecard/pkg/logger"
	"github.com/gin-gonic/gin"
)

// respondError maps service and domain errors to HTTP responses
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, workinghours.ErrInvalidArgument),
		errors.Is(err, workinghours.ErrMalformedInput):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrEmployeeNotFound),
		errors.Is(err, services.ErrRecordNotFound),
		errors.Is(err, services.ErrJobNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrEmployeeExists),
		errors.Is(err, services.ErrAlreadyClockedIn),
		errors.Is(err, services.ErrNotClockedIn),
		errors.Is(err, services.ErrReportNotReady):
		status = http.StatusConflict
	case errors.Is(err, services.ErrTooManyJobs):
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		logger.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled error")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
