package handlers

import (
	"net/http"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/alimgiray/timecard/internal/models"
	"github.com/alimgiray/timecard/internal/services"
	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

type clockOutRequest struct {
	RemoteAdjustmentHours string `json:"remote_adjustment_hours" form:"remote_adjustment_hours"`
}

type manualRecordRequest struct {
	OpeningTime           string `json:"opening_time" form:"opening_time"`
	ClosingTime           string `json:"closing_time" form:"closing_time"`
	RemoteAdjustmentHours string `json:"remote_adjustment_hours" form:"remote_adjustment_hours"`
}

// ClockIn records the opening time for today
func (h *AttendanceHandler) ClockIn(c *gin.Context) {
	record, err := h.attendanceService.ClockIn(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondRecord(c, http.StatusCreated, record)
}

// ClockOut records the closing time for today
func (h *AttendanceHandler) ClockOut(c *gin.Context) {
	var req clockOutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&req); err != nil {
			respondError(c, workinghours.ErrMalformedInput)
			return
		}
	}

	record, err := h.attendanceService.ClockOut(c.Param("id"), req.RemoteAdjustmentHours)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondRecord(c, http.StatusOK, record)
}

// RecordManual stores a complete session for the date in the path
func (h *AttendanceHandler) RecordManual(c *gin.Context) {
	var req manualRecordRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, workinghours.ErrMalformedInput)
		return
	}

	record, err := h.attendanceService.RecordManual(
		c.Param("id"), c.Param("date"),
		req.OpeningTime, req.ClosingTime, req.RemoteAdjustmentHours,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondRecord(c, http.StatusOK, record)
}

// GetRecord returns one attendance record by its ID
func (h *AttendanceHandler) GetRecord(c *gin.Context) {
	record, err := h.attendanceService.GetRecord(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondRecord(c, http.StatusOK, record)
}

// ListRecords returns the employee's records between ?from= and ?to=
func (h *AttendanceHandler) ListRecords(c *gin.Context) {
	records, err := h.attendanceService.ListRecords(c.Param("id"), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]*models.AttendanceView, 0, len(records))
	for _, record := range records {
		view, err := h.attendanceService.View(record)
		if err != nil {
			respondError(c, err)
			return
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{"records": views})
}

// WorkingHours returns the employee's total working hours between ?from= and ?to=
func (h *AttendanceHandler) WorkingHours(c *gin.Context) {
	summary, err := h.attendanceService.PeriodTotal(c.Param("id"), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employee_id":   summary.EmployeeID,
		"employee_name": summary.EmployeeName,
		"from":          summary.From,
		"to":            summary.To,
		"days":          summary.Days,
		"open_days":     summary.OpenDays,
		"working_hours": summary.Total.String(),
	})
}

func (h *AttendanceHandler) respondRecord(c *gin.Context, status int, record *models.AttendanceRecord) {
	view, err := h.attendanceService.View(record)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, view)
}
