package handlers

import (
	"net/http"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/alimgiray/timecard/internal/services"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	jobService *services.JobService
}

func NewReportHandler(jobService *services.JobService) *ReportHandler {
	return &ReportHandler{jobService: jobService}
}

type createReportRequest struct {
	From string `json:"from" form:"from"`
	To   string `json:"to" form:"to"`
}

// CreateReport queues a workbook export
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, workinghours.ErrMalformedInput)
		return
	}

	job, err := h.jobService.CreateReportJob(req.From, req.To)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, job)
}

// ListReports returns the latest report jobs
func (h *ReportHandler) ListReports(c *gin.Context) {
	jobs, err := h.jobService.ListRecent(20)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": jobs})
}

// GetReport returns the status of a report job
func (h *ReportHandler) GetReport(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DownloadReport serves the workbook of a completed report job
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	id := c.Param("id")
	path, err := h.jobService.GetReportFile(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "attendance-"+id+".xlsx")
}
