package handler

import (
	appreport "github.com/autoexpert/backend/internal/application/report"
	"github.com/autoexpert/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReportHandler exposes the assembled report read model
type ReportHandler struct {
	BaseHandler
	reportService *appreport.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *appreport.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers the report route
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/missions/:id/report", h.Get)
}

// Get assembles the full report data for one mission
func (h *ReportHandler) Get(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	report, err := h.reportService.Assemble(c.Request.Context(), missionID, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}
