package handler

import (
	appmission "github.com/autoexpert/backend/internal/application/mission"
	"github.com/autoexpert/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// SummaryHandler exposes the financial summary of a mission
type SummaryHandler struct {
	BaseHandler
	summaryService *appmission.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService *appmission.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// RegisterRoutes registers the summary route
func (h *SummaryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/missions/:id/summary", h.Get)
}

// Get returns the recomputed financial summary
func (h *SummaryHandler) Get(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	summary, err := h.summaryService.Get(c.Request.Context(), missionID, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}
