package handler

import (
	appmission "github.com/autoexpert/backend/internal/application/mission"
	"github.com/autoexpert/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// LaborHandler handles the labor ledger endpoints of a mission
type LaborHandler struct {
	BaseHandler
	laborService *appmission.LaborService
}

// NewLaborHandler creates a new LaborHandler
func NewLaborHandler(laborService *appmission.LaborService) *LaborHandler {
	return &LaborHandler{laborService: laborService}
}

// RegisterRoutes registers labor ledger routes
func (h *LaborHandler) RegisterRoutes(rg *gin.RouterGroup) {
	labor := rg.Group("/missions/:id/labor")
	labor.GET("", h.Get)
	labor.PUT("", h.Save)
}

// Get returns the full labor breakdown with totals
func (h *LaborHandler) Get(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	breakdown, err := h.laborService.Get(c.Request.Context(), missionID, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, breakdown)
}

// Save replaces the mission's labor breakdown. Categories absent from the
// payload are persisted as zero.
func (h *LaborHandler) Save(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	var req appmission.SaveLaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	breakdown, err := h.laborService.Save(c.Request.Context(), missionID, req, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, breakdown)
}
