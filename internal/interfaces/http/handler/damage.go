package handler

import (
	appmission "github.com/autoexpert/backend/internal/application/mission"
	"github.com/autoexpert/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// DamageHandler handles the damage ledger endpoints of a mission
type DamageHandler struct {
	BaseHandler
	damageService *appmission.DamageService
}

// NewDamageHandler creates a new DamageHandler
func NewDamageHandler(damageService *appmission.DamageService) *DamageHandler {
	return &DamageHandler{damageService: damageService}
}

// RegisterRoutes registers damage ledger routes
func (h *DamageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	damages := rg.Group("/missions/:id/damages")
	damages.GET("", h.List)
	damages.POST("", h.Add)
	damages.PUT("/:lineId", h.Update)
	damages.DELETE("/:lineId", h.Delete)
}

// List returns the mission's damage lines with recomputed totals
func (h *DamageHandler) List(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	ledger, err := h.damageService.List(c.Request.Context(), missionID, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ledger)
}

// Add appends a damage line to the mission
func (h *DamageHandler) Add(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	var req appmission.DamageLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	line, err := h.damageService.Add(c.Request.Context(), missionID, req, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, line)
}

// Update replaces a damage line's attributes
func (h *DamageHandler) Update(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}
	lineID, err := parseIDParam(c, "lineId")
	if err != nil {
		h.BadRequest(c, "Invalid damage line ID")
		return
	}

	var req appmission.DamageLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	line, err := h.damageService.Update(c.Request.Context(), missionID, lineID, req, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, line)
}

// Delete removes a damage line
func (h *DamageHandler) Delete(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}
	lineID, err := parseIDParam(c, "lineId")
	if err != nil {
		h.BadRequest(c, "Invalid damage line ID")
		return
	}

	if err := h.damageService.Delete(c.Request.Context(), missionID, lineID, middleware.GetActor(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
