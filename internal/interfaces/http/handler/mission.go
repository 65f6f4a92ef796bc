package handler

import (
	appmission "github.com/autoexpert/backend/internal/application/mission"
	"github.com/autoexpert/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// MissionHandler handles mission lifecycle endpoints
type MissionHandler struct {
	BaseHandler
	missionService *appmission.Service
}

// NewMissionHandler creates a new MissionHandler
func NewMissionHandler(missionService *appmission.Service) *MissionHandler {
	return &MissionHandler{missionService: missionService}
}

// SetStatusRequest carries an explicit status-change request
type SetStatusRequest struct {
	Status string `json:"status" binding:"required,mission_status"`
}

// RegisterRoutes registers mission routes
func (h *MissionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	missions := rg.Group("/missions")
	missions.POST("", middleware.RequireManager(), h.Create)
	missions.GET("", h.List)
	missions.GET("/:id", h.Get)
	missions.PATCH("/:id", middleware.RequireManager(), h.Update)
	missions.PUT("/:id/status", h.SetStatus)
	missions.DELETE("/:id", middleware.RequireManager(), h.Delete)
}

// Create opens a new mission
func (h *MissionHandler) Create(c *gin.Context) {
	var req appmission.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.missionService.Create(c.Request.Context(), req, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns missions matching the query, scoped to the caller
func (h *MissionHandler) List(c *gin.Context) {
	var query appmission.ListMissionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.missionService.List(c.Request.Context(), query, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize, result.TotalPages)
}

// Get returns one mission
func (h *MissionHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	result, err := h.missionService.Get(c.Request.Context(), id, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Update applies a typed patch to a mission
func (h *MissionHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	var patch appmission.UpdateMissionRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.missionService.Update(c.Request.Context(), id, patch, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// SetStatus applies an explicit status transition
func (h *MissionHandler) SetStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.missionService.SetStatus(c.Request.Context(), id, req.Status, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a mission together with its ledgers and evidence
func (h *MissionHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	if err := h.missionService.Delete(c.Request.Context(), id, middleware.GetActor(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
