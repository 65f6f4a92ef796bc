package handler

import (
	appmission "github.com/autoexpert/backend/internal/application/mission"
	"github.com/autoexpert/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// EvidenceHandler handles photo and document evidence endpoints
type EvidenceHandler struct {
	BaseHandler
	evidenceService *appmission.EvidenceService
}

// NewEvidenceHandler creates a new EvidenceHandler
func NewEvidenceHandler(evidenceService *appmission.EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{evidenceService: evidenceService}
}

// AddPhotosRequest carries a batch of photo attachments
type AddPhotosRequest struct {
	Photos []appmission.AttachmentRequest `json:"photos" binding:"required,min=1,dive"`
}

// RegisterRoutes registers evidence routes
func (h *EvidenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	missions := rg.Group("/missions/:id")
	missions.POST("/photos", h.AddPhotos)
	missions.POST("/documents", h.AddDocument)
	missions.GET("/attachments", h.List)
	missions.DELETE("/attachments/:attachmentId", h.Delete)
}

// AddPhotos records a batch of photos against the mission
func (h *EvidenceHandler) AddPhotos(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	var req AddPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	photos, err := h.evidenceService.AddPhotos(c.Request.Context(), missionID, req.Photos, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, photos)
}

// AddDocument records a supporting document against the mission
func (h *EvidenceHandler) AddDocument(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	var req appmission.AttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	doc, err := h.evidenceService.AddDocument(c.Request.Context(), missionID, req, middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, doc)
}

// List returns the mission's attachments, optionally narrowed by kind
func (h *EvidenceHandler) List(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}

	attachments, err := h.evidenceService.List(c.Request.Context(), missionID, c.Query("kind"), middleware.GetActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, attachments)
}

// Delete removes one attachment record
func (h *EvidenceHandler) Delete(c *gin.Context) {
	missionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mission ID")
		return
	}
	attachmentID, err := parseIDParam(c, "attachmentId")
	if err != nil {
		h.BadRequest(c, "Invalid attachment ID")
		return
	}

	if err := h.evidenceService.Delete(c.Request.Context(), missionID, attachmentID, middleware.GetActor(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
