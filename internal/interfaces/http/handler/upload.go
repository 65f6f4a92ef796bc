package handler

import (
	"errors"
	"fmt"

	"github.com/autoexpert/backend/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
)

// UploadHandler receives evidence file bytes and hands back the stored
// path, which the evidence endpoints then record as attachment metadata
type UploadHandler struct {
	BaseHandler
	store *storage.LocalStore
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// RegisterRoutes registers the upload route
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.Upload)
}

// Upload stores one multipart file under the "file" field
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A multipart 'file' field is required")
		return
	}
	if fileHeader.Size > h.store.MaxSize() {
		h.BadRequest(c, fmt.Sprintf("File exceeds the maximum allowed size of %d bytes", h.store.MaxSize()))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Unable to read the uploaded file")
		return
	}
	defer func() { _ = src.Close() }()

	stored, err := h.store.Save(fileHeader.Filename, src)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			h.BadRequest(c, fmt.Sprintf("File exceeds the maximum allowed size of %d bytes", h.store.MaxSize()))
			return
		}
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, stored)
}
