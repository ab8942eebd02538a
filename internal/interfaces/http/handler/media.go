package handler

import (
	"github.com/gin-gonic/gin"
	mediaapp "github.com/lumiera/backend/internal/application/media"
)

// MediaHandler handles admin media file endpoints
type MediaHandler struct {
	BaseHandler
	mediaService *mediaapp.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService *mediaapp.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// Delete handles DELETE /admin/files. The file key is passed as a query
// parameter because object keys contain slashes.
func (h *MediaHandler) Delete(c *gin.Context) {
	var req mediaapp.DeleteFileRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "File key is required")
		return
	}

	if err := h.mediaService.DeleteFile(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
