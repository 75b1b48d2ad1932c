package handlers

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"blog_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// @Summary      Serve a stored upload
// @Tags         uploads
// @Produce      octet-stream
// @Param        filename  path  string  true  "Stored file name"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /uploads/{filename} [get]
func (h *Handler) serveUpload(c *gin.Context) {
	name := c.Param("filename")

	f, err := h.files.Open(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to open file", "upload_open_failed", err, "name", name)
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, -1, contentType, f, nil)
}
