package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"mangal/internal/model"

	"github.com/gin-gonic/gin"
)

// ImageService is the image behaviour the handlers depend on
type ImageService interface {
	Upload(ctx context.Context, filename string, data []byte) (*model.UploadResponse, error)
	Get(ctx context.Context, id string) (string, []byte, error)
}

// Upload messages that are decided before the service sees the file
const (
	msgFileMissing  = "Файл не найден"
	msgFileTooLarge = "Размер файла не должен превышать %dMB"
)

// ImageHandler handles image upload and download
type ImageHandler struct {
	images   ImageService
	maxBytes int64
}

// NewImageHandler creates a new image handler
func NewImageHandler(images ImageService, maxBytes int64) *ImageHandler {
	return &ImageHandler{images: images, maxBytes: maxBytes}
}

// Upload handles POST /api/v1/upload (multipart field "file")
func (h *ImageHandler) Upload(c *gin.Context) {
	// multipart framing gets a megabyte on top of the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1<<20)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(msgFileTooLarge, h.maxBytes/(1<<20))})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFileMissing})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err, msgImageNotFound)
		return
	}
	defer file.Close()

	// read at most one byte past the limit
	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		respondError(c, err, msgImageNotFound)
		return
	}

	resp, err := h.images.Upload(c.Request.Context(), header.Filename, data)
	if err != nil {
		respondError(c, err, msgImageNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/images/:id
func (h *ImageHandler) Get(c *gin.Context) {
	mimeType, data, err := h.images.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgImageNotFound)
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000")
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, mimeType, data)
}
