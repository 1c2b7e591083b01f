package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"mangal/internal/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ImageStore is the persistence for uploaded images
type ImageStore interface {
	CreateImage(ctx context.Context, img *model.Image) error
	GetImage(ctx context.Context, id string) (*model.Image, error)
}

// Upload validation messages
const (
	msgFileRequired  = "Файл не найден"
	msgFileTooLarge  = "Размер файла не должен превышать %dMB"
	msgFileNotImage  = "Файл должен быть изображением"
	imageURLTemplate = "/api/v1/images/%s"
)

// ImageService stores uploads inline as data URLs
type ImageService struct {
	store    ImageStore
	maxBytes int64
}

// NewImageService creates a new image service
func NewImageService(store ImageStore, maxBytes int64) *ImageService {
	return &ImageService{store: store, maxBytes: maxBytes}
}

// Upload validates and stores an image. The MIME type is sniffed from the
// content; the client-supplied name is kept for display only.
func (s *ImageService) Upload(ctx context.Context, filename string, data []byte) (*model.UploadResponse, error) {
	if len(data) == 0 {
		return nil, invalid(msgFileRequired)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, invalid(fmt.Sprintf(msgFileTooLarge, s.maxBytes/(1024*1024)))
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, invalid(msgFileNotImage)
	}
	mimeType := strings.SplitN(mime.String(), ";", 2)[0]

	img := &model.Image{
		ID:       uuid.NewString(),
		Filename: strings.TrimSpace(filename),
		MimeType: mimeType,
		Size:     int64(len(data)),
		Data:     "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}
	if img.Filename == "" {
		img.Filename = img.ID + mime.Extension()
	}

	if err := s.store.CreateImage(ctx, img); err != nil {
		return nil, err
	}

	return &model.UploadResponse{
		Success:  true,
		URL:      fmt.Sprintf(imageURLTemplate, img.ID),
		Filename: img.Filename,
		ID:       img.ID,
	}, nil
}

// Get returns the stored MIME type and the decoded image bytes
func (s *ImageService) Get(ctx context.Context, id string) (string, []byte, error) {
	img, err := s.store.GetImage(ctx, id)
	if err != nil {
		return "", nil, err
	}

	payload := img.Data
	if i := strings.Index(payload, ","); i >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image %s: %w", id, err)
	}
	return img.MimeType, data, nil
}
