package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"mangal/internal/model"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestImageUpload_RoundTrip(t *testing.T) {
	store := newMemStore()
	svc := NewImageService(store, 5*1024*1024)
	ctx := context.Background()

	resp, err := svc.Upload(ctx, "photo.png", pngPixel)
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if !resp.Success || resp.URL != "/api/v1/images/"+resp.ID || resp.Filename != "photo.png" {
		t.Errorf("Upload() = %+v", resp)
	}

	stored := store.images[resp.ID]
	if !strings.HasPrefix(stored.Data, "data:image/png;base64,") {
		t.Errorf("Data = %q", stored.Data[:30])
	}
	if stored.Size != int64(len(pngPixel)) {
		t.Errorf("Size = %d", stored.Size)
	}

	mime, data, err := svc.Get(ctx, resp.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if mime != "image/png" {
		t.Errorf("mime = %q", mime)
	}
	if !bytes.Equal(data, pngPixel) {
		t.Error("decoded bytes differ from the upload")
	}
}

func TestImageUpload_Rejections(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		max  int64
		want string
	}{
		{"empty", nil, 1024, msgFileRequired},
		{"too large", pngPixel, 10, "Размер файла не должен превышать 0MB"},
		{"not an image", []byte("hello, this is plain text"), 1024, msgFileNotImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewImageService(newMemStore(), tt.max)
			_, err := svc.Upload(context.Background(), "f", tt.data)
			if msgs := validationMessages(t, err); msgs[0] != tt.want {
				t.Errorf("messages = %v, want %q", msgs, tt.want)
			}
		})
	}
}

func TestImageUpload_SizeMessageInMegabytes(t *testing.T) {
	svc := NewImageService(newMemStore(), 5*1024*1024)
	big := append(append([]byte{}, pngPixel...), make([]byte, 5*1024*1024)...)

	_, err := svc.Upload(context.Background(), "big.png", big)
	if msgs := validationMessages(t, err); msgs[0] != "Размер файла не должен превышать 5MB" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestImageUpload_DefaultFilename(t *testing.T) {
	svc := NewImageService(newMemStore(), 1024)
	resp, err := svc.Upload(context.Background(), "  ", pngPixel)
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if resp.Filename != resp.ID+".png" {
		t.Errorf("Filename = %q", resp.Filename)
	}
}

func TestImageGet_NotFound(t *testing.T) {
	svc := NewImageService(newMemStore(), 1024)
	if _, _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
