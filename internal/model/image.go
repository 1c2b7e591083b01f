package model

import "time"

// Image is an uploaded file stored inline as a data URL
type Image struct {
	ID        string    `json:"id" db:"id"`
	Filename  string    `json:"filename" db:"filename"`
	MimeType  string    `json:"mimeType" db:"mime_type"`
	Size      int64     `json:"size" db:"size"`
	Data      string    `json:"-" db:"data"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// UploadResponse is returned after a successful upload
type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	ID       string `json:"id"`
}
