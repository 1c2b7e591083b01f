package repository

import (
	"context"

	"mangal/internal/model"
)

// CreateImage stores an uploaded image
func (r *PostgresRepository) CreateImage(ctx context.Context, img *model.Image) error {
	query := `
		INSERT INTO images (id, filename, mime_type, size, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	row := r.db.QueryRowxContext(ctx, query, img.ID, img.Filename, img.MimeType, img.Size, img.Data)
	if err := row.Scan(&img.CreatedAt); err != nil {
		return wrap("create image", err)
	}
	return nil
}

// GetImage loads an image with its data URL
func (r *PostgresRepository) GetImage(ctx context.Context, id string) (*model.Image, error) {
	var img model.Image
	query := `SELECT id, filename, mime_type, size, data, created_at FROM images WHERE id = $1`
	if err := r.db.GetContext(ctx, &img, query, id); err != nil {
		return nil, wrap("get image", err)
	}
	return &img, nil
}
