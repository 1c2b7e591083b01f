package repository

import (
	"context"

	"mangal/internal/model"
)

const categorySelect = `
	SELECT c.id, c.name, c.slug, c.description, c.image, c.created_at, c.updated_at,
		(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id) AS product_count
	FROM categories c`

// ListCategories returns all categories ordered by name
func (r *PostgresRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	if err := r.db.SelectContext(ctx, &categories, categorySelect+` ORDER BY c.name ASC`); err != nil {
		return nil, wrap("list categories", err)
	}
	return categories, nil
}

// GetCategory finds a category by id or slug
func (r *PostgresRepository) GetCategory(ctx context.Context, idOrSlug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.GetContext(ctx, &category, categorySelect+` WHERE c.id = $1 OR c.slug = $1 ORDER BY (c.id = $1) DESC LIMIT 1`, idOrSlug); err != nil {
		return nil, wrap("get category", err)
	}
	return &category, nil
}

// CreateCategory inserts a category
func (r *PostgresRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, description, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	row := r.db.QueryRowxContext(ctx, query, c.ID, c.Name, c.Slug, c.Description, c.Image)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return wrap("create category", err)
	}
	return nil
}

// UpdateCategory overwrites the editable fields of a category
func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *model.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, image = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	row := r.db.QueryRowxContext(ctx, query, c.ID, c.Name, c.Slug, c.Description, c.Image)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return wrap("update category", err)
	}
	return nil
}

// DeleteCategory removes a category. Categories that still own products are
// rejected by the foreign key.
func (r *PostgresRepository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return wrap("delete category", err)
	}
	return affected(res)
}
