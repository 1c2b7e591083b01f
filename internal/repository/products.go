package repository

import (
	"context"
	"fmt"

	"mangal/internal/model"
)

const productSelect = `
	SELECT
		p.id, p.title, p.slug, p.description, p.images, p.price, p.old_price, p.badge,
		p.specifications, p.category_id, p.in_stock, p.featured, p.created_at, p.updated_at,
		c.id AS "category.id", c.name AS "category.name", c.slug AS "category.slug",
		c.description AS "category.description", c.image AS "category.image",
		c.created_at AS "category.created_at", c.updated_at AS "category.updated_at"
	FROM products p
	JOIN categories c ON c.id = p.category_id`

// ListProducts returns products matching the filter, newest first
func (r *PostgresRepository) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	var where whereBuilder
	if filter.CategoryID != "" {
		where.add("p.category_id = $%d", filter.CategoryID)
	}
	if filter.CategorySlug != "" {
		where.add("c.slug = $%d", filter.CategorySlug)
	}
	if filter.Featured != nil {
		where.add("p.featured = $%d", *filter.Featured)
	}
	if filter.InStock != nil {
		where.add("p.in_stock = $%d", *filter.InStock)
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY p.created_at DESC", productSelect, where.sql())

	products := []model.Product{}
	if err := r.db.SelectContext(ctx, &products, query, where.args...); err != nil {
		return nil, wrap("list products", err)
	}
	return products, nil
}

// GetProduct finds a product by id or slug
func (r *PostgresRepository) GetProduct(ctx context.Context, idOrSlug string) (*model.Product, error) {
	var product model.Product
	if err := r.db.GetContext(ctx, &product, productSelect+` WHERE p.id = $1 OR p.slug = $1 ORDER BY (p.id = $1) DESC LIMIT 1`, idOrSlug); err != nil {
		return nil, wrap("get product", err)
	}
	return &product, nil
}

// CreateProduct inserts a product and reloads it with its category
func (r *PostgresRepository) CreateProduct(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (id, title, slug, description, images, price, old_price, badge,
			specifications, category_id, in_stock, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Slug, p.Description, p.Images, p.Price, p.OldPrice, p.Badge,
		p.Specifications, p.CategoryID, p.InStock, p.Featured,
	)
	if err != nil {
		return wrap("create product", err)
	}
	return r.reloadProduct(ctx, p)
}

// UpdateProduct overwrites a product and reloads it with its category
func (r *PostgresRepository) UpdateProduct(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products
		SET title = $2, slug = $3, description = $4, images = $5, price = $6, old_price = $7,
			badge = $8, specifications = $9, category_id = $10, in_stock = $11, featured = $12,
			updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Slug, p.Description, p.Images, p.Price, p.OldPrice, p.Badge,
		p.Specifications, p.CategoryID, p.InStock, p.Featured,
	)
	if err != nil {
		return wrap("update product", err)
	}
	if err := affected(res); err != nil {
		return err
	}
	return r.reloadProduct(ctx, p)
}

// DeleteProduct removes a product together with the order lines that
// reference it
func (r *PostgresRepository) DeleteProduct(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE product_id = $1`, id); err != nil {
		return wrap("delete order items", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return wrap("delete product", err)
	}
	if err := affected(res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *PostgresRepository) reloadProduct(ctx context.Context, p *model.Product) error {
	fresh, err := r.GetProduct(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *fresh
	return nil
}
