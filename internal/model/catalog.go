package model

import (
	"encoding/json"
	"time"
)

// Product badges
const (
	BadgeNew  = "new"
	BadgeHit  = "hit"
	BadgeSale = "sale"
)

// Category groups products in the catalog
type Category struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	Description  *string   `json:"description" db:"description"`
	Image        *string   `json:"image" db:"image"`
	ProductCount int       `json:"productCount" db:"product_count"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Product is a catalog item. Prices are in kopecks.
type Product struct {
	ID             string    `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Slug           string    `json:"slug" db:"slug"`
	Description    *string   `json:"description" db:"description"`
	Images         JSONArray `json:"images" db:"images"`
	Price          int64     `json:"price" db:"price"`
	OldPrice       *int64    `json:"oldPrice" db:"old_price"`
	Badge          *string   `json:"badge" db:"badge"`
	Specifications JSONMap   `json:"specifications" db:"specifications"`
	CategoryID     string    `json:"categoryId" db:"category_id"`
	Category       *Category `json:"category,omitempty" db:"category"`
	InStock        bool      `json:"inStock" db:"in_stock"`
	Featured       bool      `json:"featured" db:"featured"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// CategoryInput is the create/update payload for a category
type CategoryInput struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ProductInput is the create/update payload for a product.
// Images and Specifications may be native JSON or JSON-encoded strings.
type ProductInput struct {
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	Description    *string         `json:"description"`
	Images         json.RawMessage `json:"images"`
	Price          int64           `json:"price"`
	OldPrice       *int64          `json:"oldPrice"`
	Badge          *string         `json:"badge"`
	Specifications json.RawMessage `json:"specifications"`
	CategoryID     string          `json:"categoryId"`
	InStock        *bool           `json:"inStock"`
	Featured       *bool           `json:"featured"`
}

// ProductFilter holds equality filters for product listing
type ProductFilter struct {
	CategoryID   string
	CategorySlug string
	Featured     *bool
	InStock      *bool
}
