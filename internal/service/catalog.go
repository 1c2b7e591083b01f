package service

import (
	"context"
	"errors"
	"strings"

	"mangal/internal/model"
	"mangal/internal/utils"

	"github.com/google/uuid"
)

// CatalogStore is the persistence the catalog needs
type CatalogStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, idOrSlug string) (*model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	UpdateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id string) error
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, idOrSlug string) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// Catalog validation messages
const (
	msgCategoryNameRequired = "Название категории обязательно"
	msgSlugRequired         = "URL (slug) обязателен"
	msgCategorySlugTaken    = "Категория с таким URL уже существует"
	msgCategoryNotEmpty     = "Нельзя удалить категорию, содержащую товары"
	msgProductTitleRequired = "Название товара обязательно"
	msgCategoryRequired     = "Категория обязательна"
	msgPricePositive        = "Цена должна быть положительным числом"
	msgImagesRequired       = "Добавьте хотя бы одно изображение"
	msgImagesInvalid        = "Некорректный формат изображений"
	msgOldPriceTooLow       = "Старая цена должна быть больше текущей цены"
	msgBadgeInvalid         = "Недопустимый бейдж товара"
	msgSpecsInvalid         = "Некорректный формат характеристик"
	msgCategoryMissing      = "Выбранная категория не существует"
	msgProductSlugTaken     = "Товар с таким URL уже существует"
)

// CatalogService manages categories and products
type CatalogService struct {
	store CatalogStore
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// ListCategories returns all categories with product counts
func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}

// GetCategory finds a category by id or slug
func (s *CatalogService) GetCategory(ctx context.Context, idOrSlug string) (*model.Category, error) {
	return s.store.GetCategory(ctx, idOrSlug)
}

// CreateCategory validates and stores a new category
func (s *CatalogService) CreateCategory(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	c := &model.Category{ID: uuid.NewString()}
	if err := applyCategoryInput(c, in); err != nil {
		return nil, err
	}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return nil, categoryError(err)
	}
	return c, nil
}

// UpdateCategory validates and overwrites an existing category
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, in model.CategoryInput) (*model.Category, error) {
	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyCategoryInput(c, in); err != nil {
		return nil, err
	}
	if err := s.store.UpdateCategory(ctx, c); err != nil {
		return nil, categoryError(err)
	}
	return c, nil
}

// DeleteCategory removes an empty category
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	if c.ProductCount > 0 {
		return invalid(msgCategoryNotEmpty)
	}
	if err := s.store.DeleteCategory(ctx, c.ID); err != nil {
		if errors.Is(err, model.ErrReference) {
			return invalid(msgCategoryNotEmpty)
		}
		return err
	}
	return nil
}

// ListProducts returns products matching the filter, newest first
func (s *CatalogService) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return s.store.ListProducts(ctx, filter)
}

// GetProduct finds a product by id or slug
func (s *CatalogService) GetProduct(ctx context.Context, idOrSlug string) (*model.Product, error) {
	return s.store.GetProduct(ctx, idOrSlug)
}

// CreateProduct validates and stores a new product
func (s *CatalogService) CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	p := &model.Product{ID: uuid.NewString()}
	if err := s.applyProductInput(ctx, p, in); err != nil {
		return nil, err
	}
	if err := s.store.CreateProduct(ctx, p); err != nil {
		return nil, productError(err)
	}
	return p, nil
}

// UpdateProduct validates and overwrites an existing product
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in model.ProductInput) (*model.Product, error) {
	existing, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p := &model.Product{ID: existing.ID, CreatedAt: existing.CreatedAt}
	if err := s.applyProductInput(ctx, p, in); err != nil {
		return nil, err
	}
	if err := s.store.UpdateProduct(ctx, p); err != nil {
		return nil, productError(err)
	}
	return p, nil
}

// DeleteProduct removes a product and the order lines that reference it
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.store.DeleteProduct(ctx, id)
}

func applyCategoryInput(c *model.Category, in model.CategoryInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return invalid(msgCategoryNameRequired)
	}
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = utils.Slugify(name)
	}
	if slug == "" {
		return invalid(msgSlugRequired)
	}

	c.Name = name
	c.Slug = slug
	c.Description = trimmedPtr(in.Description)
	c.Image = trimmedPtr(in.Image)
	return nil
}

func (s *CatalogService) applyProductInput(ctx context.Context, p *model.Product, in model.ProductInput) error {
	var errs collector

	title := strings.TrimSpace(in.Title)
	errs.check(title != "", msgProductTitleRequired)

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = utils.Slugify(title)
	}
	errs.check(title == "" || slug != "", msgSlugRequired)

	categoryID := strings.TrimSpace(in.CategoryID)
	errs.check(categoryID != "", msgCategoryRequired)
	errs.check(in.Price > 0, msgPricePositive)

	images := model.JSONArray{}
	if _, err := utils.DecodeJSONField(in.Images, &images); err != nil {
		errs.add(msgImagesInvalid)
	} else {
		errs.check(len(images) > 0, msgImagesRequired)
	}

	errs.check(in.OldPrice == nil || *in.OldPrice > in.Price, msgOldPriceTooLow)

	badge := trimmedPtr(in.Badge)
	if badge != nil {
		switch *badge {
		case model.BadgeNew, model.BadgeHit, model.BadgeSale:
		default:
			errs.add(msgBadgeInvalid)
		}
	}

	specs := model.JSONMap{}
	if _, err := utils.DecodeJSONField(in.Specifications, &specs); err != nil {
		errs.add(msgSpecsInvalid)
	}

	if err := errs.err(); err != nil {
		return err
	}

	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return invalid(msgCategoryMissing)
		}
		return err
	}

	p.Title = title
	p.Slug = slug
	p.Description = trimmedPtr(in.Description)
	p.Images = images
	p.Price = in.Price
	p.OldPrice = in.OldPrice
	p.Badge = badge
	p.Specifications = specs
	p.CategoryID = category.ID
	p.Category = category
	p.InStock = in.InStock == nil || *in.InStock
	p.Featured = in.Featured != nil && *in.Featured
	return nil
}

func categoryError(err error) error {
	if errors.Is(err, model.ErrConflict) {
		return invalid(msgCategorySlugTaken)
	}
	return err
}

func productError(err error) error {
	switch {
	case errors.Is(err, model.ErrConflict):
		return invalid(msgProductSlugTaken)
	case errors.Is(err, model.ErrReference):
		return invalid(msgCategoryMissing)
	}
	return err
}
