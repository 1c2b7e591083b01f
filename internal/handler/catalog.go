package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"mangal/internal/model"

	"github.com/gin-gonic/gin"
)

// CatalogService is the catalog behaviour the handlers depend on
type CatalogService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, idOrSlug string) (*model.Category, error)
	CreateCategory(ctx context.Context, in model.CategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, in model.CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, idOrSlug string) (*model.Product, error)
	CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, in model.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// CatalogHandler handles category and product HTTP requests
type CatalogHandler struct {
	catalog     CatalogService
	inStockOnly bool
}

// NewCatalogHandler creates a new catalog handler. inStockOnly sets the
// default of the inStock filter on product listings.
func NewCatalogHandler(catalog CatalogService, inStockOnly bool) *CatalogHandler {
	return &CatalogHandler{
		catalog:     catalog,
		inStockOnly: inStockOnly,
	}
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, msgCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/v1/categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalog.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /api/v1/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var in model.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.catalog.CreateCategory(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, msgCategoryNotFound)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/v1/categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var in model.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.catalog.UpdateCategory(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, msgCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalog.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, msgCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListProducts handles GET /api/v1/products?categoryId=&category=&featured=&inStock=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := model.ProductFilter{
		CategoryID:   c.Query("categoryId"),
		CategorySlug: c.Query("category"),
	}

	featured, err := boolQuery(c, "featured")
	if err != nil {
		badRequest(c, err)
		return
	}
	filter.Featured = featured

	switch c.Query("inStock") {
	case "all":
	case "":
		if h.inStockOnly {
			inStock := true
			filter.InStock = &inStock
		}
	default:
		inStock, err := boolQuery(c, "inStock")
		if err != nil {
			badRequest(c, err)
			return
		}
		filter.InStock = inStock
	}

	products, err := h.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/v1/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var in model.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	product, err := h.catalog.CreateProduct(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/v1/products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var in model.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	product, err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// boolQuery parses an optional boolean query parameter
func boolQuery(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", key)
	}
	return &v, nil
}
