package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"mangal/internal/model"
)

func seededCatalog(t *testing.T) (*CatalogService, *memStore) {
	t.Helper()
	store := newMemStore()
	store.categories["cat-1"] = &model.Category{ID: "cat-1", Name: "Мангалы", Slug: "mangaly"}
	return NewCatalogService(store), store
}

func validProduct() model.ProductInput {
	return model.ProductInput{
		Title:      "Мангал Классик",
		Images:     json.RawMessage(`["/img/1.jpg"]`),
		Price:      2500000,
		CategoryID: "cat-1",
	}
}

func validationMessages(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	return verr.Messages
}

func TestCreateCategory(t *testing.T) {
	svc, _ := seededCatalog(t)
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, model.CategoryInput{Name: "  Грили ", Description: strPtr("  ")})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}
	if c.Name != "Грили" || c.Slug != "grili" {
		t.Errorf("category = %q/%q, want Грили/grili", c.Name, c.Slug)
	}
	if c.Description != nil {
		t.Errorf("blank description stored as %q", *c.Description)
	}
	if c.ID == "" {
		t.Error("ID not assigned")
	}

	_, err = svc.CreateCategory(ctx, model.CategoryInput{Name: "Другие", Slug: "mangaly"})
	if msgs := validationMessages(t, err); msgs[0] != msgCategorySlugTaken {
		t.Errorf("duplicate slug messages = %v", msgs)
	}

	_, err = svc.CreateCategory(ctx, model.CategoryInput{Name: "   "})
	if msgs := validationMessages(t, err); msgs[0] != msgCategoryNameRequired {
		t.Errorf("empty name messages = %v", msgs)
	}

	_, err = svc.CreateCategory(ctx, model.CategoryInput{Name: "!!!"})
	if msgs := validationMessages(t, err); msgs[0] != msgSlugRequired {
		t.Errorf("unsluggable name messages = %v", msgs)
	}
}

func TestUpdateCategory_NotFound(t *testing.T) {
	svc, _ := seededCatalog(t)
	_, err := svc.UpdateCategory(context.Background(), "missing", model.CategoryInput{Name: "X"})
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteCategory(t *testing.T) {
	svc, store := seededCatalog(t)
	ctx := context.Background()

	store.categories["cat-1"].ProductCount = 2
	err := svc.DeleteCategory(ctx, "mangaly")
	if msgs := validationMessages(t, err); msgs[0] != msgCategoryNotEmpty {
		t.Errorf("non-empty category messages = %v", msgs)
	}

	store.categories["cat-1"].ProductCount = 0
	if err := svc.DeleteCategory(ctx, "mangaly"); err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}
	if len(store.categories) != 0 {
		t.Error("category still stored")
	}

	if err := svc.DeleteCategory(ctx, "mangaly"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestCreateProduct(t *testing.T) {
	svc, _ := seededCatalog(t)

	p, err := svc.CreateProduct(context.Background(), validProduct())
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}
	if p.Slug != "mangal-klassik" {
		t.Errorf("Slug = %q", p.Slug)
	}
	if !p.InStock || p.Featured {
		t.Errorf("defaults inStock=%v featured=%v, want true/false", p.InStock, p.Featured)
	}
	if p.Category == nil || p.Category.Slug != "mangaly" {
		t.Errorf("Category = %+v", p.Category)
	}
	if len(p.Specifications) != 0 {
		t.Errorf("Specifications = %v, want empty", p.Specifications)
	}
}

func TestCreateProduct_StringEncodedJSON(t *testing.T) {
	svc, _ := seededCatalog(t)

	in := validProduct()
	in.Images = json.RawMessage(`"[\"/a.jpg\", \"/b.jpg\",]"`)
	in.Specifications = json.RawMessage(`"{\"Сталь\": \"4 мм\"}"`)

	p, err := svc.CreateProduct(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}
	if len(p.Images) != 2 || p.Images[1] != "/b.jpg" {
		t.Errorf("Images = %v", p.Images)
	}
	if p.Specifications["Сталь"] != "4 мм" {
		t.Errorf("Specifications = %v", p.Specifications)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ProductInput)
		want   []string
	}{
		{
			name: "everything missing",
			mutate: func(in *model.ProductInput) {
				*in = model.ProductInput{}
			},
			want: []string{msgProductTitleRequired, msgCategoryRequired, msgPricePositive, msgImagesRequired},
		},
		{
			name:   "old price not above price",
			mutate: func(in *model.ProductInput) { in.OldPrice = int64Ptr(in.Price) },
			want:   []string{msgOldPriceTooLow},
		},
		{
			name:   "unknown badge",
			mutate: func(in *model.ProductInput) { in.Badge = strPtr("top") },
			want:   []string{msgBadgeInvalid},
		},
		{
			name:   "broken images",
			mutate: func(in *model.ProductInput) { in.Images = json.RawMessage(`"not json"`) },
			want:   []string{msgImagesInvalid},
		},
		{
			name:   "specifications of wrong shape",
			mutate: func(in *model.ProductInput) { in.Specifications = json.RawMessage(`[1, 2]`) },
			want:   []string{msgSpecsInvalid},
		},
		{
			name:   "unknown category",
			mutate: func(in *model.ProductInput) { in.CategoryID = "nope" },
			want:   []string{msgCategoryMissing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := seededCatalog(t)
			in := validProduct()
			tt.mutate(&in)

			_, err := svc.CreateProduct(context.Background(), in)
			msgs := validationMessages(t, err)
			if strings.Join(msgs, "|") != strings.Join(tt.want, "|") {
				t.Errorf("messages = %v, want %v", msgs, tt.want)
			}
		})
	}
}

func TestCreateProduct_DuplicateSlug(t *testing.T) {
	svc, _ := seededCatalog(t)
	ctx := context.Background()

	if _, err := svc.CreateProduct(ctx, validProduct()); err != nil {
		t.Fatalf("first CreateProduct() error = %v", err)
	}
	_, err := svc.CreateProduct(ctx, validProduct())
	if msgs := validationMessages(t, err); msgs[0] != msgProductSlugTaken {
		t.Errorf("messages = %v", msgs)
	}
}

func TestUpdateProduct_KeepsIdentity(t *testing.T) {
	svc, _ := seededCatalog(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, validProduct())
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	in := validProduct()
	in.Price = 2700000
	in.InStock = boolPtr(false)
	updated, err := svc.UpdateProduct(ctx, created.Slug, in)
	if err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("ID changed: %q -> %q", created.ID, updated.ID)
	}
	if updated.Price != 2700000 || updated.InStock {
		t.Errorf("updated = price %d inStock %v", updated.Price, updated.InStock)
	}
}
