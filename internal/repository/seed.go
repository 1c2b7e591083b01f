package repository

import (
	"context"
	"fmt"

	"mangal/internal/configurator"
	"mangal/internal/model"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type seedProduct struct {
	title, slug, description string
	images                   model.JSONArray
	price                    int64
	oldPrice                 *int64
	badge                    string
	specs                    model.JSONMap
	featured                 bool
	category                 int
}

type seedProject struct {
	title, image, link string
	price              int64
	answers            configurator.Answers
}

var seedCategories = []model.CategoryInput{
	{Name: "Мангалы", Slug: "mangaly", Description: strPtr("Различные виды мангалов для приготовления шашлыка"), Image: strPtr("/images/categories/mangaly.jpg")},
	{Name: "Грили", Slug: "grili", Description: strPtr("Профессиональные грили для барбекю"), Image: strPtr("/images/categories/grili.jpg")},
	{Name: "Аксессуары", Slug: "aksessuary", Description: strPtr("Аксессуары для мангалов и грилей"), Image: strPtr("/images/categories/aksessuary.jpg")},
}

var seedProducts = []seedProduct{
	{
		title:       "Мангал Классик",
		slug:        "mangal-klassik",
		description: "Классический стальной мангал для дачи",
		images:      model.JSONArray{"/images/products/mangal-klassik-1.jpg", "/images/products/mangal-klassik-2.jpg"},
		price:       350000,
		oldPrice:    int64Ptr(400000),
		badge:       model.BadgeHit,
		specs:       model.JSONMap{"material": "Сталь 3мм", "size": "60x30x15 см", "weight": "8 кг", "warranty": "1 год"},
		featured:    true,
		category:    0,
	},
	{
		title:       "Гриль Профессиональный",
		slug:        "gril-professionalnyy",
		description: "Профессиональный угольный гриль для ресторанов",
		images:      model.JSONArray{"/images/products/gril-professional-1.jpg"},
		price:       1200000,
		badge:       model.BadgeNew,
		specs:       model.JSONMap{"material": "Нержавеющая сталь", "size": "80x50x30 см", "weight": "25 кг", "warranty": "2 года"},
		category:    1,
	},
	{
		title:       "Набор шампуров",
		slug:        "nabor-shampurov",
		description: "Шесть шампуров из нержавеющей стали с деревянными ручками",
		images:      model.JSONArray{"/images/products/shampury-1.jpg"},
		price:       150000,
		oldPrice:    int64Ptr(190000),
		badge:       model.BadgeSale,
		specs:       model.JSONMap{"material": "Нержавеющая сталь", "length": "60 см", "count": "6 шт"},
		category:    2,
	},
}

var seedProjects = []seedProject{
	{
		title: "Семейная мангальная кухня", image: "/portfolio/project-1.jpg", link: "/portfolio/project-1", price: 275000,
		answers: configurator.Answers{SpaceType: configurator.SpaceKitchen, SpaceSize: configurator.SizeStandard, GuestsCount: configurator.Guests4to6, CanopyType: configurator.CanopyLight, Style: configurator.StyleClassic},
	},
	{
		title: "Беседка с мангальной зоной", image: "/portfolio/project-2.jpg", link: "/portfolio/project-2", price: 450000,
		answers: configurator.Answers{SpaceType: configurator.SpaceComplex, SpaceSize: configurator.SizeStandard, GuestsCount: configurator.Guests8to10, CanopyType: configurator.CanopyCapital, Style: configurator.StyleClassic},
	},
	{
		title: "Премиум комплекс для дачи", image: "/portfolio/project-3.jpg", link: "/portfolio/project-3", price: 680000,
		answers: configurator.Answers{SpaceType: configurator.SpaceComplex, SpaceSize: configurator.SizePremium, GuestsCount: configurator.Guests12, CanopyType: configurator.CanopyCapital, Style: configurator.StylePremium},
	},
	{
		title: "Компактная зона с мангалом", image: "/portfolio/project-4.jpg", link: "/portfolio/project-4", price: 95000,
		answers: configurator.Answers{SpaceType: configurator.SpaceMangal, SpaceSize: configurator.SizeCompact, GuestsCount: configurator.Guests4to6, CanopyType: configurator.CanopyNone, Style: configurator.StyleMinimalist},
	},
	{
		title: "Кухня под навесом в стиле лофт", image: "/portfolio/project-5.jpg", link: "/portfolio/project-5", price: 390000,
		answers: configurator.Answers{SpaceType: configurator.SpaceKitchen, SpaceSize: configurator.SizePremium, GuestsCount: configurator.Guests8to10, CanopyType: configurator.CanopyLight, Style: configurator.StyleMinimalist},
	},
}

// SeedDemoData fills an empty database with demo catalog, leads and
// portfolio projects. It does nothing when any category exists.
func (r *PostgresRepository) SeedDemoData(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM categories`); err != nil {
		return false, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	categoryIDs := make([]string, len(seedCategories))
	for i, c := range seedCategories {
		categoryIDs[i] = uuid.NewString()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name, slug, description, image) VALUES ($1, $2, $3, $4, $5)`,
			categoryIDs[i], c.Name, c.Slug, c.Description, c.Image,
		); err != nil {
			return false, fmt.Errorf("failed to seed category %s: %w", c.Slug, err)
		}
	}

	productIDs := make([]string, len(seedProducts))
	for i, p := range seedProducts {
		productIDs[i] = uuid.NewString()
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO products (id, title, slug, description, images, price, old_price, badge, specifications, category_id, in_stock, featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, $11)`,
			productIDs[i], p.title, p.slug, p.description, p.images, p.price, p.oldPrice, p.badge, p.specs, categoryIDs[p.category], p.featured,
		); err != nil {
			return false, fmt.Errorf("failed to seed product %s: %w", p.slug, err)
		}
	}

	leads := []model.Lead{
		{Name: "Иван Петров", Phone: "+7 (123) 456-78-90", Email: strPtr("ivan@example.com"), Message: strPtr("Интересует мангал для дачи на 6-8 человек"), Source: "homepage", Status: model.LeadNew},
		{Name: "Мария Сидорова", Phone: "+7 (987) 654-32-10", Email: strPtr("maria@example.com"), Message: strPtr("Нужен совет по выбору гриля для ресторана"), Source: "catalog", ProductID: &productIDs[1], Status: model.LeadContacted},
	}
	for _, l := range leads {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO leads (id, name, phone, email, message, source, product_id, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.NewString(), l.Name, l.Phone, l.Email, l.Message, l.Source, l.ProductID, l.Status,
		); err != nil {
			return false, fmt.Errorf("failed to seed lead: %w", err)
		}
	}

	for _, p := range seedProjects {
		a := p.answers
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projects (id, title, image, price, link, space_type, space_size, guests_count, canopy_type, style, profile)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			uuid.NewString(), p.title, p.image, p.price, p.link,
			a.SpaceType, a.SpaceSize, a.GuestsCount, a.CanopyType, a.Style,
			pgvector.NewVector(configurator.ProfileVector(a)),
		); err != nil {
			return false, fmt.Errorf("failed to seed project %s: %w", p.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}
	return true, nil
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
