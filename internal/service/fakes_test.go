package service

import (
	"context"
	"sort"

	"mangal/internal/configurator"
	"mangal/internal/model"
)

// memStore is an in-memory stand-in for the repository
type memStore struct {
	categories map[string]*model.Category
	products   map[string]*model.Product
	leads      []*model.Lead
	orders     []*model.Order
	images     map[string]*model.Image
	projects   []model.Project
	stats      model.Stats

	orderSeq int64
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		categories: map[string]*model.Category{},
		products:   map[string]*model.Product{},
		images:     map[string]*model.Image{},
	}
}

func (m *memStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	out := []model.Category{}
	for _, c := range m.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) GetCategory(ctx context.Context, idOrSlug string) (*model.Category, error) {
	for _, c := range m.categories {
		if c.ID == idOrSlug || c.Slug == idOrSlug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *memStore) CreateCategory(ctx context.Context, c *model.Category) error {
	for _, existing := range m.categories {
		if existing.Slug == c.Slug {
			return model.ErrConflict
		}
	}
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *memStore) UpdateCategory(ctx context.Context, c *model.Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return model.ErrNotFound
	}
	for _, existing := range m.categories {
		if existing.ID != c.ID && existing.Slug == c.Slug {
			return model.ErrConflict
		}
	}
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *memStore) DeleteCategory(ctx context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *memStore) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range m.products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.InStock != nil && p.InStock != *filter.InStock {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (m *memStore) GetProduct(ctx context.Context, idOrSlug string) (*model.Product, error) {
	for _, p := range m.products {
		if p.ID == idOrSlug || p.Slug == idOrSlug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *memStore) CreateProduct(ctx context.Context, p *model.Product) error {
	for _, existing := range m.products {
		if existing.Slug == p.Slug {
			return model.ErrConflict
		}
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memStore) UpdateProduct(ctx context.Context, p *model.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return model.ErrNotFound
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memStore) DeleteProduct(ctx context.Context, id string) error {
	if _, ok := m.products[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memStore) ListLeads(ctx context.Context, status model.LeadStatus) ([]model.Lead, error) {
	out := []model.Lead{}
	for _, l := range m.leads {
		if status == "" || l.Status == status {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *memStore) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	for _, l := range m.leads {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *memStore) CreateLead(ctx context.Context, l *model.Lead) error {
	if m.failWith != nil {
		return m.failWith
	}
	if l.ProductID != nil {
		if _, ok := m.products[*l.ProductID]; !ok {
			return model.ErrReference
		}
	}
	cp := *l
	m.leads = append(m.leads, &cp)
	return nil
}

func (m *memStore) UpdateLead(ctx context.Context, l *model.Lead) error {
	for i, existing := range m.leads {
		if existing.ID == l.ID {
			cp := *l
			m.leads[i] = &cp
			return nil
		}
	}
	return model.ErrNotFound
}

func (m *memStore) DeleteLead(ctx context.Context, id string) error {
	for i, l := range m.leads {
		if l.ID == id {
			m.leads = append(m.leads[:i], m.leads[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

func (m *memStore) ListOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	out := []model.Order{}
	for _, o := range m.orders {
		if status == "" || o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memStore) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *memStore) CreateOrder(ctx context.Context, o *model.Order) error {
	for _, it := range o.Items {
		if _, ok := m.products[it.ProductID]; !ok {
			return model.ErrReference
		}
	}
	m.orderSeq++
	o.OrderNumber = model.OrderNumber(m.orderSeq)
	cp := *o
	m.orders = append(m.orders, &cp)
	return nil
}

func (m *memStore) UpdateOrder(ctx context.Context, o *model.Order) error {
	for i, existing := range m.orders {
		if existing.ID == o.ID {
			cp := *o
			m.orders[i] = &cp
			return nil
		}
	}
	return model.ErrNotFound
}

func (m *memStore) DeleteOrder(ctx context.Context, id string) error {
	for i, o := range m.orders {
		if o.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

func (m *memStore) CreateImage(ctx context.Context, img *model.Image) error {
	cp := *img
	m.images[img.ID] = &cp
	return nil
}

func (m *memStore) GetImage(ctx context.Context, id string) (*model.Image, error) {
	img, ok := m.images[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *img
	return &cp, nil
}

func (m *memStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	return append([]model.Project{}, m.projects...), nil
}

func (m *memStore) NearestProjects(ctx context.Context, profile []float32, limit int) ([]model.Project, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := append([]model.Project{}, m.projects...)
	sort.SliceStable(out, func(i, j int) bool {
		return configurator.Distance(profile, out[i].Profile.Slice()) < configurator.Distance(profile, out[j].Profile.Slice())
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) CreateProject(ctx context.Context, p *model.Project) error {
	m.projects = append(m.projects, *p)
	return nil
}

func (m *memStore) DeleteProject(ctx context.Context, id string) error {
	for i, p := range m.projects {
		if p.ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

func (m *memStore) GetStats(ctx context.Context) (*model.Stats, error) {
	s := m.stats
	return &s, nil
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func int64Ptr(v int64) *int64 { return &v }
