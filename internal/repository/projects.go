package repository

import (
	"context"

	"mangal/internal/model"

	"github.com/pgvector/pgvector-go"
)

const projectColumns = `id, title, image, price, link, space_type, space_size, guests_count,
	canopy_type, style, profile, created_at`

// ListProjects returns the portfolio, newest first
func (r *PostgresRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects := []model.Project{}
	if err := r.db.SelectContext(ctx, &projects, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`); err != nil {
		return nil, wrap("list projects", err)
	}
	return projects, nil
}

// NearestProjects returns up to limit projects ordered by euclidean distance
// between their profile and the given one
func (r *PostgresRepository) NearestProjects(ctx context.Context, profile []float32, limit int) ([]model.Project, error) {
	query := `
		SELECT ` + projectColumns + `, profile <-> $1 AS distance
		FROM projects
		ORDER BY profile <-> $1
		LIMIT $2
	`
	projects := []model.Project{}
	if err := r.db.SelectContext(ctx, &projects, query, pgvector.NewVector(profile), limit); err != nil {
		return nil, wrap("find nearest projects", err)
	}
	return projects, nil
}

// CreateProject inserts a portfolio project
func (r *PostgresRepository) CreateProject(ctx context.Context, p *model.Project) error {
	query := `
		INSERT INTO projects (id, title, image, price, link, space_type, space_size, guests_count,
			canopy_type, style, profile)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`
	row := r.db.QueryRowxContext(ctx, query,
		p.ID, p.Title, p.Image, p.Price, p.Link,
		p.SpaceType, p.SpaceSize, p.GuestsCount, p.CanopyType, p.Style, p.Profile,
	)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return wrap("create project", err)
	}
	return nil
}

// DeleteProject removes a portfolio project
func (r *PostgresRepository) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return wrap("delete project", err)
	}
	return affected(res)
}
