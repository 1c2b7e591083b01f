package repository

import (
	"context"

	"mangal/internal/model"
)

const leadColumns = `id, name, phone, email, message, source, product_id, status, created_at, updated_at`

// ListLeads returns leads newest first, optionally filtered by status
func (r *PostgresRepository) ListLeads(ctx context.Context, status model.LeadStatus) ([]model.Lead, error) {
	var where whereBuilder
	if status != "" {
		where.add("status = $%d", status)
	}

	leads := []model.Lead{}
	query := `SELECT ` + leadColumns + ` FROM leads WHERE ` + where.sql() + ` ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &leads, query, where.args...); err != nil {
		return nil, wrap("list leads", err)
	}
	return leads, nil
}

// GetLead finds a lead by id
func (r *PostgresRepository) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	var lead model.Lead
	if err := r.db.GetContext(ctx, &lead, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id); err != nil {
		return nil, wrap("get lead", err)
	}
	return &lead, nil
}

// CreateLead inserts a lead
func (r *PostgresRepository) CreateLead(ctx context.Context, l *model.Lead) error {
	query := `
		INSERT INTO leads (id, name, phone, email, message, source, product_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	row := r.db.QueryRowxContext(ctx, query, l.ID, l.Name, l.Phone, l.Email, l.Message, l.Source, l.ProductID, l.Status)
	if err := row.Scan(&l.CreatedAt, &l.UpdatedAt); err != nil {
		return wrap("create lead", err)
	}
	return nil
}

// UpdateLead overwrites the editable fields of a lead
func (r *PostgresRepository) UpdateLead(ctx context.Context, l *model.Lead) error {
	query := `
		UPDATE leads
		SET name = $2, phone = $3, email = $4, message = $5, source = $6, status = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	row := r.db.QueryRowxContext(ctx, query, l.ID, l.Name, l.Phone, l.Email, l.Message, l.Source, l.Status)
	if err := row.Scan(&l.CreatedAt, &l.UpdatedAt); err != nil {
		return wrap("update lead", err)
	}
	return nil
}

// DeleteLead removes a lead
func (r *PostgresRepository) DeleteLead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return wrap("delete lead", err)
	}
	return affected(res)
}
