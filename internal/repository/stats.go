package repository

import (
	"context"

	"mangal/internal/model"
)

// GetStats counts the records shown on the admin dashboard
func (r *PostgresRepository) GetStats(ctx context.Context) (*model.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products)                              AS products,
			(SELECT COUNT(*) FROM categories)                            AS categories,
			(SELECT COUNT(*) FROM leads)                                 AS leads,
			(SELECT COUNT(*) FROM orders)                                AS orders,
			(SELECT COUNT(*) FROM leads WHERE status = 'NEW')            AS new_leads,
			(SELECT COUNT(*) FROM orders WHERE status = 'PENDING')       AS pending_orders
	`
	var stats model.Stats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, wrap("get stats", err)
	}
	return &stats, nil
}
