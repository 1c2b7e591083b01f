package repository

import (
	"context"
	"fmt"

	"mangal/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const orderColumns = `id, order_number, customer_name, customer_phone, customer_email,
	customer_address, total_amount, status, notes, created_at, updated_at`

const orderItemSelect = `
	SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		p.title AS product_title, p.images AS product_images
	FROM order_items oi
	LEFT JOIN products p ON p.id = oi.product_id`

// ListOrders returns orders newest first with their items, optionally
// filtered by status
func (r *PostgresRepository) ListOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var where whereBuilder
	if status != "" {
		where.add("status = $%d", status)
	}

	orders := []model.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + where.sql() + ` ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &orders, query, where.args...); err != nil {
		return nil, wrap("list orders", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	byID := make(map[string]*model.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		orders[i].Items = []model.OrderItem{}
		byID[orders[i].ID] = &orders[i]
	}

	var items []model.OrderItem
	if err := r.db.SelectContext(ctx, &items, orderItemSelect+` WHERE oi.order_id = ANY($1) ORDER BY oi.id`, pq.Array(ids)); err != nil {
		return nil, wrap("list order items", err)
	}
	for _, item := range items {
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return orders, nil
}

// GetOrder finds an order by id with its items
func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := r.db.GetContext(ctx, &order, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id); err != nil {
		return nil, wrap("get order", err)
	}
	order.Items = []model.OrderItem{}
	if err := r.db.SelectContext(ctx, &order.Items, orderItemSelect+` WHERE oi.order_id = $1 ORDER BY oi.id`, id); err != nil {
		return nil, wrap("get order items", err)
	}
	return &order, nil
}

// CreateOrder allocates the next order number and inserts the order with
// its items in one transaction
func (r *PostgresRepository) CreateOrder(ctx context.Context, o *model.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.GetContext(ctx, &seq, `SELECT nextval('order_number_seq')`); err != nil {
		return wrap("allocate order number", err)
	}
	o.OrderNumber = model.OrderNumber(seq)

	query := `
		INSERT INTO orders (id, order_number, customer_name, customer_phone, customer_email,
			customer_address, total_amount, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := tx.ExecContext(ctx, query,
		o.ID, o.OrderNumber, o.CustomerName, o.CustomerPhone, o.CustomerEmail,
		o.CustomerAddress, o.TotalAmount, o.Status, o.Notes,
	); err != nil {
		return wrap("create order", err)
	}

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO order_items (id, order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, item := range o.Items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if _, err := stmt.ExecContext(ctx, item.ID, o.ID, item.ProductID, item.Quantity, item.Price); err != nil {
			return wrap("create order item", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	fresh, err := r.GetOrder(ctx, o.ID)
	if err != nil {
		return err
	}
	*o = *fresh
	return nil
}

// UpdateOrder overwrites the editable fields of an order
func (r *PostgresRepository) UpdateOrder(ctx context.Context, o *model.Order) error {
	query := `
		UPDATE orders
		SET customer_name = $2, customer_phone = $3, customer_email = $4, customer_address = $5,
			status = $6, notes = $7, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		o.ID, o.CustomerName, o.CustomerPhone, o.CustomerEmail, o.CustomerAddress, o.Status, o.Notes,
	)
	if err != nil {
		return wrap("update order", err)
	}
	if err := affected(res); err != nil {
		return err
	}

	fresh, err := r.GetOrder(ctx, o.ID)
	if err != nil {
		return err
	}
	*o = *fresh
	return nil
}

// DeleteOrder removes an order; its items cascade
func (r *PostgresRepository) DeleteOrder(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return wrap("delete order", err)
	}
	return affected(res)
}
