package model

import (
	"fmt"
	"time"
)

// LeadStatus is the processing state of a lead
type LeadStatus string

const (
	LeadNew       LeadStatus = "NEW"
	LeadContacted LeadStatus = "CONTACTED"
	LeadQualified LeadStatus = "QUALIFIED"
	LeadConverted LeadStatus = "CONVERTED"
	LeadClosed    LeadStatus = "CLOSED"
)

// Valid reports whether s is a known lead status
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadConverted, LeadClosed:
		return true
	}
	return false
}

// OrderStatus is the fulfilment state of an order
type OrderStatus string

const (
	OrderPending      OrderStatus = "PENDING"
	OrderConfirmed    OrderStatus = "CONFIRMED"
	OrderInProduction OrderStatus = "IN_PRODUCTION"
	OrderReady        OrderStatus = "READY"
	OrderDelivered    OrderStatus = "DELIVERED"
	OrderCancelled    OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderInProduction, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Lead is a contact request left on the site
type Lead struct {
	ID        string     `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Phone     string     `json:"phone" db:"phone"`
	Email     *string    `json:"email" db:"email"`
	Message   *string    `json:"message" db:"message"`
	Source    string     `json:"source" db:"source"`
	ProductID *string    `json:"productId" db:"product_id"`
	Status    LeadStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// LeadInput is the public lead form payload
type LeadInput struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email" binding:"omitempty,email"`
	Message   string  `json:"message"`
	Source    string  `json:"source"`
	ProductID *string `json:"productId"`
}

// LeadUpdate is a partial lead update; nil fields are left unchanged
type LeadUpdate struct {
	Status  *LeadStatus `json:"status"`
	Name    *string     `json:"name"`
	Phone   *string     `json:"phone"`
	Email   *string     `json:"email" binding:"omitempty,email"`
	Message *string     `json:"message"`
	Source  *string     `json:"source"`
}

// Order is a purchase request. Amounts are in kopecks.
type Order struct {
	ID              string      `json:"id" db:"id"`
	OrderNumber     string      `json:"orderNumber" db:"order_number"`
	CustomerName    string      `json:"customerName" db:"customer_name"`
	CustomerPhone   string      `json:"customerPhone" db:"customer_phone"`
	CustomerEmail   *string     `json:"customerEmail" db:"customer_email"`
	CustomerAddress *string     `json:"customerAddress" db:"customer_address"`
	TotalAmount     int64       `json:"totalAmount" db:"total_amount"`
	Status          OrderStatus `json:"status" db:"status"`
	Notes           *string     `json:"notes" db:"notes"`
	Items           []OrderItem `json:"items" db:"-"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem is a single order line with product details joined on read
type OrderItem struct {
	ID            string    `json:"id" db:"id"`
	OrderID       string    `json:"orderId" db:"order_id"`
	ProductID     string    `json:"productId" db:"product_id"`
	Quantity      int       `json:"quantity" db:"quantity"`
	Price         int64     `json:"price" db:"price"`
	ProductTitle  *string   `json:"productTitle,omitempty" db:"product_title"`
	ProductImages JSONArray `json:"productImages,omitempty" db:"product_images"`
}

// OrderInput is the order intake payload
type OrderInput struct {
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	CustomerEmail   string           `json:"customerEmail" binding:"omitempty,email"`
	CustomerAddress string           `json:"customerAddress"`
	Notes           string           `json:"notes"`
	Items           []OrderItemInput `json:"items"`
}

// OrderItemInput is one requested order line
type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// OrderUpdate is a partial order update; nil fields are left unchanged
type OrderUpdate struct {
	Status          *OrderStatus `json:"status"`
	CustomerName    *string      `json:"customerName"`
	CustomerPhone   *string      `json:"customerPhone"`
	CustomerEmail   *string      `json:"customerEmail" binding:"omitempty,email"`
	CustomerAddress *string      `json:"customerAddress"`
	Notes           *string      `json:"notes"`
}

// OrderNumber formats a sequence value as a human-facing order number
func OrderNumber(seq int64) string {
	return fmt.Sprintf("ORD-%05d", seq)
}
