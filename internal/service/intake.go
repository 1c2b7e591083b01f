package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"mangal/internal/model"
	"mangal/internal/utils"

	"github.com/google/uuid"
)

// IntakeStore is the persistence for leads and orders
type IntakeStore interface {
	ListLeads(ctx context.Context, status model.LeadStatus) ([]model.Lead, error)
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	CreateLead(ctx context.Context, l *model.Lead) error
	UpdateLead(ctx context.Context, l *model.Lead) error
	DeleteLead(ctx context.Context, id string) error
	ListOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	CreateOrder(ctx context.Context, o *model.Order) error
	UpdateOrder(ctx context.Context, o *model.Order) error
	DeleteOrder(ctx context.Context, id string) error
}

// Intake validation messages
const (
	msgNameRequired          = "Имя обязательно"
	msgPhoneRequired         = "Телефон обязателен"
	msgSourceRequired        = "Источник заявки обязателен"
	msgLeadStatusInvalid     = "Недопустимый статус заявки"
	msgCustomerNameRequired  = "Имя клиента обязательно"
	msgCustomerPhoneRequired = "Телефон клиента обязателен"
	msgItemsRequired         = "Товары в заказе обязательны"
	msgItemInvalid           = "Неверный формат товара в заказе"
	msgOrderStatusInvalid    = "Недопустимый статус заказа"
	msgProductMissing        = "Выбранный товар не существует"
)

var leadCSVHeader = []string{"id", "created_at", "status", "name", "phone", "email", "source", "product_id", "message"}

// IntakeService accepts leads and orders from the site and serves them to
// the back office
type IntakeService struct {
	store IntakeStore
}

// NewIntakeService creates a new intake service
func NewIntakeService(store IntakeStore) *IntakeService {
	return &IntakeService{store: store}
}

// CreateLead validates and stores a contact request with status NEW
func (s *IntakeService) CreateLead(ctx context.Context, in model.LeadInput) (*model.Lead, error) {
	var errs collector
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	source := strings.TrimSpace(in.Source)
	errs.check(name != "", msgNameRequired)
	errs.check(phone != "", msgPhoneRequired)
	errs.check(source != "", msgSourceRequired)
	if err := errs.err(); err != nil {
		return nil, err
	}

	lead := &model.Lead{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     utils.FormatPhone(phone),
		Email:     optional(in.Email),
		Message:   optional(in.Message),
		Source:    source,
		ProductID: trimmedPtr(in.ProductID),
		Status:    model.LeadNew,
	}
	if err := s.store.CreateLead(ctx, lead); err != nil {
		if errors.Is(err, model.ErrReference) {
			return nil, invalid(msgProductMissing)
		}
		return nil, err
	}
	return lead, nil
}

// ListLeads returns leads newest first; an empty status lists all
func (s *IntakeService) ListLeads(ctx context.Context, status string) ([]model.Lead, error) {
	st := model.LeadStatus(status)
	if st != "" && !st.Valid() {
		return nil, invalid(msgLeadStatusInvalid)
	}
	return s.store.ListLeads(ctx, st)
}

// GetLead finds a lead by id
func (s *IntakeService) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	return s.store.GetLead(ctx, id)
}

// UpdateLead applies a partial update. Empty required fields are ignored;
// empty optional fields are cleared.
func (s *IntakeService) UpdateLead(ctx context.Context, id string, upd model.LeadUpdate) (*model.Lead, error) {
	lead, err := s.store.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil && *upd.Status != "" {
		if !upd.Status.Valid() {
			return nil, invalid(msgLeadStatusInvalid)
		}
		lead.Status = *upd.Status
	}
	if v := trimmedPtr(upd.Name); v != nil {
		lead.Name = *v
	}
	if v := trimmedPtr(upd.Phone); v != nil {
		lead.Phone = utils.FormatPhone(*v)
	}
	if v := trimmedPtr(upd.Source); v != nil {
		lead.Source = *v
	}
	if upd.Email != nil {
		lead.Email = trimmedPtr(upd.Email)
	}
	if upd.Message != nil {
		lead.Message = trimmedPtr(upd.Message)
	}

	if err := s.store.UpdateLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// DeleteLead removes a lead
func (s *IntakeService) DeleteLead(ctx context.Context, id string) error {
	return s.store.DeleteLead(ctx, id)
}

// ExportLeads writes leads as CSV with a header row
func (s *IntakeService) ExportLeads(ctx context.Context, w io.Writer, status string) error {
	leads, err := s.ListLeads(ctx, status)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(leadCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, l := range leads {
		record := []string{
			l.ID,
			l.CreatedAt.Format(time.RFC3339),
			string(l.Status),
			csvText(l.Name),
			csvText(l.Phone),
			csvText(deref(l.Email)),
			csvText(l.Source),
			csvText(deref(l.ProductID)),
			csvText(deref(l.Message)),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CreateOrder validates an order, computes its total and stores it with
// status PENDING
func (s *IntakeService) CreateOrder(ctx context.Context, in model.OrderInput) (*model.Order, error) {
	var errs collector
	name := strings.TrimSpace(in.CustomerName)
	phone := strings.TrimSpace(in.CustomerPhone)
	errs.check(name != "", msgCustomerNameRequired)
	errs.check(phone != "", msgCustomerPhoneRequired)
	errs.check(len(in.Items) > 0, msgItemsRequired)

	items := make([]model.OrderItem, 0, len(in.Items))
	var total int64
	for _, it := range in.Items {
		productID := strings.TrimSpace(it.ProductID)
		if productID == "" || it.Quantity <= 0 || it.Price <= 0 ||
			it.Price > (math.MaxInt64-total)/int64(it.Quantity) {
			errs.add(msgItemInvalid)
			break
		}
		total += int64(it.Quantity) * it.Price
		items = append(items, model.OrderItem{
			ID:        uuid.NewString(),
			ProductID: productID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:              uuid.NewString(),
		CustomerName:    name,
		CustomerPhone:   utils.FormatPhone(phone),
		CustomerEmail:   optional(in.CustomerEmail),
		CustomerAddress: optional(in.CustomerAddress),
		Notes:           optional(in.Notes),
		TotalAmount:     total,
		Status:          model.OrderPending,
		Items:           items,
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, model.ErrReference) {
			return nil, invalid(msgProductMissing)
		}
		return nil, err
	}
	return order, nil
}

// ListOrders returns orders newest first; an empty status lists all
func (s *IntakeService) ListOrders(ctx context.Context, status string) ([]model.Order, error) {
	st := model.OrderStatus(status)
	if st != "" && !st.Valid() {
		return nil, invalid(msgOrderStatusInvalid)
	}
	return s.store.ListOrders(ctx, st)
}

// GetOrder finds an order by id
func (s *IntakeService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.store.GetOrder(ctx, id)
}

// UpdateOrder applies a partial update to status, customer data and notes
func (s *IntakeService) UpdateOrder(ctx context.Context, id string, upd model.OrderUpdate) (*model.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil && *upd.Status != "" {
		if !upd.Status.Valid() {
			return nil, invalid(msgOrderStatusInvalid)
		}
		order.Status = *upd.Status
	}
	if v := trimmedPtr(upd.CustomerName); v != nil {
		order.CustomerName = *v
	}
	if v := trimmedPtr(upd.CustomerPhone); v != nil {
		order.CustomerPhone = utils.FormatPhone(*v)
	}
	if upd.CustomerEmail != nil {
		order.CustomerEmail = trimmedPtr(upd.CustomerEmail)
	}
	if upd.CustomerAddress != nil {
		order.CustomerAddress = trimmedPtr(upd.CustomerAddress)
	}
	if upd.Notes != nil {
		order.Notes = trimmedPtr(upd.Notes)
	}

	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes an order with its items
func (s *IntakeService) DeleteOrder(ctx context.Context, id string) error {
	return s.store.DeleteOrder(ctx, id)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// csvText stops spreadsheets from evaluating user input as a formula
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}
