package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"mangal/internal/model"

	"github.com/gin-gonic/gin"
)

// IntakeService is the lead and order behaviour the handlers depend on
type IntakeService interface {
	CreateLead(ctx context.Context, in model.LeadInput) (*model.Lead, error)
	ListLeads(ctx context.Context, status string) ([]model.Lead, error)
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	UpdateLead(ctx context.Context, id string, upd model.LeadUpdate) (*model.Lead, error)
	DeleteLead(ctx context.Context, id string) error
	ExportLeads(ctx context.Context, w io.Writer, status string) error
	CreateOrder(ctx context.Context, in model.OrderInput) (*model.Order, error)
	ListOrders(ctx context.Context, status string) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, upd model.OrderUpdate) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// IntakeHandler handles lead and order HTTP requests
type IntakeHandler struct {
	intake IntakeService
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intake IntakeService) *IntakeHandler {
	return &IntakeHandler{intake: intake}
}

// CreateLead handles POST /api/v1/leads
func (h *IntakeHandler) CreateLead(c *gin.Context) {
	var in model.LeadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	lead, err := h.intake.CreateLead(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// ListLeads handles GET /api/v1/leads?status=
func (h *IntakeHandler) ListLeads(c *gin.Context) {
	leads, err := h.intake.ListLeads(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// ExportLeads handles GET /api/v1/leads/export?status=
func (h *IntakeHandler) ExportLeads(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.intake.ExportLeads(c.Request.Context(), &buf, c.Query("status")); err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}

	filename := fmt.Sprintf("leads-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GetLead handles GET /api/v1/leads/:id
func (h *IntakeHandler) GetLead(c *gin.Context) {
	lead, err := h.intake.GetLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// UpdateLead handles PUT /api/v1/leads/:id
func (h *IntakeHandler) UpdateLead(c *gin.Context) {
	var upd model.LeadUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	lead, err := h.intake.UpdateLead(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// DeleteLead handles DELETE /api/v1/leads/:id
func (h *IntakeHandler) DeleteLead(c *gin.Context) {
	if err := h.intake.DeleteLead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateOrder handles POST /api/v1/orders
func (h *IntakeHandler) CreateOrder(c *gin.Context) {
	var in model.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	order, err := h.intake.CreateOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, msgOrderNotFound)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /api/v1/orders?status=
func (h *IntakeHandler) ListOrders(c *gin.Context) {
	orders, err := h.intake.ListOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err, msgOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id
func (h *IntakeHandler) GetOrder(c *gin.Context) {
	order, err := h.intake.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder handles PUT /api/v1/orders/:id
func (h *IntakeHandler) UpdateOrder(c *gin.Context) {
	var upd model.OrderUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}
	order, err := h.intake.UpdateOrder(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err, msgOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/v1/orders/:id
func (h *IntakeHandler) DeleteOrder(c *gin.Context) {
	if err := h.intake.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, msgOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
