package handler

import (
	"context"
	"net/http"

	"mangal/internal/configurator"
	"mangal/internal/model"

	"github.com/gin-gonic/gin"
)

// ConfiguratorService is the configurator behaviour the handlers depend on
type ConfiguratorService interface {
	Steps() ([]configurator.QuizStep, error)
	Calculate(ctx context.Context, answers configurator.Answers) *model.ConfiguratorResponse
	ApplyQuiz(state *configurator.QuizState, act configurator.Action) (*model.QuizResponse, error)
}

// ConfiguratorHandler handles configurator HTTP requests
type ConfiguratorHandler struct {
	configurator ConfiguratorService
}

// NewConfiguratorHandler creates a new configurator handler
func NewConfiguratorHandler(svc ConfiguratorService) *ConfiguratorHandler {
	return &ConfiguratorHandler{configurator: svc}
}

// Steps handles GET /api/v1/configurator/steps
func (h *ConfiguratorHandler) Steps(c *gin.Context) {
	steps, err := h.configurator.Steps()
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"steps":      steps,
		"totalSteps": len(steps),
	})
}

// Result handles POST /api/v1/configurator/result
func (h *ConfiguratorHandler) Result(c *gin.Context) {
	var answers configurator.Answers
	if err := c.ShouldBindJSON(&answers); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.configurator.Calculate(c.Request.Context(), answers))
}

// Quiz handles POST /api/v1/configurator/quiz
func (h *ConfiguratorHandler) Quiz(c *gin.Context) {
	var req model.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.configurator.ApplyQuiz(req.State, req.Action)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}
