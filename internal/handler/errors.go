package handler

import (
	"errors"
	"log"
	"net/http"

	"mangal/internal/model"
	"mangal/internal/service"

	"github.com/gin-gonic/gin"
)

// Not-found messages per resource
const (
	msgCategoryNotFound = "Категория не найдена"
	msgProductNotFound  = "Товар не найден"
	msgLeadNotFound     = "Заявка не найдена"
	msgOrderNotFound    = "Заказ не найден"
	msgImageNotFound    = "Изображение не найдено"
	msgProjectNotFound  = "Проект не найден"
	msgConflict         = "Запись с такими данными уже существует"
	msgReference        = "Связанная запись не найдена или используется"
	msgInternalError    = "Внутренняя ошибка сервера"
)

// respondError maps a service error to a status code and writes {"error": msg}.
// Unexpected errors are logged and hidden behind a generic message.
func respondError(c *gin.Context, err error, notFound string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, model.ErrConflict):
		log.Printf("⚠️  %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgConflict})
	case errors.Is(err, model.ErrReference):
		log.Printf("⚠️  %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgReference})
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
	}
}

// badRequest reports a malformed body or query
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}
