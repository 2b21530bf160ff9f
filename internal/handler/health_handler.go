package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler отвечает на проверки живости
type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler создает обработчик; ping проверяет доступность БД
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Health возвращает статус сервиса
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		writeError(c, fmt.Errorf("database ping failed: %w", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}
