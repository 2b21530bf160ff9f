package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions-api/internal/handler/helper"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
)

// statusForError: единственное место сопоставления вида ошибки и HTTP-статуса
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, apperrors.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError отвечает конвертом ошибки и логирует причину
func writeError(c *gin.Context, err error) {
	status := statusForError(err)
	requestID := c.GetString(helper.RequestIDKey)
	if status == http.StatusInternalServerError {
		log.Printf("ERROR: [%s] Internal server error on %s %s: %v", requestID, c.Request.Method, c.Request.URL.Path, err)
	} else {
		log.Printf("[%s] %s %s -> %d: %v", requestID, c.Request.Method, c.Request.URL.Path, status, err)
	}
	helper.AbortWithStatus(c, status)
}

// NotFound используется как обработчик NoRoute
func NotFound(c *gin.Context) {
	helper.AbortWithStatus(c, http.StatusNotFound)
}

// MethodNotAllowed используется как обработчик NoMethod
func MethodNotAllowed(c *gin.Context) {
	helper.AbortWithStatus(c, http.StatusMethodNotAllowed)
}

// RecoverWithEnvelope отвечает 500 в общем формате вместо пустого тела
func RecoverWithEnvelope(c *gin.Context, recovered interface{}) {
	log.Printf("ERROR: [%s] panic recovered on %s %s: %v", c.GetString(helper.RequestIDKey), c.Request.Method, c.Request.URL.Path, recovered)
	helper.AbortWithStatus(c, http.StatusInternalServerError)
}
