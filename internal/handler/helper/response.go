package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse: единый формат ответа об ошибке
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusTooManyRequests:     "too many requests",
	http.StatusInternalServerError: "server encountered an error",
}

// ErrorMessage возвращает фиксированное сообщение для статуса.
// Неизвестные статусы описываются как внутренняя ошибка.
func ErrorMessage(status int) string {
	if msg, ok := errorMessages[status]; ok {
		return msg
	}
	return errorMessages[http.StatusInternalServerError]
}

// AbortWithStatus прерывает обработку и отвечает конвертом ошибки
func AbortWithStatus(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: ErrorMessage(status),
	})
}

// RequestIDKey: ключ gin-контекста, под которым хранится ID запроса
const RequestIDKey = "requestID"
