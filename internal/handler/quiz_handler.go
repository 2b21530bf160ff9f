package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions-api/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
	"github.com/yourusername/trivia-questions-api/internal/service"
)

// QuizHandler обрабатывает запросы режима игры
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// NextQuestion возвращает следующий ещё не заданный вопрос или null
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Wrap(apperrors.ErrUnprocessable, err))
		return
	}
	if req.PreviousQuestions == nil || req.QuizCategory == nil {
		writeError(c, fmt.Errorf("previous_questions and quiz_category are required: %w", apperrors.ErrUnprocessable))
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), req.PreviousQuestions, *req.QuizCategory)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(question))
}
