package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions-api/internal/handler/dto"
	"github.com/yourusername/trivia-questions-api/internal/handler/helper"
	"github.com/yourusername/trivia-questions-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategories возвращает все категории
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// ListCategoryQuestions возвращает страницу вопросов категории
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)

	page, err := h.questionService.ListQuestionsByCategory(c.Request.Context(), categoryID, helper.ParsePage(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryQuestionsResponse(page))
}
