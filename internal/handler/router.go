package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions-api/internal/middleware"
)

// Handlers объединяет обработчики всех ресурсов API
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
}

// NewRouter создает gin.Engine со всеми маршрутами API.
// Глобальные middleware подключаются до recovery в переданном порядке.
func NewRouter(h Handlers, globals ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(globals...)
	router.Use(gin.CustomRecovery(RecoverWithEnvelope))

	router.NoRoute(NotFound)
	router.NoMethod(MethodNotAllowed)

	if h.Health != nil {
		router.GET("/health", h.Health.Health)
	}

	router.GET("/categories", h.Category.ListCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		h.Category.ListCategoryQuestions,
	)

	questions := router.Group("/questions")
	{
		questions.GET("", h.Question.ListQuestions)
		questions.POST("", h.Question.CreateQuestion)
		questions.GET("/export", h.Question.ExportQuestions)
		questions.DELETE("/:id",
			middleware.ExtractUintParam("id", "questionID"),
			h.Question.DeleteQuestion,
		)
	}

	router.POST("/search-questions", h.Question.SearchQuestions)
	router.POST("/quizzes", h.Quiz.NextQuestion)

	return router
}
