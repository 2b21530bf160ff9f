package dto

import (
	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/service"
)

// CreateQuestionRequest: тело POST /questions.
// Поля не валидируются: отсутствующие остаются nil.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// ToInput преобразует запрос во входные данные сервиса
func (r *CreateQuestionRequest) ToInput() service.CreateQuestionInput {
	return service.CreateQuestionInput{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   r.Category,
		Difficulty: r.Difficulty,
	}
}

// SearchQuestionsRequest: тело POST /search-questions
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"search_term"`
}

// QuestionListResponse: ответ GET /questions
type QuestionListResponse struct {
	Success         bool                     `json:"success"`
	Questions       []map[string]interface{} `json:"questions"`
	TotalQuestions  int                      `json:"total_questions"`
	Categories      []map[string]interface{} `json:"categories"`
	CurrentCategory *uint                    `json:"current_category"`
}

// NewQuestionListResponse создает DTO страницы вопросов
func NewQuestionListResponse(page *service.QuestionPage) QuestionListResponse {
	return QuestionListResponse{
		Success:         true,
		Questions:       entity.FormatQuestions(page.Questions),
		TotalQuestions:  page.TotalQuestions,
		Categories:      entity.FormatCategories(page.Categories),
		CurrentCategory: nil,
	}
}

// QuestionSearchResponse: ответ POST /search-questions
type QuestionSearchResponse struct {
	Success         bool                     `json:"success"`
	Questions       []map[string]interface{} `json:"questions"`
	TotalQuestions  int                      `json:"total_questions"`
	CurrentCategory *uint                    `json:"current_category"`
}

// NewQuestionSearchResponse создает DTO результатов поиска
func NewQuestionSearchResponse(questions []entity.Question) QuestionSearchResponse {
	return QuestionSearchResponse{
		Success:        true,
		Questions:      entity.FormatQuestions(questions),
		TotalQuestions: len(questions),
	}
}

// CategoryQuestionsResponse: ответ GET /categories/{id}/questions
type CategoryQuestionsResponse struct {
	Success         bool                     `json:"success"`
	Questions       []map[string]interface{} `json:"questions"`
	TotalQuestions  int                      `json:"total_questions"`
	CurrentCategory uint                     `json:"current_category"`
}

// NewCategoryQuestionsResponse создает DTO страницы вопросов категории
func NewCategoryQuestionsResponse(page *service.CategoryQuestionsPage) CategoryQuestionsResponse {
	return CategoryQuestionsResponse{
		Success:         true,
		Questions:       entity.FormatQuestions(page.Questions),
		TotalQuestions:  page.TotalQuestions,
		CurrentCategory: page.CategoryID,
	}
}

// QuestionCreatedResponse: ответ POST /questions
type QuestionCreatedResponse struct {
	Success  bool                   `json:"success"`
	Question map[string]interface{} `json:"question"`
}

// QuestionDeletedResponse: ответ DELETE /questions/{id}
type QuestionDeletedResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}
