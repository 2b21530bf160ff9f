package dto

import "github.com/yourusername/trivia-questions-api/internal/domain/entity"

// CategoryListResponse: ответ GET /categories
type CategoryListResponse struct {
	Success    bool                     `json:"success"`
	Categories []map[string]interface{} `json:"categories"`
}

// NewCategoryListResponse создает DTO списка категорий
func NewCategoryListResponse(categories []entity.Category) CategoryListResponse {
	return CategoryListResponse{
		Success:    true,
		Categories: entity.FormatCategories(categories),
	}
}
