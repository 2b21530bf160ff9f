package repository

import (
	"context"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	// List возвращает все категории, упорядоченные по ID
	List(ctx context.Context) ([]entity.Category, error)
	// GetByID возвращает категорию или apperrors.ErrNotFound
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
}
