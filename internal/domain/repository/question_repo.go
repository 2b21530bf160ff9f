package repository

import (
	"context"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Списки возвращаются в порядке первичного ключа.
type QuestionRepository interface {
	// Create вставляет вопрос в транзакции; при ошибке транзакция откатывается
	Create(ctx context.Context, question *entity.Question) error
	// Delete находит вопрос по ID и удаляет его в одной транзакции.
	// Если вопроса нет, возвращает apperrors.ErrNotFound.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]entity.Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]entity.Question, error)
	// Search ищет подстроку в тексте вопроса без учёта регистра
	Search(ctx context.Context, term string) ([]entity.Question, error)
	// FirstExcluding возвращает первый вопрос, чей ID не входит в excludeIDs.
	// categoryID == 0 означает все категории. Если подходящего нет, возвращает (nil, nil).
	FirstExcluding(ctx context.Context, categoryID int, excludeIDs []uint) (*entity.Question, error)
}
