package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := tx.Create(question).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Delete удаляет вопрос. Поиск и удаление выполняются в одной транзакции.
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	var question entity.Question
	if err := tx.Where("id = ?", id).Take(&question).Error; err != nil {
		tx.Rollback()
		return mapNotFound(err)
	}

	if err := tx.Delete(&question).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// List возвращает все вопросы
func (r *QuestionRepo) List(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByCategory возвращает все вопросы категории
func (r *QuestionRepo) ListByCategory(ctx context.Context, categoryID int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search ищет вопросы, содержащие term (ILIKE)
func (r *QuestionRepo) Search(ctx context.Context, term string) ([]entity.Question, error) {
	var questions []entity.Question
	pattern := fmt.Sprintf("%%%s%%", escapeLike(term))
	err := r.db.WithContext(ctx).
		Where("question ILIKE ?", pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// FirstExcluding возвращает первый вопрос (по первичному ключу), не входящий в excludeIDs
func (r *QuestionRepo) FirstExcluding(ctx context.Context, categoryID int, excludeIDs []uint) (*entity.Question, error) {
	var question entity.Question
	query := r.db.WithContext(ctx)

	// NOT IN () недопустим в SQL, поэтому фильтр добавляется только для непустого списка
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}

	err := query.First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// mapNotFound заменяет gorm.ErrRecordNotFound на apperrors.ErrNotFound
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы шаблона LIKE, чтобы term искался буквально
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
