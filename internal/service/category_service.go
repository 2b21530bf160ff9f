package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
)

const categoriesCacheKey = "categories"

// CategoryService предоставляет методы для работы с категориями.
// Категории через API не изменяются, поэтому их список кешируется.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
	}
}

// ListCategories возвращает все категории. Ошибки хранилища возвращаются как ErrUnprocessable.
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var cached []entity.Category
	err := s.cacheRepo.GetJSON(ctx, categoriesCacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		// Кеш не должен ломать запрос: идём в БД
		log.Printf("[CategoryService] Ошибка чтения кеша категорий: %v", err)
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnprocessable, err)
	}

	if s.cacheTTL > 0 {
		if err := s.cacheRepo.SetJSON(ctx, categoriesCacheKey, categories, s.cacheTTL); err != nil {
			log.Printf("[CategoryService] Не удалось сохранить категории в кеш: %v", err)
		}
	}

	return categories, nil
}

// GetCategory возвращает категорию по ID.
// Для отсутствующей категории ErrNotFound, для прочих ошибок ErrUnprocessable.
func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrUnprocessable, err)
	}
	return category, nil
}
