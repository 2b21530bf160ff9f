package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
)

// QuestionPage: страница общего списка вопросов
type QuestionPage struct {
	Questions      []entity.Question
	TotalQuestions int
	Categories     []entity.Category
}

// CategoryQuestionsPage: страница вопросов одной категории
type CategoryQuestionsPage struct {
	Questions      []entity.Question
	TotalQuestions int
	CategoryID     uint
}

// CreateQuestionInput содержит поля нового вопроса как они пришли в запросе.
// nil означает, что поле отсутствовало.
type CreateQuestionInput struct {
	Question   *string
	Answer     *string
	Category   *int
	Difficulty *int
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo    repository.QuestionRepository
	categoryService *CategoryService
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, categoryService *CategoryService) *QuestionService {
	return &QuestionService{
		questionRepo:    questionRepo,
		categoryService: categoryService,
	}
}

// ListQuestions возвращает страницу всех вопросов вместе со списком категорий.
// Пустая страница (в том числе первая страница пустой таблицы) возвращает ErrNotFound.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnprocessable, err)
	}

	pageQuestions := Paginate(questions, page)
	if len(pageQuestions) == 0 {
		return nil, fmt.Errorf("questions page %d is empty: %w", page, apperrors.ErrNotFound)
	}

	categories, err := s.categoryService.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:      pageQuestions,
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}

// CreateQuestion сохраняет вопрос без валидации полей.
// Любая ошибка хранилища превращается в ErrBadRequest.
func (s *QuestionService) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*entity.Question, error) {
	question := &entity.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, err)
	}

	return question, nil
}

// DeleteQuestion удаляет вопрос по ID.
// Удаление отсутствующего вопроса даёт ErrUnprocessable, а не ErrNotFound.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	err := s.questionRepo.Delete(ctx, id)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("question %d does not exist: %w", id, apperrors.ErrUnprocessable)
	}
	return apperrors.Wrap(apperrors.ErrUnprocessable, err)
}

// SearchQuestions возвращает все вопросы, содержащие term без учёта регистра
func (s *QuestionService) SearchQuestions(ctx context.Context, term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnprocessable, err)
	}
	return questions, nil
}

// ListQuestionsByCategory возвращает страницу вопросов категории.
// Для отсутствующей категории возвращается ErrNotFound; пустая страница ошибкой не считается.
func (s *QuestionService) ListQuestionsByCategory(ctx context.Context, categoryID uint, page int) (*CategoryQuestionsPage, error) {
	if _, err := s.categoryService.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, int(categoryID))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnprocessable, err)
	}

	return &CategoryQuestionsPage{
		Questions:      Paginate(questions, page),
		TotalQuestions: len(questions),
		CategoryID:     categoryID,
	}, nil
}

// ExportQuestions возвращает все вопросы для выгрузки
func (s *QuestionService) ExportQuestions(ctx context.Context) ([]entity.Question, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnprocessable, err)
	}
	return questions, nil
}
