package service

import (
	"context"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
)

// AllCategories: значение quiz_category, означающее «любая категория»
const AllCategories = 0

// QuizService выдаёт вопросы для режима игры
type QuizService struct {
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{questionRepo: questionRepo}
}

// NextQuestion возвращает первый (по порядку хранилища) вопрос, который
// ещё не задавался. Выбор детерминированный, не случайный.
// Если вопросов не осталось, возвращает (nil, nil).
func (s *QuizService) NextQuestion(ctx context.Context, previousIDs []uint, categoryID int) (*entity.Question, error) {
	question, err := s.questionRepo.FirstExcluding(ctx, categoryID, previousIDs)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnprocessable, err)
	}
	return question, nil
}
