package dto

import "github.com/yourusername/trivia-questions-api/internal/domain/entity"

// QuizRequest: тело POST /quizzes. Оба поля обязательны;
// nil означает, что ключ отсутствовал или был null.
type QuizRequest struct {
	PreviousQuestions []uint `json:"previous_questions"`
	QuizCategory      *int   `json:"quiz_category"`
}

// QuizResponse: ответ POST /quizzes; Question равен null, когда вопросы закончились
type QuizResponse struct {
	Success  bool                   `json:"success"`
	Question map[string]interface{} `json:"question"`
}

// NewQuizResponse создает DTO ответа викторины
func NewQuizResponse(question *entity.Question) QuizResponse {
	resp := QuizResponse{Success: true}
	if question != nil {
		resp.Question = question.Format()
	}
	return resp
}
