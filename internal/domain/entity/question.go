package entity

// Question представляет вопрос викторины.
// Поля тела запроса хранятся указателями: отсутствующее в запросе поле
// передаётся в БД как NULL и возвращается клиенту как null.
type Question struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Question   *string `gorm:"column:question" json:"question"`
	Answer     *string `gorm:"column:answer" json:"answer"`
	Category   *int    `gorm:"column:category;index" json:"category"`
	Difficulty *int    `gorm:"column:difficulty" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Format возвращает плоское представление вопроса для JSON-ответа
func (q *Question) Format() map[string]interface{} {
	return map[string]interface{}{
		"id":         q.ID,
		"question":   q.Question,
		"answer":     q.Answer,
		"category":   q.Category,
		"difficulty": q.Difficulty,
	}
}

// Text возвращает текст вопроса или пустую строку, если он не задан
func (q *Question) Text() string {
	if q.Question == nil {
		return ""
	}
	return *q.Question
}

// AnswerText возвращает ответ или пустую строку, если он не задан
func (q *Question) AnswerText() string {
	if q.Answer == nil {
		return ""
	}
	return *q.Answer
}

// FormatQuestions применяет Format к каждому элементу, сохраняя порядок
func FormatQuestions(questions []Question) []map[string]interface{} {
	formatted := make([]map[string]interface{}, 0, len(questions))
	for i := range questions {
		formatted = append(formatted, questions[i].Format())
	}
	return formatted
}
