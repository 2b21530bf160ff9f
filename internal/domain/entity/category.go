package entity

// Category представляет категорию вопросов. Через API только читается.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"column:type" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// Format возвращает плоское представление категории для JSON-ответа
func (c *Category) Format() map[string]interface{} {
	return map[string]interface{}{
		"id":   c.ID,
		"type": c.Type,
	}
}

// FormatCategories применяет Format к каждому элементу, сохраняя порядок
func FormatCategories(categories []Category) []map[string]interface{} {
	formatted := make([]map[string]interface{}, 0, len(categories))
	for i := range categories {
		formatted = append(formatted, categories[i].Format())
	}
	return formatted
}
