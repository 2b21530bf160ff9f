package service

// QuestionsPerPage: фиксированный размер страницы списка вопросов
const QuestionsPerPage = 10

// Paginate возвращает страницу page (нумерация с 1) из уже упорядоченного списка:
// items[(page-1)*QuestionsPerPage : page*QuestionsPerPage], обрезанный по длине.
// Для page < 1 и страниц за концом списка возвращается пустой срез.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}
	// Сравнение до умножения: (page-1)*QuestionsPerPage может переполнить int
	if page-1 >= (len(items)+QuestionsPerPage-1)/QuestionsPerPage {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
