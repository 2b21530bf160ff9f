package errors

import "errors"

// Общие ошибки приложения. Каждая соответствует одному HTTP-статусу,
// сопоставление выполняется в одном месте: handler.writeError.
var (
	// ErrNotFound используется, когда запись или ресурс не найдены (404).
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest используется для некорректного тела запроса на создание (400).
	ErrBadRequest = errors.New("bad request")

	// ErrUnprocessable: общий случай ошибок запроса/логики (422),
	// в том числе операция над отсутствующей записью.
	ErrUnprocessable = errors.New("unprocessable")

	// ErrMethodNotAllowed используется для метода без обработчика (405).
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// Wrap помечает cause ошибкой kind, сохраняя исходную причину.
// errors.Is срабатывает и для kind, и для cause.
func Wrap(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return errors.Join(kind, cause)
}
