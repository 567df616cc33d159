package calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calendar: invalid input")

	// ErrDateAlreadyBlocked возвращается, когда день уже заблокирован
	ErrDateAlreadyBlocked = errors.New("calendar: date already blocked")

	// ErrBlockedDateNotFound возвращается, когда заблокированная дата не найдена
	ErrBlockedDateNotFound = errors.New("calendar: blocked date not found")

	// ErrPersistence возвращается при ошибках хранилища
	ErrPersistence = errors.New("calendar: persistence error")
)
