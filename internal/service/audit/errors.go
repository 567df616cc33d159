package audit

import "errors"

var (
	// ErrAuditWrite ошибка записи в журнал аудита. Не возвращается вызывающей
	// стороне как error, доступна только в models.Result.Err.
	ErrAuditWrite = errors.New("audit: write failed")

	// ErrInvalidInput возвращается при некорректных параметрах запроса журнала
	ErrInvalidInput = errors.New("audit: invalid input")

	// ErrInternal возвращается при ошибках чтения журнала
	ErrInternal = errors.New("audit: internal error")
)
