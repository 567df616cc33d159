package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки не найдены
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrSettingsAlreadyExist возвращается при попытке создать настройки для существующего scope
	ErrSettingsAlreadyExist = errors.New("settings already exist")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
