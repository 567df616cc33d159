package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки для scope не найдены
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrDuplicateScope возвращается при попытке создать вторую запись для того же scope
	ErrDuplicateScope = errors.New("settings.repository: settings for scope already exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
