package calendar

import "github.com/m04kA/SMC-AdminService/pkg/dbmetrics"

// DBExecutor переиспользуем интерфейс из dbmetrics для работы с БД.
// Поддерживает *dbmetrics.DB, *sql.DB и транзакции.
type DBExecutor = dbmetrics.DBExecutor
