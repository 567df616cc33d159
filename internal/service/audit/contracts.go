package audit

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/domain"
)

// AuditRepository журнал аудита (только добавление и чтение)
type AuditRepository interface {
	Append(ctx context.Context, record *domain.AuditRecord) (*domain.AuditRecord, error)
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditRecord, int, error)
}

// IdentityProvider возвращает ID текущего аутентифицированного администратора
type IdentityProvider interface {
	CurrentActor(ctx context.Context) (string, error)
}

// Metrics счетчики записей аудита
type Metrics interface {
	IncAuditWrite(status string)
	IncAuditWriteFailure(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
