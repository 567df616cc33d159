package list_audit_logs

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/service/audit/models"
)

type AuditReader interface {
	List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
