package block_date

import (
	"github.com/m04kA/SMC-AdminService/internal/domain"
	auditModels "github.com/m04kA/SMC-AdminService/internal/service/audit/models"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

// Request запрос на блокировку одного дня
type Request struct {
	Date   types.Date
	Reason *string
}

// Response результат блокировки
type Response struct {
	BlockedDate *domain.BlockedDate
	Audit       auditModels.Status
}
