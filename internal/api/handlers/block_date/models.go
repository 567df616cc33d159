package block_date

import (
	blockDate "github.com/m04kA/SMC-AdminService/internal/usecase/block_date"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

// BlockDateRequest HTTP request model
type BlockDateRequest struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Reason *string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case (с парсингом даты)
func (r *BlockDateRequest) ToUseCaseRequest() (*blockDate.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &blockDate.Request{Date: date, Reason: r.Reason}, nil
}
