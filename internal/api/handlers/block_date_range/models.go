package block_date_range

import (
	"fmt"

	"github.com/m04kA/SMC-AdminService/internal/service/calendar/models"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

// BlockDateRangeRequest HTTP request model
// EndDate опционален - без него блокируется один день StartDate
type BlockDateRangeRequest struct {
	StartDate string  `json:"startDate"`         // YYYY-MM-DD
	EndDate   string  `json:"endDate,omitempty"` // YYYY-MM-DD
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *BlockDateRangeRequest) ToServiceRequest() (*models.BlockRangeRequest, error) {
	start, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}

	req := &models.BlockRangeRequest{Start: start, Reason: r.Reason}
	if r.EndDate != "" {
		end, err := types.ParseDate(r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("endDate: %w", err)
		}
		req.End = end
	}
	return req, nil
}
