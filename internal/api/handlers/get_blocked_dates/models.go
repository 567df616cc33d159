package get_blocked_dates

import (
	"fmt"

	"github.com/m04kA/SMC-AdminService/internal/service/calendar/models"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

// BlockedDatesResponse HTTP response model
type BlockedDatesResponse struct {
	BlockedDates []models.BlockedDateResponse `json:"blockedDates"`
	Total        int                          `json:"total"`
}

// parseWindow разбирает опциональные query параметры from/to
func parseWindow(fromStr, toStr string) (from, to types.Date, err error) {
	if fromStr != "" {
		if from, err = types.ParseDate(fromStr); err != nil {
			return from, to, fmt.Errorf("from: %w", err)
		}
	}
	if toStr != "" {
		if to, err = types.ParseDate(toStr); err != nil {
			return from, to, fmt.Errorf("to: %w", err)
		}
	}
	return from, to, nil
}
