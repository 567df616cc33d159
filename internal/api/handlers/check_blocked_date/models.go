package check_blocked_date

import "github.com/m04kA/SMC-AdminService/pkg/types"

// CheckBlockedDateResponse HTTP response model
type CheckBlockedDateResponse struct {
	Date    types.Date `json:"date"`
	Blocked bool       `json:"blocked"`
}
