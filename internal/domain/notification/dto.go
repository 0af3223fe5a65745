package notification

import (
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/validator"
)

// RunRequest triggers a dispatch for one date. CardNo nil means "all
// configured employees" (notify enabled and a resolvable email).
type RunRequest struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	CardNo *string `json:"card_no"`
}

func (r *RunRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.CardNo != nil && validator.IsEmpty(*r.CardNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "card_no",
			Message: "card_no must not be blank when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LogItem struct {
	ID      string  `json:"id"`
	CardNo  string  `json:"card_no"`
	Date    string  `json:"date"`
	Type    string  `json:"type"`
	ToEmail string  `json:"to_email"`
	CC      string  `json:"cc"`
	SentAt  string  `json:"sent_at"`
	Status  string  `json:"status"`
	Error   *string `json:"error"`
}

type LogsResponse struct {
	TotalCount int       `json:"total_count"`
	Items      []LogItem `json:"items"`
}
