package settings

import (
	"context"
)

// ShiftConfigRepository persists per-employee shift configuration in
// the portal store. Saves are last-write-wins; UpdatedAt is refreshed
// by the store on every upsert.
type ShiftConfigRepository interface {
	// GetByCardNo returns the stored config, or nil when the employee
	// has never been configured
	GetByCardNo(ctx context.Context, cardNo string) (*ShiftConfig, error)

	// GetByCardNos returns stored configs keyed by card number
	GetByCardNos(ctx context.Context, cardNos []string) (map[string]ShiftConfig, error)

	// Upsert creates or overwrites the row and returns the persisted
	// state with the refreshed UpdatedAt
	Upsert(ctx context.Context, config ShiftConfig) (ShiftConfig, error)

	// ListNotificationTargets returns configs with notifications
	// enabled and a non-empty employee email, ordered by card number
	ListNotificationTargets(ctx context.Context) ([]ShiftConfig, error)
}
