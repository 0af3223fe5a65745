package settings

import (
	"context"
)

// SettingsService manages per-employee shift configuration
type SettingsService interface {
	// List merges stored configs over the employee directory so every
	// active employee appears, configured or not
	List(ctx context.Context, search string) (ListShiftConfigResponse, error)

	// Get returns the effective config for one card (defaults when the
	// employee has never been configured)
	Get(ctx context.Context, cardNo string) (ShiftConfigResponse, error)

	// Save merges the partial request into the stored row (or the
	// default config) and persists it, returning the persisted state
	Save(ctx context.Context, req SaveShiftConfigRequest) (ShiftConfigResponse, error)
}
