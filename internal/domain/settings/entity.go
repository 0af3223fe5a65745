package settings

import (
	"time"
)

// ShiftConfig is the per-employee shift and notification configuration
// owned by HR. Absence of a row means "use defaults"; rows are never
// deleted, only overwritten (last write wins, UpdatedAt advanced on
// every save).
type ShiftConfig struct {
	ID                 string
	CardNo             string
	EmpID              *string
	EmployeeNameCache  *string
	EmployeeEmail      *string
	WorkStartTime      string // HH:MM
	WorkEndTime        string // HH:MM
	LateGraceMinutes   int
	EarlyGraceMinutes  int
	NotifyEmployee     bool
	NotifyCCOverride   *string
	UpdatedAt          time.Time
}

const (
	DefaultWorkStartTime = "09:00"
	DefaultWorkEndTime   = "18:00"
)

// DefaultShiftConfig is the canonical configuration applied when an
// employee has no saved row: 09:00-18:00, zero grace, notifications off.
func DefaultShiftConfig(cardNo string) ShiftConfig {
	return ShiftConfig{
		CardNo:            cardNo,
		WorkStartTime:     DefaultWorkStartTime,
		WorkEndTime:       DefaultWorkEndTime,
		LateGraceMinutes:  0,
		EarlyGraceMinutes: 0,
		NotifyEmployee:    false,
	}
}
