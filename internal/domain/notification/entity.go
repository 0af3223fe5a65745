package notification

import (
	"time"
)

// ExceptionKind classifies an attendance exception for one day
type ExceptionKind string

const (
	KindMissingPunch ExceptionKind = "MISSING_PUNCH"
	KindLate         ExceptionKind = "LATE"
	KindEarlyLeave   ExceptionKind = "EARLY_LEAVE"
)

// noticePriority orders exception kinds for notice selection:
// MissingPunch beats Late beats EarlyLeave.
var noticePriority = []ExceptionKind{KindMissingPunch, KindLate, KindEarlyLeave}

// PickNoticeKind returns the highest-priority kind present in the set,
// or "" when the set is empty.
func PickNoticeKind(exceptions []AttendanceException) ExceptionKind {
	present := make(map[ExceptionKind]bool, len(exceptions))
	for _, exc := range exceptions {
		present[exc.Kind] = true
	}
	for _, kind := range noticePriority {
		if present[kind] {
			return kind
		}
	}
	return ""
}

// AttendanceException is an ephemeral classification of one day for one
// employee. Exceptions are computed per evaluation run and never stored;
// only notification outcomes referencing them reach the audit log.
type AttendanceException struct {
	CardNo string
	Date   time.Time
	Kind   ExceptionKind
	Detail string
}

// TargetStatus is the per-employee outcome of a dispatch run
type TargetStatus string

const (
	StatusSent    TargetStatus = "SENT"
	StatusSkipped TargetStatus = "SKIPPED"
	StatusFailed  TargetStatus = "FAILED"
)

// TargetResult is one employee's outcome within a run
type TargetResult struct {
	CardNo       string         `json:"card_no"`
	EmployeeName string         `json:"employee_name"`
	Status       TargetStatus   `json:"status"`
	NoticeType   *ExceptionKind `json:"notice_type"`
	ToEmail      *string        `json:"to_email"`
	Error        *string        `json:"error"`
}

// RunResult is the outcome record of one dispatcher invocation.
// SentCount + SkippedCount + FailedCount always equals TotalTargets.
type RunResult struct {
	Date         string         `json:"date"`
	TotalTargets int            `json:"total_targets"`
	SentCount    int            `json:"sent_count"`
	SkippedCount int            `json:"skipped_count"`
	FailedCount  int            `json:"failed_count"`
	Results      []TargetResult `json:"results"`
}

// Log is one persisted audit row for a non-skip outcome
type Log struct {
	ID      string
	CardNo  string
	Date    string
	Type    ExceptionKind
	ToEmail string
	CC      string
	SentAt  time.Time
	Status  TargetStatus
	Error   *string
}
