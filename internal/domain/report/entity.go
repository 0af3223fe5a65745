package report

import (
	"time"
)

// PunchEvent is a single raw swipe from the attendance source.
// Events are immutable and ordered by timestamp within a query window.
type PunchEvent struct {
	CardNo    string
	Timestamp time.Time
}

// DailyAttendance is the normalized first-in/last-out view of one
// calendar day for one card. It is derived on every query and never
// persisted.
//
// When FirstIn is nil the whole record is absent (a day with zero
// punches produces no DailyAttendance at all). LastOut may fall on the
// day after Date for cross-midnight shifts, bounded by the shift-out
// cutoff. Anomalous marks a day whose raw last punch-out preceded the
// first punch-in; the duration is withheld rather than zeroed.
type DailyAttendance struct {
	CardNo          string
	Date            time.Time
	FirstIn         *time.Time
	LastOut         *time.Time
	DurationMinutes *int
	MissingPunch    bool
	Anomalous       bool
}
