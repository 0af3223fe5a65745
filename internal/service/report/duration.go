package report

import (
	"fmt"
	"time"
)

// DurationMinutes computes whole elapsed minutes between in and out.
// Returns nil when either endpoint is nil or when out precedes in; the
// caller flags the latter as anomalous instead of zeroing it.
func DurationMinutes(in, out *time.Time) *int {
	if in == nil || out == nil {
		return nil
	}
	if out.Before(*in) {
		return nil
	}
	minutes := int(out.Sub(*in).Minutes())
	return &minutes
}

// ToHHMM renders minutes as a zero-padded "HH:MM" string
func ToHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ToReadable renders minutes as "H Hrs MM Mins", or "MM Mins" when the
// value is under an hour. The minute part is always two digits, the
// hour part never padded.
func ToReadable(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%02d Mins", mins)
	}
	return fmt.Sprintf("%d Hrs %02d Mins", hours, mins)
}
