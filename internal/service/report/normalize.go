package report

import (
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
)

// NormalizeDay reduces raw punches to the canonical first-in/last-out
// pair for one calendar day. day must be midnight in the punch
// timestamps' location; punches may span a wider range than the day.
//
// first_in is the earliest punch whose calendar date equals day.
// last_out is the latest punch in [day, day+1 00:00 + cutoffHours),
// which lets a punch-out shortly after midnight close the previous
// day's shift. A day with no punches yields nil; a day with a single
// punch yields a record with no last_out and no duration.
func NormalizeDay(punches []report.PunchEvent, day time.Time, cutoffHours int) *report.DailyAttendance {
	dayEnd := day.AddDate(0, 0, 1)
	windowEnd := dayEnd.Add(time.Duration(cutoffHours) * time.Hour)

	var firstIn *time.Time
	for _, p := range punches {
		if p.Timestamp.Before(day) || !p.Timestamp.Before(dayEnd) {
			continue
		}
		if firstIn == nil || p.Timestamp.Before(*firstIn) {
			ts := p.Timestamp
			firstIn = &ts
		}
	}
	if firstIn == nil {
		return nil
	}

	var lastOut *time.Time
	for _, p := range punches {
		if p.Timestamp.Before(day) || !p.Timestamp.Before(windowEnd) {
			continue
		}
		if p.Timestamp.Equal(*firstIn) {
			continue
		}
		if lastOut == nil || p.Timestamp.After(*lastOut) {
			ts := p.Timestamp
			lastOut = &ts
		}
	}

	record := report.DailyAttendance{
		CardNo:  cardNoOf(punches),
		Date:    day,
		FirstIn: firstIn,
		LastOut: lastOut,
	}

	if lastOut == nil {
		record.MissingPunch = true
		return &record
	}
	if lastOut.Before(*firstIn) {
		record.Anomalous = true
		return &record
	}

	record.DurationMinutes = DurationMinutes(firstIn, lastOut)
	return &record
}

func cardNoOf(punches []report.PunchEvent) string {
	if len(punches) == 0 {
		return ""
	}
	return punches[0].CardNo
}
