package notification

import (
	"fmt"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/notification"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/settings"
)

// clockOn places an HH:MM wall-clock string onto a calendar day
func clockOn(day time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}

// shiftBounds resolves the scheduled start and end instants for a day.
// An end at or before the start means the shift crosses midnight and
// ends on the following day.
func shiftBounds(day time.Time, config settings.ShiftConfig) (start, end time.Time, err error) {
	start, err = clockOn(day, config.WorkStartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = clockOn(day, config.WorkEndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

// EvaluateDay classifies one employee's day against their shift
// configuration. att nil means the day had no punches at all. now is
// the evaluation instant used to decide whether a missing punch-out is
// already overdue.
func EvaluateDay(att *report.DailyAttendance, config settings.ShiftConfig, day time.Time, now time.Time) ([]notification.AttendanceException, error) {
	start, end, err := shiftBounds(day, config)
	if err != nil {
		return nil, err
	}

	var exceptions []notification.AttendanceException
	add := func(kind notification.ExceptionKind, detail string) {
		exceptions = append(exceptions, notification.AttendanceException{
			CardNo: config.CardNo,
			Date:   day,
			Kind:   kind,
			Detail: detail,
		})
	}

	if att == nil || att.FirstIn == nil {
		add(notification.KindMissingPunch, "no punch-in recorded for the day")
		return exceptions, nil
	}

	lateDeadline := start.Add(time.Duration(config.LateGraceMinutes) * time.Minute)
	if att.FirstIn.After(lateDeadline) {
		add(notification.KindLate, fmt.Sprintf(
			"punched in at %s, shift starts %s with %d minutes grace",
			att.FirstIn.Format("15:04"), config.WorkStartTime, config.LateGraceMinutes))
	}

	if att.LastOut == nil {
		if now.After(end) {
			add(notification.KindMissingPunch, fmt.Sprintf(
				"no punch-out recorded after scheduled end %s", config.WorkEndTime))
		}
		return exceptions, nil
	}

	earlyDeadline := end.Add(-time.Duration(config.EarlyGraceMinutes) * time.Minute)
	if att.LastOut.Before(earlyDeadline) {
		add(notification.KindEarlyLeave, fmt.Sprintf(
			"punched out at %s, shift ends %s with %d minutes grace",
			att.LastOut.Format("15:04"), config.WorkEndTime, config.EarlyGraceMinutes))
	}

	return exceptions, nil
}
