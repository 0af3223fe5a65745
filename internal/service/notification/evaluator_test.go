package notification

import (
	"testing"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/notification"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() settings.ShiftConfig {
	config := settings.DefaultShiftConfig("1001")
	config.LateGraceMinutes = 10
	config.EarlyGraceMinutes = 10
	return config
}

func ts(day time.Time, hour, min int) *time.Time {
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
	return &t
}

func attendanceFor(day time.Time, inHour, inMin, outHour, outMin int) *report.DailyAttendance {
	in := ts(day, inHour, inMin)
	out := ts(day, outHour, outMin)
	return &report.DailyAttendance{CardNo: "1001", Date: day, FirstIn: in, LastOut: out}
}

func kindsOf(exceptions []notification.AttendanceException) []notification.ExceptionKind {
	var kinds []notification.ExceptionKind
	for _, exc := range exceptions {
		kinds = append(kinds, exc.Kind)
	}
	return kinds
}

func TestEvaluateDay_OnTime(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	att := attendanceFor(day, 8, 55, 18, 10)

	exceptions, err := EvaluateDay(att, testConfig(), day, *ts(day, 23, 0))
	require.NoError(t, err)
	assert.Empty(t, exceptions)
}

func TestEvaluateDay_LateBeyondGrace(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	att := attendanceFor(day, 9, 15, 18, 0)

	exceptions, err := EvaluateDay(att, testConfig(), day, *ts(day, 23, 0))
	require.NoError(t, err)
	assert.Contains(t, kindsOf(exceptions), notification.KindLate)
}

func TestEvaluateDay_WithinGraceIsNotLate(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	att := attendanceFor(day, 9, 9, 18, 0)

	exceptions, err := EvaluateDay(att, testConfig(), day, *ts(day, 23, 0))
	require.NoError(t, err)
	assert.NotContains(t, kindsOf(exceptions), notification.KindLate)
}

func TestEvaluateDay_ExactGraceBoundaryIsNotLate(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	att := attendanceFor(day, 9, 10, 18, 0)

	exceptions, err := EvaluateDay(att, testConfig(), day, *ts(day, 23, 0))
	require.NoError(t, err)
	assert.NotContains(t, kindsOf(exceptions), notification.KindLate)
}

func TestEvaluateDay_EarlyLeave(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	att := attendanceFor(day, 9, 0, 17, 30)

	exceptions, err := EvaluateDay(att, testConfig(), day, *ts(day, 23, 0))
	require.NoError(t, err)
	assert.Contains(t, kindsOf(exceptions), notification.KindEarlyLeave)
}

func TestEvaluateDay_EarlyWithinGrace(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	att := attendanceFor(day, 9, 0, 17, 50)

	exceptions, err := EvaluateDay(att, testConfig(), day, *ts(day, 23, 0))
	require.NoError(t, err)
	assert.NotContains(t, kindsOf(exceptions), notification.KindEarlyLeave)
}

func TestEvaluateDay_NoPunchesIsMissing(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	exceptions, err := EvaluateDay(nil, testConfig(), day, *ts(day, 23, 0))
	require.NoError(t, err)
	require.Len(t, exceptions, 1)
	assert.Equal(t, notification.KindMissingPunch, exceptions[0].Kind)
}

func TestEvaluateDay_MissingPunchOutAfterShiftEnd(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	att := &report.DailyAttendance{
		CardNo:       "1001",
		Date:         day,
		FirstIn:      ts(day, 9, 0),
		MissingPunch: true,
	}

	exceptions, err := EvaluateDay(att, testConfig(), day, *ts(day, 20, 0))
	require.NoError(t, err)
	assert.Contains(t, kindsOf(exceptions), notification.KindMissingPunch)
}

func TestEvaluateDay_MissingPunchOutBeforeShiftEnd(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	att := &report.DailyAttendance{
		CardNo:       "1001",
		Date:         day,
		FirstIn:      ts(day, 9, 0),
		MissingPunch: true,
	}

	// the shift is still running, an open punch-out is not yet an exception
	exceptions, err := EvaluateDay(att, testConfig(), day, *ts(day, 15, 0))
	require.NoError(t, err)
	assert.Empty(t, exceptions)
}

func TestEvaluateDay_CrossMidnightShiftEnd(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	config := testConfig()
	config.WorkStartTime = "22:00"
	config.WorkEndTime = "06:00"

	in := ts(day, 22, 5)
	out := time.Date(2025, 3, 11, 5, 0, 0, 0, time.Local)
	att := &report.DailyAttendance{CardNo: "1001", Date: day, FirstIn: in, LastOut: &out}

	// leaving at 05:00 against a 06:00 end with 10 minutes grace
	exceptions, err := EvaluateDay(att, config, day, out.Add(8*time.Hour))
	require.NoError(t, err)
	assert.Contains(t, kindsOf(exceptions), notification.KindEarlyLeave)
	assert.NotContains(t, kindsOf(exceptions), notification.KindLate)
}

func TestEvaluateDay_InvalidClockTime(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	config := testConfig()
	config.WorkStartTime = "25:99"

	_, err := EvaluateDay(nil, config, day, time.Now())
	assert.Error(t, err)
}

func TestPickNoticeKind_Priority(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	exceptions := []notification.AttendanceException{
		{CardNo: "1001", Date: day, Kind: notification.KindEarlyLeave},
		{CardNo: "1001", Date: day, Kind: notification.KindLate},
	}
	assert.Equal(t, notification.KindLate, notification.PickNoticeKind(exceptions))

	exceptions = append(exceptions, notification.AttendanceException{
		CardNo: "1001", Date: day, Kind: notification.KindMissingPunch,
	})
	assert.Equal(t, notification.KindMissingPunch, notification.PickNoticeKind(exceptions))

	assert.Equal(t, notification.ExceptionKind(""), notification.PickNoticeKind(nil))
}
