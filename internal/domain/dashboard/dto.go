package dashboard

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	PunchSummary     PunchSummaryResponse     `json:"punch_summary"`
	ExceptionSummary ExceptionSummaryResponse `json:"exception_summary"`
	RecentLogs       []RecentLogItem          `json:"recent_logs"`
	Date             string                   `json:"date"` // Format: "YYYY-MM-DD"
}

// PunchSummaryResponse counts employees by punch completeness for a day
type PunchSummaryResponse struct {
	TotalEmployees int64 `json:"total_employees"` // employees with a shift config
	Punched        int64 `json:"punched"`         // at least one punch on the day
	Complete       int64 `json:"complete"`        // both first-in and last-out resolved
	MissingPunch   int64 `json:"missing_punch"`
}

// ExceptionSummaryResponse counts notification outcomes for a day
type ExceptionSummaryResponse struct {
	Sent    int64 `json:"sent"`
	Failed  int64 `json:"failed"`
	Skipped int64 `json:"skipped"`
}

// RecentLogItem is a single notification log row in the dashboard list
type RecentLogItem struct {
	No           int    `json:"no"`
	EmployeeName string `json:"employee_name"`
	CardNo       string `json:"card_no"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	SentAt       string `json:"sent_at"` // Format: "2006-01-02 15:04:05"
}
