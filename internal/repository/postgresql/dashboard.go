package postgresql

import (
	"context"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/dashboard"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// ListConfiguredCardNos implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ListConfiguredCardNos(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT card_no FROM shift_configs ORDER BY card_no ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cardNos []string
	for rows.Next() {
		var cardNo string
		if err := rows.Scan(&cardNo); err != nil {
			return nil, err
		}
		cardNos = append(cardNos, cardNo)
	}

	return cardNos, rows.Err()
}

// GetOutcomeStatsByDay implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetOutcomeStatsByDay(ctx context.Context, date time.Time) (*dashboard.OutcomeStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'SENT') AS sent,
			COUNT(*) FILTER (WHERE status = 'FAILED') AS failed
		FROM notification_logs
		WHERE date = $1
	`

	var stats dashboard.OutcomeStats
	err := q.QueryRow(ctx, query, date.Format("2006-01-02")).Scan(&stats.Sent, &stats.Failed)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetRecentLogs implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetRecentLogs(ctx context.Context, limit int) ([]dashboard.RecentLogItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			nl.card_no,
			COALESCE(sc.employee_name_cache, nl.card_no) AS employee_name,
			nl.type,
			nl.status,
			nl.sent_at
		FROM notification_logs nl
		LEFT JOIN shift_configs sc ON sc.card_no = nl.card_no
		ORDER BY nl.sent_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []dashboard.RecentLogItem
	no := 1
	for rows.Next() {
		var item dashboard.RecentLogItem
		var sentAt time.Time
		if err := rows.Scan(&item.CardNo, &item.EmployeeName, &item.Type, &item.Status, &sentAt); err != nil {
			return nil, err
		}
		item.No = no
		item.SentAt = sentAt.Format("2006-01-02 15:04:05")
		items = append(items, item)
		no++
	}

	return items, rows.Err()
}
