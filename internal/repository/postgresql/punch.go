package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/database"
)

// punchRepositoryImpl reads the time-and-attendance source. The source
// is another system's database; every statement here is a SELECT.
type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) report.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// sourceErr tags a read failure so handlers can answer 503 instead of
// a generic 500 when the external source is down.
func sourceErr(err error) error {
	return fmt.Errorf("%w: %v", report.ErrSourceUnavailable, err)
}

// GetPunches implements report.PunchRepository.
func (r *punchRepositoryImpl) GetPunches(ctx context.Context, cardNo string, from, to time.Time) ([]report.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT card_no, punch_time
		FROM punch_events
		WHERE card_no = $1
		  AND punch_time >= $2
		  AND punch_time < $3
		ORDER BY punch_time ASC
	`

	rows, err := q.Query(ctx, query, cardNo, from, to)
	if err != nil {
		return nil, sourceErr(err)
	}
	defer rows.Close()

	var punches []report.PunchEvent
	for rows.Next() {
		var p report.PunchEvent
		if err := rows.Scan(&p.CardNo, &p.Timestamp); err != nil {
			return nil, sourceErr(err)
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, sourceErr(err)
	}
	return punches, nil
}

// GetPunchesInRange implements report.PunchRepository.
func (r *punchRepositoryImpl) GetPunchesInRange(ctx context.Context, from, to time.Time) ([]report.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT card_no, punch_time
		FROM punch_events
		WHERE punch_time >= $1
		  AND punch_time < $2
		ORDER BY card_no ASC, punch_time ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, sourceErr(err)
	}
	defer rows.Close()

	var punches []report.PunchEvent
	for rows.Next() {
		var p report.PunchEvent
		if err := rows.Scan(&p.CardNo, &p.Timestamp); err != nil {
			return nil, sourceErr(err)
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, sourceErr(err)
	}
	return punches, nil
}
