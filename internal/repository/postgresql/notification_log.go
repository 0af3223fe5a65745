package postgresql

import (
	"context"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/notification"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/database"
)

type notificationLogRepositoryImpl struct {
	db *database.DB
}

func NewNotificationLogRepository(db *database.DB) notification.LogRepository {
	return &notificationLogRepositoryImpl{db: db}
}

// Insert implements notification.LogRepository.
func (r *notificationLogRepositoryImpl) Insert(ctx context.Context, log notification.Log) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notification_logs (id, card_no, date, type, to_email, cc, sent_at, status, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		log.ID,
		log.CardNo,
		log.Date,
		string(log.Type),
		log.ToEmail,
		log.CC,
		log.SentAt,
		string(log.Status),
		log.Error,
	)
	return err
}

// List implements notification.LogRepository.
func (r *notificationLogRepositoryImpl) List(ctx context.Context, limit int) ([]notification.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, card_no, date, type, to_email, cc, sent_at, status, error
		FROM notification_logs
		ORDER BY sent_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []notification.Log
	for rows.Next() {
		var l notification.Log
		if err := rows.Scan(
			&l.ID,
			&l.CardNo,
			&l.Date,
			&l.Type,
			&l.ToEmail,
			&l.CC,
			&l.SentAt,
			&l.Status,
			&l.Error,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
