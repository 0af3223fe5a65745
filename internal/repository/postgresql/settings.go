package postgresql

import (
	"context"
	"errors"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/settings"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftConfigRepositoryImpl struct {
	db *database.DB
}

func NewShiftConfigRepository(db *database.DB) settings.ShiftConfigRepository {
	return &shiftConfigRepositoryImpl{db: db}
}

const shiftConfigColumns = `
	id, card_no, emp_id, employee_name_cache, employee_email,
	work_start_time, work_end_time, late_grace_minutes, early_grace_minutes,
	notify_employee, notify_cc_override, updated_at
`

func scanShiftConfig(row pgx.Row) (settings.ShiftConfig, error) {
	var config settings.ShiftConfig
	err := row.Scan(
		&config.ID,
		&config.CardNo,
		&config.EmpID,
		&config.EmployeeNameCache,
		&config.EmployeeEmail,
		&config.WorkStartTime,
		&config.WorkEndTime,
		&config.LateGraceMinutes,
		&config.EarlyGraceMinutes,
		&config.NotifyEmployee,
		&config.NotifyCCOverride,
		&config.UpdatedAt,
	)
	return config, err
}

// GetByCardNo implements settings.ShiftConfigRepository.
func (r *shiftConfigRepositoryImpl) GetByCardNo(ctx context.Context, cardNo string) (*settings.ShiftConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftConfigColumns + ` FROM shift_configs WHERE card_no = $1 LIMIT 1`

	config, err := scanShiftConfig(q.QueryRow(ctx, query, cardNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &config, nil
}

// GetByCardNos implements settings.ShiftConfigRepository.
func (r *shiftConfigRepositoryImpl) GetByCardNos(ctx context.Context, cardNos []string) (map[string]settings.ShiftConfig, error) {
	result := make(map[string]settings.ShiftConfig)
	if len(cardNos) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftConfigColumns + ` FROM shift_configs WHERE card_no = ANY($1)`

	rows, err := q.Query(ctx, query, cardNos)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		config, err := scanShiftConfig(rows)
		if err != nil {
			return nil, err
		}
		result[config.CardNo] = config
	}

	return result, rows.Err()
}

// Upsert implements settings.ShiftConfigRepository.
func (r *shiftConfigRepositoryImpl) Upsert(ctx context.Context, config settings.ShiftConfig) (settings.ShiftConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_configs (
			id, card_no, emp_id, employee_name_cache, employee_email,
			work_start_time, work_end_time, late_grace_minutes, early_grace_minutes,
			notify_employee, notify_cc_override, updated_at
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (card_no) DO UPDATE SET
			emp_id = EXCLUDED.emp_id,
			employee_name_cache = EXCLUDED.employee_name_cache,
			employee_email = EXCLUDED.employee_email,
			work_start_time = EXCLUDED.work_start_time,
			work_end_time = EXCLUDED.work_end_time,
			late_grace_minutes = EXCLUDED.late_grace_minutes,
			early_grace_minutes = EXCLUDED.early_grace_minutes,
			notify_employee = EXCLUDED.notify_employee,
			notify_cc_override = EXCLUDED.notify_cc_override,
			updated_at = NOW()
		RETURNING ` + shiftConfigColumns

	return scanShiftConfig(q.QueryRow(ctx, query,
		config.CardNo,
		config.EmpID,
		config.EmployeeNameCache,
		config.EmployeeEmail,
		config.WorkStartTime,
		config.WorkEndTime,
		config.LateGraceMinutes,
		config.EarlyGraceMinutes,
		config.NotifyEmployee,
		config.NotifyCCOverride,
	))
}

// ListNotificationTargets implements settings.ShiftConfigRepository.
func (r *shiftConfigRepositoryImpl) ListNotificationTargets(ctx context.Context) ([]settings.ShiftConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftConfigColumns + `
		FROM shift_configs
		WHERE notify_employee = TRUE
		  AND employee_email IS NOT NULL
		  AND employee_email <> ''
		ORDER BY card_no ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []settings.ShiftConfig
	for rows.Next() {
		config, err := scanShiftConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}

	return configs, rows.Err()
}
