package postgresql

import (
	"context"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/employee"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/database"
)

const employeeSearchLimit = 200

// employeeRepositoryImpl reads the employee directory from the
// attendance source. Read-only, like the punch repository.
type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByCardNo implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCardNo(ctx context.Context, cardNo string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT emp_id, card_no, name, department
		FROM employees
		WHERE card_no = $1
		  AND active = TRUE
		LIMIT 1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, cardNo).Scan(
		&emp.EmpID,
		&emp.CardNo,
		&emp.Name,
		&emp.Department,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// Search implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Search(ctx context.Context, search string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT emp_id, card_no, name, department
		FROM employees
		WHERE active = TRUE
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR card_no ILIKE '%' || $1 || '%')
		ORDER BY name ASC, card_no ASC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, search, employeeSearchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.EmpID, &emp.CardNo, &emp.Name, &emp.Department); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
