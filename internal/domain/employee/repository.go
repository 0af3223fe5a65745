package employee

import (
	"context"
)

// EmployeeRepository reads the employee directory from the attendance
// source. The source is read-only; there are no write operations.
type EmployeeRepository interface {
	// GetByCardNo resolves a single active employee by card number
	GetByCardNo(ctx context.Context, cardNo string) (Employee, error)

	// Search lists active employees whose name or card number matches
	// the search term (empty term lists all, capped by the repository)
	Search(ctx context.Context, search string) ([]Employee, error)
}
