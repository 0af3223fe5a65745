package http

import (
	"log/slog"
	"net/http"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/employee"
	"github.com/oilchem-hr/attendance-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo employee.EmployeeRepository) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeRepo: employeeRepo}
}

type employeeItem struct {
	EmpID      string  `json:"emp_id"`
	CardNo     string  `json:"card_no"`
	Name       string  `json:"name"`
	Department *string `json:"department"`
}

// Search implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	employees, err := h.employeeRepo.Search(r.Context(), search)
	if err != nil {
		slog.Error("Employee search error", "search", search, "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]employeeItem, 0, len(employees))
	for _, emp := range employees {
		items = append(items, employeeItem{
			EmpID:      emp.EmpID,
			CardNo:     emp.CardNo,
			Name:       emp.DisplayName(),
			Department: emp.Department,
		})
	}

	response.Success(w, items)
}
