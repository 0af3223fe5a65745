package employee

// Employee is the identity row resolved from the attendance source
// directory. CardNo is the join key into punch events; EmpID is the
// source's own identifier and may differ from the card number.
type Employee struct {
	EmpID      string
	CardNo     string
	Name       string
	Department *string
}

// DisplayName returns the employee name, falling back to the card
// number when the directory has no usable name.
func (e Employee) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.CardNo
}
