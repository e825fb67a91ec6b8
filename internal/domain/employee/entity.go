package employee

// Placeholders shown when the HRMS backend omits a field.
const (
	UnknownName     = "Unknown Employee"
	UnknownPosition = "Untitled Position"
	UnknownCompany  = "Unknown Company"
)

// Employee is the read-only copy of an HRMS employee.
type Employee struct {
	ID            int64
	Name          string
	Email         string
	DepartmentID  int64
	DesignationID int64
	EmpType       string
	Image         string
	Position      string
	Company       string
}
