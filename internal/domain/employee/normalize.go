package employee

import (
	"strings"

	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
)

var (
	idKeys          = []string{"id", "employeeId", "employee_id", "emp_id"}
	nameKeys        = []string{"name", "full_name", "fullName", "employee_name", "employeeName"}
	emailKeys       = []string{"email", "work_email"}
	departmentKeys  = []string{"department_id", "departmentId", "dept_id"}
	designationKeys = []string{"designation_id", "designationId", "position_id"}
	empTypeKeys     = []string{"emp_type", "empType", "employment_type", "employee_type"}
	imageKeys       = []string{"image", "avatar", "photo", "profile_image"}
	positionKeys    = []string{"position", "designation", "title", "job_title"}
	companyKeys     = []string{"company", "company_name", "companyName"}
)

// Normalize converts one raw employee object, filling placeholders for
// missing display fields.
func Normalize(raw coerce.Object) Employee {
	e := Employee{
		ID:            coerce.ID(coerce.First(raw, idKeys...)),
		Name:          coerce.StringOr(coerce.First(raw, nameKeys...), UnknownName),
		Email:         coerce.String(coerce.First(raw, emailKeys...)),
		DepartmentID:  coerce.ID(coerce.First(raw, departmentKeys...)),
		DesignationID: coerce.ID(coerce.First(raw, designationKeys...)),
		EmpType:       strings.ToLower(coerce.String(coerce.First(raw, empTypeKeys...))),
		Image:         coerce.String(coerce.First(raw, imageKeys...)),
		Position:      UnknownPosition,
		Company:       UnknownCompany,
	}

	// position and company are either plain strings or nested {name: ...}
	if v := coerce.First(raw, positionKeys...); v != nil {
		e.Position = nestedName(v, UnknownPosition)
	}
	if v := coerce.First(raw, companyKeys...); v != nil {
		e.Company = nestedName(v, UnknownCompany)
	}
	return e
}

// NormalizeAll converts a decoded payload (bare array or envelope). It never
// fails; entries without a usable id are dropped.
func NormalizeAll(payload any) []Employee {
	objs := coerce.Objects(payload)
	out := make([]Employee, 0, len(objs))
	for _, obj := range objs {
		e := Normalize(obj)
		if e.ID == 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}

func nestedName(v any, fallback string) string {
	if obj, ok := v.(coerce.Object); ok {
		return coerce.StringOr(coerce.First(obj, "name", "title"), fallback)
	}
	return coerce.StringOr(v, fallback)
}
