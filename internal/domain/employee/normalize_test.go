package employee

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestNormalizeAll(t *testing.T) {
	payload := decode(t, `{"data": [
		{"id": "7", "name": "Ana", "email": "ana@example.com", "department_id": 2, "designation_id": "3", "emp_type": "Permanent", "position": {"name": "Engineer"}, "company": "Acme"},
		{"emp_id": 8},
		{"name": "no id"},
		"garbage"
	]}`)

	got := NormalizeAll(payload)
	require.Len(t, got, 2)

	assert.Equal(t, Employee{
		ID: 7, Name: "Ana", Email: "ana@example.com", DepartmentID: 2, DesignationID: 3,
		EmpType: "permanent", Position: "Engineer", Company: "Acme",
	}, got[0])

	assert.Equal(t, int64(8), got[1].ID)
	assert.Equal(t, UnknownName, got[1].Name)
	assert.Equal(t, UnknownPosition, got[1].Position)
	assert.Equal(t, UnknownCompany, got[1].Company)
}

func TestNormalize_EmptyNestedNameFallsBack(t *testing.T) {
	e := Normalize(map[string]any{"id": json.Number("1"), "name": "  ", "position": map[string]any{"name": ""}})
	assert.Equal(t, UnknownName, e.Name)
	assert.Equal(t, UnknownPosition, e.Position)
}
