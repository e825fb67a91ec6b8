package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// getBoolFormValue reads a bool from the query or a parsed form
func getBoolFormValue(r *http.Request, key string) bool {
	val := r.FormValue(key)
	return val == "true" || val == "1"
}

// employeeIDParam reads the {id} route parameter as an HRMS employee id.
func employeeIDParam(r *http.Request) (int64, bool) {
	return validator.ParseID(chi.URLParam(r, "id"))
}
