package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HRMS logical resources discovered at startup.
const (
	ResourceStats         = "stats"
	ResourceEmployees     = "employees"
	ResourceSessions      = "sessions"
	ResourceAttendance    = "attendance"
	ResourceLeaveRequests = "leave_requests"
)

// HRMSEndpoints lists candidate read paths per resource, in probing order, and
// the action paths. Action paths may contain {id}.
type HRMSEndpoints struct {
	Resources map[string][]string `yaml:"resources"`
	Actions   map[string]string   `yaml:"actions"`
}

// DefaultHRMSEndpoints returns the routes known to be served by the HRMS
// backend deployments.
func DefaultHRMSEndpoints() HRMSEndpoints {
	return HRMSEndpoints{
		Resources: map[string][]string{
			ResourceStats:         {"/api/hrms/stats", "/hrms/stats", "/api/employers/hrms/stats"},
			ResourceEmployees:     {"/api/hrms/employees", "/api/employers/hrms/employees"},
			ResourceSessions:      {"/api/hrms/time-tracking", "/api/hrms/time-tracking/sessions"},
			ResourceAttendance:    {"/api/hrms/attendance", "/api/employers/hrms/attendance"},
			ResourceLeaveRequests: {"/api/hrms/leave-requests", "/api/hrms/leaves"},
		},
		Actions: map[string]string{
			"clock-in":      "/api/hrms/time-tracking/clock-in",
			"clock-out":     "/api/hrms/time-tracking/clock-out",
			"break-start":   "/api/hrms/time-tracking/break-start",
			"break-end":     "/api/hrms/time-tracking/break-end",
			"leave-approve": "/api/hrms/leave-requests/{id}/approve",
			"leave-reject":  "/api/hrms/leave-requests/{id}/reject",
		},
	}
}

// LoadHRMSEndpoints reads an endpoints YAML file over the defaults. Entries in
// the file replace the default entry of the same name. An empty path returns
// the defaults.
func LoadHRMSEndpoints(path string) (HRMSEndpoints, error) {
	endpoints := DefaultHRMSEndpoints()
	if path == "" {
		return endpoints, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return HRMSEndpoints{}, fmt.Errorf("error reading HRMS endpoints file: %w", err)
	}

	var file HRMSEndpoints
	if err := yaml.Unmarshal(data, &file); err != nil {
		return HRMSEndpoints{}, fmt.Errorf("error parsing HRMS endpoints file: %w", err)
	}

	for resource, paths := range file.Resources {
		if len(paths) == 0 {
			return HRMSEndpoints{}, fmt.Errorf("HRMS endpoints file: resource %q has no candidate paths", resource)
		}
		endpoints.Resources[resource] = paths
	}
	for action, path := range file.Actions {
		if path == "" {
			return HRMSEndpoints{}, fmt.Errorf("HRMS endpoints file: action %q has an empty path", action)
		}
		endpoints.Actions[action] = path
	}

	return endpoints, nil
}
