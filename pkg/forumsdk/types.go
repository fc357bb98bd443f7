package forumsdk

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a short machine readable code (e.g., "invalid_request", "not_found")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// SeedStatusResponse reports whether a course has its forum roles seeded.
type SeedStatusResponse struct {
	CourseID string `json:"course_id"`
	Seeded   bool   `json:"seeded"`
}

// UnseedResponse names the roles an unseed removed. Skipped roles exist under
// a differently cased course id and were left in place.
type UnseedResponse struct {
	CourseID string   `json:"course_id"`
	Removed  []string `json:"removed"`
	Skipped  []string `json:"skipped"`
}

// RoleInfo is a forum role of a course and its permissions.
type RoleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CourseID    string   `json:"course_id"`
	Permissions []string `json:"permissions"`
}

// ListRolesResponse lists the forum roles of a course.
type ListRolesResponse struct {
	CourseID string     `json:"course_id"`
	Roles    []RoleInfo `json:"roles"`
}

// PermissionCheckResponse reports whether a role holds a permission.
type PermissionCheckResponse struct {
	CourseID   string `json:"course_id"`
	Role       string `json:"role"`
	Permission string `json:"permission"`
	Granted    bool   `json:"granted"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok", "degraded")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks holds per-dependency status, readiness only
	Checks *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	// Database indicates the role store connection status
	Database string `json:"database"`
}
