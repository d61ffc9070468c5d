package domain

// Status represents a lightweight state value.
type Status string

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// Session carries the authenticated identity. Admin and user sessions are
// mutually exclusive: a session holds exactly one role.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"` // "admin" or "user"
}
