package dto

// ── user admin requests ──

// UpdateUserRequest partial update; nil fields stay untouched.
type UpdateUserRequest struct {
	Name         *string   `json:"name"`
	Position     *string   `json:"position"`
	DepartmentID *string   `json:"departmentId"`
	IsAdmin      *bool     `json:"isAdmin"`
	AllowedTools *[]string `json:"allowedTools"`
}

// UpdateStatusRequest enable or disable an account.
type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// UpdateToolsRequest replace the capability list.
type UpdateToolsRequest struct {
	AllowedTools []string `json:"allowedTools" binding:"required"`
}
