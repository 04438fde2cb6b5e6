package dto

// ── department requests ──

// CreateDepartmentRequest explicit admin creation.
type CreateDepartmentRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Manager       string `json:"manager"`
	EmployeeCount int    `json:"employeeCount" binding:"omitempty,min=0"`
}

// UpdateDepartmentRequest partial update; nil fields stay untouched.
type UpdateDepartmentRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Manager       *string `json:"manager"`
	EmployeeCount *int    `json:"employeeCount"`
}
