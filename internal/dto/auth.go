package dto

// ── auth requests ──

// SignupRequest admin-side user creation (password supplied directly).
type SignupRequest struct {
	Email      string `json:"email"      binding:"omitempty,email"`
	Password   string `json:"password"   binding:"required,min=6"`
	Name       string `json:"name"       binding:"required"`
	Department string `json:"department" binding:"required"`
	Position   string `json:"position"   binding:"required"`
}

// RegisterRequest public passwordless pre-registration.
type RegisterRequest struct {
	Department string `json:"department" binding:"required"`
	Position   string `json:"position"   binding:"required"`
	Name       string `json:"name"       binding:"required"`
}

// SetPasswordRequest first-login password setup. Strength rules are
// enforced in the service layer.
type SetPasswordRequest struct {
	UserID   string `json:"userId"   binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CheckUserRequest pre-flight existence check.
type CheckUserRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// LoginRequest login by department + display name.
type LoginRequest struct {
	Department string `json:"department" binding:"required"`
	Username   string `json:"username"   binding:"required"`
	Password   string `json:"password"   binding:"required"`
}

// LoginByIDRequest login by business user ID.
type LoginByIDRequest struct {
	UserID   string `json:"userId"   binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest admin login by name or business user ID.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
