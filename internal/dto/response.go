package dto

import "time"

// ── auth responses ──

// UserResponse sanitized user projection; never carries the password
// column in any form.
type UserResponse struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	UserID       string   `json:"userId"`
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	Department   string   `json:"department,omitempty"`
	DepartmentID string   `json:"departmentId,omitempty"`
	IsAdmin      bool     `json:"isAdmin"`
	AllowedTools []string `json:"allowedTools"`
}

// AuthResponse successful authentication payload.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// RegisterResponse passwordless pre-registration confirmation.
type RegisterResponse struct {
	Success    bool   `json:"success"`
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Message    string `json:"message"`
}

// CheckUserResponse pre-flight existence report. HasPassword is false
// for pending users so the client knows to route to password setup.
type CheckUserResponse struct {
	Exists      bool   `json:"exists"`
	HasPassword bool   `json:"hasPassword"`
	UserID      string `json:"userId,omitempty"`
	Name        string `json:"name,omitempty"`
	Department  string `json:"department,omitempty"`
	IsActive    bool   `json:"isActive,omitempty"`
}

// PrefixResponse user-ID prefix preview.
type PrefixResponse struct {
	Prefix string `json:"prefix"`
}

// SearchUserResponse minimal directory search hit.
type SearchUserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UserID     string `json:"userId"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// DepartmentUserBrief minimal projection nested in department views.
type DepartmentUserBrief struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email,omitempty"`
	IsActive bool   `json:"isActive"`
}

// ── user admin responses ──

// UserDetailResponse full directory row for the admin console.
type UserDetailResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Position     string     `json:"position"`
	Department   string     `json:"department,omitempty"`
	DepartmentID string     `json:"departmentId,omitempty"`
	IsAdmin      bool       `json:"isAdmin"`
	IsActive     bool       `json:"isActive"`
	AllowedTools []string   `json:"allowedTools"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ImportRowError a rejected row of a bulk import file.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportUsersResponse bulk import summary.
type ImportUsersResponse struct {
	Created int              `json:"created"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}

// ── department responses ──

// DepartmentResponse department with nested member projections.
type DepartmentResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	Manager       string                `json:"manager,omitempty"`
	EmployeeCount int                   `json:"employeeCount"`
	Users         []DepartmentUserBrief `json:"users"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ── fitness responses ──

// ExerciseResponse exercise definition.
type ExerciseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ExerciseBrief exercise summary nested in workout log views.
type ExerciseBrief struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// WorkoutLogResponse workout entry joined with its exercise.
type WorkoutLogResponse struct {
	ID          string        `json:"id"`
	ExerciseID  string        `json:"exerciseId"`
	Sets        *int          `json:"sets,omitempty"`
	Repetitions *int          `json:"repetitions,omitempty"`
	Weight      *float64      `json:"weight,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Date        time.Time     `json:"date"`
	Exercise    ExerciseBrief `json:"exercise"`
}

// BodyStatsResponse body measurement.
type BodyStatsResponse struct {
	ID     string    `json:"id"`
	Weight float64   `json:"weight"`
	Height float64   `json:"height"`
	Date   time.Time `json:"date"`
}

// DashboardResponse aggregate view for the fitness tool landing page.
type DashboardResponse struct {
	Exercises   []ExerciseResponse   `json:"exercises"`
	WorkoutLogs []WorkoutLogResponse `json:"workoutLogs"`
	BodyStats   []BodyStatsResponse  `json:"bodyStats"`
}
