package dto

// ── fitness tool requests ──

// CreateExerciseRequest new exercise definition.
type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// CreateWorkoutLogRequest new workout entry. ExerciseID must reference
// an exercise owned by the caller.
type CreateWorkoutLogRequest struct {
	ExerciseID  string   `json:"exerciseId" binding:"required"`
	Sets        *int     `json:"sets"        binding:"omitempty,min=0"`
	Repetitions *int     `json:"repetitions" binding:"omitempty,min=0"`
	Weight      *float64 `json:"weight"      binding:"omitempty,min=0"`
	Notes       string   `json:"notes"`
}

// CreateBodyStatsRequest new body measurement.
type CreateBodyStatsRequest struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
}
