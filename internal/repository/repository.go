package repository

import "gorm.io/gorm"

// Repository aggregates all entity repositories.
type Repository struct {
	User       UserRepository
	Department DepartmentRepository
	Exercise   ExerciseRepository
	WorkoutLog WorkoutLogRepository
	BodyStats  BodyStatsRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Department: NewDepartmentRepo(db),
		Exercise:   NewExerciseRepo(db),
		WorkoutLog: NewWorkoutLogRepo(db),
		BodyStats:  NewBodyStatsRepo(db),
	}
}
