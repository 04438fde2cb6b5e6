package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Bataa715/Audit/internal/model"
)

// Every fitness repository scopes reads and deletes by owner: a record
// that belongs to another user behaves exactly like a missing record.

// ExerciseRepository exercise data access.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	GetOwned(ctx context.Context, id, ownerID string) (*model.Exercise, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Exercise, error)
	Delete(ctx context.Context, id string) error
}

type exerciseRepo struct {
	db *gorm.DB
}

// NewExerciseRepo creates the GORM-backed ExerciseRepository.
func NewExerciseRepo(db *gorm.DB) ExerciseRepository {
	return &exerciseRepo{db: db}
}

func (r *exerciseRepo) Create(ctx context.Context, exercise *model.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *exerciseRepo) GetOwned(ctx context.Context, id, ownerID string) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Exercise, error) {
	var exercises []model.Exercise
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&exercises).Error
	return exercises, err
}

func (r *exerciseRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Exercise{}).Error
}

// WorkoutLogRepository workout log data access.
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *model.WorkoutLog) error
	GetOwned(ctx context.Context, id, ownerID string) (*model.WorkoutLog, error)
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]model.WorkoutLog, error)
	Delete(ctx context.Context, id string) error
}

type workoutLogRepo struct {
	db *gorm.DB
}

// NewWorkoutLogRepo creates the GORM-backed WorkoutLogRepository.
func NewWorkoutLogRepo(db *gorm.DB) WorkoutLogRepository {
	return &workoutLogRepo{db: db}
}

func (r *workoutLogRepo) Create(ctx context.Context, log *model.WorkoutLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *workoutLogRepo) GetOwned(ctx context.Context, id, ownerID string) (*model.WorkoutLog, error) {
	var log model.WorkoutLog
	err := r.db.WithContext(ctx).
		Preload("Exercise").
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// ListByOwner returns logs newest first; limit <= 0 means unbounded.
func (r *workoutLogRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]model.WorkoutLog, error) {
	var logs []model.WorkoutLog
	db := r.db.WithContext(ctx).
		Preload("Exercise").
		Where("user_id = ?", ownerID).
		Order("date DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&logs).Error
	return logs, err
}

func (r *workoutLogRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WorkoutLog{}).Error
}

// BodyStatsRepository body measurement data access.
type BodyStatsRepository interface {
	Create(ctx context.Context, stats *model.BodyStats) error
	GetOwned(ctx context.Context, id, ownerID string) (*model.BodyStats, error)
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]model.BodyStats, error)
	Delete(ctx context.Context, id string) error
}

type bodyStatsRepo struct {
	db *gorm.DB
}

// NewBodyStatsRepo creates the GORM-backed BodyStatsRepository.
func NewBodyStatsRepo(db *gorm.DB) BodyStatsRepository {
	return &bodyStatsRepo{db: db}
}

func (r *bodyStatsRepo) Create(ctx context.Context, stats *model.BodyStats) error {
	return r.db.WithContext(ctx).Create(stats).Error
}

func (r *bodyStatsRepo) GetOwned(ctx context.Context, id, ownerID string) (*model.BodyStats, error) {
	var stats model.BodyStats
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListByOwner returns measurements newest first; limit <= 0 means unbounded.
func (r *bodyStatsRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]model.BodyStats, error) {
	var stats []model.BodyStats
	db := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&stats).Error
	return stats, err
}

func (r *bodyStatsRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BodyStats{}).Error
}
