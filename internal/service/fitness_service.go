package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bataa715/Audit/internal/dto"
	"github.com/Bataa715/Audit/internal/model"
	"github.com/Bataa715/Audit/internal/repository"
)

var (
	ErrToolForbidden      = errors.New("Танд энэ хэрэгслийг ашиглах эрх байхгүй байна")
	ErrExerciseNotFound   = errors.New("Дасгал олдсонгүй")
	ErrWorkoutLogNotFound = errors.New("Дасгалын бүртгэл олдсонгүй")
	ErrBodyStatsNotFound  = errors.New("Биеийн үзүүлэлт олдсонгүй")
)

// fitnessTool is the capability tag gating this module.
const fitnessTool = "fitness"

// Dashboard window sizes.
const (
	dashboardLogLimit   = 100
	dashboardStatsLimit = 30
)

// FitnessService is the fitness tool module. Every operation first
// passes the access gate, then scopes all data by the calling user.
type FitnessService interface {
	ListExercises(ctx context.Context, userID string) ([]dto.ExerciseResponse, error)
	CreateExercise(ctx context.Context, userID string, req *dto.CreateExerciseRequest) (*dto.ExerciseResponse, error)
	DeleteExercise(ctx context.Context, userID, id string) error

	ListWorkoutLogs(ctx context.Context, userID string) ([]dto.WorkoutLogResponse, error)
	CreateWorkoutLog(ctx context.Context, userID string, req *dto.CreateWorkoutLogRequest) (*dto.WorkoutLogResponse, error)
	DeleteWorkoutLog(ctx context.Context, userID, id string) error

	ListBodyStats(ctx context.Context, userID string) ([]dto.BodyStatsResponse, error)
	CreateBodyStats(ctx context.Context, userID string, req *dto.CreateBodyStatsRequest) (*dto.BodyStatsResponse, error)
	DeleteBodyStats(ctx context.Context, userID, id string) error

	Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
}

type fitnessService struct {
	repo   *repository.Repository
	access AccessService
	logger *zap.Logger
}

// NewFitnessService creates the FitnessService.
func NewFitnessService(repo *repository.Repository, access AccessService, logger *zap.Logger) FitnessService {
	return &fitnessService{repo: repo, access: access, logger: logger}
}

// gate checks the capability tag before any data is touched.
func (s *fitnessService) gate(ctx context.Context, userID string) error {
	ok, err := s.access.HasTool(ctx, userID, fitnessTool)
	if err != nil {
		return err
	}
	if !ok {
		return ErrToolForbidden
	}
	return nil
}

func (s *fitnessService) ListExercises(ctx context.Context, userID string) ([]dto.ExerciseResponse, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}
	exercises, err := s.repo.Exercise.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("listing exercises failed", zap.Error(err))
		return nil, err
	}

	responses := make([]dto.ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		responses = append(responses, toExerciseResponse(&exercises[i]))
	}
	return responses, nil
}

func (s *fitnessService) CreateExercise(ctx context.Context, userID string, req *dto.CreateExerciseRequest) (*dto.ExerciseResponse, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	exercise := &model.Exercise{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		UserID:      userID,
	}
	if err := s.repo.Exercise.Create(ctx, exercise); err != nil {
		s.logger.Error("creating exercise failed", zap.Error(err))
		return nil, err
	}

	resp := toExerciseResponse(exercise)
	return &resp, nil
}

func (s *fitnessService) DeleteExercise(ctx context.Context, userID, id string) error {
	if err := s.gate(ctx, userID); err != nil {
		return err
	}
	// ownership check: someone else's exercise looks like a missing one
	if _, err := s.repo.Exercise.GetOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExerciseNotFound
		}
		s.logger.Error("exercise lookup failed", zap.Error(err))
		return err
	}
	return s.repo.Exercise.Delete(ctx, id)
}

func (s *fitnessService) ListWorkoutLogs(ctx context.Context, userID string) ([]dto.WorkoutLogResponse, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}
	logs, err := s.repo.WorkoutLog.ListByOwner(ctx, userID, 0)
	if err != nil {
		s.logger.Error("listing workout logs failed", zap.Error(err))
		return nil, err
	}

	responses := make([]dto.WorkoutLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, toWorkoutLogResponse(&logs[i]))
	}
	return responses, nil
}

// CreateWorkoutLog records a workout. The referenced exercise must
// belong to the same user; a foreign exercise reads as not found.
func (s *fitnessService) CreateWorkoutLog(ctx context.Context, userID string, req *dto.CreateWorkoutLogRequest) (*dto.WorkoutLogResponse, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	exercise, err := s.repo.Exercise.GetOwned(ctx, req.ExerciseID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		s.logger.Error("exercise lookup failed", zap.Error(err))
		return nil, err
	}

	log := &model.WorkoutLog{
		ExerciseID:  exercise.ID,
		UserID:      userID,
		Sets:        req.Sets,
		Repetitions: req.Repetitions,
		Weight:      req.Weight,
		Notes:       req.Notes,
	}
	if err := s.repo.WorkoutLog.Create(ctx, log); err != nil {
		s.logger.Error("creating workout log failed", zap.Error(err))
		return nil, err
	}
	log.Exercise = exercise

	resp := toWorkoutLogResponse(log)
	return &resp, nil
}

func (s *fitnessService) DeleteWorkoutLog(ctx context.Context, userID, id string) error {
	if err := s.gate(ctx, userID); err != nil {
		return err
	}
	if _, err := s.repo.WorkoutLog.GetOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkoutLogNotFound
		}
		s.logger.Error("workout log lookup failed", zap.Error(err))
		return err
	}
	return s.repo.WorkoutLog.Delete(ctx, id)
}

func (s *fitnessService) ListBodyStats(ctx context.Context, userID string) ([]dto.BodyStatsResponse, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}
	stats, err := s.repo.BodyStats.ListByOwner(ctx, userID, 0)
	if err != nil {
		s.logger.Error("listing body stats failed", zap.Error(err))
		return nil, err
	}

	responses := make([]dto.BodyStatsResponse, 0, len(stats))
	for i := range stats {
		responses = append(responses, toBodyStatsResponse(&stats[i]))
	}
	return responses, nil
}

func (s *fitnessService) CreateBodyStats(ctx context.Context, userID string, req *dto.CreateBodyStatsRequest) (*dto.BodyStatsResponse, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	stats := &model.BodyStats{
		UserID: userID,
		Weight: req.Weight,
		Height: req.Height,
	}
	if err := s.repo.BodyStats.Create(ctx, stats); err != nil {
		s.logger.Error("creating body stats failed", zap.Error(err))
		return nil, err
	}

	resp := toBodyStatsResponse(stats)
	return &resp, nil
}

func (s *fitnessService) DeleteBodyStats(ctx context.Context, userID, id string) error {
	if err := s.gate(ctx, userID); err != nil {
		return err
	}
	if _, err := s.repo.BodyStats.GetOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBodyStatsNotFound
		}
		s.logger.Error("body stats lookup failed", zap.Error(err))
		return err
	}
	return s.repo.BodyStats.Delete(ctx, id)
}

// Dashboard aggregates the tool landing page: all exercises, the last
// 100 workout logs and the last 30 measurements.
func (s *fitnessService) Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	exercises, err := s.repo.Exercise.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("listing exercises failed", zap.Error(err))
		return nil, err
	}
	logs, err := s.repo.WorkoutLog.ListByOwner(ctx, userID, dashboardLogLimit)
	if err != nil {
		s.logger.Error("listing workout logs failed", zap.Error(err))
		return nil, err
	}
	stats, err := s.repo.BodyStats.ListByOwner(ctx, userID, dashboardStatsLimit)
	if err != nil {
		s.logger.Error("listing body stats failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Exercises:   make([]dto.ExerciseResponse, 0, len(exercises)),
		WorkoutLogs: make([]dto.WorkoutLogResponse, 0, len(logs)),
		BodyStats:   make([]dto.BodyStatsResponse, 0, len(stats)),
	}
	for i := range exercises {
		resp.Exercises = append(resp.Exercises, toExerciseResponse(&exercises[i]))
	}
	for i := range logs {
		resp.WorkoutLogs = append(resp.WorkoutLogs, toWorkoutLogResponse(&logs[i]))
	}
	for i := range stats {
		resp.BodyStats = append(resp.BodyStats, toBodyStatsResponse(&stats[i]))
	}
	return resp, nil
}

func toExerciseResponse(e *model.Exercise) dto.ExerciseResponse {
	return dto.ExerciseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Category,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func toWorkoutLogResponse(l *model.WorkoutLog) dto.WorkoutLogResponse {
	resp := dto.WorkoutLogResponse{
		ID:          l.ID,
		ExerciseID:  l.ExerciseID,
		Sets:        l.Sets,
		Repetitions: l.Repetitions,
		Weight:      l.Weight,
		Notes:       l.Notes,
		Date:        l.Date,
	}
	if l.Exercise != nil {
		resp.Exercise = dto.ExerciseBrief{
			ID:       l.Exercise.ID,
			Name:     l.Exercise.Name,
			Category: l.Exercise.Category,
		}
	}
	return resp
}

func toBodyStatsResponse(b *model.BodyStats) dto.BodyStatsResponse {
	return dto.BodyStatsResponse{
		ID:     b.ID,
		Weight: b.Weight,
		Height: b.Height,
		Date:   b.Date,
	}
}
