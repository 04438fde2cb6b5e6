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
	ErrDepartmentExists = errors.New("Хэлтсийн нэр давхардсан байна")
	ErrDepartmentInUse  = errors.New("Хэлтэст хэрэглэгч бүртгэлтэй тул устгах боломжгүй")
)

// DepartmentService department directory management.
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Get(ctx context.Context, id string) (*dto.DepartmentResponse, error)
	// FindByName resolves a department by its exact name; the nested
	// member list excludes administrators.
	FindByName(ctx context.Context, name string) (*dto.DepartmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService creates the DepartmentService.
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if _, err := s.repo.Department.GetByName(ctx, req.Name); err == nil {
		return nil, ErrDepartmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("department lookup failed", zap.Error(err))
		return nil, err
	}

	dept := &model.Department{
		Name:          req.Name,
		Description:   req.Description,
		Manager:       req.Manager,
		EmployeeCount: req.EmployeeCount,
	}
	if err := s.repo.Department.Create(ctx, dept); err != nil {
		s.logger.Error("creating department failed", zap.Error(err))
		return nil, err
	}

	resp := toDepartmentResponse(dept, nil)
	return &resp, nil
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("listing departments failed", zap.Error(err))
		return nil, err
	}

	responses := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		users, err := s.repo.User.ListByDepartment(ctx, depts[i].ID, true)
		if err != nil {
			s.logger.Error("listing department members failed", zap.Error(err))
			return nil, err
		}
		responses = append(responses, toDepartmentResponse(&depts[i], users))
	}
	return responses, nil
}

func (s *departmentService) Get(ctx context.Context, id string) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("department lookup failed", zap.Error(err))
		return nil, err
	}

	users, err := s.repo.User.ListByDepartment(ctx, dept.ID, true)
	if err != nil {
		s.logger.Error("listing department members failed", zap.Error(err))
		return nil, err
	}

	resp := toDepartmentResponse(dept, users)
	return &resp, nil
}

func (s *departmentService) FindByName(ctx context.Context, name string) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("department lookup failed", zap.Error(err))
		return nil, err
	}

	users, err := s.repo.User.ListByDepartment(ctx, dept.ID, false)
	if err != nil {
		s.logger.Error("listing department members failed", zap.Error(err))
		return nil, err
	}

	resp := toDepartmentResponse(dept, users)
	return &resp, nil
}

func (s *departmentService) Update(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("department lookup failed", zap.Error(err))
		return nil, err
	}

	if req.Name != nil && *req.Name != dept.Name {
		other, err := s.repo.Department.GetByName(ctx, *req.Name)
		if err == nil && other.ID != dept.ID {
			return nil, ErrDepartmentExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("department lookup failed", zap.Error(err))
			return nil, err
		}
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	if req.Manager != nil {
		dept.Manager = *req.Manager
	}
	if req.EmployeeCount != nil {
		dept.EmployeeCount = *req.EmployeeCount
	}

	if err := s.repo.Department.Update(ctx, dept); err != nil {
		s.logger.Error("updating department failed", zap.Error(err))
		return nil, err
	}

	users, err := s.repo.User.ListByDepartment(ctx, dept.ID, true)
	if err != nil {
		s.logger.Error("listing department members failed", zap.Error(err))
		return nil, err
	}

	resp := toDepartmentResponse(dept, users)
	return &resp, nil
}

// Delete removes a department. Refused while any user still references
// it, so user rows never end up pointing at a missing department.
func (s *departmentService) Delete(ctx context.Context, id string) error {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		s.logger.Error("department lookup failed", zap.Error(err))
		return err
	}

	count, err := s.repo.Department.CountUsers(ctx, dept.ID)
	if err != nil {
		s.logger.Error("counting department members failed", zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrDepartmentInUse
	}

	return s.repo.Department.Delete(ctx, dept.ID)
}

func toDepartmentResponse(dept *model.Department, users []model.User) dto.DepartmentResponse {
	briefs := make([]dto.DepartmentUserBrief, 0, len(users))
	for _, u := range users {
		briefs = append(briefs, dto.DepartmentUserBrief{
			ID:       u.ID,
			UserID:   u.UserID,
			Name:     u.Name,
			Position: u.Position,
			Email:    u.Email,
			IsActive: u.IsActive,
		})
	}
	return dto.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Description:   dept.Description,
		Manager:       dept.Manager,
		EmployeeCount: dept.EmployeeCount,
		Users:         briefs,
		CreatedAt:     dept.CreatedAt,
	}
}
