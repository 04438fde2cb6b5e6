package service

import (
	"go.uber.org/zap"

	"github.com/Bataa715/Audit/internal/identity"
	"github.com/Bataa715/Audit/internal/repository"
	"github.com/Bataa715/Audit/pkg/jwt"
)

// Service aggregates all business services.
type Service struct {
	Auth       AuthService
	Access     AccessService
	User       UserService
	Department DepartmentService
	Fitness    FitnessService
}

// NewService wires the service layer.
func NewService(
	repo *repository.Repository,
	gen *identity.Generator,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	access := NewAccessService(repo, logger)
	return &Service{
		Auth:       NewAuthService(repo, gen, jwtMgr, logger),
		Access:     access,
		User:       NewUserService(repo, gen, logger),
		Department: NewDepartmentService(repo, logger),
		Fitness:    NewFitnessService(repo, access, logger),
	}
}
