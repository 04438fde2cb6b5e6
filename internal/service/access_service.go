package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bataa715/Audit/internal/repository"
)

// AccessService is the gate in front of the optional tool modules.
// Every tool operation asks it first; the answer is evaluated fresh
// from the database on each call so that a revoked grant or a
// deactivated account takes effect immediately.
type AccessService interface {
	// HasTool reports whether the user may use the named tool.
	// Unknown users have no access; admins have access to everything.
	HasTool(ctx context.Context, userID, tool string) (bool, error)
}

type accessService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAccessService creates the AccessService.
func NewAccessService(repo *repository.Repository, logger *zap.Logger) AccessService {
	return &accessService{repo: repo, logger: logger}
}

func (s *accessService) HasTool(ctx context.Context, userID, tool string) (bool, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return false, err
	}

	if user.IsAdmin {
		return true, nil
	}
	return user.AllowedTools.Has(tool), nil
}
