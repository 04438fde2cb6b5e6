package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Bataa715/Audit/internal/dto"
	"github.com/Bataa715/Audit/internal/identity"
	"github.com/Bataa715/Audit/internal/model"
	"github.com/Bataa715/Audit/internal/repository"
	"github.com/Bataa715/Audit/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("Нэвтрэх нэр эсвэл нууц үг буруу байна")
	ErrUserInactive       = errors.New("Таны бүртгэл идэвхгүй байна")
	ErrDepartmentNotFound = errors.New("Хэлтэс олдсонгүй")
	ErrUserNotFound       = errors.New("Хэрэглэгч олдсонгүй")
	ErrUserIDTaken        = errors.New("Хэрэглэгчийн ID давхардсан байна")
	ErrPasswordAlreadySet = errors.New("Нууц үг аль хэдийн тохируулагдсан байна")
	ErrWeakPassword       = errors.New("Нууц үг шаардлага хангахгүй байна")
)

// defaultTools granted to every new registration.
var defaultTools = model.ToolList{"todo", "fitness"}

// searchMinChars is the shortest query the directory search accepts;
// searchLimit caps the result set.
const (
	searchMinChars = 2
	searchLimit    = 10
)

// AuthService authentication and public directory lookups.
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	SetPassword(ctx context.Context, req *dto.SetPasswordRequest) (*dto.AuthResponse, error)
	CheckUser(ctx context.Context, req *dto.CheckUserRequest) (*dto.CheckUserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	LoginByID(ctx context.Context, req *dto.LoginByIDRequest) (*dto.AuthResponse, error)
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AuthResponse, error)
	UserIDPrefix(department string) string
	Search(ctx context.Context, query string) ([]dto.SearchUserResponse, error)
	UsersByDepartment(ctx context.Context, department string) ([]dto.DepartmentUserBrief, error)
	CurrentUser(ctx context.Context, id string) (*dto.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	gen    *identity.Generator
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService creates the AuthService.
func NewAuthService(
	repo *repository.Repository,
	gen *identity.Generator,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		gen:    gen,
		jwtMgr: jwtMgr,
		logger: logger,
	}
}

// Signup creates a fully-credentialed user in one step. Admin-only;
// self-service registration goes through Register + SetPassword.
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	userID := s.gen.UserID(req.Department, req.Name)

	if _, err := s.repo.User.GetByUserID(ctx, userID); err == nil {
		return nil, ErrUserIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	email := s.resolveEmail(ctx, req.Email, req.Name)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password failed", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		UserID:       userID,
		Email:        email,
		Password:     model.HashedCredential(string(hash)),
		Name:         req.Name,
		Position:     req.Position,
		AllowedTools: defaultTools,
	}

	dept, err := s.repo.User.CreateInDepartment(ctx, user, req.Department)
	if err != nil {
		s.logger.Error("creating user failed", zap.Error(err))
		return nil, err
	}
	user.Department = dept

	return s.issueToken(user)
}

// Register records a passwordless pre-registration. The employee
// completes it with SetPassword on first login.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	userID := s.gen.UserID(req.Department, req.Name)

	if _, err := s.repo.User.GetByUserID(ctx, userID); err == nil {
		return nil, ErrUserIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	local := strings.ToLower(strings.Join(strings.Fields(req.Name), "."))
	email := fmt.Sprintf("%s.%d@internal.local", local, time.Now().UnixMilli())

	user := &model.User{
		UserID:       userID,
		Email:        email,
		Password:     model.PendingCredential(),
		Name:         req.Name,
		Position:     req.Position,
		AllowedTools: defaultTools,
	}

	if _, err := s.repo.User.CreateInDepartment(ctx, user, req.Department); err != nil {
		s.logger.Error("registering user failed", zap.Error(err))
		return nil, err
	}

	return &dto.RegisterResponse{
		Success:    true,
		UserID:     user.UserID,
		Name:       user.Name,
		Department: req.Department,
		Position:   user.Position,
		Message:    "Бүртгэл амжилттай. Нэвтрэх ID-гаа хадгалж авна уу.",
	}, nil
}

// SetPassword completes a pending registration. Works exactly once:
// a user whose password is already set is rejected.
func (s *authService) SetPassword(ctx context.Context, req *dto.SetPasswordRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.User.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	if !user.Password.Pending() {
		return nil, ErrPasswordAlreadySet
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password failed", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	user.Password = model.HashedCredential(string(hash))
	user.LastLoginAt = &now
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("saving password failed", zap.Error(err))
		return nil, err
	}

	return s.issueToken(user)
}

// CheckUser reports whether an ID exists and whether its password is
// set, so the client can route between login and first-time setup.
func (s *authService) CheckUser(ctx context.Context, req *dto.CheckUserRequest) (*dto.CheckUserResponse, error) {
	user, err := s.repo.User.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.CheckUserResponse{Exists: false}, nil
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.CheckUserResponse{
		Exists:      true,
		HasPassword: user.Password.Usable(),
		UserID:      user.UserID,
		Name:        user.Name,
		IsActive:    user.IsActive,
	}
	if user.Department != nil {
		resp.Department = user.Department.Name
	}
	return resp, nil
}

// Login authenticates by department plus display name.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	dept, err := s.repo.Department.GetByName(ctx, req.Department)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("department lookup failed", zap.Error(err))
		return nil, err
	}

	user, err := s.repo.User.GetByNameAndDepartment(ctx, req.Username, dept.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same error as a wrong password: don't reveal which
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	return s.finishLogin(ctx, user, req.Password)
}

// LoginByID authenticates by the business user ID.
func (s *authService) LoginByID(ctx context.Context, req *dto.LoginByIDRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.User.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	return s.finishLogin(ctx, user, req.Password)
}

// AdminLogin authenticates an administrator by display name or business
// user ID. A non-admin account is indistinguishable from a missing one.
func (s *authService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.User.GetAdminByNameOrUserID(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("admin lookup failed", zap.Error(err))
		return nil, err
	}

	return s.finishLogin(ctx, user, req.Password)
}

// finishLogin runs the checks shared by every login mode: active
// account first, then password, then token issue.
func (s *authService) finishLogin(ctx context.Context, user *model.User, password string) (*dto.AuthResponse, error) {
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	hash, ok := user.Password.Hash()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.repo.User.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("updating last login failed", zap.Error(err))
	}
	user.LastLoginAt = &now

	return s.issueToken(user)
}

// UserIDPrefix previews the ID prefix for a department while the name
// is still being typed.
func (s *authService) UserIDPrefix(department string) string {
	return s.gen.Prefix(department)
}

// Search finds active users by partial user ID or name. Queries under
// two characters return nothing rather than scanning the directory.
func (s *authService) Search(ctx context.Context, query string) ([]dto.SearchUserResponse, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < searchMinChars {
		return []dto.SearchUserResponse{}, nil
	}

	users, err := s.repo.User.Search(ctx, query, searchLimit)
	if err != nil {
		s.logger.Error("user search failed", zap.Error(err))
		return nil, err
	}

	results := make([]dto.SearchUserResponse, 0, len(users))
	for _, u := range users {
		r := dto.SearchUserResponse{
			ID:       u.ID,
			Name:     u.Name,
			UserID:   u.UserID,
			Position: u.Position,
		}
		if u.Department != nil {
			r.Department = u.Department.Name
		}
		results = append(results, r)
	}
	return results, nil
}

// UsersByDepartment lists active members of a department by name.
func (s *authService) UsersByDepartment(ctx context.Context, department string) ([]dto.DepartmentUserBrief, error) {
	users, err := s.repo.User.ListActiveByDepartmentName(ctx, department)
	if err != nil {
		s.logger.Error("department user listing failed", zap.Error(err))
		return nil, err
	}

	briefs := make([]dto.DepartmentUserBrief, 0, len(users))
	for _, u := range users {
		briefs = append(briefs, dto.DepartmentUserBrief{
			ID:       u.ID,
			UserID:   u.UserID,
			Name:     u.Name,
			Position: u.Position,
			IsActive: u.IsActive,
		})
	}
	return briefs, nil
}

// CurrentUser returns a fresh projection of the token holder.
func (s *authService) CurrentUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) issueToken(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.jwtMgr.Generate(user.ID, user.Email, user.UserID)
	if err != nil {
		s.logger.Error("signing token failed", zap.Error(err))
		return nil, err
	}
	return &dto.AuthResponse{User: toUserResponse(user), Token: token}, nil
}

// resolveEmail picks the address for a new account: the supplied one
// when free, otherwise the internal form of the display name. Any
// collision, supplied or derived, falls back to a timestamp-suffixed
// internal address.
func (s *authService) resolveEmail(ctx context.Context, supplied, name string) string {
	local := strings.ToLower(strings.Join(strings.Fields(name), "."))
	email := supplied
	if email == "" {
		email = local + "@internal.local"
	}
	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		email = fmt.Sprintf("%s.%d@internal.local", local, time.Now().UnixMilli())
	}
	return email
}

// passwordSpecials is the allowed special character set.
const passwordSpecials = "@$!%*?&"

// validatePassword enforces the first-login strength rule: at least 8
// characters with a lower, an upper, a digit and a special, drawn only
// from the Latin-alphanumeric-plus-specials charset.
func validatePassword(pw string) error {
	if len(pw) < 8 {
		return ErrWeakPassword
	}
	var lower, upper, digit, special bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return ErrWeakPassword
		}
	}
	if !lower || !upper || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}

// toUserResponse projects a user for API responses. The password
// column never appears here in any form.
func toUserResponse(user *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		UserID:       user.UserID,
		Name:         user.Name,
		Position:     user.Position,
		DepartmentID: user.DepartmentID,
		IsAdmin:      user.IsAdmin,
		AllowedTools: user.AllowedTools,
	}
	if user.Department != nil {
		resp.Department = user.Department.Name
	}
	if resp.AllowedTools == nil {
		resp.AllowedTools = []string{}
	}
	return resp
}
