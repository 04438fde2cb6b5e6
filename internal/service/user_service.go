package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bataa715/Audit/internal/dto"
	"github.com/Bataa715/Audit/internal/identity"
	"github.com/Bataa715/Audit/internal/model"
	"github.com/Bataa715/Audit/internal/repository"
)

var ErrImportEmpty = errors.New("Импортын файлд өгөгдөл алга байна")

// UserService admin-side directory management.
type UserService interface {
	List(ctx context.Context) ([]dto.UserDetailResponse, error)
	Get(ctx context.Context, id string) (*dto.UserDetailResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserDetailResponse, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, isActive bool) (*dto.UserDetailResponse, error)
	UpdateTools(ctx context.Context, id string, tools []string) (*dto.UserDetailResponse, error)
	// Import reads an .xlsx with Name/Department/Position columns and
	// creates passwordless pending registrations row by row.
	Import(ctx context.Context, r io.Reader) (*dto.ImportUsersResponse, error)
	// Export renders the whole directory as an .xlsx workbook.
	Export(ctx context.Context) (*bytes.Buffer, string, error)
}

type userService struct {
	repo   *repository.Repository
	gen    *identity.Generator
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, gen *identity.Generator, logger *zap.Logger) UserService {
	return &userService{repo: repo, gen: gen, logger: logger}
}

func (s *userService) List(ctx context.Context) ([]dto.UserDetailResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("listing users failed", zap.Error(err))
		return nil, err
	}

	responses := make([]dto.UserDetailResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserDetail(&users[i]))
	}
	return responses, nil
}

func (s *userService) Get(ctx context.Context, id string) (*dto.UserDetailResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserDetail(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserDetailResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.DepartmentID != nil {
		if _, err := s.repo.Department.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartmentNotFound
			}
			s.logger.Error("department lookup failed", zap.Error(err))
			return nil, err
		}
		user.DepartmentID = *req.DepartmentID
		user.Department = nil
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.AllowedTools != nil {
		user.AllowedTools = model.ToolList(*req.AllowedTools)
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating user failed", zap.Error(err))
		return nil, err
	}

	// reload so the department association reflects the new state
	return s.Get(ctx, id)
}

// Delete removes the user; fitness data goes with it via the cascading
// foreign keys. The department employee count is left untouched.
func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.getUser(ctx, id); err != nil {
		return err
	}
	return s.repo.User.Delete(ctx, id)
}

func (s *userService) UpdateStatus(ctx context.Context, id string, isActive bool) (*dto.UserDetailResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = isActive
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating user status failed", zap.Error(err))
		return nil, err
	}

	resp := toUserDetail(user)
	return &resp, nil
}

func (s *userService) UpdateTools(ctx context.Context, id string, tools []string) (*dto.UserDetailResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.AllowedTools = model.ToolList(tools)
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating user tools failed", zap.Error(err))
		return nil, err
	}

	resp := toUserDetail(user)
	return &resp, nil
}

// importColumns maps accepted header names (Mongolian or English,
// case-insensitive) to logical fields.
var importColumns = map[string]string{
	"нэр":           "name",
	"name":          "name",
	"хэлтэс":        "department",
	"department":    "department",
	"албан тушаал":  "position",
	"position":      "position",
}

func (s *userService) Import(ctx context.Context, r io.Reader) (*dto.ImportUsersResponse, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		s.logger.Error("opening import workbook failed", zap.Error(err))
		return nil, ErrImportEmpty
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrImportEmpty
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		s.logger.Error("reading import rows failed", zap.Error(err))
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrImportEmpty
	}

	// resolve column positions from the header row
	fields := make(map[string]int)
	for i, cell := range rows[0] {
		if field, ok := importColumns[strings.ToLower(strings.TrimSpace(cell))]; ok {
			fields[field] = i
		}
	}
	nameCol, okName := fields["name"]
	deptCol, okDept := fields["department"]
	posCol, okPos := fields["position"]
	if !okName || !okDept {
		return nil, ErrImportEmpty
	}

	cell := func(row []string, col int) string {
		if col < len(row) {
			return strings.TrimSpace(row[col])
		}
		return ""
	}

	resp := &dto.ImportUsersResponse{}
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		name := cell(row, nameCol)
		department := cell(row, deptCol)
		position := ""
		if okPos {
			position = cell(row, posCol)
		}

		if name == "" || department == "" {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportRowError{
				Row: rowNum, Reason: "Нэр болон хэлтэс заавал шаардлагатай",
			})
			continue
		}

		userID := s.gen.UserID(department, name)
		if _, err := s.repo.User.GetByUserID(ctx, userID); err == nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportRowError{
				Row: rowNum, Reason: "Хэрэглэгчийн ID давхардсан байна: " + userID,
			})
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("user lookup failed", zap.Error(err))
			return nil, err
		}

		local := strings.ToLower(strings.Join(strings.Fields(name), "."))
		user := &model.User{
			UserID:       userID,
			Email:        fmt.Sprintf("%s.%d@internal.local", local, time.Now().UnixMilli()),
			Password:     model.PendingCredential(),
			Name:         name,
			Position:     position,
			AllowedTools: defaultTools,
		}
		if _, err := s.repo.User.CreateInDepartment(ctx, user, department); err != nil {
			s.logger.Error("importing user failed", zap.Error(err), zap.Int("row", rowNum))
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportRowError{
				Row: rowNum, Reason: "Хадгалахад алдаа гарлаа",
			})
			continue
		}
		resp.Created++
	}

	return resp, nil
}

func (s *userService) Export(ctx context.Context) (*bytes.Buffer, string, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("listing users failed", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ажилтнууд"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"№", "ID", "Нэр", "Хэлтэс", "Албан тушаал", "Имэйл", "Төлөв", "Сүүлд нэвтэрсэн"}
	for col, h := range headers {
		cellName, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cellName, h)
	}

	for i := range users {
		u := &users[i]
		status := "Идэвхтэй"
		if !u.IsActive {
			status = "Идэвхгүй"
		}
		deptName := ""
		if u.Department != nil {
			deptName = u.Department.Name
		}
		lastLogin := ""
		if u.LastLoginAt != nil {
			lastLogin = u.LastLoginAt.Format("2006-01-02 15:04")
		}

		values := []interface{}{i + 1, u.UserID, u.Name, deptName, u.Position, u.Email, status, lastLogin}
		for col, v := range values {
			cellName, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cellName, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("writing export workbook failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("employees_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func (s *userService) getUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func toUserDetail(user *model.User) dto.UserDetailResponse {
	resp := dto.UserDetailResponse{
		ID:           user.ID,
		UserID:       user.UserID,
		Email:        user.Email,
		Name:         user.Name,
		Position:     user.Position,
		DepartmentID: user.DepartmentID,
		IsAdmin:      user.IsAdmin,
		IsActive:     user.IsActive,
		AllowedTools: user.AllowedTools,
		LastLoginAt:  user.LastLoginAt,
		CreatedAt:    user.CreatedAt,
	}
	if user.Department != nil {
		resp.Department = user.Department.Name
	}
	if resp.AllowedTools == nil {
		resp.AllowedTools = []string{}
	}
	return resp
}
