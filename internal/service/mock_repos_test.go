package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bataa715/Audit/config"
	"github.com/Bataa715/Audit/internal/identity"
	"github.com/Bataa715/Audit/internal/model"
	"github.com/Bataa715/Audit/internal/repository"
	"github.com/Bataa715/Audit/pkg/jwt"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: internal id
	depts *mockDepartmentRepo
	seq   int
}

func newMockUserRepo(depts *mockDepartmentRepo) *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User), depts: depts}
}

func (m *mockUserRepo) CreateInDepartment(ctx context.Context, user *model.User, departmentName string) (*model.Department, error) {
	dept, err := m.depts.GetByName(ctx, departmentName)
	if err != nil {
		dept = &model.Department{Name: departmentName, EmployeeCount: 0}
		if err := m.depts.Create(ctx, dept); err != nil {
			return nil, err
		}
	}
	dept.EmployeeCount++

	if user.ID == "" {
		m.seq++
		user.ID = fmt.Sprintf("user-%d", m.seq)
	}
	user.DepartmentID = dept.ID
	m.users[user.ID] = user
	return dept, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUserID(_ context.Context, userID string) (*model.User, error) {
	for _, u := range m.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByNameAndDepartment(_ context.Context, name, departmentID string) (*model.User, error) {
	for _, u := range m.users {
		if u.Name == name && u.DepartmentID == departmentID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetAdminByNameOrUserID(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.IsAdmin && (u.Name == username || u.UserID == username) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) ListByDepartment(_ context.Context, departmentID string, includeAdmins bool) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.DepartmentID != departmentID {
			continue
		}
		if !includeAdmins && u.IsAdmin {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) ListActiveByDepartmentName(ctx context.Context, departmentName string) ([]model.User, error) {
	dept, err := m.depts.GetByName(ctx, departmentName)
	if err != nil {
		return nil, nil
	}
	var result []model.User
	for _, u := range m.users {
		if u.DepartmentID == dept.ID && u.IsActive {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) Search(_ context.Context, query string, limit int) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if !u.IsActive {
			continue
		}
		if strings.Contains(u.UserID, query) || strings.Contains(u.Name, query) {
			result = append(result, *u)
		}
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	if u, ok := m.users[id]; ok {
		u.LastLoginAt = &at
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct {
	depts map[string]*model.Department
	users *mockUserRepo
	seq   int
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{depts: make(map[string]*model.Department)}
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.ID == "" {
		m.seq++
		dept.ID = fmt.Sprintf("dept-%d", m.seq)
	}
	dept.CreatedAt = time.Now()
	m.depts[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	if d, ok := m.depts[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) GetByName(_ context.Context, name string) (*model.Department, error) {
	for _, d := range m.depts {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.depts {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, dept *model.Department) error {
	if _, ok := m.depts[dept.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.depts[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id string) error {
	delete(m.depts, id)
	return nil
}

func (m *mockDepartmentRepo) CountUsers(_ context.Context, departmentID string) (int64, error) {
	if m.users == nil {
		return 0, nil
	}
	var count int64
	for _, u := range m.users.users {
		if u.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

// ── Mock ExerciseRepository ──

type mockExerciseRepo struct {
	exercises map[string]*model.Exercise
	seq       int
}

func newMockExerciseRepo() *mockExerciseRepo {
	return &mockExerciseRepo{exercises: make(map[string]*model.Exercise)}
}

func (m *mockExerciseRepo) Create(_ context.Context, exercise *model.Exercise) error {
	if exercise.ID == "" {
		m.seq++
		exercise.ID = fmt.Sprintf("ex-%d", m.seq)
	}
	exercise.CreatedAt = time.Now()
	m.exercises[exercise.ID] = exercise
	return nil
}

func (m *mockExerciseRepo) GetOwned(_ context.Context, id, ownerID string) (*model.Exercise, error) {
	if e, ok := m.exercises[id]; ok && e.UserID == ownerID {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExerciseRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Exercise, error) {
	var result []model.Exercise
	for _, e := range m.exercises {
		if e.UserID == ownerID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockExerciseRepo) Delete(_ context.Context, id string) error {
	delete(m.exercises, id)
	return nil
}

// ── Mock WorkoutLogRepository ──

type mockWorkoutLogRepo struct {
	logs map[string]*model.WorkoutLog
	seq  int
}

func newMockWorkoutLogRepo() *mockWorkoutLogRepo {
	return &mockWorkoutLogRepo{logs: make(map[string]*model.WorkoutLog)}
}

func (m *mockWorkoutLogRepo) Create(_ context.Context, log *model.WorkoutLog) error {
	if log.ID == "" {
		m.seq++
		log.ID = fmt.Sprintf("log-%d", m.seq)
	}
	if log.Date.IsZero() {
		log.Date = time.Now()
	}
	m.logs[log.ID] = log
	return nil
}

func (m *mockWorkoutLogRepo) GetOwned(_ context.Context, id, ownerID string) (*model.WorkoutLog, error) {
	if l, ok := m.logs[id]; ok && l.UserID == ownerID {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkoutLogRepo) ListByOwner(_ context.Context, ownerID string, limit int) ([]model.WorkoutLog, error) {
	var result []model.WorkoutLog
	for _, l := range m.logs {
		if l.UserID == ownerID {
			result = append(result, *l)
		}
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (m *mockWorkoutLogRepo) Delete(_ context.Context, id string) error {
	delete(m.logs, id)
	return nil
}

// ── Mock BodyStatsRepository ──

type mockBodyStatsRepo struct {
	stats map[string]*model.BodyStats
	seq   int
}

func newMockBodyStatsRepo() *mockBodyStatsRepo {
	return &mockBodyStatsRepo{stats: make(map[string]*model.BodyStats)}
}

func (m *mockBodyStatsRepo) Create(_ context.Context, stats *model.BodyStats) error {
	if stats.ID == "" {
		m.seq++
		stats.ID = fmt.Sprintf("bs-%d", m.seq)
	}
	if stats.Date.IsZero() {
		stats.Date = time.Now()
	}
	m.stats[stats.ID] = stats
	return nil
}

func (m *mockBodyStatsRepo) GetOwned(_ context.Context, id, ownerID string) (*model.BodyStats, error) {
	if s, ok := m.stats[id]; ok && s.UserID == ownerID {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBodyStatsRepo) ListByOwner(_ context.Context, ownerID string, limit int) ([]model.BodyStats, error) {
	var result []model.BodyStats
	for _, s := range m.stats {
		if s.UserID == ownerID {
			result = append(result, *s)
		}
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (m *mockBodyStatsRepo) Delete(_ context.Context, id string) error {
	delete(m.stats, id)
	return nil
}

// ── Test wiring ──

func testRepository() *repository.Repository {
	depts := newMockDepartmentRepo()
	users := newMockUserRepo(depts)
	depts.users = users
	return &repository.Repository{
		User:       users,
		Department: depts,
		Exercise:   newMockExerciseRepo(),
		WorkoutLog: newMockWorkoutLogRepo(),
		BodyStats:  newMockBodyStatsRepo(),
	}
}

func testIdentity() *identity.Generator {
	return identity.NewGenerator(&config.IdentityConfig{
		DepartmentCodes: map[string]string{
			"Удирдлага":              "DAG",
			"Дата анализын алба":     "DAA",
			"Ерөнхий аудитын хэлтэс": "EAH",
		},
		DefaultCode:          "USR",
		OrgPrefix:            "DAG",
		ManagementDepartment: "Удирдлага",
		AnalyticsDepartment:  "Дата анализын алба",
	})
}

func testJWT() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret: "unit-test-secret-key-123456",
		TokenTTL:  time.Hour,
	})
}

func testService() (*Service, *repository.Repository) {
	repo := testRepository()
	svc := NewService(repo, testIdentity(), testJWT(), zap.NewNop())
	return svc, repo
}
