package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Bataa715/Audit/internal/model"
)

// UserRepository user data access.
type UserRepository interface {
	// CreateInDepartment inserts the user and finds or creates its
	// department by name in a single transaction. A new department
	// starts with EmployeeCount=1; an existing one is incremented.
	CreateInDepartment(ctx context.Context, user *model.User, departmentName string) (*model.Department, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUserID(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByNameAndDepartment(ctx context.Context, name, departmentID string) (*model.User, error)
	GetAdminByNameOrUserID(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByDepartment(ctx context.Context, departmentID string, includeAdmins bool) ([]model.User, error)
	ListActiveByDepartmentName(ctx context.Context, departmentName string) ([]model.User, error)
	Search(ctx context.Context, query string, limit int) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates the GORM-backed UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateInDepartment(ctx context.Context, user *model.User, departmentName string) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("name = ?", departmentName).First(&dept).Error
		switch {
		case err == nil:
			if err := tx.Model(&dept).
				Update("employee_count", gorm.Expr("employee_count + 1")).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			dept = model.Department{Name: departmentName, EmployeeCount: 1}
			if err := tx.Create(&dept).Error; err != nil {
				return err
			}
		default:
			return err
		}

		user.DepartmentID = dept.ID
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("user_id = ?", userID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByNameAndDepartment(ctx context.Context, name, departmentID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("name = ? AND department_id = ?", name, departmentID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetAdminByNameOrUserID(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("(name = ? OR user_id = ?) AND is_admin = ?", username, username, true).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *userRepo) ListByDepartment(ctx context.Context, departmentID string, includeAdmins bool) ([]model.User, error) {
	var users []model.User
	db := r.db.WithContext(ctx).Where("department_id = ?", departmentID)
	if !includeAdmins {
		db = db.Where("is_admin = ?", false)
	}
	err := db.Order("name ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) ListActiveByDepartmentName(ctx context.Context, departmentName string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Joins("JOIN departments ON departments.id = users.department_id").
		Where("departments.name = ? AND users.is_active = ?", departmentName, true).
		Find(&users).Error
	return users, err
}

func (r *userRepo) Search(ctx context.Context, query string, limit int) ([]model.User, error) {
	var users []model.User
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("is_active = ? AND (user_id LIKE ? OR name LIKE ?)", true, pattern, pattern).
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	// fitness data goes with the user via ON DELETE CASCADE
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.User{}).Error
}
