package model

import "time"

// User — employee record, table users.
//
// UserID is the department-encoded business identifier (e.g.
// "DAG-EAH-Сараа"); ID is the immutable internal key used in tokens
// and foreign keys.
type User struct {
	ID           string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       string     `gorm:"type:varchar(100);uniqueIndex;not null"         json:"user_id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"         json:"email"`
	Password     Credential `gorm:"type:varchar(255);not null"                     json:"-"`
	Name         string     `gorm:"type:varchar(100);not null"                     json:"name"`
	Position     string     `gorm:"type:varchar(100)"                              json:"position"`
	DepartmentID string     `gorm:"type:uuid"                                      json:"department_id"`
	IsAdmin      bool       `gorm:"not null;default:false"                         json:"is_admin"`
	IsActive     bool       `gorm:"not null;default:true"                          json:"is_active"`
	AllowedTools ToolList   `gorm:"type:text"                                      json:"allowed_tools"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	BaseModel

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName maps the model to its table.
func (User) TableName() string { return "users" }
