package model

// Department — table departments.
//
// EmployeeCount is denormalized: it is bumped inside the registration
// transaction and never decremented on user removal (legacy behaviour
// kept for compatibility with the existing directory).
type Department struct {
	ID            string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string `gorm:"type:varchar(200);uniqueIndex;not null"         json:"name"`
	Description   string `gorm:"type:text"                                      json:"description,omitempty"`
	Manager       string `gorm:"type:varchar(100)"                              json:"manager,omitempty"`
	EmployeeCount int    `gorm:"not null;default:0"                             json:"employee_count"`
	BaseModel
}

// TableName maps the model to its table.
func (Department) TableName() string { return "departments" }
