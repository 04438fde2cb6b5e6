package model

import "time"

// Exercise — table exercises. Owned by exactly one user and removed
// together with the owner.
type Exercise struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null"                     json:"name"`
	Category    string    `gorm:"type:varchar(100)"                              json:"category,omitempty"`
	Description string    `gorm:"type:text"                                      json:"description,omitempty"`
	UserID      string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps the model to its table.
func (Exercise) TableName() string { return "exercises" }

// WorkoutLog — table workout_logs. References an exercise of the same
// owner; cross-user exercise references are rejected at the service layer.
type WorkoutLog struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ExerciseID  string    `gorm:"type:uuid;not null;index"                       json:"exercise_id"`
	UserID      string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Sets        *int      `json:"sets,omitempty"`
	Repetitions *int      `json:"repetitions,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
	Notes       string    `gorm:"type:text"                          json:"notes,omitempty"`
	Date        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"date"`

	Exercise *Exercise `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"exercise,omitempty"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"     json:"-"`
}

// TableName maps the model to its table.
func (WorkoutLog) TableName() string { return "workout_logs" }

// BodyStats — table body_stats.
type BodyStats struct {
	ID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Weight float64   `gorm:"not null"                                       json:"weight"`
	Height float64   `gorm:"not null"                                       json:"height"`
	Date   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"date"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps the model to its table.
func (BodyStats) TableName() string { return "body_stats" }
