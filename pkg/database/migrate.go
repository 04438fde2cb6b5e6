package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bataa715/Audit/internal/model"
)

// AutoMigrate keeps the schema in sync with the model definitions.
// Departments must migrate before users for the foreign key, and users
// before the fitness tables for their cascading foreign keys.
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&model.Department{},
		&model.User{},
		&model.Exercise{},
		&model.WorkoutLog{},
		&model.BodyStats{},
	)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("database migrations complete")
	return nil
}
