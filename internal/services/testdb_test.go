package services

import (
	"path/filepath"
	"testing"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB gives each test its own SQLite database with the production
// schema, including the unique index on attempts.student_id.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "exam.db")),
		&gorm.Config{TranslateError: true},
	)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Student{},
		&models.Question{},
		&models.Attempt{},
		&models.Answer{},
	))
	return db
}
