package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pathwaycare/intake-api/internal/models"
	"github.com/pathwaycare/intake-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to create test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.IntakeForm{},
		&models.Document{},
	)
	require.NoError(t, err, "Failed to migrate test database")

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, role string) (*models.User, services.CurrentUser) {
	t.Helper()
	user := &models.User{
		Username: username,
		Name:     "Test " + username,
		Role:     role,
		Password: "irrelevant-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user, services.CurrentUser{ID: user.ID, Role: user.Role}
}

func testDate() *time.Time {
	d := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &d
}

// newTestForm fills every required intake field with valid values.
func newTestForm() *models.IntakeForm {
	return &models.IntakeForm{
		YourName:           "Dana Worker",
		TransactionDate:    testDate(),
		TypeOfTransaction:  "Intake",
		CaseNumber:         "SM-1042",
		Name:               "Jordan Client",
		DateOfBirth:        testDate(),
		Gender:             "Female",
		ReasonForPlacement: "Neglect",
		LevelOfCare:        "Level 2",
	}
}

func createTestForm(t *testing.T, db *gorm.DB, actor services.CurrentUser) *models.IntakeForm {
	t.Helper()
	form, err := services.CreateIntakeForm(db, newTestForm(), actor)
	require.NoError(t, err)
	return form
}
