package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"fiesta/database"
	"fiesta/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global connection at a fresh in-memory database.
// Each test gets its own database, named after the test so the shared cache
// never leaks state between tests.
func setupTestDB(t *testing.T) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

func seedTeam(t *testing.T, name string) models.Team {
	t.Helper()
	team, err := CreateTeam(name, name+" Leader", "secret-pass", "")
	require.NoError(t, err)
	return team
}

func seedStudent(t *testing.T, team models.Team, name, chestNo string) models.Student {
	t.Helper()
	student, err := CreateStudent(name, chestNo, team.ID)
	require.NoError(t, err)
	return student
}

func seedProgram(t *testing.T, name string, candidateLimit int) models.Program {
	t.Helper()
	program, err := CreateProgram(name, "General", "Music", candidateLimit)
	require.NoError(t, err)
	return program
}

func seedJury(t *testing.T, name string) models.Jury {
	t.Helper()
	jury := models.Jury{ID: name + "-id", Name: name, PasswordHash: "x"}
	require.NoError(t, database.DB.Create(&jury).Error)
	return jury
}

// openWindow sets the registration schedule to a window spanning now
func openWindow(t *testing.T) {
	t.Helper()
	now := time.Now().UTC()
	_, err := UpdateRegistrationSchedule(
		now.Add(-time.Hour).Format(time.RFC3339),
		now.Add(time.Hour).Format(time.RFC3339),
	)
	require.NoError(t, err)
}

// closeWindow sets the registration schedule to a window entirely in the past
func closeWindow(t *testing.T) {
	t.Helper()
	now := time.Now().UTC()
	_, err := UpdateRegistrationSchedule(
		now.Add(-2*time.Hour).Format(time.RFC3339),
		now.Add(-time.Hour).Format(time.RFC3339),
	)
	require.NoError(t, err)
}
