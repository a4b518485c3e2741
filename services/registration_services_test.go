package services

import (
	"sync"
	"testing"

	"fiesta/database"
	"fiesta/models"
	"fiesta/utils/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCandidate(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "r001")
	program := seedProgram(t, "Solo Song", 1)

	registration, err := RegisterCandidate(program.ID, student.ID, team)
	require.NoError(t, err)

	assert.NotEmpty(t, registration.ID)
	assert.Equal(t, program.Name, registration.ProgramName)
	assert.Equal(t, student.Name, registration.StudentName)
	assert.Equal(t, "R001", registration.StudentChest)
	assert.Equal(t, team.Name, registration.TeamName)
	assert.NotEmpty(t, registration.Timestamp)
}

func TestRegisterCandidateWindowClosed(t *testing.T) {
	setupTestDB(t)
	closeWindow(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "R001")
	program := seedProgram(t, "Solo Song", 1)

	_, err := RegisterCandidate(program.ID, student.ID, team)
	assert.ErrorIs(t, err, apperrors.ErrState)
}

func TestRegisterCandidateProgramNotFound(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "R001")

	_, err := RegisterCandidate("no-such-program", student.ID, team)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRegisterCandidateForeignStudent(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	red := seedTeam(t, "Red House")
	blue := seedTeam(t, "Blue House")
	blueStudent := seedStudent(t, blue, "Ben", "B001")
	program := seedProgram(t, "Solo Song", 1)

	_, err := RegisterCandidate(program.ID, blueStudent.ID, red)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = RegisterCandidate(program.ID, "no-such-student", red)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRegisterCandidateLimitReached(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	team := seedTeam(t, "Red House")
	first := seedStudent(t, team, "Anna", "R001")
	second := seedStudent(t, team, "Ben", "R002")
	program := seedProgram(t, "Solo Song", 1)

	_, err := RegisterCandidate(program.ID, first.ID, team)
	require.NoError(t, err)

	_, err = RegisterCandidate(program.ID, second.ID, team)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRegisterCandidateAlreadyRegistered(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "R001")
	program := seedProgram(t, "Group Dance", 5)

	_, err := RegisterCandidate(program.ID, student.ID, team)
	require.NoError(t, err)

	_, err = RegisterCandidate(program.ID, student.ID, team)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	var count int64
	database.DB.Model(&models.ProgramRegistration{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

// Concurrent attempts at the last open slot must never overshoot the
// candidate limit; the losers get a conflict, not a second row.
func TestRegisterCandidateConcurrentLimit(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	team := seedTeam(t, "Red House")
	program := seedProgram(t, "Solo Song", 1)
	students := []models.Student{
		seedStudent(t, team, "Anna", "R001"),
		seedStudent(t, team, "Ben", "R002"),
		seedStudent(t, team, "Cara", "R003"),
		seedStudent(t, team, "Dev", "R004"),
	}

	// a single connection keeps the in-memory database from returning
	// table-lock errors instead of the conflict under test
	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	errs := make([]error, len(students))
	var wg sync.WaitGroup
	for i := range students {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = RegisterCandidate(program.ID, students[i].ID, team)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrConflict)
		}
	}
	assert.Equal(t, 1, successes)

	var count int64
	database.DB.Model(&models.ProgramRegistration{}).
		Where("program_id = ?", program.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterCandidateCountFailure(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "R001")
	program := seedProgram(t, "Solo Song", 1)

	require.NoError(t, database.DB.Migrator().DropTable(&models.ProgramRegistration{}))

	_, err := RegisterCandidate(program.ID, student.ID, team)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

// Removing a registration frees the slot for another candidate
func TestRegisterCandidateAfterRemoval(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	team := seedTeam(t, "Red House")
	first := seedStudent(t, team, "Anna", "R001")
	second := seedStudent(t, team, "Ben", "R002")
	program := seedProgram(t, "Solo Song", 1)

	registration, err := RegisterCandidate(program.ID, first.ID, team)
	require.NoError(t, err)

	_, err = RegisterCandidate(program.ID, second.ID, team)
	require.ErrorIs(t, err, apperrors.ErrConflict)

	require.NoError(t, RemoveRegistration(registration.ID, team))

	_, err = RegisterCandidate(program.ID, second.ID, team)
	assert.NoError(t, err)
}

func TestRemoveRegistrationOwnership(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	red := seedTeam(t, "Red House")
	blue := seedTeam(t, "Blue House")
	student := seedStudent(t, red, "Anna", "R001")
	program := seedProgram(t, "Solo Song", 1)

	registration, err := RegisterCandidate(program.ID, student.ID, red)
	require.NoError(t, err)

	err = RemoveRegistration(registration.ID, blue)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = RemoveRegistration("no-such-registration", red)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, RemoveRegistration(registration.ID, red))
	var count int64
	database.DB.Model(&models.ProgramRegistration{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
