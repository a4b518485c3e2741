package services

import (
	"testing"

	"fiesta/database"
	"fiesta/models"
	"fiesta/utils"
	"fiesta/utils/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam(t *testing.T) {
	setupTestDB(t)

	team, err := CreateTeam("Red House", "Anna", "hunter2", "#ff0000")
	require.NoError(t, err)

	assert.NotEmpty(t, team.ID)
	assert.Equal(t, "#ff0000", team.ThemeColor)
	assert.NotEqual(t, "hunter2", team.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("hunter2", team.PasswordHash))
}

func TestCreateTeamDefaultsColor(t *testing.T) {
	setupTestDB(t)

	team, err := CreateTeam("Red House", "Anna", "hunter2", "not-a-color")
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultThemeColor, team.ThemeColor)
}

func TestCreateTeamValidation(t *testing.T) {
	setupTestDB(t)

	_, err := CreateTeam("  ", "Anna", "hunter2", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = CreateTeam("Red House", "Anna", "", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateTeamDuplicateName(t *testing.T) {
	setupTestDB(t)

	_, err := CreateTeam("Red House", "Anna", "hunter2", "")
	require.NoError(t, err)
	_, err = CreateTeam("Red House", "Ben", "hunter3", "")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateTeamKeepsPasswordWhenEmpty(t *testing.T) {
	setupTestDB(t)
	team := seedTeam(t, "Red House")

	updated, err := UpdateTeam(team.ID, "Crimson House", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Crimson House", updated.Name)
	assert.Equal(t, team.LeaderName, updated.LeaderName)
	assert.True(t, utils.CheckPasswordHash("secret-pass", updated.PasswordHash))

	updated, err = UpdateTeam(team.ID, "", "", "new-pass", "")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("new-pass", updated.PasswordHash))
}

func TestDeleteTeamCascade(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	team := seedTeam(t, "Red House")
	anna := seedStudent(t, team, "Anna", "R001")
	ben := seedStudent(t, team, "Ben", "R002")
	program := seedProgram(t, "Solo Song", 2)
	jury := seedJury(t, "Judge Smith")

	_, err := RegisterCandidate(program.ID, anna.ID, team)
	require.NoError(t, err)
	_, err = RegisterCandidate(program.ID, ben.ID, team)
	require.NoError(t, err)

	result, err := SubmitResult(program.ID, anna.ID, 1, "A", jury)
	require.NoError(t, err)
	_, err = ApproveResult(result.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteTeamCascade(team.ID))

	var count int64
	database.DB.Model(&models.Student{}).Count(&count)
	assert.Equal(t, int64(0), count)
	database.DB.Model(&models.ProgramRegistration{}).Count(&count)
	assert.Equal(t, int64(0), count)
	database.DB.Model(&models.ReplacementRequest{}).Where("team_id = ?", team.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// Results survive as historical snapshots
	database.DB.Model(&models.Result{}).Count(&count)
	assert.Equal(t, int64(1), count)

	assert.ErrorIs(t, DeleteTeamCascade(team.ID), apperrors.ErrNotFound)
}
