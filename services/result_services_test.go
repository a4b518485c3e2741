package services

import (
	"testing"

	"fiesta/database"
	"fiesta/models"
	"fiesta/utils/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitResult(t *testing.T) {
	setupTestDB(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "R001")
	program := seedProgram(t, "Solo Song", 1)
	jury := seedJury(t, "Judge Smith")

	result, err := SubmitResult(program.ID, student.ID, 1, "A", jury)
	require.NoError(t, err)

	assert.Equal(t, models.ResultPending, result.Status)
	assert.Equal(t, 15, result.Points)
	assert.Equal(t, jury.Name, result.SubmittedBy)
	assert.Equal(t, team.Name, result.TeamName)
	assert.Equal(t, "R001", result.StudentChest)

	// Pending results contribute nothing yet
	var storedTeam models.Team
	require.NoError(t, database.DB.Where("id = ?", team.ID).First(&storedTeam).Error)
	assert.Equal(t, 0, storedTeam.TotalPoints)
}

func TestSubmitResultValidation(t *testing.T) {
	setupTestDB(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "R001")
	program := seedProgram(t, "Solo Song", 1)
	jury := seedJury(t, "Judge Smith")

	_, err := SubmitResult(program.ID, student.ID, 4, "A", jury)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = SubmitResult(program.ID, student.ID, -1, "A", jury)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = SubmitResult(program.ID, student.ID, 1, "D", jury)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = SubmitResult("no-such-program", student.ID, 1, "A", jury)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = SubmitResult(program.ID, "no-such-student", 1, "A", jury)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestApproveResultUpdatesTotals(t *testing.T) {
	setupTestDB(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "R001")
	program := seedProgram(t, "Solo Song", 1)
	jury := seedJury(t, "Judge Smith")

	result, err := SubmitResult(program.ID, student.ID, 2, "B", jury)
	require.NoError(t, err)

	approved, err := ApproveResult(result.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResultApproved, approved.Status)
	assert.NotNil(t, approved.DecidedAt)

	var storedTeam models.Team
	require.NoError(t, database.DB.Where("id = ?", team.ID).First(&storedTeam).Error)
	assert.Equal(t, 9, storedTeam.TotalPoints)

	var storedStudent models.Student
	require.NoError(t, database.DB.Where("id = ?", student.ID).First(&storedStudent).Error)
	assert.Equal(t, 9, storedStudent.TotalPoints)

	// A decided result cannot be approved again
	_, err = ApproveResult(result.ID)
	assert.ErrorIs(t, err, apperrors.ErrState)
}

func TestRejectResult(t *testing.T) {
	setupTestDB(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "R001")
	program := seedProgram(t, "Solo Song", 1)
	jury := seedJury(t, "Judge Smith")

	result, err := SubmitResult(program.ID, student.ID, 1, "", jury)
	require.NoError(t, err)

	rejected, err := RejectResult(result.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResultRejected, rejected.Status)

	var storedTeam models.Team
	require.NoError(t, database.DB.Where("id = ?", team.ID).First(&storedTeam).Error)
	assert.Equal(t, 0, storedTeam.TotalPoints)

	_, err = RejectResult(result.ID)
	assert.ErrorIs(t, err, apperrors.ErrState)
}

func TestDeleteApprovedResultRecomputesTotals(t *testing.T) {
	setupTestDB(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "R001")
	song := seedProgram(t, "Solo Song", 1)
	dance := seedProgram(t, "Solo Dance", 1)
	jury := seedJury(t, "Judge Smith")

	first, err := SubmitResult(song.ID, student.ID, 1, "A", jury)
	require.NoError(t, err)
	second, err := SubmitResult(dance.ID, student.ID, 3, "C", jury)
	require.NoError(t, err)

	_, err = ApproveResult(first.ID)
	require.NoError(t, err)
	_, err = ApproveResult(second.ID)
	require.NoError(t, err)

	var storedTeam models.Team
	require.NoError(t, database.DB.Where("id = ?", team.ID).First(&storedTeam).Error)
	require.Equal(t, 19, storedTeam.TotalPoints)

	require.NoError(t, DeleteResult(first.ID))

	require.NoError(t, database.DB.Where("id = ?", team.ID).First(&storedTeam).Error)
	assert.Equal(t, 4, storedTeam.TotalPoints)

	var storedStudent models.Student
	require.NoError(t, database.DB.Where("id = ?", student.ID).First(&storedStudent).Error)
	assert.Equal(t, 4, storedStudent.TotalPoints)

	assert.ErrorIs(t, DeleteResult(first.ID), apperrors.ErrNotFound)
}

func TestDeletePendingResultKeepsTotals(t *testing.T) {
	setupTestDB(t)
	team := seedTeam(t, "Red House")
	student := seedStudent(t, team, "Anna", "R001")
	program := seedProgram(t, "Solo Song", 1)
	jury := seedJury(t, "Judge Smith")

	approvedResult, err := SubmitResult(program.ID, student.ID, 1, "A", jury)
	require.NoError(t, err)
	_, err = ApproveResult(approvedResult.ID)
	require.NoError(t, err)

	dance := seedProgram(t, "Solo Dance", 1)
	pendingResult, err := SubmitResult(dance.ID, student.ID, 2, "", jury)
	require.NoError(t, err)

	require.NoError(t, DeleteResult(pendingResult.ID))

	var storedTeam models.Team
	require.NoError(t, database.DB.Where("id = ?", team.ID).First(&storedTeam).Error)
	assert.Equal(t, 15, storedTeam.TotalPoints)
}
