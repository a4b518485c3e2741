package services

import (
	"testing"

	"fiesta/database"
	"fiesta/models"
	"fiesta/utils/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replacementFixture registers old for the program during the window, then
// closes the window so replacement requests become available
type replacementFixture struct {
	team    models.Team
	old     models.Student
	fresh   models.Student
	program models.Program
}

func setupReplacementFixture(t *testing.T) replacementFixture {
	t.Helper()
	openWindow(t)
	team := seedTeam(t, "Red House")
	old := seedStudent(t, team, "Anna", "R001")
	fresh := seedStudent(t, team, "Ben", "R002")
	program := seedProgram(t, "Solo Song", 1)

	_, err := RegisterCandidate(program.ID, old.ID, team)
	require.NoError(t, err)

	closeWindow(t)
	return replacementFixture{team: team, old: old, fresh: fresh, program: program}
}

func TestSubmitReplacementRequest(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)

	request, err := SubmitReplacementRequest(f.program.ID, f.old.ID, f.fresh.ID, "Anna is ill", f.team)
	require.NoError(t, err)

	assert.Equal(t, models.RequestPending, request.Status)
	assert.Equal(t, f.old.Name, request.OldStudentName)
	assert.Equal(t, f.fresh.Name, request.NewStudentName)
	assert.Equal(t, f.program.Name, request.ProgramName)
	assert.Nil(t, request.DecidedBy)
}

func TestSubmitReplacementRequestWindowOpen(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)
	openWindow(t)

	_, err := SubmitReplacementRequest(f.program.ID, f.old.ID, f.fresh.ID, "Anna is ill", f.team)
	assert.ErrorIs(t, err, apperrors.ErrState)
}

func TestSubmitReplacementRequestValidation(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)

	_, err := SubmitReplacementRequest(f.program.ID, f.old.ID, f.fresh.ID, "   ", f.team)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = SubmitReplacementRequest(f.program.ID, f.old.ID, f.old.ID, "swap", f.team)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSubmitReplacementRequestCountFailure(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)

	require.NoError(t, database.DB.Migrator().DropTable(&models.ProgramRegistration{}))

	_, err := SubmitReplacementRequest(f.program.ID, f.old.ID, f.fresh.ID, "Anna is ill", f.team)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestSubmitReplacementRequestOldNotRegistered(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)

	// fresh was never registered, so using it as the outgoing student fails
	_, err := SubmitReplacementRequest(f.program.ID, f.fresh.ID, f.old.ID, "swap back", f.team)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSubmitReplacementRequestNewAlreadyRegistered(t *testing.T) {
	setupTestDB(t)
	openWindow(t)
	team := seedTeam(t, "Red House")
	anna := seedStudent(t, team, "Anna", "R001")
	ben := seedStudent(t, team, "Ben", "R002")
	program := seedProgram(t, "Group Dance", 5)

	_, err := RegisterCandidate(program.ID, anna.ID, team)
	require.NoError(t, err)
	_, err = RegisterCandidate(program.ID, ben.ID, team)
	require.NoError(t, err)
	closeWindow(t)

	_, err = SubmitReplacementRequest(program.ID, anna.ID, ben.ID, "swap", team)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestSubmitReplacementRequestForeignStudent(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)
	blue := seedTeam(t, "Blue House")
	outsider := seedStudent(t, blue, "Carol", "B001")

	_, err := SubmitReplacementRequest(f.program.ID, f.old.ID, outsider.ID, "swap", f.team)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestDecideReplacementRequestApprove(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)
	request, err := SubmitReplacementRequest(f.program.ID, f.old.ID, f.fresh.ID, "Anna is ill", f.team)
	require.NoError(t, err)

	decided, err := DecideReplacementRequest(request.ID, OutcomeApprove, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "admin", *decided.DecidedBy)
	assert.NotNil(t, decided.DecidedAt)

	// The substitution happened: old is out, fresh is in
	var registrations []models.ProgramRegistration
	require.NoError(t, database.DB.Find(&registrations).Error)
	require.Len(t, registrations, 1)
	assert.Equal(t, f.fresh.ID, registrations[0].StudentID)
	assert.Equal(t, f.program.ID, registrations[0].ProgramID)
	assert.Equal(t, f.team.ID, registrations[0].TeamID)
}

func TestDecideReplacementRequestReject(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)
	request, err := SubmitReplacementRequest(f.program.ID, f.old.ID, f.fresh.ID, "Anna is ill", f.team)
	require.NoError(t, err)

	decided, err := DecideReplacementRequest(request.ID, OutcomeReject, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, decided.Status)

	// The registration is untouched
	var registrations []models.ProgramRegistration
	require.NoError(t, database.DB.Find(&registrations).Error)
	require.Len(t, registrations, 1)
	assert.Equal(t, f.old.ID, registrations[0].StudentID)
}

func TestDecideReplacementRequestAlreadyDecided(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)
	request, err := SubmitReplacementRequest(f.program.ID, f.old.ID, f.fresh.ID, "Anna is ill", f.team)
	require.NoError(t, err)

	_, err = DecideReplacementRequest(request.ID, OutcomeReject, "admin")
	require.NoError(t, err)

	_, err = DecideReplacementRequest(request.ID, OutcomeApprove, "admin")
	assert.ErrorIs(t, err, apperrors.ErrState)
}

func TestDecideReplacementRequestUnknownOutcome(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)
	request, err := SubmitReplacementRequest(f.program.ID, f.old.ID, f.fresh.ID, "Anna is ill", f.team)
	require.NoError(t, err)

	_, err = DecideReplacementRequest(request.ID, "postpone", "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = DecideReplacementRequest("no-such-request", OutcomeApprove, "admin")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// Approval fails and stays pending when the outgoing registration has
// meanwhile disappeared
func TestDecideReplacementRequestRegistrationGone(t *testing.T) {
	setupTestDB(t)
	f := setupReplacementFixture(t)
	request, err := SubmitReplacementRequest(f.program.ID, f.old.ID, f.fresh.ID, "Anna is ill", f.team)
	require.NoError(t, err)

	require.NoError(t, database.DB.
		Where("program_id = ? AND student_id = ?", f.program.ID, f.old.ID).
		Delete(&models.ProgramRegistration{}).Error)

	_, err = DecideReplacementRequest(request.ID, OutcomeApprove, "admin")
	assert.ErrorIs(t, err, apperrors.ErrState)

	var stored models.ReplacementRequest
	require.NoError(t, database.DB.Where("id = ?", request.ID).First(&stored).Error)
	assert.Equal(t, models.RequestPending, stored.Status)
}
