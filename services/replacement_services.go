package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fiesta/database"
	"fiesta/metrics"
	"fiesta/models"
	"fiesta/realtime"
	"fiesta/utils/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Decision outcomes accepted by DecideReplacementRequest
const (
	OutcomeApprove = "approve"
	OutcomeReject  = "reject"
)

// SubmitReplacementRequest files a pending substitution request. Replacement
// requests exist for post-window changes only: while the window is open,
// teams register and remove candidates directly instead.
func SubmitReplacementRequest(programID, oldStudentID, newStudentID, reason string, team models.Team) (models.ReplacementRequest, error) {
	var request models.ReplacementRequest

	open, err := RegistrationOpenNow()
	if err != nil {
		return request, err
	}
	if open {
		return request, fmt.Errorf("registration window is still open, use the registration page to make changes directly: %w", apperrors.ErrState)
	}

	programID = strings.TrimSpace(programID)
	oldStudentID = strings.TrimSpace(oldStudentID)
	newStudentID = strings.TrimSpace(newStudentID)
	reason = strings.TrimSpace(reason)
	if programID == "" || oldStudentID == "" || newStudentID == "" || reason == "" {
		return request, fmt.Errorf("all fields are required: %w", apperrors.ErrValidation)
	}
	if oldStudentID == newStudentID {
		return request, fmt.Errorf("old and new students must be different: %w", apperrors.ErrValidation)
	}

	var program models.Program
	if err := database.DB.Where("id = ?", programID).First(&program).Error; err != nil {
		return request, fmt.Errorf("program not found: %w", apperrors.ErrNotFound)
	}

	var oldStudent models.Student
	if err := database.DB.Where("id = ?", oldStudentID).First(&oldStudent).Error; err != nil || oldStudent.TeamID != team.ID {
		return request, fmt.Errorf("old student not found or does not belong to your team: %w", apperrors.ErrForbidden)
	}
	var newStudent models.Student
	if err := database.DB.Where("id = ?", newStudentID).First(&newStudent).Error; err != nil || newStudent.TeamID != team.ID {
		return request, fmt.Errorf("new student not found or does not belong to your team: %w", apperrors.ErrForbidden)
	}

	var oldRegistered int64
	if err := database.DB.Model(&models.ProgramRegistration{}).
		Where("program_id = ? AND student_id = ? AND team_id = ?", programID, oldStudentID, team.ID).
		Count(&oldRegistered).Error; err != nil {
		return request, fmt.Errorf("failed to count registrations: %w", apperrors.ErrInternal)
	}
	if oldRegistered == 0 {
		return request, fmt.Errorf("the old student is not registered for this program: %w", apperrors.ErrValidation)
	}

	var newRegistered int64
	if err := database.DB.Model(&models.ProgramRegistration{}).
		Where("program_id = ? AND student_id = ?", programID, newStudentID).
		Count(&newRegistered).Error; err != nil {
		return request, fmt.Errorf("failed to count registrations: %w", apperrors.ErrInternal)
	}
	if newRegistered > 0 {
		return request, fmt.Errorf("the new student is already registered for this program: %w", apperrors.ErrConflict)
	}

	request = models.ReplacementRequest{
		ID:              uuid.NewString(),
		ProgramID:       program.ID,
		ProgramName:     program.Name,
		OldStudentID:    oldStudent.ID,
		OldStudentName:  oldStudent.Name,
		OldStudentChest: oldStudent.ChestNo,
		NewStudentID:    newStudent.ID,
		NewStudentName:  newStudent.Name,
		NewStudentChest: newStudent.ChestNo,
		TeamID:          team.ID,
		TeamName:        team.Name,
		Reason:          reason,
		Status:          models.RequestPending,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := database.DB.Create(&request).Error; err != nil {
		return request, fmt.Errorf("failed to create replacement request: %w", apperrors.ErrInternal)
	}

	return request, nil
}

// DecideReplacementRequest approves or rejects a pending request. Approval
// also performs the substitution itself: the old student's registration is
// removed and the new student registered for the same program and team, all
// in one transaction so a crash cannot approve the request without swapping
// the registration.
func DecideReplacementRequest(requestID, outcome, decidedBy string) (models.ReplacementRequest, error) {
	var request models.ReplacementRequest

	if outcome != OutcomeApprove && outcome != OutcomeReject {
		return request, fmt.Errorf("unknown decision outcome %q: %w", outcome, apperrors.ErrValidation)
	}

	if err := database.DB.Where("id = ?", requestID).First(&request).Error; err != nil {
		return request, fmt.Errorf("replacement request not found: %w", apperrors.ErrNotFound)
	}
	if request.Status != models.RequestPending {
		return request, fmt.Errorf("replacement request already decided: %w", apperrors.ErrState)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	request.DecidedBy = &decidedBy
	request.DecidedAt = &now

	if outcome == OutcomeReject {
		request.Status = models.RequestRejected
		if err := database.DB.Save(&request).Error; err != nil {
			return request, fmt.Errorf("failed to update replacement request: %w", apperrors.ErrInternal)
		}
		metrics.ReplacementDecisions.WithLabelValues(OutcomeReject).Inc()
		return request, nil
	}

	request.Status = models.RequestApproved
	var removed, created models.ProgramRegistration
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("program_id = ? AND student_id = ? AND team_id = ?",
			request.ProgramID, request.OldStudentID, request.TeamID).First(&removed).Error; err != nil {
			return fmt.Errorf("the old student is no longer registered for this program: %w", apperrors.ErrState)
		}
		if err := tx.Delete(&removed).Error; err != nil {
			return fmt.Errorf("failed to remove old registration: %w", apperrors.ErrInternal)
		}

		created = models.ProgramRegistration{
			ID:           uuid.NewString(),
			ProgramID:    request.ProgramID,
			ProgramName:  request.ProgramName,
			StudentID:    request.NewStudentID,
			StudentName:  request.NewStudentName,
			StudentChest: request.NewStudentChest,
			TeamID:       request.TeamID,
			TeamName:     request.TeamName,
			Timestamp:    now,
		}
		if err := tx.Create(&created).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("the new student is already registered for this program: %w", apperrors.ErrConflict)
			}
			return fmt.Errorf("failed to create replacement registration: %w", apperrors.ErrInternal)
		}

		return tx.Save(&request).Error
	})
	if err != nil {
		return models.ReplacementRequest{}, err
	}

	metrics.ReplacementDecisions.WithLabelValues(OutcomeApprove).Inc()
	realtime.Publish(realtime.ChannelRegistrations, realtime.EventRegistrationDeleted, removed)
	realtime.Publish(realtime.ChannelRegistrations, realtime.EventRegistrationCreated, created)
	return request, nil
}
