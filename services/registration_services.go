package services

import (
	"errors"
	"fmt"
	"time"

	"fiesta/database"
	"fiesta/metrics"
	"fiesta/models"
	"fiesta/realtime"
	"fiesta/utils/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterCandidate registers a student of the acting team for a program.
// Preconditions are checked in order and the first failure wins: window
// open, program exists, student belongs to the team, candidate limit not
// reached, student not already registered by any team. The limit check and
// the insert run in one transaction holding a row lock on the program, so
// two sessions of the same team cannot both pass the limit check.
func RegisterCandidate(programID, studentID string, team models.Team) (models.ProgramRegistration, error) {
	var registration models.ProgramRegistration

	open, err := RegistrationOpenNow()
	if err != nil {
		return registration, err
	}
	if !open {
		metrics.RegistrationsRejected.WithLabelValues("window_closed").Inc()
		return registration, fmt.Errorf("registration window is closed: %w", apperrors.ErrState)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var program models.Program
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", programID).First(&program).Error; err != nil {
			metrics.RegistrationsRejected.WithLabelValues("program_not_found").Inc()
			return fmt.Errorf("program not found: %w", apperrors.ErrNotFound)
		}

		var student models.Student
		if err := tx.Where("id = ?", studentID).First(&student).Error; err != nil || student.TeamID != team.ID {
			metrics.RegistrationsRejected.WithLabelValues("forbidden_student").Inc()
			return fmt.Errorf("you can only register your own team members: %w", apperrors.ErrForbidden)
		}

		var teamEntries int64
		if err := tx.Model(&models.ProgramRegistration{}).
			Where("program_id = ? AND team_id = ?", programID, team.ID).
			Count(&teamEntries).Error; err != nil {
			return fmt.Errorf("failed to count team registrations: %w", apperrors.ErrInternal)
		}
		if teamEntries >= int64(program.CandidateLimit) {
			metrics.RegistrationsRejected.WithLabelValues("limit_reached").Inc()
			return fmt.Errorf("candidate limit reached for this program: %w", apperrors.ErrConflict)
		}

		var existing int64
		if err := tx.Model(&models.ProgramRegistration{}).
			Where("program_id = ? AND student_id = ?", programID, studentID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to count registrations: %w", apperrors.ErrInternal)
		}
		if existing > 0 {
			metrics.RegistrationsRejected.WithLabelValues("already_registered").Inc()
			return fmt.Errorf("student already registered for this program: %w", apperrors.ErrConflict)
		}

		registration = models.ProgramRegistration{
			ID:           uuid.NewString(),
			ProgramID:    program.ID,
			ProgramName:  program.Name,
			StudentID:    student.ID,
			StudentName:  student.Name,
			StudentChest: student.ChestNo,
			TeamID:       team.ID,
			TeamName:     team.Name,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := tx.Create(&registration).Error; err != nil {
			// The unique index on (program_id, student_id) catches cross-team
			// races the program lock does not serialize
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				metrics.RegistrationsRejected.WithLabelValues("already_registered").Inc()
				return fmt.Errorf("student already registered for this program: %w", apperrors.ErrConflict)
			}
			return fmt.Errorf("failed to create registration: %w", apperrors.ErrInternal)
		}
		return nil
	})
	if err != nil {
		return models.ProgramRegistration{}, err
	}

	metrics.RegistrationsCreated.Inc()
	realtime.Publish(realtime.ChannelRegistrations, realtime.EventRegistrationCreated, registration)
	return registration, nil
}

// RemoveRegistration deletes a registration owned by the acting team
func RemoveRegistration(registrationID string, team models.Team) error {
	var registration models.ProgramRegistration
	if err := database.DB.Where("id = ?", registrationID).First(&registration).Error; err != nil {
		return fmt.Errorf("registration not found: %w", apperrors.ErrNotFound)
	}
	if registration.TeamID != team.ID {
		return fmt.Errorf("cannot remove registrations of other teams: %w", apperrors.ErrForbidden)
	}

	if err := database.DB.Delete(&registration).Error; err != nil {
		return fmt.Errorf("failed to delete registration: %w", apperrors.ErrInternal)
	}

	realtime.Publish(realtime.ChannelRegistrations, realtime.EventRegistrationDeleted, registration)
	return nil
}
