package services

import (
	"fmt"
	"time"

	"fiesta/database"
	"fiesta/metrics"
	"fiesta/models"
	"fiesta/realtime"
	"fiesta/utils"
	"fiesta/utils/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitResult records a jury's result for a registered candidate. The
// result enters the pending queue and contributes no points until approved.
func SubmitResult(programID, studentID string, position int, grade string, jury models.Jury) (models.Result, error) {
	var result models.Result

	if position < 0 || position > 3 {
		return result, fmt.Errorf("position must be between 0 and 3: %w", apperrors.ErrValidation)
	}
	switch grade {
	case "", "A", "B", "C":
	default:
		return result, fmt.Errorf("grade must be A, B, C or empty: %w", apperrors.ErrValidation)
	}

	var program models.Program
	if err := database.DB.Where("id = ?", programID).First(&program).Error; err != nil {
		return result, fmt.Errorf("program not found: %w", apperrors.ErrNotFound)
	}
	var student models.Student
	if err := database.DB.Where("id = ?", studentID).First(&student).Error; err != nil {
		return result, fmt.Errorf("student not found: %w", apperrors.ErrNotFound)
	}
	var team models.Team
	if err := database.DB.Where("id = ?", student.TeamID).First(&team).Error; err != nil {
		return result, fmt.Errorf("student's team not found: %w", apperrors.ErrNotFound)
	}

	result = models.Result{
		ID:           uuid.NewString(),
		ProgramID:    program.ID,
		ProgramName:  program.Name,
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentChest: student.ChestNo,
		TeamID:       team.ID,
		TeamName:     team.Name,
		Position:     position,
		Grade:        grade,
		Points:       utils.CalculatePoints(position, grade),
		Status:       models.ResultPending,
		SubmittedBy:  jury.Name,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := database.DB.Create(&result).Error; err != nil {
		return result, fmt.Errorf("failed to create result: %w", apperrors.ErrInternal)
	}

	realtime.Publish(realtime.ChannelResults, realtime.EventResultSubmitted, result)
	return result, nil
}

// ApproveResult transitions a pending result to approved and recomputes the
// affected team and student totals in the same transaction
func ApproveResult(resultID string) (models.Result, error) {
	var result models.Result
	if err := database.DB.Where("id = ?", resultID).First(&result).Error; err != nil {
		return result, fmt.Errorf("result not found: %w", apperrors.ErrNotFound)
	}
	if result.Status != models.ResultPending {
		return result, fmt.Errorf("result is not pending: %w", apperrors.ErrState)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	result.Status = models.ResultApproved
	result.DecidedAt = &now
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&result).Error; err != nil {
			return fmt.Errorf("failed to update result: %w", apperrors.ErrInternal)
		}
		return recomputeTotals(tx, result.TeamID, result.StudentID)
	})
	if err != nil {
		return result, err
	}

	metrics.ResultDecisions.WithLabelValues("approve").Inc()
	realtime.Publish(realtime.ChannelResults, realtime.EventResultApproved, result)
	realtime.Publish(realtime.ChannelScoreboard, realtime.EventScoreboardUpdated, map[string]string{"team_id": result.TeamID})
	return result, nil
}

// RejectResult transitions a pending result to rejected. The record stays
// for the audit trail but leaves the pending queue and never scores.
func RejectResult(resultID string) (models.Result, error) {
	var result models.Result
	if err := database.DB.Where("id = ?", resultID).First(&result).Error; err != nil {
		return result, fmt.Errorf("result not found: %w", apperrors.ErrNotFound)
	}
	if result.Status != models.ResultPending {
		return result, fmt.Errorf("result is not pending: %w", apperrors.ErrState)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	result.Status = models.ResultRejected
	result.DecidedAt = &now
	if err := database.DB.Save(&result).Error; err != nil {
		return result, fmt.Errorf("failed to update result: %w", apperrors.ErrInternal)
	}

	metrics.ResultDecisions.WithLabelValues("reject").Inc()
	realtime.Publish(realtime.ChannelResults, realtime.EventResultRejected, result)
	return result, nil
}

// DeleteResult permanently removes a result. Removing an approved result
// recomputes the affected totals so the scoreboard never shows stale points.
func DeleteResult(resultID string) error {
	var result models.Result
	if err := database.DB.Where("id = ?", resultID).First(&result).Error; err != nil {
		return fmt.Errorf("result not found: %w", apperrors.ErrNotFound)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&result).Error; err != nil {
			return fmt.Errorf("failed to delete result: %w", apperrors.ErrInternal)
		}
		if result.Status == models.ResultApproved {
			return recomputeTotals(tx, result.TeamID, result.StudentID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.ResultDecisions.WithLabelValues("delete").Inc()
	realtime.Publish(realtime.ChannelResults, realtime.EventResultUpdated, result)
	if result.Status == models.ResultApproved {
		realtime.Publish(realtime.ChannelScoreboard, realtime.EventScoreboardUpdated, map[string]string{"team_id": result.TeamID})
	}
	return nil
}

// recomputeTotals refreshes the cached point totals of a team and a student
// from the approved results
func recomputeTotals(tx *gorm.DB, teamID, studentID string) error {
	var teamPoints int64
	if err := tx.Model(&models.Result{}).
		Where("team_id = ? AND status = ?", teamID, models.ResultApproved).
		Select("COALESCE(SUM(points), 0)").Scan(&teamPoints).Error; err != nil {
		return fmt.Errorf("failed to recompute team points: %w", apperrors.ErrInternal)
	}
	if err := tx.Model(&models.Team{}).Where("id = ?", teamID).
		Update("total_points", teamPoints).Error; err != nil {
		return fmt.Errorf("failed to store team points: %w", apperrors.ErrInternal)
	}

	var studentPoints int64
	if err := tx.Model(&models.Result{}).
		Where("student_id = ? AND status = ?", studentID, models.ResultApproved).
		Select("COALESCE(SUM(points), 0)").Scan(&studentPoints).Error; err != nil {
		return fmt.Errorf("failed to recompute student points: %w", apperrors.ErrInternal)
	}
	if err := tx.Model(&models.Student{}).Where("id = ?", studentID).
		Update("total_points", studentPoints).Error; err != nil {
		return fmt.Errorf("failed to store student points: %w", apperrors.ErrInternal)
	}

	return nil
}

