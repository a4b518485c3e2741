package services

import (
	"fmt"
	"strings"

	"fiesta/database"
	"fiesta/models"
	"fiesta/realtime"
	"fiesta/utils/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProgram adds a festival program. A missing or non-positive candidate
// limit defaults to one entry per team.
func CreateProgram(name, section, category string, candidateLimit int) (models.Program, error) {
	var program models.Program

	name = strings.TrimSpace(name)
	if name == "" {
		return program, fmt.Errorf("program name is required: %w", apperrors.ErrValidation)
	}
	if candidateLimit <= 0 {
		candidateLimit = 1
	}

	program = models.Program{
		ID:             uuid.NewString(),
		Name:           name,
		Section:        strings.TrimSpace(section),
		Category:       strings.TrimSpace(category),
		CandidateLimit: candidateLimit,
	}
	if err := database.DB.Create(&program).Error; err != nil {
		return program, fmt.Errorf("failed to create program: %w", apperrors.ErrInternal)
	}
	return program, nil
}

// UpdateProgram edits a program's fields. The candidate limit only changes
// when a positive value is given.
func UpdateProgram(programID, name, section, category string, candidateLimit int) (models.Program, error) {
	var program models.Program
	if err := database.DB.Where("id = ?", programID).First(&program).Error; err != nil {
		return program, fmt.Errorf("program not found: %w", apperrors.ErrNotFound)
	}

	if name = strings.TrimSpace(name); name != "" {
		program.Name = name
	}
	if section = strings.TrimSpace(section); section != "" {
		program.Section = section
	}
	if category = strings.TrimSpace(category); category != "" {
		program.Category = category
	}
	if candidateLimit > 0 {
		program.CandidateLimit = candidateLimit
	}

	if err := database.DB.Save(&program).Error; err != nil {
		return program, fmt.Errorf("failed to update program: %w", apperrors.ErrInternal)
	}
	return program, nil
}

// DeleteProgramCascade removes a program together with its registrations
// and its still-pending results in one transaction. Decided results keep
// their program name snapshot and stay.
func DeleteProgramCascade(programID string) error {
	var program models.Program
	if err := database.DB.Where("id = ?", programID).First(&program).Error; err != nil {
		return fmt.Errorf("program not found: %w", apperrors.ErrNotFound)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("program_id = ?", programID).Delete(&models.ProgramRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("program_id = ? AND status = ?", programID, models.ResultPending).Delete(&models.Result{}).Error; err != nil {
			return err
		}
		return tx.Delete(&program).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", apperrors.ErrInternal)
	}

	realtime.Publish(realtime.ChannelRegistrations, realtime.EventRegistrationDeleted, map[string]string{"program_id": programID})
	return nil
}
