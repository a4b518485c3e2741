package services

import (
	"errors"
	"fmt"
	"strings"

	"fiesta/database"
	"fiesta/models"
	"fiesta/realtime"
	"fiesta/utils/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateStudent registers a participant under the given team. Chest numbers
// are uppercased on write and must be unique across the whole festival.
func CreateStudent(name, chestNo, teamID string) (models.Student, error) {
	var student models.Student

	name = strings.TrimSpace(name)
	chestNo = strings.ToUpper(strings.TrimSpace(chestNo))
	if name == "" || chestNo == "" {
		return student, fmt.Errorf("name and chest number are required: %w", apperrors.ErrValidation)
	}

	var team models.Team
	if err := database.DB.Where("id = ?", teamID).First(&team).Error; err != nil {
		return student, fmt.Errorf("team not found: %w", apperrors.ErrNotFound)
	}

	var duplicateName int64
	if err := database.DB.Model(&models.Student{}).
		Where("team_id = ? AND LOWER(name) = LOWER(?)", teamID, name).
		Count(&duplicateName).Error; err != nil {
		return student, fmt.Errorf("failed to count students: %w", apperrors.ErrInternal)
	}
	if duplicateName > 0 {
		return student, fmt.Errorf("student name already exists for this team: %w", apperrors.ErrConflict)
	}

	student = models.Student{
		ID:      uuid.NewString(),
		Name:    name,
		ChestNo: chestNo,
		TeamID:  teamID,
	}
	if err := database.DB.Create(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return student, fmt.Errorf("chest number already registered: %w", apperrors.ErrConflict)
		}
		return student, fmt.Errorf("failed to create student: %w", apperrors.ErrInternal)
	}

	realtime.Publish(realtime.ChannelStudents, realtime.EventStudentCreated, student)
	return student, nil
}

// UpdateStudent edits a participant. A nil actingTeam means the admin is
// acting; a team may only edit its own students.
func UpdateStudent(studentID, name, chestNo string, actingTeam *models.Team) (models.Student, error) {
	var student models.Student
	if err := database.DB.Where("id = ?", studentID).First(&student).Error; err != nil {
		return student, fmt.Errorf("student not found: %w", apperrors.ErrNotFound)
	}
	if actingTeam != nil && student.TeamID != actingTeam.ID {
		return student, fmt.Errorf("you can only edit your own students: %w", apperrors.ErrForbidden)
	}

	if name = strings.TrimSpace(name); name != "" {
		student.Name = name
	}
	if chestNo = strings.ToUpper(strings.TrimSpace(chestNo)); chestNo != "" {
		student.ChestNo = chestNo
	}

	if err := database.DB.Save(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return student, fmt.Errorf("chest number already registered: %w", apperrors.ErrConflict)
		}
		return student, fmt.Errorf("failed to update student: %w", apperrors.ErrInternal)
	}

	realtime.Publish(realtime.ChannelStudents, realtime.EventStudentUpdated, student)
	return student, nil
}

// DeleteStudentCascade removes a student together with all of the student's
// program registrations in one transaction. A nil actingTeam means the admin
// is acting.
func DeleteStudentCascade(studentID string, actingTeam *models.Team) error {
	var student models.Student
	if err := database.DB.Where("id = ?", studentID).First(&student).Error; err != nil {
		return fmt.Errorf("student not found: %w", apperrors.ErrNotFound)
	}
	if actingTeam != nil && student.TeamID != actingTeam.ID {
		return fmt.Errorf("you can only delete your own students: %w", apperrors.ErrForbidden)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", studentID).Delete(&models.ProgramRegistration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", apperrors.ErrInternal)
	}

	realtime.Publish(realtime.ChannelStudents, realtime.EventStudentDeleted, student)
	return nil
}
