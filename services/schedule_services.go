package services

import (
	"fmt"
	"time"

	"fiesta/database"
	"fiesta/models"
	"fiesta/utils/apperrors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IsRegistrationOpen reports whether the registration window is open at the
// given instant. Both bounds are inclusive. A schedule that cannot be parsed
// or whose end precedes its start is never open.
func IsRegistrationOpen(now time.Time, schedule models.RegistrationSchedule) bool {
	start, err := time.Parse(time.RFC3339, schedule.StartDateTime)
	if err != nil {
		return false
	}
	end, err := time.Parse(time.RFC3339, schedule.EndDateTime)
	if err != nil {
		return false
	}
	return !now.Before(start) && !now.After(end)
}

// GetRegistrationSchedule loads the singleton schedule, creating a default
// one-hour window if none exists yet
func GetRegistrationSchedule() (models.RegistrationSchedule, error) {
	var schedule models.RegistrationSchedule
	err := database.DB.Where("key = ?", models.ScheduleKey).First(&schedule).Error
	if err == nil {
		return schedule, nil
	}
	if err != gorm.ErrRecordNotFound {
		return schedule, fmt.Errorf("failed to load registration schedule: %w", apperrors.ErrInternal)
	}

	now := time.Now().UTC()
	schedule = models.RegistrationSchedule{
		Key:           models.ScheduleKey,
		StartDateTime: now.Format(time.RFC3339),
		EndDateTime:   now.Add(time.Hour).Format(time.RFC3339),
	}
	if err := database.DB.Create(&schedule).Error; err != nil {
		return schedule, fmt.Errorf("failed to create registration schedule: %w", apperrors.ErrInternal)
	}
	return schedule, nil
}

// UpdateRegistrationSchedule atomically upserts the singleton schedule
func UpdateRegistrationSchedule(startDateTime, endDateTime string) (models.RegistrationSchedule, error) {
	start, err := time.Parse(time.RFC3339, startDateTime)
	if err != nil {
		return models.RegistrationSchedule{}, fmt.Errorf("start date/time is not a valid RFC3339 instant: %w", apperrors.ErrValidation)
	}
	end, err := time.Parse(time.RFC3339, endDateTime)
	if err != nil {
		return models.RegistrationSchedule{}, fmt.Errorf("end date/time is not a valid RFC3339 instant: %w", apperrors.ErrValidation)
	}

	schedule := models.RegistrationSchedule{
		Key:           models.ScheduleKey,
		StartDateTime: start.UTC().Format(time.RFC3339),
		EndDateTime:   end.UTC().Format(time.RFC3339),
	}
	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_date_time", "end_date_time"}),
	}).Create(&schedule).Error
	if err != nil {
		return schedule, fmt.Errorf("failed to update registration schedule: %w", apperrors.ErrInternal)
	}
	return schedule, nil
}

// RegistrationOpenNow loads the singleton schedule and applies the gate
func RegistrationOpenNow() (bool, error) {
	schedule, err := GetRegistrationSchedule()
	if err != nil {
		return false, err
	}
	return IsRegistrationOpen(time.Now(), schedule), nil
}
