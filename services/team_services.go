package services

import (
	"errors"
	"fmt"
	"strings"

	"fiesta/database"
	"fiesta/models"
	"fiesta/realtime"
	"fiesta/utils"
	"fiesta/utils/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTeam provisions a team account with portal access
func CreateTeam(name, leaderName, password, themeColor string) (models.Team, error) {
	var team models.Team

	name = strings.TrimSpace(name)
	leaderName = strings.TrimSpace(leaderName)
	if name == "" || leaderName == "" || password == "" {
		return team, fmt.Errorf("team name, leader name and password are required: %w", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return team, fmt.Errorf("failed to hash password: %w", apperrors.ErrInternal)
	}

	team = models.Team{
		ID:           uuid.NewString(),
		Name:         name,
		LeaderName:   leaderName,
		ThemeColor:   utils.SanitizeColor(themeColor),
		PasswordHash: hash,
	}
	if err := database.DB.Create(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return team, fmt.Errorf("a team with this name already exists: %w", apperrors.ErrConflict)
		}
		return team, fmt.Errorf("failed to create team: %w", apperrors.ErrInternal)
	}
	return team, nil
}

// UpdateTeam edits a team's portal account. An empty password keeps the
// current one.
func UpdateTeam(teamID, name, leaderName, password, themeColor string) (models.Team, error) {
	var team models.Team
	if err := database.DB.Where("id = ?", teamID).First(&team).Error; err != nil {
		return team, fmt.Errorf("team not found: %w", apperrors.ErrNotFound)
	}

	if name = strings.TrimSpace(name); name != "" {
		team.Name = name
	}
	if leaderName = strings.TrimSpace(leaderName); leaderName != "" {
		team.LeaderName = leaderName
	}
	if themeColor != "" {
		team.ThemeColor = utils.SanitizeColor(themeColor)
	}
	if password != "" {
		hash, err := utils.HashPassword(password)
		if err != nil {
			return team, fmt.Errorf("failed to hash password: %w", apperrors.ErrInternal)
		}
		team.PasswordHash = hash
	}

	if err := database.DB.Save(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return team, fmt.Errorf("a team with this name already exists: %w", apperrors.ErrConflict)
		}
		return team, fmt.Errorf("failed to update team: %w", apperrors.ErrInternal)
	}
	return team, nil
}

// DeleteTeamCascade removes a team together with its students, their
// program registrations and its replacement requests in one transaction, so
// a crash mid-cascade can never leave orphaned records behind. Results stay
// untouched: they carry name snapshots and remain part of the festival
// record.
func DeleteTeamCascade(teamID string) error {
	var team models.Team
	if err := database.DB.Where("id = ?", teamID).First(&team).Error; err != nil {
		return fmt.Errorf("team not found: %w", apperrors.ErrNotFound)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&models.ProgramRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&models.ReplacementRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&models.Student{}).Error; err != nil {
			return err
		}
		return tx.Delete(&team).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", apperrors.ErrInternal)
	}

	realtime.Publish(realtime.ChannelScoreboard, realtime.EventScoreboardUpdated, map[string]string{"team_id": teamID})
	return nil
}
