package services

import (
	"testing"
	"time"

	"fiesta/database"
	"fiesta/models"
	"fiesta/utils/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleAt(start, end time.Time) models.RegistrationSchedule {
	return models.RegistrationSchedule{
		Key:           models.ScheduleKey,
		StartDateTime: start.Format(time.RFC3339),
		EndDateTime:   end.Format(time.RFC3339),
	}
}

func TestIsRegistrationOpenBounds(t *testing.T) {
	start := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 17, 0, 0, 0, time.UTC)
	schedule := scheduleAt(start, end)

	assert.False(t, IsRegistrationOpen(start.Add(-time.Second), schedule))
	assert.True(t, IsRegistrationOpen(start, schedule))
	assert.True(t, IsRegistrationOpen(start.Add(4*time.Hour), schedule))
	assert.True(t, IsRegistrationOpen(end, schedule))
	assert.False(t, IsRegistrationOpen(end.Add(time.Second), schedule))
}

func TestIsRegistrationOpenInvertedWindow(t *testing.T) {
	start := time.Date(2026, 2, 1, 17, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	schedule := scheduleAt(start, end)

	for _, instant := range []time.Time{end.Add(-time.Hour), end, end.Add(time.Hour), start, start.Add(time.Hour)} {
		assert.False(t, IsRegistrationOpen(instant, schedule))
	}
}

func TestIsRegistrationOpenMalformedSchedule(t *testing.T) {
	schedule := models.RegistrationSchedule{
		Key:           models.ScheduleKey,
		StartDateTime: "not a timestamp",
		EndDateTime:   "also not a timestamp",
	}
	assert.False(t, IsRegistrationOpen(time.Now(), schedule))
}

func TestGetRegistrationScheduleCreatesDefault(t *testing.T) {
	setupTestDB(t)

	schedule, err := GetRegistrationSchedule()
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleKey, schedule.Key)

	again, err := GetRegistrationSchedule()
	require.NoError(t, err)
	assert.Equal(t, schedule.StartDateTime, again.StartDateTime)
	assert.Equal(t, schedule.EndDateTime, again.EndDateTime)

	var count int64
	database.DB.Model(&models.RegistrationSchedule{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateRegistrationScheduleUpsert(t *testing.T) {
	setupTestDB(t)

	_, err := UpdateRegistrationSchedule("2026-02-01T09:00:00Z", "2026-02-01T17:00:00Z")
	require.NoError(t, err)
	updated, err := UpdateRegistrationSchedule("2026-03-01T09:00:00Z", "2026-03-05T17:00:00Z")
	require.NoError(t, err)

	var count int64
	database.DB.Model(&models.RegistrationSchedule{}).Count(&count)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, "2026-03-01T09:00:00Z", updated.StartDateTime)

	loaded, err := GetRegistrationSchedule()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05T17:00:00Z", loaded.EndDateTime)
}

func TestUpdateRegistrationScheduleRejectsBadInput(t *testing.T) {
	setupTestDB(t)

	_, err := UpdateRegistrationSchedule("yesterday", "2026-02-01T17:00:00Z")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = UpdateRegistrationSchedule("2026-02-01T09:00:00Z", "tomorrow")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
