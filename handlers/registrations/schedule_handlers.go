package registrations

import (
	"net/http"
	"time"

	"fiesta/services"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
)

// GetSchedule retrieves the registration window and whether it is open
// @Summary Get the registration schedule
// @Description Get the registration window bounds and its current state
// @Tags Registrations
// @Produce json
// @Success 200 {object} ScheduleResponse
// @Failure 500 {object} map[string]string
// @Router /registrations/schedule [get]
func GetSchedule(c *gin.Context) {
	schedule, err := services.GetRegistrationSchedule()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingSchedule)
		return
	}

	c.JSON(http.StatusOK, ScheduleResponse{
		StartDateTime: schedule.StartDateTime,
		EndDateTime:   schedule.EndDateTime,
		Open:          services.IsRegistrationOpen(time.Now(), schedule),
	})
}

// UpdateSchedule sets the registration window
// @Summary Update the registration schedule
// @Description Set the registration window bounds, admin only
// @Tags Registrations
// @Accept json
// @Produce json
// @Param schedule body UpdateScheduleRequest true "Window bounds as RFC3339 instants"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /registrations/schedule [put]
// @Security Bearer
func UpdateSchedule(c *gin.Context) {
	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	schedule, err := services.UpdateRegistrationSchedule(req.StartDateTime, req.EndDateTime)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, ScheduleResponse{
		StartDateTime: schedule.StartDateTime,
		EndDateTime:   schedule.EndDateTime,
		Open:          services.IsRegistrationOpen(time.Now(), schedule),
	})
}
