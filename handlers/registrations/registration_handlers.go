package registrations

import (
	"net/http"

	"fiesta/database"
	"fiesta/middleware"
	"fiesta/models"
	"fiesta/services"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
)

// GetRegistrations retrieves program registrations. Teams see their own,
// the admin sees everything.
// @Summary Get registrations
// @Description Get program registrations, scoped to the acting team unless admin
// @Tags Registrations
// @Produce json
// @Param program_id query string false "Filter by program ID"
// @Success 200 {array} models.ProgramRegistration
// @Failure 401 {object} map[string]string
// @Router /registrations [get]
// @Security Bearer
func GetRegistrations(c *gin.Context) {
	query := database.DB.Order("timestamp")
	if programID := c.Query("program_id"); programID != "" {
		query = query.Where("program_id = ?", programID)
	}

	if !middleware.IsAdmin(c) {
		team, err := middleware.GetTeamFromRequest(c)
		if err != nil {
			return
		}
		query = query.Where("team_id = ?", team.ID)
	}

	var registrations []models.ProgramRegistration
	if err := query.Find(&registrations).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingRegistrations)
		return
	}
	c.JSON(http.StatusOK, registrations)
}

// Register enters a student of the acting team into a program
// @Summary Register a candidate
// @Description Register a team member for a program while the window is open
// @Tags Registrations
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "Registration to create"
// @Success 201 {object} models.ProgramRegistration
// @Failure 400,403,404,409 {object} map[string]string
// @Router /registrations [post]
// @Security Bearer
func Register(c *gin.Context) {
	team, err := middleware.GetTeamFromRequest(c)
	if err != nil {
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	registration, err := services.RegisterCandidate(req.ProgramID, req.StudentID, team)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registration)
}

// Remove deletes a registration owned by the acting team
// @Summary Remove a registration
// @Description Delete one of the acting team's program registrations
// @Tags Registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} map[string]string
// @Failure 403,404 {object} map[string]string
// @Router /registrations/{id} [delete]
// @Security Bearer
func Remove(c *gin.Context) {
	team, err := middleware.GetTeamFromRequest(c)
	if err != nil {
		return
	}

	if err := services.RemoveRegistration(c.Param("id"), team); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Registration removed")
}
