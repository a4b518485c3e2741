package teams

import (
	"net/http"

	"fiesta/database"
	"fiesta/models"
	"fiesta/services"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
)

// GetAllTeams retrieves the public listing of all teams
// @Summary Get all teams
// @Description Get the public projection of every team, ordered by name
// @Tags Teams
// @Produce json
// @Success 200 {array} PublicTeam
// @Failure 500 {object} map[string]string
// @Router /teams [get]
func GetAllTeams(c *gin.Context) {
	var teams []models.Team
	if err := database.DB.Order("name").Find(&teams).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingTeams)
		return
	}

	public := make([]PublicTeam, 0, len(teams))
	for _, team := range teams {
		public = append(public, PublicTeam{
			ID:          team.ID,
			Name:        team.Name,
			LeaderName:  team.LeaderName,
			ThemeColor:  team.ThemeColor,
			TotalPoints: team.TotalPoints,
		})
	}
	c.JSON(http.StatusOK, public)
}

// GetTeam retrieves a team with its students
// @Summary Get a team
// @Description Get a team by ID with its students, admin only
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [get]
// @Security Bearer
func GetTeam(c *gin.Context) {
	var team models.Team
	if err := database.DB.Where("id = ?", c.Param("id")).Preload("Students").First(&team).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}
	c.JSON(http.StatusOK, team)
}

// CreateTeam provisions a team account
// @Summary Create a team
// @Description Provision a team account with portal access, admin only
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body UpsertTeamRequest true "Team to create"
// @Success 201 {object} models.Team
// @Failure 400,409 {object} map[string]string
// @Router /teams [post]
// @Security Bearer
func CreateTeam(c *gin.Context) {
	var req UpsertTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	team, err := services.CreateTeam(req.Name, req.LeaderName, req.Password, req.ThemeColor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam edits a team's portal account
// @Summary Update a team
// @Description Edit a team's name, leader, color or password, admin only
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body UpsertTeamRequest true "Fields to update"
// @Success 200 {object} models.Team
// @Failure 400,404,409 {object} map[string]string
// @Router /teams/{id} [put]
// @Security Bearer
func UpdateTeam(c *gin.Context) {
	var req UpsertTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	team, err := services.UpdateTeam(c.Param("id"), req.Name, req.LeaderName, req.Password, req.ThemeColor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team and cascades to its students and registrations
// @Summary Delete a team
// @Description Delete a team with its students, registrations and replacement requests, admin only
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [delete]
// @Security Bearer
func DeleteTeam(c *gin.Context) {
	if err := services.DeleteTeamCascade(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Team deleted")
}
