package students

import (
	"net/http"

	"fiesta/database"
	"fiesta/middleware"
	"fiesta/models"
	"fiesta/services"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
)

// GetAllStudents retrieves the public participant roster
// @Summary Get all students
// @Description Get every participant, optionally filtered by team
// @Tags Students
// @Produce json
// @Param team_id query string false "Filter by team ID"
// @Success 200 {array} models.Student
// @Failure 500 {object} map[string]string
// @Router /students [get]
func GetAllStudents(c *gin.Context) {
	query := database.DB.Order("chest_no")
	if teamID := c.Query("team_id"); teamID != "" {
		query = query.Where("team_id = ?", teamID)
	}

	var students []models.Student
	if err := query.Find(&students).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingStudents)
		return
	}
	c.JSON(http.StatusOK, students)
}

// actingTeam resolves the acting team, or nil when the admin is acting.
// It responds with the error itself when the session is invalid.
func actingTeam(c *gin.Context) (*models.Team, bool) {
	if middleware.IsAdmin(c) {
		return nil, true
	}
	team, err := middleware.GetTeamFromRequest(c)
	if err != nil {
		return nil, false
	}
	return &team, true
}

// CreateStudent adds a participant to a team
// @Summary Create a student
// @Description Add a participant. Teams add to their own roster, the admin names a team.
// @Tags Students
// @Accept json
// @Produce json
// @Param student body CreateStudentRequest true "Student to create"
// @Success 201 {object} models.Student
// @Failure 400,403,409 {object} map[string]string
// @Router /students [post]
// @Security Bearer
func CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	team, ok := actingTeam(c)
	if !ok {
		return
	}

	teamID := req.TeamID
	if team != nil {
		teamID = team.ID
	} else if teamID == "" {
		response.Error(c, http.StatusBadRequest, ErrTeamRequired)
		return
	}

	student, err := services.CreateStudent(req.Name, req.ChestNo, teamID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

// UpdateStudent edits a participant
// @Summary Update a student
// @Description Edit a participant's name or chest number. Teams may only edit their own students.
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param student body UpdateStudentRequest true "Fields to update"
// @Success 200 {object} models.Student
// @Failure 400,403,404,409 {object} map[string]string
// @Router /students/{id} [put]
// @Security Bearer
func UpdateStudent(c *gin.Context) {
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	team, ok := actingTeam(c)
	if !ok {
		return
	}

	student, err := services.UpdateStudent(c.Param("id"), req.Name, req.ChestNo, team)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// DeleteStudent removes a participant and cascades to their registrations
// @Summary Delete a student
// @Description Delete a participant with all of their program registrations
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]string
// @Failure 403,404 {object} map[string]string
// @Router /students/{id} [delete]
// @Security Bearer
func DeleteStudent(c *gin.Context) {
	team, ok := actingTeam(c)
	if !ok {
		return
	}

	if err := services.DeleteStudentCascade(c.Param("id"), team); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Student deleted")
}
