package programs

import (
	"net/http"

	"fiesta/database"
	"fiesta/models"
	"fiesta/services"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
)

// ErrFetchingPrograms is returned when the program catalog cannot be loaded
const ErrFetchingPrograms = "Failed to fetch programs"

// UpsertProgramRequest model for creating or updating a program
type UpsertProgramRequest struct {
	Name           string `json:"name"`
	Section        string `json:"section"`
	Category       string `json:"category"`
	CandidateLimit int    `json:"candidate_limit"`
}

// GetAllPrograms retrieves the public program catalog
// @Summary Get all programs
// @Description Get every program, optionally filtered by section or category
// @Tags Programs
// @Produce json
// @Param section query string false "Filter by section"
// @Param category query string false "Filter by category"
// @Success 200 {array} models.Program
// @Failure 500 {object} map[string]string
// @Router /programs [get]
func GetAllPrograms(c *gin.Context) {
	query := database.DB.Order("name")
	if section := c.Query("section"); section != "" {
		query = query.Where("section = ?", section)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var programs []models.Program
	if err := query.Find(&programs).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingPrograms)
		return
	}
	c.JSON(http.StatusOK, programs)
}

// CreateProgram adds a program to the catalog
// @Summary Create a program
// @Description Add a program, admin only. Candidate limit defaults to 1.
// @Tags Programs
// @Accept json
// @Produce json
// @Param program body UpsertProgramRequest true "Program to create"
// @Success 201 {object} models.Program
// @Failure 400 {object} map[string]string
// @Router /programs [post]
// @Security Bearer
func CreateProgram(c *gin.Context) {
	var req UpsertProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	program, err := services.CreateProgram(req.Name, req.Section, req.Category, req.CandidateLimit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

// UpdateProgram edits a program
// @Summary Update a program
// @Description Edit a program's fields, admin only
// @Tags Programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param program body UpsertProgramRequest true "Fields to update"
// @Success 200 {object} models.Program
// @Failure 400,404 {object} map[string]string
// @Router /programs/{id} [put]
// @Security Bearer
func UpdateProgram(c *gin.Context) {
	var req UpsertProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	program, err := services.UpdateProgram(c.Param("id"), req.Name, req.Section, req.Category, req.CandidateLimit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

// DeleteProgram removes a program and cascades to its registrations
// @Summary Delete a program
// @Description Delete a program with its registrations and pending results, admin only
// @Tags Programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /programs/{id} [delete]
// @Security Bearer
func DeleteProgram(c *gin.Context) {
	if err := services.DeleteProgramCascade(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Program deleted")
}
