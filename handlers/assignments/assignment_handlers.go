package assignments

import (
	"errors"
	"net/http"
	"time"

	"fiesta/database"
	"fiesta/models"
	"fiesta/realtime"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Error messages for the assignment handlers
const (
	ErrFetchingAssignments = "Failed to fetch assignments"
	ErrProgramNotFound     = "Program not found"
	ErrJuryNotFound        = "Jury not found"
	ErrAlreadyAssigned     = "Jury is already assigned to this program"
	ErrCreatingAssignment  = "Failed to create assignment"
	ErrAssignmentNotFound  = "Assignment not found"
	ErrDeletingAssignment  = "Failed to delete assignment"
)

// CreateAssignmentRequest model for putting a jury member on duty
type CreateAssignmentRequest struct {
	ProgramID string `json:"program_id" binding:"required"`
	JuryID    string `json:"jury_id" binding:"required"`
	Stage     string `json:"stage"`
}

// GetAssignments retrieves the jury duty roster
// @Summary Get assignments
// @Description Get jury assignments, optionally filtered by program or jury
// @Tags Assignments
// @Produce json
// @Param program_id query string false "Filter by program ID"
// @Param jury_id query string false "Filter by jury ID"
// @Success 200 {array} models.Assignment
// @Failure 500 {object} map[string]string
// @Router /assignments [get]
func GetAssignments(c *gin.Context) {
	query := database.DB.Order("created_at")
	if programID := c.Query("program_id"); programID != "" {
		query = query.Where("program_id = ?", programID)
	}
	if juryID := c.Query("jury_id"); juryID != "" {
		query = query.Where("jury_id = ?", juryID)
	}

	var assignments []models.Assignment
	if err := query.Find(&assignments).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingAssignments)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// CreateAssignment puts a jury member on duty for a program
// @Summary Create an assignment
// @Description Assign a jury member to a program stage, admin only
// @Tags Assignments
// @Accept json
// @Produce json
// @Param assignment body CreateAssignmentRequest true "Assignment to create"
// @Success 201 {object} models.Assignment
// @Failure 400,404,409 {object} map[string]string
// @Router /assignments [post]
// @Security Bearer
func CreateAssignment(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var program models.Program
	if err := database.DB.First(&program, "id = ?", req.ProgramID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrProgramNotFound)
		return
	}
	var jury models.Jury
	if err := database.DB.First(&jury, "id = ?", req.JuryID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrJuryNotFound)
		return
	}

	assignment := models.Assignment{
		ID:          uuid.NewString(),
		ProgramID:   program.ID,
		ProgramName: program.Name,
		JuryID:      jury.ID,
		JuryName:    jury.Name,
		Stage:       req.Stage,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := database.DB.Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Error(c, http.StatusConflict, ErrAlreadyAssigned)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrCreatingAssignment)
		return
	}

	realtime.Publish(realtime.ChannelAssignments, realtime.EventAssignmentCreated, assignment)
	c.JSON(http.StatusCreated, assignment)
}

// DeleteAssignment takes a jury member off duty
// @Summary Delete an assignment
// @Description Remove a jury assignment, admin only
// @Tags Assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /assignments/{id} [delete]
// @Security Bearer
func DeleteAssignment(c *gin.Context) {
	var assignment models.Assignment
	if err := database.DB.First(&assignment, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrAssignmentNotFound)
		return
	}
	if err := database.DB.Delete(&assignment).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDeletingAssignment)
		return
	}

	realtime.Publish(realtime.ChannelAssignments, realtime.EventAssignmentDeleted, map[string]string{"id": assignment.ID})
	response.Message(c, http.StatusOK, "Assignment deleted")
}
