package results

import (
	"net/http"

	"fiesta/database"
	"fiesta/middleware"
	"fiesta/models"
	"fiesta/services"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
)

// Error messages for the result handlers
const (
	ErrFetchingResults = "Failed to fetch results"
)

// SubmitResultRequest model for a jury result submission
type SubmitResultRequest struct {
	ProgramID string `json:"program_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
	Position  int    `json:"position"`
	Grade     string `json:"grade"`
}

// GetApprovedResults retrieves the publicly visible results
// @Summary Get approved results
// @Description Get every approved result, optionally filtered by program
// @Tags Results
// @Produce json
// @Param program_id query string false "Filter by program ID"
// @Success 200 {array} models.Result
// @Failure 500 {object} map[string]string
// @Router /results [get]
func GetApprovedResults(c *gin.Context) {
	query := database.DB.Where("status = ?", models.ResultApproved).Order("created_at DESC")
	if programID := c.Query("program_id"); programID != "" {
		query = query.Where("program_id = ?", programID)
	}

	var results []models.Result
	if err := query.Find(&results).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingResults)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetPendingResults retrieves the admin approval queue
// @Summary Get pending results
// @Description Get every result awaiting an admin decision
// @Tags Results
// @Produce json
// @Success 200 {array} models.Result
// @Failure 500 {object} map[string]string
// @Router /results/pending [get]
// @Security Bearer
func GetPendingResults(c *gin.Context) {
	var results []models.Result
	if err := database.DB.Where("status = ?", models.ResultPending).
		Order("created_at").Find(&results).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingResults)
		return
	}
	c.JSON(http.StatusOK, results)
}

// Submit records a jury result into the pending queue
// @Summary Submit a result
// @Description Record a result for a candidate, jury only. Points are computed from position and grade.
// @Tags Results
// @Accept json
// @Produce json
// @Param result body SubmitResultRequest true "Result to submit"
// @Success 201 {object} models.Result
// @Failure 400,404 {object} map[string]string
// @Router /results [post]
// @Security Bearer
func Submit(c *gin.Context) {
	jury, err := middleware.GetJuryFromRequest(c)
	if err != nil {
		return
	}

	var req SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.SubmitResult(req.ProgramID, req.StudentID, req.Position, req.Grade, jury)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Approve approves a pending result
// @Summary Approve a result
// @Description Approve a pending result and recompute the affected totals, admin only
// @Tags Results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} models.Result
// @Failure 404,409 {object} map[string]string
// @Router /results/{id}/approve [put]
// @Security Bearer
func Approve(c *gin.Context) {
	result, err := services.ApproveResult(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reject rejects a pending result
// @Summary Reject a result
// @Description Reject a pending result, removing it from the queue, admin only
// @Tags Results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} models.Result
// @Failure 404,409 {object} map[string]string
// @Router /results/{id}/reject [put]
// @Security Bearer
func Reject(c *gin.Context) {
	result, err := services.RejectResult(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete permanently removes a result
// @Summary Delete a result
// @Description Delete a result and recompute affected totals, admin only
// @Tags Results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /results/{id} [delete]
// @Security Bearer
func Delete(c *gin.Context) {
	if err := services.DeleteResult(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Result deleted")
}
