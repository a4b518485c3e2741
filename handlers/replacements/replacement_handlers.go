package replacements

import (
	"net/http"

	"fiesta/database"
	"fiesta/middleware"
	"fiesta/models"
	"fiesta/services"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
)

// ErrFetchingRequests is returned when replacement requests cannot be loaded
const ErrFetchingRequests = "Failed to fetch replacement requests"

// SubmitRequest model for filing a replacement request
type SubmitRequest struct {
	ProgramID    string `json:"program_id" binding:"required"`
	OldStudentID string `json:"old_student_id" binding:"required"`
	NewStudentID string `json:"new_student_id" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
}

// GetReplacementRequests retrieves replacement requests. Teams see their
// own, the admin sees everything.
// @Summary Get replacement requests
// @Description Get replacement requests, scoped to the acting team unless admin
// @Tags Replacements
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Success 200 {array} models.ReplacementRequest
// @Failure 401 {object} map[string]string
// @Router /replacements [get]
// @Security Bearer
func GetReplacementRequests(c *gin.Context) {
	query := database.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if !middleware.IsAdmin(c) {
		team, err := middleware.GetTeamFromRequest(c)
		if err != nil {
			return
		}
		query = query.Where("team_id = ?", team.ID)
	}

	var requests []models.ReplacementRequest
	if err := query.Find(&requests).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingRequests)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Submit files a replacement request for admin review
// @Summary Submit a replacement request
// @Description File a post-window substitution request for admin approval
// @Tags Replacements
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Replacement request"
// @Success 201 {object} models.ReplacementRequest
// @Failure 400,403,404,409 {object} map[string]string
// @Router /replacements [post]
// @Security Bearer
func Submit(c *gin.Context) {
	team, err := middleware.GetTeamFromRequest(c)
	if err != nil {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	request, err := services.SubmitReplacementRequest(req.ProgramID, req.OldStudentID, req.NewStudentID, req.Reason, team)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// Approve approves a pending replacement request and performs the
// substitution
// @Summary Approve a replacement request
// @Description Approve a pending request and swap the registration, admin only
// @Tags Replacements
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} models.ReplacementRequest
// @Failure 404,409 {object} map[string]string
// @Router /replacements/{id}/approve [put]
// @Security Bearer
func Approve(c *gin.Context) {
	request, err := services.DecideReplacementRequest(c.Param("id"), services.OutcomeApprove, c.GetString("session_subject"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// Reject rejects a pending replacement request
// @Summary Reject a replacement request
// @Description Reject a pending request without touching registrations, admin only
// @Tags Replacements
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} models.ReplacementRequest
// @Failure 404,409 {object} map[string]string
// @Router /replacements/{id}/reject [put]
// @Security Bearer
func Reject(c *gin.Context) {
	request, err := services.DecideReplacementRequest(c.Param("id"), services.OutcomeReject, c.GetString("session_subject"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}
