package teams

import (
	"errors"
	"net/http"

	"fiesta/database"
	"fiesta/models"
	"fiesta/utils"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllJuries lists the jury accounts
// @Summary Get all juries
// @Description List every jury account, admin only
// @Tags Juries
// @Produce json
// @Success 200 {array} models.Jury
// @Failure 500 {object} map[string]string
// @Router /juries [get]
// @Security Bearer
func GetAllJuries(c *gin.Context) {
	var juries []models.Jury
	if err := database.DB.Order("name").Find(&juries).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingJuries)
		return
	}
	c.JSON(http.StatusOK, juries)
}

// CreateJury provisions a jury account
// @Summary Create a jury
// @Description Provision a jury account, admin only
// @Tags Juries
// @Accept json
// @Produce json
// @Param jury body CreateJuryRequest true "Jury to create"
// @Success 201 {object} models.Jury
// @Failure 400,409 {object} map[string]string
// @Router /juries [post]
// @Security Bearer
func CreateJury(c *gin.Context) {
	var req CreateJuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreatingJury)
		return
	}

	jury := models.Jury{ID: uuid.NewString(), Name: req.Name, PasswordHash: hash}
	if err := database.DB.Create(&jury).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Error(c, http.StatusConflict, ErrJuryNameTaken)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrCreatingJury)
		return
	}
	c.JSON(http.StatusCreated, jury)
}

// DeleteJury removes a jury account
// @Summary Delete a jury
// @Description Delete a jury account, admin only
// @Tags Juries
// @Produce json
// @Param id path string true "Jury ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /juries/{id} [delete]
// @Security Bearer
func DeleteJury(c *gin.Context) {
	var jury models.Jury
	if err := database.DB.Where("id = ?", c.Param("id")).First(&jury).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrJuryNotFound)
		return
	}
	if err := database.DB.Delete(&jury).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingJuries)
		return
	}
	response.Message(c, http.StatusOK, "Jury deleted")
}
