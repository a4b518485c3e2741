package results

import (
	"fmt"
	"net/http"

	"fiesta/database"
	"fiesta/models"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportApprovedResultsExcel streams the approved results as an XLSX workbook
// @Summary Export approved results
// @Description Download all approved results as an Excel file, admin only
// @Tags Results
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /results/export [get]
// @Security Bearer
func ExportApprovedResultsExcel(c *gin.Context) {
	var results []models.Result
	if err := database.DB.Where("status = ?", models.ResultApproved).
		Order("program_name, position").Find(&results).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingResults)
		return
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "Results"
	file.SetSheetName(file.GetSheetName(0), sheet)

	headers := []string{"Program", "Chest No", "Student", "Team", "Position", "Grade", "Points", "Submitted By"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	for row, result := range results {
		values := []interface{}{
			result.ProgramName,
			result.StudentChest,
			result.StudentName,
			result.TeamName,
			result.Position,
			result.Grade,
			result.Points,
			result.SubmittedBy,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="results.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to write export: %v", err))
	}
}
