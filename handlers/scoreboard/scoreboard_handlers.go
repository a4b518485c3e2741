package scoreboard

import (
	"fmt"
	"net/http"

	"fiesta/database"
	"fiesta/models"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// Error messages for the scoreboard handlers
const (
	ErrFetchingScoreboard = "Failed to fetch scoreboard"
)

// topStudentLimit caps the individual leaderboard length
const topStudentLimit = 10

// TeamStanding is a scoreboard row for a single team
type TeamStanding struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LeaderName  string `json:"leader_name"`
	ThemeColor  string `json:"theme_color"`
	TotalPoints int    `json:"total_points"`
	Rank        int    `json:"rank"`
}

// TopStudent is a scoreboard row for a leading individual
type TopStudent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ChestNo     string `json:"chest_no"`
	TeamName    string `json:"team_name"`
	TotalPoints int    `json:"total_points"`
	Rank        int    `json:"rank"`
}

// ScoreboardResponse bundles the team standings and top students
type ScoreboardResponse struct {
	Teams       []TeamStanding `json:"teams"`
	TopStudents []TopStudent   `json:"top_students"`
}

func buildScoreboard() (ScoreboardResponse, error) {
	var teams []models.Team
	if err := database.DB.Order("total_points DESC, name").Find(&teams).Error; err != nil {
		return ScoreboardResponse{}, err
	}

	var students []models.Student
	if err := database.DB.Preload("Team").
		Order("total_points DESC, chest_no").Limit(topStudentLimit).
		Find(&students).Error; err != nil {
		return ScoreboardResponse{}, err
	}

	board := ScoreboardResponse{
		Teams:       make([]TeamStanding, 0, len(teams)),
		TopStudents: make([]TopStudent, 0, len(students)),
	}
	for i, team := range teams {
		board.Teams = append(board.Teams, TeamStanding{
			ID:          team.ID,
			Name:        team.Name,
			LeaderName:  team.LeaderName,
			ThemeColor:  team.ThemeColor,
			TotalPoints: team.TotalPoints,
			Rank:        i + 1,
		})
	}
	for i, student := range students {
		row := TopStudent{
			ID:          student.ID,
			Name:        student.Name,
			ChestNo:     student.ChestNo,
			TotalPoints: student.TotalPoints,
			Rank:        i + 1,
		}
		if student.Team != nil {
			row.TeamName = student.Team.Name
		}
		board.TopStudents = append(board.TopStudents, row)
	}
	return board, nil
}

// GetScoreboard retrieves the live scoreboard
// @Summary Get the scoreboard
// @Description Get team standings ordered by total points plus the top individual students
// @Tags Scoreboard
// @Produce json
// @Success 200 {object} ScoreboardResponse
// @Failure 500 {object} map[string]string
// @Router /scoreboard [get]
func GetScoreboard(c *gin.Context) {
	board, err := buildScoreboard()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingScoreboard)
		return
	}
	c.JSON(http.StatusOK, board)
}

// ExportScoreboardExcel streams the scoreboard as an XLSX workbook
// @Summary Export the scoreboard
// @Description Download the current standings as an Excel file, admin only
// @Tags Scoreboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /scoreboard/export [get]
// @Security Bearer
func ExportScoreboardExcel(c *gin.Context) {
	board, err := buildScoreboard()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingScoreboard)
		return
	}

	file := excelize.NewFile()
	defer file.Close()

	teamSheet := "Teams"
	file.SetSheetName(file.GetSheetName(0), teamSheet)
	teamHeaders := []string{"Rank", "Team", "Leader", "Points"}
	for i, header := range teamHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(teamSheet, cell, header)
	}
	for row, team := range board.Teams {
		values := []interface{}{team.Rank, team.Name, team.LeaderName, team.TotalPoints}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(teamSheet, cell, value)
		}
	}

	studentSheet := "Top Students"
	file.NewSheet(studentSheet)
	studentHeaders := []string{"Rank", "Chest No", "Student", "Team", "Points"}
	for i, header := range studentHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(studentSheet, cell, header)
	}
	for row, student := range board.TopStudents {
		values := []interface{}{student.Rank, student.ChestNo, student.Name, student.TeamName, student.TotalPoints}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(studentSheet, cell, value)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="scoreboard.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to write export: %v", err))
	}
}
