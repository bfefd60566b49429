package admin

import (
	"fmt"
	"net/http"
	"time"

	"wavectf/database"
	"wavectf/models"
	"wavectf/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// [GET] GetPlatformStats
// @Summary Get platform statistics
// @Description Get aggregate counts over users, teams, challenges and solves
// @Tags Admin
// @Produce json
// @Success 200 {object} services.PlatformStats
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/stats [get]
// @Security Bearer
func (h *Handler) GetPlatformStats(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	stats, err := h.Stats.PlatformStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchStats)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// [GET] ExportScoreboardExcel
// @Summary Export the scoreboard as an Excel file
// @Description Export users and teams with their scores to an XLSX workbook
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/export [get]
// @Security Bearer
func (h *Handler) ExportScoreboardExcel(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	var users []models.User
	if err := database.DB.Preload("Team").Preload("Solves").
		Order("score desc, id asc").Find(&users).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedExportScoreboard)
		return
	}

	var teams []models.Team
	if err := database.DB.Preload("Members").
		Order("score desc, id asc").Find(&teams).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedExportScoreboard)
		return
	}

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	usersSheet := "Users"
	xlsx.SetSheetName("Sheet1", usersSheet)
	for i, header := range []string{"Rank", "Username", "Email", "Score", "Solves", "Team"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xlsx.SetCellValue(usersSheet, cell, header)
	}
	for i, user := range users {
		teamName := ""
		if user.Team != nil {
			teamName = user.Team.Name
		}
		row := i + 2
		xlsx.SetCellValue(usersSheet, fmt.Sprintf("A%d", row), i+1)
		xlsx.SetCellValue(usersSheet, fmt.Sprintf("B%d", row), user.Username)
		xlsx.SetCellValue(usersSheet, fmt.Sprintf("C%d", row), user.Email)
		xlsx.SetCellValue(usersSheet, fmt.Sprintf("D%d", row), user.Score)
		xlsx.SetCellValue(usersSheet, fmt.Sprintf("E%d", row), len(user.Solves))
		xlsx.SetCellValue(usersSheet, fmt.Sprintf("F%d", row), teamName)
	}

	teamsSheet := "Teams"
	if _, err := xlsx.NewSheet(teamsSheet); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedExportScoreboard)
		return
	}
	for i, header := range []string{"Rank", "Name", "Score", "Members"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xlsx.SetCellValue(teamsSheet, cell, header)
	}
	for i, team := range teams {
		row := i + 2
		xlsx.SetCellValue(teamsSheet, fmt.Sprintf("A%d", row), i+1)
		xlsx.SetCellValue(teamsSheet, fmt.Sprintf("B%d", row), team.Name)
		xlsx.SetCellValue(teamsSheet, fmt.Sprintf("C%d", row), team.Score)
		xlsx.SetCellValue(teamsSheet, fmt.Sprintf("D%d", row), len(team.Members))
	}

	filename := fmt.Sprintf("scoreboard_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := xlsx.Write(c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedExportScoreboard)
		return
	}
}
