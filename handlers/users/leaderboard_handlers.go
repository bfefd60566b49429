package users

import (
	"net/http"
	"strconv"

	"wavectf/middleware"
	"wavectf/utils/response"

	"github.com/gin-gonic/gin"
)

// [GET] GetLeaderboard
// @Summary Get the user leaderboard
// @Description Get the top users ordered by score
// @Tags Users
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} services.LeaderboardEntry
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/leaderboard [get]
// @Security Bearer
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.Leaderboard.TopUsers(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchLeaderboard)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// [GET] GetTeamLeaderboard
// @Summary Get the team leaderboard
// @Description Get the top teams ordered by score
// @Tags Users
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} services.TeamLeaderboardEntry
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/leaderboard/teams [get]
// @Security Bearer
func (h *Handler) GetTeamLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.Leaderboard.TopTeams(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchLeaderboard)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// [GET] GetMyStats
// @Summary Get the authenticated user's solve statistics
// @Description Get solve counts partitioned by category and difficulty
// @Tags Users
// @Produce json
// @Success 200 {object} services.UserStats
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/me/stats [get]
// @Security Bearer
func (h *Handler) GetMyStats(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	stats, err := h.Leaderboard.UserStats(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchStats)
		return
	}

	c.JSON(http.StatusOK, stats)
}
