package challenges

import (
	"errors"
	"net/http"
	"time"

	"wavectf/database"
	"wavectf/metrics"
	"wavectf/middleware"
	"wavectf/models"
	"wavectf/realtime"
	"wavectf/services"
	"wavectf/utils/response"

	"github.com/gin-gonic/gin"
)

// [POST] SubmitFlag
// @Summary Submit a flag for a challenge
// @Description Check the flag and, if correct, record the solve and credit the user and their team
// @Tags Challenges
// @Accept json
// @Produce json
// @Param id path int true "Challenge ID"
// @Param submitRequest body SubmitFlagRequest true "Flag submission"
// @Success 200 {object} SubmitFlagResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /challenges/{id}/submit [post]
// @Security Bearer
func (h *Handler) SubmitFlag(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	challengeID, ok := parseChallengeID(c)
	if !ok {
		return
	}

	var req SubmitFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	points, err := h.Submissions.Submit(c.Request.Context(), user.ID, challengeID, req.Flag)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeNotFound):
			response.Error(c, http.StatusNotFound, ErrChallengeNotFound)
		case errors.Is(err, services.ErrAlreadySolved):
			metrics.FlagSubmissions.WithLabelValues("already_solved").Inc()
			response.Conflict(c, ErrAlreadySolved)
		case errors.Is(err, services.ErrIncorrectFlag):
			metrics.FlagSubmissions.WithLabelValues("incorrect").Inc()
			response.Error(c, http.StatusBadRequest, ErrIncorrectFlag)
		case errors.Is(err, services.ErrSubmissionCooldown):
			metrics.FlagSubmissions.WithLabelValues("cooldown").Inc()
			response.Error(c, http.StatusTooManyRequests, err.Error())
		default:
			metrics.FlagSubmissions.WithLabelValues("error").Inc()
			response.Error(c, http.StatusInternalServerError, ErrSubmissionFailed)
		}
		return
	}

	metrics.FlagSubmissions.WithLabelValues("accepted").Inc()
	metrics.SolvesTotal.Inc()
	announceSolve(user, challengeID, points)

	// The user loaded during auth predates the solve, so re-read the score
	// the transaction just committed.
	score := user.Score + points
	var credited models.User
	if err := database.DB.First(&credited, "id = ?", user.ID).Error; err == nil {
		score = credited.Score
	}

	c.JSON(http.StatusOK, SubmitFlagResponse{
		Correct: true,
		Points:  points,
		Score:   score,
	})
}

// announceSolve pushes the accepted solve to the live feed
func announceSolve(user models.User, challengeID uint, points int) {
	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", challengeID).Error; err != nil {
		return
	}

	teamName := ""
	if user.TeamID != nil {
		var team models.Team
		if err := database.DB.First(&team, "id = ?", *user.TeamID).Error; err == nil {
			teamName = team.Name
		}
	}

	realtime.BroadcastSolve(realtime.SolveEvent{
		ChallengeID:    challenge.ID,
		ChallengeTitle: challenge.Title,
		UserID:         user.ID,
		Username:       user.Username,
		TeamName:       teamName,
		Points:         points,
		SolvedAt:       time.Now(),
	})
}
