package teams

import (
	"errors"
	"net/http"
	"strconv"

	"wavectf/middleware"
	"wavectf/models"
	"wavectf/services"
	"wavectf/utils/response"

	"github.com/gin-gonic/gin"
)

// [POST] CreateTeam
// @Summary Create a team
// @Description Create a team with the authenticated user as its first member
// @Tags Teams
// @Accept json
// @Produce json
// @Param createRequest body CreateTeamRequest true "Team data"
// @Success 201 {object} TeamResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams [post]
// @Security Bearer
func (h *Handler) CreateTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	team, err := h.Teams.CreateTeam(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNameTaken):
			response.Conflict(c, ErrTeamNameTaken)
		case errors.Is(err, services.ErrAlreadyTeamed):
			response.Conflict(c, ErrAlreadyInTeam)
		default:
			response.Error(c, http.StatusInternalServerError, ErrFailedCreateTeam)
		}
		return
	}

	c.JSON(http.StatusCreated, toTeamResponse(*team))
}

// [GET] GetAllTeams
// @Summary List all teams
// @Description List all teams ordered by score
// @Tags Teams
// @Produce json
// @Success 200 {array} TeamResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams [get]
// @Security Bearer
func (h *Handler) GetAllTeams(c *gin.Context) {
	teams, err := h.Teams.ListTeams(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchTeams)
		return
	}

	responses := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		responses = append(responses, toTeamResponse(team))
	}

	c.JSON(http.StatusOK, responses)
}

// [GET] GetTeam
// @Summary Get a team
// @Description Get one team with its members
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} TeamResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [get]
// @Security Bearer
func (h *Handler) GetTeam(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	team, err := h.Teams.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			response.Error(c, http.StatusNotFound, ErrTeamNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchTeams)
		return
	}

	c.JSON(http.StatusOK, toTeamResponse(*team))
}

// [POST] JoinTeam
// @Summary Join a team
// @Description Add the authenticated user to the team
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} TeamResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams/{id}/join [post]
// @Security Bearer
func (h *Handler) JoinTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	if err := h.Teams.JoinTeam(c.Request.Context(), user.ID, teamID); err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			response.Error(c, http.StatusNotFound, ErrTeamNotFound)
		case errors.Is(err, services.ErrAlreadyTeamed):
			response.Conflict(c, ErrAlreadyInTeam)
		case errors.Is(err, services.ErrTeamFull):
			response.Conflict(c, ErrTeamFull)
		default:
			response.Error(c, http.StatusInternalServerError, ErrFailedJoinTeam)
		}
		return
	}

	team, err := h.Teams.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchTeams)
		return
	}

	c.JSON(http.StatusOK, toTeamResponse(*team))
}

func parseTeamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidTeamID)
		return 0, false
	}
	return uint(id), true
}

func toTeamResponse(team models.Team) TeamResponse {
	members := make([]TeamMember, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, TeamMember{
			ID:       member.ID,
			Username: member.Username,
			Score:    member.Score,
		})
	}

	return TeamResponse{
		ID:      team.ID,
		Name:    team.Name,
		Score:   team.Score,
		Members: members,
	}
}
