package challenges

import (
	"net/http"
	"path/filepath"
	"strconv"

	"wavectf/database"
	"wavectf/middleware"
	"wavectf/models"
	"wavectf/utils/response"

	"github.com/gin-gonic/gin"
)

// [GET] GetAllChallenges
// @Summary List active challenges
// @Description List active challenges, optionally filtered by category and difficulty
// @Tags Challenges
// @Produce json
// @Param category query string false "Filter by category"
// @Param difficulty query string false "Filter by difficulty"
// @Success 200 {array} ChallengeResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /challenges [get]
// @Security Bearer
func (h *Handler) GetAllChallenges(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	query := database.DB.Model(&models.Challenge{}).Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var list []models.Challenge
	if err := query.Order("category asc, points asc, id asc").Find(&list).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchChallenges)
		return
	}

	solvedSet, err := solvedChallengeIDs(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchChallenges)
		return
	}
	solveCounts, err := challengeSolveCounts()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchChallenges)
		return
	}

	responses := make([]ChallengeResponse, 0, len(list))
	for _, challenge := range list {
		responses = append(responses, toChallengeResponse(challenge, solvedSet, solveCounts))
	}

	c.JSON(http.StatusOK, responses)
}

// [GET] GetChallenge
// @Summary Get a single challenge
// @Description Get one active challenge by ID
// @Tags Challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} ChallengeResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /challenges/{id} [get]
// @Security Bearer
func (h *Handler) GetChallenge(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	challengeID, ok := parseChallengeID(c)
	if !ok {
		return
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ? AND is_active = ?", challengeID, true).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrChallengeNotFound)
		return
	}

	solvedSet, err := solvedChallengeIDs(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchChallenges)
		return
	}
	solveCounts, err := challengeSolveCounts()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchChallenges)
		return
	}

	c.JSON(http.StatusOK, toChallengeResponse(challenge, solvedSet, solveCounts))
}

// [GET] DownloadChallengeFile
// @Summary Download a challenge attachment
// @Description Download the file attached to a challenge, if any
// @Tags Challenges
// @Produce octet-stream
// @Param id path int true "Challenge ID"
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /challenges/{id}/file [get]
// @Security Bearer
func (h *Handler) DownloadChallengeFile(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	challengeID, ok := parseChallengeID(c)
	if !ok {
		return
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ? AND is_active = ?", challengeID, true).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrChallengeNotFound)
		return
	}

	if challenge.FilePath == "" || !h.Storage.Exists(challenge.FilePath) {
		response.Error(c, http.StatusNotFound, ErrChallengeHasNoFile)
		return
	}

	c.FileAttachment(challenge.FilePath, filepath.Base(challenge.FilePath))
}

func parseChallengeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidChallengeID)
		return 0, false
	}
	return uint(id), true
}

// solvedChallengeIDs returns the set of challenge IDs the user has solved
func solvedChallengeIDs(userID uint) (map[uint]bool, error) {
	var ids []uint
	if err := database.DB.Model(&models.Solve{}).
		Where("user_id = ?", userID).
		Pluck("challenge_id", &ids).Error; err != nil {
		return nil, err
	}

	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// challengeSolveCounts returns how many users solved each challenge
func challengeSolveCounts() (map[uint]int, error) {
	var rows []struct {
		ChallengeID uint
		Count       int
	}
	if err := database.DB.Model(&models.Solve{}).
		Select("challenge_id, count(*) as count").
		Group("challenge_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.ChallengeID] = row.Count
	}
	return counts, nil
}

func toChallengeResponse(challenge models.Challenge, solvedSet map[uint]bool, solveCounts map[uint]int) ChallengeResponse {
	return ChallengeResponse{
		ID:          challenge.ID,
		Title:       challenge.Title,
		Description: challenge.Description,
		Category:    challenge.Category,
		Difficulty:  challenge.Difficulty,
		Points:      challenge.Points,
		HasFile:     challenge.FilePath != "",
		FileType:    challenge.FileType,
		SolveCount:  solveCounts[challenge.ID],
		IsSolved:    solvedSet[challenge.ID],
		CreatedAt:   challenge.CreatedAt,
	}
}
