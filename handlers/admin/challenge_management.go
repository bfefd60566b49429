package admin

import (
	"net/http"
	"strconv"

	"wavectf/database"
	"wavectf/models"
	"wavectf/utils/response"

	"github.com/gin-gonic/gin"
)

// [GET] GetAllChallenges
// @Summary List all challenges
// @Description List every challenge including inactive ones and flags
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Challenge
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/challenges [get]
// @Security Bearer
func (h *Handler) GetAllChallenges(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	var challenges []models.Challenge
	if err := database.DB.Order("id asc").Find(&challenges).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchChallenges)
		return
	}

	// The admin listing includes flags, so bypass the Challenge JSON tags
	responses := make([]gin.H, 0, len(challenges))
	for _, challenge := range challenges {
		responses = append(responses, gin.H{
			"id":          challenge.ID,
			"title":       challenge.Title,
			"description": challenge.Description,
			"category":    challenge.Category,
			"difficulty":  challenge.Difficulty,
			"points":      challenge.Points,
			"flag":        challenge.Flag,
			"is_active":   challenge.IsActive,
			"file_path":   challenge.FilePath,
			"file_type":   challenge.FileType,
			"created_at":  challenge.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// [POST] CreateChallenge
// @Summary Create a challenge
// @Description Create a challenge from a multipart form, with an optional attachment
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param category formData string true "Category"
// @Param difficulty formData string true "Difficulty"
// @Param points formData int true "Points"
// @Param flag formData string true "Flag"
// @Param file formData file false "Attachment"
// @Success 201 {object} models.Challenge
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/challenges [post]
// @Security Bearer
func (h *Handler) CreateChallenge(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	var req CreateChallengeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	challenge := models.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Points:      req.Points,
		Flag:        req.Flag,
		IsActive:    true,
	}
	if err := database.DB.Create(&challenge).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateChallenge)
		return
	}

	if file, err := c.FormFile("file"); err == nil {
		path, fileType, err := h.Storage.Save(challenge.ID, file)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedSaveFile)
			return
		}
		if err := database.DB.Model(&challenge).
			Updates(map[string]interface{}{"file_path": path, "file_type": fileType}).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedSaveFile)
			return
		}
	}

	database.InvalidateCache(c.Request.Context(), "challenge_*")
	c.JSON(http.StatusCreated, challenge)
}

// [PUT] UpdateChallenge
// @Summary Update a challenge
// @Description Change challenge fields, including the flag and active state
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Challenge ID"
// @Param updateRequest body UpdateChallengeRequest true "Challenge changes"
// @Success 200 {object} models.Challenge
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/challenges/{id} [put]
// @Security Bearer
func (h *Handler) UpdateChallenge(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	challenge, ok := findChallenge(c)
	if !ok {
		return
	}

	var req UpdateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Points != nil {
		// Existing solves keep the points they were awarded
		updates["points"] = *req.Points
	}
	if req.Flag != nil {
		updates["flag"] = *req.Flag
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&challenge).Updates(updates).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedUpdateChallenge)
			return
		}
	}

	database.InvalidateCache(c.Request.Context(), "challenge_*")
	c.JSON(http.StatusOK, challenge)
}

// [DELETE] DeleteChallenge
// @Summary Delete a challenge
// @Description Delete a challenge, its solves, and its stored attachment.
// Scores already awarded are not recomputed.
// @Tags Admin
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/challenges/{id} [delete]
// @Security Bearer
func (h *Handler) DeleteChallenge(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	challenge, ok := findChallenge(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&challenge).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteChallenge)
		return
	}

	if challenge.FilePath != "" {
		if err := h.Storage.Remove(challenge.FilePath); err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedDeleteChallenge)
			return
		}
	}

	database.InvalidateCache(c.Request.Context(), "challenge_*")
	c.JSON(http.StatusOK, gin.H{"message": "Challenge deleted"})
}

func findChallenge(c *gin.Context) (models.Challenge, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidChallengeID)
		return models.Challenge{}, false
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", id).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrChallengeNotFound)
		return models.Challenge{}, false
	}
	return challenge, true
}
