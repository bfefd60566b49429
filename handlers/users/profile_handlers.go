package users

import (
	"net/http"

	"wavectf/database"
	"wavectf/middleware"
	"wavectf/models"
	"wavectf/utils"
	"wavectf/utils/response"

	"github.com/gin-gonic/gin"
)

// [GET] GetProfile
// @Summary Get the authenticated user's profile
// @Description Get the authenticated user's profile, including team membership
// @Tags Users
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
// @Security Bearer
func GetProfile(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(user))
}

// [PUT] UpdateProfile
// @Summary Update the authenticated user's profile
// @Description Change email or password. Password changes require the current password.
// @Tags Users
// @Accept json
// @Produce json
// @Param updateRequest body UpdateProfileRequest true "Profile changes"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/me [put]
// @Security Bearer
func UpdateProfile(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	updates := map[string]interface{}{}

	if req.Email != "" && req.Email != user.Email {
		var count int64
		if err := database.DB.Model(&models.User{}).
			Where("email = ? AND id <> ?", req.Email, user.ID).
			Count(&count).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedUpdateProfile)
			return
		}
		if count > 0 {
			response.Conflict(c, ErrEmailInUse)
			return
		}
		updates["email"] = req.Email
		user.Email = req.Email
	}

	if req.NewPassword != "" {
		if !utils.CheckPasswordHash(req.CurrentPassword, user.Password) {
			response.Error(c, http.StatusBadRequest, ErrInvalidPassword)
			return
		}
		hashed, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
			return
		}
		updates["password"] = hashed
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&models.User{}).Where("id = ?", user.ID).
			Updates(updates).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedUpdateProfile)
			return
		}
	}

	c.JSON(http.StatusOK, toProfileResponse(user))
}

func toProfileResponse(user models.User) ProfileResponse {
	resp := ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		Score:     user.Score,
		TeamID:    user.TeamID,
		CreatedAt: user.CreatedAt,
	}

	if user.TeamID != nil {
		var team models.Team
		if err := database.DB.First(&team, "id = ?", *user.TeamID).Error; err == nil {
			resp.TeamName = team.Name
		}
	}

	return resp
}
