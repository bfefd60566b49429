package admin

import (
	"net/http"
	"strconv"

	"wavectf/database"
	"wavectf/models"
	"wavectf/utils/response"

	"github.com/gin-gonic/gin"
)

// [GET] GetAllUsers
// @Summary List all users
// @Description List every registered user with role and score
// @Tags Admin
// @Produce json
// @Success 200 {array} AdminUserResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/users [get]
// @Security Bearer
func GetAllUsers(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	var users []models.User
	if err := database.DB.Order("id asc").Find(&users).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchUsers)
		return
	}

	responses := make([]AdminUserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, AdminUserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			IsAdmin:  user.IsAdmin,
			Score:    user.Score,
			TeamID:   user.TeamID,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// [PUT] UpdateUser
// @Summary Update a user
// @Description Change a user's admin role or apply a manual score correction
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param updateRequest body UpdateUserRequest true "User changes"
// @Success 200 {object} AdminUserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/users/{id} [put]
// @Security Bearer
func UpdateUser(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidUserID)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	updates := map[string]interface{}{}
	if req.IsAdmin != nil {
		updates["is_admin"] = *req.IsAdmin
		user.IsAdmin = *req.IsAdmin
	}
	if req.Score != nil {
		updates["score"] = *req.Score
		user.Score = *req.Score
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&models.User{}).Where("id = ?", user.ID).
			Updates(updates).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedUpdateUser)
			return
		}
	}

	c.JSON(http.StatusOK, AdminUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
		Score:    user.Score,
		TeamID:   user.TeamID,
	})
}
