package admin

import (
	"net/http"

	"wavectf/middleware"
	"wavectf/models"
	"wavectf/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrNotAdmin               = "Administrator access required"
	ErrUserNotFound           = "User not found"
	ErrChallengeNotFound      = "Challenge not found"
	ErrInvalidRequest         = "Invalid request data"
	ErrInvalidUserID          = "Invalid user ID"
	ErrInvalidChallengeID     = "Invalid challenge ID"
	ErrFailedFetchUsers       = "Failed to fetch users"
	ErrFailedUpdateUser       = "Failed to update user"
	ErrFailedFetchChallenges  = "Failed to fetch challenges"
	ErrFailedCreateChallenge  = "Failed to create challenge"
	ErrFailedUpdateChallenge  = "Failed to update challenge"
	ErrFailedDeleteChallenge  = "Failed to delete challenge"
	ErrFailedSaveFile         = "Failed to store challenge file"
	ErrFailedFetchStats       = "Failed to fetch platform statistics"
	ErrFailedExportScoreboard = "Failed to export scoreboard"
)

// UpdateUserRequest model for admin user updates. Score changes are manual
// corrections and bypass the submission pipeline.
type UpdateUserRequest struct {
	IsAdmin *bool `json:"is_admin"`
	Score   *int  `json:"score"`
}

// CreateChallengeRequest models the non-file fields of the multipart
// challenge creation form
type CreateChallengeRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
	Difficulty  string `form:"difficulty" binding:"required"`
	Points      int    `form:"points" binding:"required,min=1"`
	Flag        string `form:"flag" binding:"required"`
}

// UpdateChallengeRequest model for challenge updates. Pointer fields
// distinguish "leave unchanged" from zero values.
type UpdateChallengeRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Difficulty  *string `json:"difficulty"`
	Points      *int    `json:"points" binding:"omitempty,min=1"`
	Flag        *string `json:"flag"`
	IsActive    *bool   `json:"is_active"`
}

// AdminUserResponse model for the admin user listing
type AdminUserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	Score    int    `json:"score"`
	TeamID   *uint  `json:"team_id,omitempty"`
}

// requireAdmin returns the authenticated user if they hold the admin role.
// Otherwise an error response has been written and ok is false.
func requireAdmin(c *gin.Context) (models.User, bool) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return models.User{}, false
	}
	if !user.IsAdmin {
		response.Error(c, http.StatusForbidden, ErrNotAdmin)
		return models.User{}, false
	}
	return user, true
}
