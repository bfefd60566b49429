package users

import "time"

// Constants for error messages
const (
	ErrInvalidRequest         = "Invalid request data"
	ErrEmailInUse             = "Email already in use"
	ErrInvalidPassword        = "Current password is incorrect"
	ErrHashPasswordFailed     = "Failed to hash password"
	ErrFailedUpdateProfile    = "Failed to update profile"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchStats       = "Failed to fetch statistics"
)

// UpdateProfileRequest model for profile updates. Password changes require
// the current password.
type UpdateProfileRequest struct {
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"omitempty,min=8"`
}

// ProfileResponse model for the authenticated user's profile
type ProfileResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	Score     int       `json:"score"`
	TeamID    *uint     `json:"team_id,omitempty"`
	TeamName  string    `json:"team_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
