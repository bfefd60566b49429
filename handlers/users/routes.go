package users

import (
	"wavectf/middleware"
	"wavectf/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the services the user routes depend on
type Handler struct {
	Leaderboard *services.LeaderboardService
}

// RegisterRoutes registers all routes related to users
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/leaderboard", h.GetLeaderboard)
		users.GET("/leaderboard/teams", h.GetTeamLeaderboard)
		users.GET("/me", GetProfile)
		users.PUT("/me", UpdateProfile)
		users.GET("/me/stats", h.GetMyStats)
	}
}
