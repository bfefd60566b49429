package teams

import (
	"wavectf/middleware"
	"wavectf/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the services the team routes depend on
type Handler struct {
	Teams *services.TeamService
}

// RegisterRoutes registers all routes related to teams
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("/", h.GetAllTeams)
		teams.GET("/:id", h.GetTeam)
		teams.POST("/", h.CreateTeam)
		teams.POST("/:id/join", h.JoinTeam)
	}
}
