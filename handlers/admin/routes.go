package admin

import (
	"wavectf/middleware"
	"wavectf/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the services the admin routes depend on
type Handler struct {
	Stats   *services.StatsService
	Storage *services.StorageService
}

// RegisterRoutes registers all routes related to administration
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/users", GetAllUsers)
		admin.PUT("/users/:id", UpdateUser)

		admin.GET("/challenges", h.GetAllChallenges)
		admin.POST("/challenges", h.CreateChallenge)
		admin.PUT("/challenges/:id", h.UpdateChallenge)
		admin.DELETE("/challenges/:id", h.DeleteChallenge)

		admin.GET("/stats", h.GetPlatformStats)
		admin.GET("/export", h.ExportScoreboardExcel)
	}
}
