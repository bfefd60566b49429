package challenges

import (
	"wavectf/middleware"
	"wavectf/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the services the challenge routes depend on
type Handler struct {
	Submissions *services.SubmissionService
	Storage     *services.StorageService
}

// RegisterRoutes registers all routes related to challenges
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	// Browsers cannot set headers on the upgrade request, so the feed relies
	// on the auth cookie
	r.GET("/challenges/feed", middleware.AuthMiddleware(), SolveFeedWebSocket)

	challenges := r.Group("/challenges")
	challenges.Use(middleware.AuthMiddleware())
	{
		challenges.GET("/", h.GetAllChallenges)
		challenges.GET("/categories", GetCategories)
		challenges.GET("/difficulties", GetDifficulties)
		challenges.GET("/:id", h.GetChallenge)
		challenges.GET("/:id/file", h.DownloadChallengeFile)
		challenges.POST("/:id/submit", h.SubmitFlag)
	}
}
