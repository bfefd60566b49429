package v1

import (
	"wavectf/handlers/admin"
	"wavectf/handlers/auth"
	"wavectf/handlers/challenges"
	"wavectf/handlers/teams"
	"wavectf/handlers/users"
	"wavectf/middleware"
	"wavectf/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps carries the constructed services the API routes depend on
type Deps struct {
	Submissions *services.SubmissionService
	Teams       *services.TeamService
	Leaderboard *services.LeaderboardService
	Stats       *services.StatsService
	Storage     *services.StorageService
}

// Register the endpoints for the v1 API
func Register(r *gin.Engine, deps Deps) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(6000, 150) // 100 requests per second, 150 burst
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	challenges.RegisterRoutes(v1, &challenges.Handler{
		Submissions: deps.Submissions,
		Storage:     deps.Storage,
	})
	teams.RegisterRoutes(v1, &teams.Handler{Teams: deps.Teams})
	users.RegisterRoutes(v1, &users.Handler{Leaderboard: deps.Leaderboard})
	admin.RegisterRoutes(v1, &admin.Handler{
		Stats:   deps.Stats,
		Storage: deps.Storage,
	})

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
