package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ai-backend/internal/bootstrap"
	"resume-ai-backend/internal/shared/server/middleware"
)

// aiRateLimitGroup throttles the inference-backed routes; everything else is
// unmetered.
const aiRateLimitGroup = "AI"

func registerRoutes(engine *gin.Engine, app *bootstrap.App) {
	engine.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok", "db": app.DB != nil}
		c.JSON(http.StatusOK, status)
	})

	api := engine.Group("/api")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			aiRateLimitGroup: {Rate: 0.5, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && isAIRoute(c.FullPath()) {
				return aiRateLimitGroup
			}
			return ""
		},
	}))

	app.AnalysisHandler.RegisterRoutes(api)
	app.HistoryHandler.RegisterRoutes(api)
	app.UsersHandler.RegisterRoutes(api)
	app.ResumesHandler.RegisterRoutes(api)
}

var aiRoutes = map[string]bool{
	"/api/analyze":      true,
	"/api/rewrite":      true,
	"/api/cover-letter": true,
	"/api/interview":    true,
	"/api/tailor":       true,
	"/api/skills":       true,
	"/api/roast":        true,
	"/api/salary":       true,
	"/api/linkedin":     true,
}

func isAIRoute(path string) bool {
	return aiRoutes[path]
}
