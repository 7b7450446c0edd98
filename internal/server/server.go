package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-ai-backend/internal/bootstrap"
	"resume-ai-backend/internal/shared/server/middleware"
)

// NewEngine builds the gin engine with middleware and routes registered.
func NewEngine(app *bootstrap.App) *gin.Engine {
	if app.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(app.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	registerRoutes(engine, app)
	return engine
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
