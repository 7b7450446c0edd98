package main

import (
	"log"

	"resume-ai-backend/internal/bootstrap"
	"resume-ai-backend/internal/server"
	"resume-ai-backend/internal/shared/config"
	"resume-ai-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	engine := server.NewEngine(app)
	addr := server.Addr(cfg.Port)

	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})
	if err := engine.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
