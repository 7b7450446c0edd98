package bootstrap

import (
	"context"
	"database/sql"

	"resume-ai-backend/internal/analyses"
	"resume-ai-backend/internal/history"
	"resume-ai-backend/internal/llm"
	"resume-ai-backend/internal/llm/groq"
	"resume-ai-backend/internal/resumes"
	"resume-ai-backend/internal/shared/config"
	"resume-ai-backend/internal/shared/storage/db"
	"resume-ai-backend/internal/shared/telemetry"
	"resume-ai-backend/internal/users"
)

// App holds shared dependencies built once at startup.
type App struct {
	Config config.Config
	DB     *sql.DB

	LLM       llm.Client
	TempStore *analyses.TempStore

	HistoryService *history.Service
	UsersService   *users.Service
	ResumesService *resumes.Service
	AnalysisSvc    *analyses.Service

	AnalysisHandler *analyses.Handler
	HistoryHandler  *history.Handler
	UsersHandler    *users.Handler
	ResumesHandler  *resumes.Handler
}

// Build prepares shared dependencies without wiring routes. A database that
// fails to open is not fatal: the app degrades to in-memory repositories so
// the AI features keep working.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB := buildDB(ctx, cfg)

	var (
		historyRepo history.Repo
		usersRepo   users.Repo
		resumesRepo resumes.Repo
	)
	if sqlDB != nil {
		historyRepo = history.NewSQLRepo(sqlDB)
		usersRepo = users.NewSQLRepo(sqlDB)
		resumesRepo = resumes.NewSQLRepo(sqlDB)
	} else {
		historyRepo = history.NewMemoryRepo()
		usersRepo = users.NewMemoryRepo()
		resumesRepo = resumes.NewMemoryRepo()
	}

	client := buildLLM(cfg)

	temp, err := analyses.NewTempStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:         cfg,
		DB:             sqlDB,
		LLM:            client,
		TempStore:      temp,
		HistoryService: history.NewService(historyRepo),
		UsersService:   users.NewService(usersRepo),
		ResumesService: resumes.NewService(resumesRepo),
		AnalysisSvc:    analyses.NewService(client, cfg.CleanupDelay),
	}

	app.AnalysisHandler = analyses.NewHandler(app.AnalysisSvc, temp, app.HistoryService)
	app.HistoryHandler = history.NewHandler(app.HistoryService)
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	db.Close(a.DB)
}

func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	opts := db.OptionsFromEnv(db.DefaultOptions())
	sqlDB, err := db.Open(ctx, cfg.DatabasePath, opts)
	if err != nil {
		telemetry.Error("db.open_failed", map[string]any{
			"path":  cfg.DatabasePath,
			"error": err.Error(),
		})
		return nil
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("db.migrate_failed", map[string]any{"error": err.Error()})
		db.Close(sqlDB)
		return nil
	}
	return sqlDB
}

func buildLLM(cfg config.Config) llm.Client {
	if cfg.GroqAPIKey == "" {
		return llm.Unconfigured{}
	}
	client, err := groq.NewClient(cfg.GroqAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	if err != nil {
		telemetry.Error("llm.client_failed", map[string]any{"error": err.Error()})
		return llm.Unconfigured{}
	}
	return client
}
