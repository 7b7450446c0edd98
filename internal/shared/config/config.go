package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	DatabasePath    string
	UploadDir       string
	GroqAPIKey      string
	LLMModel        string
	LLMTimeout      time.Duration
	CleanupDelay    time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load()
	_ = godotenv.Load("cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		log.Printf("GROQ_API_KEY is not set; analysis requests will fail until configured")
	}

	return Config{
		Port:            getEnv("PORT", "5000"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabasePath:    getEnv("DATABASE_PATH", "./data/resume_app.db"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		GroqAPIKey:      apiKey,
		LLMModel:        getEnv("LLM_MODEL", "llama-3.1-8b-instant"),
		LLMTimeout:      getEnvDuration("LLM_TIMEOUT", 5*time.Second),
		CleanupDelay:    getEnvDuration("UPLOAD_CLEANUP_DELAY", time.Second),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val <= 0 {
		log.Printf("config env %s invalid duration %q; using default %s", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "development", "dev", "local":
		return "dev"
	default:
		return "dev"
	}
}
