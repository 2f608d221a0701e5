package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/bizlens/analysis-backend/internal/entity"
	pkgRetry "github.com/bizlens/analysis-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Session store configuration. Sessions are in-memory only; the TTL
	// bounds how long an abandoned session is kept around.
	SessionTTL             time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"10m"`

	// CORS configuration
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Text-generation provider configuration
	LLMCfg LLMConfig `envPrefix:"LLM_"`

	// GeminiAPIKey is the one external credential the application needs.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Fallback questions shown when question generation fails or returns
	// nothing usable (loaded from JSON file, with compiled-in defaults)
	FallbackQuestions []entity.Question

	// Environment (set from flag, not from env var)
	Environment string
}

// LLMConfig selects and configures the text-generation provider.
type LLMConfig struct {
	// Provider is one of: gemini, http, mock
	Provider string `env:"PROVIDER" envDefault:"gemini"`

	// Gemini provider
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`

	// HTTP provider (JSON-over-HTTP text generation service)
	HTTPClientConfig  HTTPClientConfig     `envPrefix:"HTTP_"`
	QuestionsEndpoint string               `env:"QUESTIONS_ENDPOINT" envDefault:"/generate-questions"`
	AnalysisEndpoint  string               `env:"ANALYSIS_ENDPOINT" envDefault:"/generate-analysis"`
	FollowUpEndpoint  string               `env:"FOLLOWUP_ENDPOINT" envDefault:"/generate-followup"`
	Retry             pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"30s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// fallbackQuestions represents the structure of fallback_questions.json
type fallbackQuestions struct {
	Questions []entity.Question `json:"questions"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := loadFallbackQuestions(cfg); err != nil {
		return nil, fmt.Errorf("load fallback questions: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	switch strings.ToLower(cfg.LLMCfg.Provider) {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			errors = append(errors, "GEMINI_API_KEY must be set when LLM_PROVIDER is gemini")
		}
	case "http":
		if cfg.LLMCfg.HTTPClientConfig.Url == "" {
			errors = append(errors, "LLM_HTTP_SERVICE_URL must be set when LLM_PROVIDER is http")
		}
	case "mock":
	default:
		errors = append(errors, fmt.Sprintf("LLM_PROVIDER must be one of gemini, http, mock, got %q", cfg.LLMCfg.Provider))
	}

	if cfg.SessionTTL < time.Minute || cfg.SessionTTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("SESSION_TTL must be between 1m and 24h, got %s", cfg.SessionTTL))
	}

	if cfg.SessionCleanupInterval < time.Minute || cfg.SessionCleanupInterval > cfg.SessionTTL {
		errors = append(errors, fmt.Sprintf("SESSION_CLEANUP_INTERVAL must be between 1m and SESSION_TTL(%s), got %s", cfg.SessionTTL, cfg.SessionCleanupInterval))
	}

	if cfg.LLMCfg.Retry.Attempts < 1 || cfg.LLMCfg.Retry.Attempts > 10 {
		errors = append(errors, fmt.Sprintf("LLM_RETRY_ATTEMPTS must be between 1 and 10, got %d", cfg.LLMCfg.Retry.Attempts))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// defaultFallbackQuestions matches the static set shown when the model call
// fails or returns nothing parsable.
var defaultFallbackQuestions = []entity.Question{
	{
		Type:    entity.QuestionTypeMultiChoice,
		Text:    "What is the company's main focus?",
		Options: []string{"AI", "Finance", "Retail", "Healthcare"},
	},
	{
		Type:    entity.QuestionTypeSingleChoice,
		Text:    "Is the company profitable?",
		Options: []string{"Yes", "No", "Unsure"},
	},
	{
		Type: entity.QuestionTypeFreeText,
		Text: "Describe your key product.",
	},
}

func loadFallbackQuestions(cfg *Config) error {
	configPath := filepath.Join("internal", "config", "fallback_questions.json")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg.FallbackQuestions = defaultFallbackQuestions
		return nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read fallback questions file: %w", err)
	}

	var questionsData fallbackQuestions
	if err := json.Unmarshal(data, &questionsData); err != nil {
		return fmt.Errorf("parse fallback questions JSON: %w", err)
	}

	if len(questionsData.Questions) == 0 {
		return fmt.Errorf("fallback questions file contains no questions: %s", configPath)
	}

	cfg.FallbackQuestions = questionsData.Questions

	fmt.Printf("Loaded %d fallback questions from %s\n", len(cfg.FallbackQuestions), configPath)
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
