package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/planservice"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/utility"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrMissingAPIKey is fatal: the form must not be served without a model key.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is required; set it in the environment or a .env file")

// ErrMissingSessionSecret is returned in production when SESSION_SECRET is unset.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET is required in production")

type Config struct {
	Port              int
	AppEnv            string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIBaseURL     string
	SessionSecret     string
	SessionTTL        time.Duration
	MaxSessions       int
	PlanRatePerMinute int
	LogLevel          zerolog.Level

	// TrustProxy makes X-Forwarded-For from private-network proxies count as the
	// client address. Off, the peer address is the client.
	TrustProxy bool
}

func LoadConfig() (*Config, error) {
	envErr := godotenv.Load()

	// Everything logged from here on honors LOG_LEVEL and APP_ENV.
	ConfigureLogger(normalizeEnv(getEnv("APP_ENV", "development")), getEnvLevel("LOG_LEVEL", zerolog.InfoLevel))
	if envErr != nil {
		log.Info().Msg("No .env file found, reading from environment")
	}

	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &Config{
		Port:              getEnvInt("PORT", 8080),
		AppEnv:            normalizeEnv(getEnv("APP_ENV", "development")),
		OpenAIAPIKey:      apiKey,
		OpenAIModel:       getEnv("OPENAI_MODEL", planservice.DefaultModel),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		SessionSecret:     getEnv("SESSION_SECRET", ""),
		SessionTTL:        getEnvDuration("SESSION_TTL", 2*time.Hour),
		MaxSessions:       getEnvInt("MAX_SESSIONS", 10000),
		PlanRatePerMinute: getEnvInt("PLAN_RATE_PER_MINUTE", 6),
		LogLevel:          getEnvLevel("LOG_LEVEL", zerolog.InfoLevel),
		TrustProxy:        getEnvBool("TRUST_PROXY", false),
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, ErrMissingSessionSecret
		}
		secret, err := utility.GenerateSecureToken(32)
		if err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		cfg.SessionSecret = secret
		log.Warn().Msg("SESSION_SECRET not set, using a random secret; sessions will not survive a restart")
	}

	return cfg, nil
}

// ConfigureLogger sets the global zerolog level, and a console writer outside
// production.
func ConfigureLogger(appEnv string, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	if appEnv == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getEnvLevel(key string, fallback zerolog.Level) zerolog.Level {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	level, err := zerolog.ParseLevel(strings.ToLower(value))
	if err != nil {
		return fallback
	}
	return level
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
