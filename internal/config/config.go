package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"isl-dashboard/internal/stats"
)

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Logger   LoggerConfig
	Security SecurityConfig
	Pipeline PipelineConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DataConfig struct {
	MatchesCSV string
	PlayersCSV string
}

type LoggerConfig struct {
	Level  string
	Format string
}

type SecurityConfig struct {
	EnableRateLimit bool
	RateLimitRPS    int
	RateLimitBurst  int
	AllowedOrigins  []string
	TrustedProxies  []string
}

// PipelineConfig exposes the aggregation policies that vary per deployment.
type PipelineConfig struct {
	// ZeroGoals: "unbinned" keeps 0-goal matches out of the goal-range bins,
	// "lowest" widens the first bin to include them.
	ZeroGoals string
	// DomesticMarker is the country-code token that marks a player as
	// domestic when found in the Nation field (case-insensitive substring).
	DomesticMarker string
	// TopN truncates leaderboard-style outputs.
	TopN int
}

func (p PipelineConfig) ZeroGoalPolicy() stats.ZeroGoalPolicy {
	if p.ZeroGoals == string(stats.ZeroGoalsLowest) {
		return stats.ZeroGoalsLowest
	}
	return stats.ZeroGoalsUnbinned
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnvString("SERVER_HOST", "localhost"),
			Port:            getEnvInt("SERVER_PORT", 8084),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Data: DataConfig{
			MatchesCSV: getEnvString("MATCHES_CSV", "data/isl_matches.csv"),
			PlayersCSV: getEnvString("PLAYERS_CSV", "data/isl_players.csv"),
		},
		Logger: LoggerConfig{
			Level:  getEnvString("LOG_LEVEL", "info"),
			Format: getEnvString("LOG_FORMAT", "json"),
		},
		Security: SecurityConfig{
			EnableRateLimit: getEnvBool("SECURITY_RATE_LIMIT_ENABLED", true),
			RateLimitRPS:    getEnvInt("SECURITY_RATE_LIMIT_RPS", 100),
			RateLimitBurst:  getEnvInt("SECURITY_RATE_LIMIT_BURST", 10),
			AllowedOrigins:  getEnvStringSlice("SECURITY_ALLOWED_ORIGINS", []string{"http://localhost:8084"}),
			TrustedProxies:  getEnvStringSlice("SECURITY_TRUSTED_PROXIES", []string{"127.0.0.1"}),
		},
		Pipeline: PipelineConfig{
			ZeroGoals:      getEnvString("PIPELINE_ZERO_GOALS", string(stats.ZeroGoalsUnbinned)),
			DomesticMarker: getEnvString("PIPELINE_DOMESTIC_MARKER", "IND"),
			TopN:           getEnvInt("PIPELINE_TOP_N", 10),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if c.Data.MatchesCSV == "" {
		return fmt.Errorf("matches CSV path cannot be empty")
	}
	if c.Data.PlayersCSV == "" {
		return fmt.Errorf("players CSV path cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logger.Level) {
		return fmt.Errorf("invalid log level %q, must be one of: %s", c.Logger.Level, strings.Join(validLevels, ", "))
	}
	validFormats := []string{"json", "text"}
	if !contains(validFormats, c.Logger.Format) {
		return fmt.Errorf("invalid log format %q, must be one of: %s", c.Logger.Format, strings.Join(validFormats, ", "))
	}

	if c.Security.RateLimitRPS <= 0 || c.Security.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit RPS and burst must be positive")
	}

	validPolicies := []string{string(stats.ZeroGoalsUnbinned), string(stats.ZeroGoalsLowest)}
	if !contains(validPolicies, c.Pipeline.ZeroGoals) {
		return fmt.Errorf("invalid zero-goal policy %q, must be one of: %s", c.Pipeline.ZeroGoals, strings.Join(validPolicies, ", "))
	}
	if c.Pipeline.TopN <= 0 {
		return fmt.Errorf("pipeline top-N must be positive")
	}
	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
