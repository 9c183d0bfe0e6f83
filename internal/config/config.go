// Package config provides centralized configuration loaded from environment
// variables. Shared by every skg-bot subcommand.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Defaults
// --------------------------------------------------------------------------

const (
	DefaultNotifyHour            = 14
	DefaultFeedRequestsPerMinute = 30
	DefaultFeedTimeout           = 30 * time.Second
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Discord
	DiscordToken string
	ChannelID    string
	RoleID       string // empty = announce without a role mention

	// Race schedule feed
	RacesAPIURL           string
	FeedRequestsPerMinute int
	FeedTimeout           time.Duration

	// Daily schedule
	NotifyHour     int
	NotifySchedule string // cron expression; overrides NotifyHour when set
	Timezone       string
	Location       *time.Location

	// Status API
	StatusAPIEnabled bool
	APIHost          string
	APIPort          int
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool

	Environment string // development, production
	LogLevel    slog.Level
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	racesURL := envOr("F1_RACES_API", "")
	if racesURL == "" {
		return nil, ErrRacesAPIMissing
	}

	hour := envInt("NOTIFY_HOUR", DefaultNotifyHour)
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNotifyHour, hour)
	}

	tz := envOr("TIMEZONE", envOr("TZ", ""))
	loc, err := loadLocation(tz)
	if err != nil {
		return nil, err
	}

	return &Config{
		DiscordToken: envOr("DISCORD_TOKEN", ""),
		ChannelID:    envOr("MAIN_CHANNEL", ""),
		RoleID:       envOr("F1_ROLE", ""),

		RacesAPIURL:           racesURL,
		FeedRequestsPerMinute: envInt("FEED_REQUESTS_PER_MINUTE", DefaultFeedRequestsPerMinute),
		FeedTimeout:           time.Duration(envInt("FEED_TIMEOUT_SECONDS", int(DefaultFeedTimeout/time.Second))) * time.Second,

		NotifyHour:     hour,
		NotifySchedule: envOr("NOTIFY_SCHEDULE", ""),
		Timezone:       loc.String(),
		Location:       loc,

		StatusAPIEnabled: envBool("STATUS_API_ENABLED", false),
		APIHost:          envOr("API_HOST", "0.0.0.0"),
		APIPort:          envInt("API_PORT", envInt("PORT", 8000)),
		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),

		Environment: envOr("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(os.Getenv("LOG_LEVEL")),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CronSpec returns the cron expression driving the daily wake-up.
func (c *Config) CronSpec() string {
	if c.NotifySchedule != "" {
		return c.NotifySchedule
	}
	return fmt.Sprintf("0 %d * * *", c.NotifyHour)
}

// APIAddr returns the host:port the status API listens on.
func (c *Config) APIAddr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
