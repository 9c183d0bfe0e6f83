package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("F1_RACES_API", "https://api.jolpi.ca/ergast/f1/current.json")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NotifyHour != DefaultNotifyHour {
		t.Errorf("NotifyHour = %d, want %d", cfg.NotifyHour, DefaultNotifyHour)
	}
	if cfg.CronSpec() != "0 14 * * *" {
		t.Errorf("CronSpec = %q", cfg.CronSpec())
	}
	if cfg.FeedTimeout != 30*time.Second {
		t.Errorf("FeedTimeout = %v", cfg.FeedTimeout)
	}
	if cfg.Location != time.UTC {
		t.Errorf("Location = %v, want UTC", cfg.Location)
	}
	if cfg.StatusAPIEnabled {
		t.Error("status API should be off by default")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.APIAddr() != "0.0.0.0:8000" {
		t.Errorf("APIAddr = %q", cfg.APIAddr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("NOTIFY_HOUR", "9")
	t.Setenv("NOTIFY_SCHEDULE", "30 8 * * 1-5")
	t.Setenv("TIMEZONE", "America/Bogota")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("STATUS_API_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NotifyHour != 9 {
		t.Errorf("NotifyHour = %d", cfg.NotifyHour)
	}
	if cfg.CronSpec() != "30 8 * * 1-5" {
		t.Errorf("CronSpec = %q, want the explicit schedule", cfg.CronSpec())
	}
	if cfg.Timezone != "America/Bogota" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "http://b.test" {
		t.Errorf("CORSAllowOrigins = %v", cfg.CORSAllowOrigins)
	}
	if !cfg.StatusAPIEnabled {
		t.Error("status API should be enabled")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "missing feed",
			env:     map[string]string{"F1_RACES_API": ""},
			wantErr: ErrRacesAPIMissing,
		},
		{
			name:    "hour too large",
			env:     map[string]string{"F1_RACES_API": "http://x", "NOTIFY_HOUR": "24"},
			wantErr: ErrInvalidNotifyHour,
		},
		{
			name:    "negative hour",
			env:     map[string]string{"F1_RACES_API": "http://x", "NOTIFY_HOUR": "-1"},
			wantErr: ErrInvalidNotifyHour,
		},
		{
			name:    "unknown zone",
			env:     map[string]string{"F1_RACES_API": "http://x", "TIMEZONE": "Mars/Olympus"},
			wantErr: ErrInvalidTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForBot(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg:  Config{DiscordToken: "tok", ChannelID: "1187654321098765432", RoleID: "1187654321098765000"},
		},
		{
			name: "valid without role",
			cfg:  Config{DiscordToken: "tok", ChannelID: "1187654321098765432"},
		},
		{
			name:    "no token",
			cfg:     Config{ChannelID: "1"},
			wantErr: ErrDiscordTokenMissing,
		},
		{
			name:    "no channel",
			cfg:     Config{DiscordToken: "tok"},
			wantErr: ErrChannelMissing,
		},
		{
			name:    "non numeric channel",
			cfg:     Config{DiscordToken: "tok", ChannelID: "general"},
			wantErr: ErrInvalidSnowflake,
		},
		{
			name:    "non numeric role",
			cfg:     Config{DiscordToken: "tok", ChannelID: "1", RoleID: "@f1"},
			wantErr: ErrInvalidSnowflake,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForBot(&tt.cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
