package config

import "errors"

var (
	ErrRacesAPIMissing     = errors.New("F1_RACES_API is required")
	ErrInvalidNotifyHour   = errors.New("NOTIFY_HOUR must be between 0 and 23")
	ErrInvalidTimezone     = errors.New("TIMEZONE is not a known IANA zone")
	ErrDiscordTokenMissing = errors.New("DISCORD_TOKEN is required")
	ErrChannelMissing      = errors.New("MAIN_CHANNEL is required")
	ErrInvalidSnowflake    = errors.New("discord ID must be a numeric snowflake")
)
