package config

import (
	"fmt"
	"strconv"
)

// ValidateForBot checks the settings needed to talk to Discord.
func ValidateForBot(cfg *Config) error {
	if cfg.DiscordToken == "" {
		return ErrDiscordTokenMissing
	}
	if cfg.ChannelID == "" {
		return ErrChannelMissing
	}
	if err := validateSnowflake("MAIN_CHANNEL", cfg.ChannelID); err != nil {
		return err
	}
	if cfg.RoleID != "" {
		if err := validateSnowflake("F1_ROLE", cfg.RoleID); err != nil {
			return err
		}
	}
	return nil
}

func validateSnowflake(key, v string) error {
	if _, err := strconv.ParseUint(v, 10, 64); err != nil {
		return fmt.Errorf("%s: %w", key, ErrInvalidSnowflake)
	}
	return nil
}
