// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the CLI-level settings, merged from config file, SKILLGAP_*
// environment variables, and flags. The static scoring tables are not
// configuration; they are fixed in-process defaults.
type Config struct {
	// WeeklyStudyHours is the study budget one roadmap week absorbs.
	WeeklyStudyHours float64 `mapstructure:"weekly-study-hours"`
	// TargetWeeks bounds generated roadmaps; 0 disables compression.
	TargetWeeks int `mapstructure:"target-weeks"`
	// RoleType is the default role family when the role spec omits one.
	RoleType string `mapstructure:"role-type"`
	// ExperienceLevel is the default experience level when omitted.
	ExperienceLevel string `mapstructure:"experience-level"`
	// Verbose enables the formatted result printer on stdout.
	Verbose bool `mapstructure:"verbose"`
	// JSONLogs switches zap to JSON encoding.
	JSONLogs bool `mapstructure:"json"`
	// Debug lowers the log level to debug.
	Debug bool `mapstructure:"debug"`
}

// Load merges the configured viper state into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks numeric ranges. Defaults are applied by the flag layer,
// so zero values here are legal.
func (c *Config) Validate() error {
	if c.WeeklyStudyHours < 0 {
		return fmt.Errorf("config error: 'weekly-study-hours' must be non-negative")
	}
	if c.WeeklyStudyHours > 80 {
		return fmt.Errorf("config error: 'weekly-study-hours' above 80 is not a plannable schedule")
	}
	if c.TargetWeeks < 0 {
		return fmt.Errorf("config error: 'target-weeks' must be non-negative")
	}
	return nil
}
