package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	// BaseURL is the API root; endpoints are appended to it
	BaseURL string `mapstructure:"base_url"`
	// Lenient keeps unknown enum values instead of failing the decode
	Lenient bool `mapstructure:"lenient"`
	// Timeout bounds the single request. Zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout"`
	// Save is an optional SQLite path the decoded records are written to
	Save string `mapstructure:"save"`
	// Browse shows results in a table before dumping the chosen record
	Browse bool `mapstructure:"browse"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}
