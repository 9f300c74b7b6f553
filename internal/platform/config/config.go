// Package config provides configuration loading and validation for the tool.
// Configuration is layered: defaults -> YAML file -> environment variables ->
// command-line overrides, each layer taking precedence over the previous one.
package config

import "time"

// Config holds all configuration for the tool.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Output    OutputConfig    `koanf:"output"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// File receives log output when set. The interactive form discards logs
	// otherwise so they cannot tear the screen.
	File string `koanf:"file"`
}

// ClientConfig holds outbound HTTP client settings.
type ClientConfig struct {
	// Timeout bounds a whole request. Zero leaves it to the transport.
	Timeout      time.Duration `koanf:"timeout"`
	UserAgent    string        `koanf:"user_agent"`
	MaxBodyBytes int64         `koanf:"max_body_bytes"`
}

// OutputConfig holds non-interactive rendering settings.
type OutputConfig struct {
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
