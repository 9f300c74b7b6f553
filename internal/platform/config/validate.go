package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Client.validate(),
		c.Output.validate(),
		c.Telemetry.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout < 0 {
		errs = append(errs, fmt.Errorf("client.timeout must not be negative, got %s", cl.Timeout))
	}
	if cl.MaxBodyBytes < 1 {
		errs = append(errs, fmt.Errorf("client.max_body_bytes must be >= 1, got %d", cl.MaxBodyBytes))
	}

	return errors.Join(errs...)
}

func (o *OutputConfig) validate() error {
	switch o.Format {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("output.format must be one of: text, json; got %q", o.Format)
	}
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
