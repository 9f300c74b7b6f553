package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/oktaorginfo/internal/platform/config"
)

// isolate points the default config location at an empty directory so the
// developer's own config file cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Client.Timeout != 0 {
		t.Errorf("Client.Timeout = %v, want 0 (transport default)", cfg.Client.Timeout)
	}
	if cfg.Client.MaxBodyBytes != 1<<20 {
		t.Errorf("Client.MaxBodyBytes = %d, want %d", cfg.Client.MaxBodyBytes, 1<<20)
	}
	if cfg.Output.Format != config.OutputText {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, config.OutputText)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false by default")
	}
}

func TestLoad_DefaultFileLocation(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "oktaorginfo", "config.yaml"), "log:\n  level: debug\n")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\" (from default file)", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\" (from defaults)", cfg.Log.Format)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "client:\n  timeout: 7s\n  user_agent: acme-audit\noutput:\n  format: json\n")

	cfg, err := config.Load(config.WithFile(path))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Client.Timeout != 7*time.Second {
		t.Errorf("Client.Timeout = %v, want 7s", cfg.Client.Timeout)
	}
	if cfg.Client.UserAgent != "acme-audit" {
		t.Errorf("Client.UserAgent = %q, want \"acme-audit\"", cfg.Client.UserAgent)
	}
	if cfg.Output.Format != config.OutputJSON {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, config.OutputJSON)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := config.Load(config.WithFile(filepath.Join(t.TempDir(), "nope.yaml")))
	if err == nil {
		t.Fatal("Load() with missing explicit file returned nil error, want error")
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	isolate(t)
	t.Setenv("OKTAORGINFO_LOG_LEVEL", "error")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want \"error\" (env override)", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	isolate(t)
	t.Setenv("OKTAORGINFO_CLIENT_USER_AGENT", "from-env")
	t.Setenv("OKTAORGINFO_CLIENT_MAX_BODY_BYTES", "2048")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.UserAgent != "from-env" {
		t.Errorf("Client.UserAgent = %q, want \"from-env\" (env override)", cfg.Client.UserAgent)
	}
	if cfg.Client.MaxBodyBytes != 2048 {
		t.Errorf("Client.MaxBodyBytes = %d, want 2048 (env override)", cfg.Client.MaxBodyBytes)
	}
}

func TestLoad_OverridesBeatEnv(t *testing.T) {
	isolate(t)
	t.Setenv("OKTAORGINFO_LOG_FORMAT", "text")

	cfg, err := config.Load(config.WithOverrides(map[string]any{"log.format": "json"}))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\" (override)", cfg.Log.Format)
	}
}

func TestLoad_InvalidValueFailsValidation(t *testing.T) {
	isolate(t)
	t.Setenv("OKTAORGINFO_OUTPUT_FORMAT", "xml")

	if _, err := config.Load(); err == nil {
		t.Fatal("Load() returned nil error, want validation error for output.format=xml")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.Timeout = -time.Second

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for negative timeout")
	}
}

func TestValidate_ZeroMaxBody(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.MaxBodyBytes = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for max_body_bytes=0")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			Timeout:      10 * time.Second,
			UserAgent:    "oktaorginfo",
			MaxBodyBytes: 1 << 20,
		},
		Output: config.OutputConfig{
			Format: config.OutputText,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "oktaorginfo",
		},
	}
}
