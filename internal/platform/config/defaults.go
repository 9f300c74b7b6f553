package config

const (
	defaultMaxBodyBytes = 1 << 20 // 1 MB

	// OutputText renders an aligned field table.
	OutputText = "text"
	// OutputJSON renders the response body as indented JSON.
	OutputJSON = "json"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by the config file, env vars
// and flags.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "warn",
		"log.format": "text",
		"log.file":   "",

		"client.timeout":        "0s",
		"client.user_agent":     "oktaorginfo",
		"client.max_body_bytes": defaultMaxBodyBytes,

		"output.format": OutputText,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "oktaorginfo",
	}
}
