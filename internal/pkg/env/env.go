// Package env provides access to txverify's environment configuration.
package env

import (
	"log/slog"
	"os"
	"strings"
)

// Variables read by txverify. The secret key may also be collected
// interactively; the others are optional overrides.
const (
	secretKeyVar = "PAYSTACK_SECRET_KEY"
	baseURLVar   = "PAYSTACK_BASE_URL"
	logLevelVar  = "LOG_LEVEL"
)

// SecretKey returns the pre-supplied Paystack secret key, or empty when
// the credential must be collected at the prompt.
func SecretKey() string {
	return os.Getenv(secretKeyVar)
}

// BaseURL returns the Paystack API base URL override, or empty to use
// the client's default.
func BaseURL() string {
	return os.Getenv(baseURLVar)
}

// LogLevel reads the LOG_LEVEL variable and returns the corresponding
// slog.Level. Supported values: "debug", "info", "warn", "error". Falls
// back to the provided default if the variable is empty or unrecognised.
func LogLevel(fallback slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(logLevelVar)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
