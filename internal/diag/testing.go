//go:build !release

package diag

import (
	"io"
	"log/slog"
	"os"
)

// RootTestLogger returns a logger suitable for tests. Logs are discarded
// unless TEST_LOGS env variable is set.
func RootTestLogger() *slog.Logger {
	output := io.Discard
	if os.Getenv("TEST_LOGS") != "" {
		output = os.Stdout
	}
	return SetupRootLogger(
		NewRootLoggerOpts().
			WithLogLevel(slog.LevelDebug).
			WithOutput(output),
	)
}
