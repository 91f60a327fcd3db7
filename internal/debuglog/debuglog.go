// ABOUTME: File-backed structured logger for the TUI
// ABOUTME: Keeps log output off the terminal; disabled unless explicitly enabled

package debuglog

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger opens a zerolog logger appending to debug.log under the given
// config directory. An empty directory, or any failure to open the
// file, yields a no-op logger: debug logging must never break the app.
func Logger(configDir string) (zerolog.Logger, func()) {
	nop := func() {}
	if configDir == "" {
		return zerolog.Nop(), nop
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return zerolog.Nop(), nop
	}
	logPath := filepath.Join(configDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), nop
	}
	log := zerolog.New(f).With().Timestamp().Logger()
	return log, func() { _ = f.Close() }
}
