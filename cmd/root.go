// ABOUTME: Root command for the verleih CLI
// ABOUTME: Handles global flags, env configuration, and client construction

package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/holgerweigert/verleih/internal/api"
	"github.com/holgerweigert/verleih/internal/debuglog"
	"github.com/holgerweigert/verleih/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "https://verleih.kirschenholz.de/api"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "verleih",
	Short: "CLI for the brewery equipment rental backend",
	Long: `verleih is a terminal client for the Brauerei Kirschenholz rental backend.

It lets staff log in, browse customers and products, create and close
rental transactions, and view dashboard statistics.

Environment Variables:
  VERLEIH_API_URL  Backend API URL (default: ` + defaultAPIURL + `)
  VERLEIH_DEBUG    Write a debug log to the config directory when set`,
}

// Execute runs the root command
func Execute() error {
	// Missing .env is fine; flags and real env still apply.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides VERLEIH_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("VERLEIH_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSessionStore returns the durable token store shared by all commands.
func newSessionStore() session.Store {
	return session.NewFileStore(session.DefaultConfigDir())
}

// newClient builds the API client wired to the durable session store.
// The returned cleanup closes the debug log file.
func newClient() (*api.Client, session.Store, func()) {
	store := newSessionStore()
	log, closeLog := newLogger()
	c := api.New(GetAPIURL(), store, api.WithLogger(log))
	return c, store, closeLog
}

// newLogger returns a file logger when VERLEIH_DEBUG is set, else a no-op.
func newLogger() (zerolog.Logger, func()) {
	if os.Getenv("VERLEIH_DEBUG") == "" {
		return zerolog.Nop(), func() {}
	}
	return debuglog.Logger(session.DefaultConfigDir())
}
