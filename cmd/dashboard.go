// ABOUTME: Dashboard command launching the interactive TUI
// ABOUTME: Starts the session monitor and hands control to bubbletea

package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/holgerweigert/verleih/internal/api"
	"github.com/holgerweigert/verleih/internal/session"
	"github.com/holgerweigert/verleih/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open the full-screen terminal UI: dashboard with statistics, customer
and product lists, and the rental workflows.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDashboard(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// runDashboard wires store, monitor, client, and TUI together
func runDashboard() error {
	store := newSessionStore()
	log, closeLog := newLogger()
	defer closeLog()

	client := api.New(GetAPIURL(), store, api.WithLogger(log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := session.NewMonitor(store)
	go monitor.Run(ctx)

	app := tui.New(client, store, monitor, log)
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
