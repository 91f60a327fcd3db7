// ABOUTME: Stats command for the verleih CLI
// ABOUTME: Shows the server-computed dashboard counters

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/holgerweigert/verleih/internal/api"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show rental statistics",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStats(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// runStats fetches and prints the aggregate counters
func runStats(ctx context.Context, w io.Writer) int {
	c, _, closeLog := newClient()
	defer closeLog()

	stats, err := c.Stats(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	printResult(w, stats, formatStatsHuman(stats))
	return 0
}

func formatStatsHuman(s *api.Stats) string {
	return fmt.Sprintf(`Aktive Verleihungen: %d
Kunden:              %d`, s.ActiveRentals, s.TotalCustomers)
}
