// ABOUTME: Logout command for the verleih CLI
// ABOUTME: Discards the locally stored session token

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		c, _, closeLog := newClient()
		defer closeLog()

		c.Logout()
		fmt.Println("Abgemeldet.")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
