// ABOUTME: Login command for the verleih CLI
// ABOUTME: Prompts for credentials and persists the session token

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/holgerweigert/verleih/internal/api"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the rental backend",
	Long: `Authenticate against the rental backend and store the session token.

Credentials can be passed via flags; missing ones are prompted for
interactively. The token is kept in the config directory until logout
or until the backend rejects it.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Backend username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Backend password (prompted when omitted)")
}

// runLogin executes the login flow and returns an exit code
func runLogin(ctx context.Context, w io.Writer) int {
	username, password := loginUsername, loginPassword

	if username == "" || password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Benutzername").
					Value(&username),
				huh.NewInput().
					Title("Passwort").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			),
		)
		if err := form.Run(); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	c, _, closeLog := newClient()
	defer closeLog()

	resp, err := c.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(w, "Login fehlgeschlagen: Benutzername oder Passwort falsch.")
			return 1
		}
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	name := resp.Username
	if name == "" {
		name = username
	}
	fmt.Fprintf(w, "Angemeldet als %s.\n", name)
	return 0
}
