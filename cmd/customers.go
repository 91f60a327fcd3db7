// ABOUTME: Customers command for the verleih CLI
// ABOUTME: Lists and shows customers with optional search

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/holgerweigert/verleih/internal/api"
	"github.com/holgerweigert/verleih/internal/format"
)

var customerSearch string

var customersCmd = &cobra.Command{
	Use:   "customers [id]",
	Short: "List customers or show a single one",
	Long: `List all customers, optionally filtered by a search term, or show a
single customer by id.

Exit codes:
  0 - Success
  2 - Error (connectivity, not found, invalid input)`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCustomers(ctx, os.Stdout, args)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(customersCmd)
	customersCmd.Flags().StringVarP(&customerSearch, "search", "s", "", "Search term forwarded to the backend")
}

// runCustomers executes the listing or single fetch and returns an exit code
func runCustomers(ctx context.Context, w io.Writer, args []string) int {
	c, _, closeLog := newClient()
	defer closeLog()

	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(w, "Error: invalid customer id %q\n", args[0])
			return 2
		}
		customer, err := c.Customer(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		printResult(w, customer, formatCustomerHuman(customer))
		return 0
	}

	customers, err := c.Customers(ctx, customerSearch)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	printResult(w, customers, formatCustomersHuman(customers))
	return 0
}

// printResult writes either indented JSON or the prepared human text
func printResult(w io.Writer, v any, human string) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(v, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}
	fmt.Fprintln(w, human)
}

func formatCustomerHuman(c *api.Customer) string {
	s := fmt.Sprintf("#%d  %s", c.ID, c.DisplayName())
	if addr := c.AddressLine(); addr != "" {
		s += "\n    " + addr
	}
	if c.Telefon != "" {
		s += "\n    Tel: " + format.Phone(c.Telefon)
	}
	if c.Email != "" {
		s += "\n    " + c.Email
	}
	return s
}

func formatCustomersHuman(customers []api.Customer) string {
	if len(customers) == 0 {
		return "Keine Kunden gefunden."
	}
	s := fmt.Sprintf("%d Kunden:\n", len(customers))
	for i := range customers {
		c := &customers[i]
		s += fmt.Sprintf("  #%-4d %-30s %s\n", c.ID, c.DisplayName(), c.AddressLine())
	}
	return s[:len(s)-1]
}
