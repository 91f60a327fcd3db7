// ABOUTME: Rentals command for the verleih CLI
// ABOUTME: Lists rentals by status, shows detail, creates and closes rentals

package cmd

import (
	"context"
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

var (
	rentalStatus    string
	rentalNotes     string
	rentalDueDate   string
	rentalPrice     float64
	rentalDeposit   float64
	returnDate      string
	depositReturned bool
)

var rentalsCmd = &cobra.Command{
	Use:   "rentals [id]",
	Short: "List rentals or show a single one",
	Long: `List rentals filtered by status (active, returned, all) or show a
single rental by id.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRentals(ctx, os.Stdout, args)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var rentalsCreateCmd = &cobra.Command{
	Use:   "create <customer-id> <product-id>",
	Short: "Create a new rental",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRentalsCreate(ctx, os.Stdout, args)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var rentalsReturnCmd = &cobra.Command{
	Use:   "return <id>",
	Short: "Close a rental by recording its return",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRentalsReturn(ctx, os.Stdout, args)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(rentalsCmd)
	rentalsCmd.Flags().StringVar(&rentalStatus, "status", "active", "Filter: active, returned, or all")

	rentalsCmd.AddCommand(rentalsCreateCmd)
	rentalsCreateCmd.Flags().Float64Var(&rentalPrice, "price", 0, "Rental price (defaults to the product's price)")
	rentalsCreateCmd.Flags().Float64Var(&rentalDeposit, "deposit", 0, "Deposit amount (defaults to the product's deposit)")
	rentalsCreateCmd.Flags().StringVar(&rentalDueDate, "due", "", "Agreed return date (YYYY-MM-DD)")
	rentalsCreateCmd.Flags().StringVar(&rentalNotes, "notes", "", "Free-text notes")

	rentalsCmd.AddCommand(rentalsReturnCmd)
	rentalsReturnCmd.Flags().StringVar(&returnDate, "date", "", "Return date (YYYY-MM-DD, default today)")
	rentalsReturnCmd.Flags().BoolVar(&depositReturned, "deposit-returned", true, "Whether the deposit was paid back")
}

// runRentals executes the listing or single fetch and returns an exit code
func runRentals(ctx context.Context, w io.Writer, args []string) int {
	c, _, closeLog := newClient()
	defer closeLog()

	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(w, "Error: invalid rental id %q\n", args[0])
			return 2
		}
		rental, err := c.Rental(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		printResult(w, rental, formatRentalHuman(rental))
		return 0
	}

	filter := api.RentalFilter(rentalStatus)
	switch filter {
	case api.FilterActive, api.FilterReturned, api.FilterAll:
	default:
		fmt.Fprintf(w, "Error: --status must be active, returned, or all\n")
		return 2
	}

	rentals, err := c.Rentals(ctx, filter)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	printResult(w, rentals, formatRentalsHuman(rentals))
	return 0
}

// runRentalsCreate opens a new rental, defaulting price and deposit
// from the product record.
func runRentalsCreate(ctx context.Context, w io.Writer, args []string) int {
	customerID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(w, "Error: invalid customer id %q\n", args[0])
		return 2
	}
	productID, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(w, "Error: invalid product id %q\n", args[1])
		return 2
	}

	c, _, closeLog := newClient()
	defer closeLog()

	price, deposit := rentalPrice, rentalDeposit
	if price == 0 || deposit == 0 {
		product, err := c.Product(ctx, productID)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		if price == 0 {
			price = product.Price()
		}
		if deposit == 0 {
			deposit = product.Deposit()
		}
	}

	rental, err := c.CreateRental(ctx, &api.CreateRentalRequest{
		CustomerID:    customerID,
		ProductID:     productID,
		DueDate:       rentalDueDate,
		RentalPrice:   price,
		DepositAmount: deposit,
		Notes:         rentalNotes,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	printResult(w, rental, "Verleihung erstellt:\n"+formatRentalHuman(rental))
	return 0
}

// runRentalsReturn closes a rental and returns an exit code
func runRentalsReturn(ctx context.Context, w io.Writer, args []string) int {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(w, "Error: invalid rental id %q\n", args[0])
		return 2
	}

	c, _, closeLog := newClient()
	defer closeLog()

	rental, err := c.ReturnRental(ctx, id, api.ReturnRequest{
		ReturnDate:      returnDate,
		DepositReturned: depositReturned,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	printResult(w, rental, "Rückgabe erfasst:\n"+formatRentalHuman(rental))
	return 0
}

func formatRentalHuman(r *api.Rental) string {
	status := r.Classify()
	s := fmt.Sprintf("#%d  %s → %s  [%s]", r.ID, r.DisplayProduct(), r.DisplayCustomer(), format.StatusText(string(status)))
	s += fmt.Sprintf("\n    Ausgeliehen am: %s", format.Date(r.RentalDate))
	if r.DueDate != "" {
		s += fmt.Sprintf("\n    Rückgabe bis:   %s", format.Date(r.DueDate))
		if days, ok := format.DaysUntilReturn(r.DueDate); ok && status == api.StatusActive {
			s += fmt.Sprintf(" (%d Tage)", days)
		}
	}
	if r.ReturnDate != "" {
		s += fmt.Sprintf("\n    Zurückgegeben:  %s", format.Date(r.ReturnDate))
	}
	s += fmt.Sprintf("\n    Mietpreis: %s  Kaution: %s  Gesamt: %s",
		format.Currency(r.RentalPrice), format.Currency(r.DepositAmount), format.Currency(ptr(r.Total())))
	if r.Notes != "" {
		s += "\n    Notizen: " + r.Notes
	}
	return s
}

func formatRentalsHuman(rentals []api.Rental) string {
	if len(rentals) == 0 {
		return "Keine Verleihungen gefunden."
	}
	s := fmt.Sprintf("%d Verleihungen:\n", len(rentals))
	for i := range rentals {
		r := &rentals[i]
		s += fmt.Sprintf("  #%-4d %-25s %-25s %-12s %s\n",
			r.ID, r.DisplayProduct(), r.DisplayCustomer(),
			format.StatusText(string(r.Classify())), format.Currency(ptr(r.Total())))
	}
	return s[:len(s)-1]
}

// ptr boxes a value for the optional-amount formatting helpers.
func ptr(v float64) *float64 { return &v }
