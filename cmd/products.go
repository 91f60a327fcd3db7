// ABOUTME: Products command for the verleih CLI
// ABOUTME: Lists rentable equipment with prices and availability

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

var productsAvailableOnly bool

var productsCmd = &cobra.Command{
	Use:   "products [id]",
	Short: "List products or show a single one",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProducts(ctx, os.Stdout, args)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.Flags().BoolVar(&productsAvailableOnly, "available", false, "Only products with units on hand")
}

// runProducts executes the listing or single fetch and returns an exit code
func runProducts(ctx context.Context, w io.Writer, args []string) int {
	c, _, closeLog := newClient()
	defer closeLog()

	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(w, "Error: invalid product id %q\n", args[0])
			return 2
		}
		product, err := c.Product(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		printResult(w, product, formatProductHuman(product))
		return 0
	}

	var (
		products []api.Product
		err      error
	)
	if productsAvailableOnly {
		products, err = c.AvailableProducts(ctx)
	} else {
		products, err = c.Products(ctx)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	printResult(w, products, formatProductsHuman(products))
	return 0
}

func formatProductHuman(p *api.Product) string {
	s := fmt.Sprintf("#%d  %s", p.ID, p.Name)
	if p.Beschreibung != "" {
		s += "\n    " + p.Beschreibung
	}
	s += fmt.Sprintf("\n    Mietpreis: %s  Kaution: %s", format.Currency(p.Mietpreis), format.Currency(p.Kaution))
	s += fmt.Sprintf("\n    Verfügbar: %d/%d", p.Available(), p.Gesamt)
	return s
}

func formatProductsHuman(products []api.Product) string {
	if len(products) == 0 {
		return "Keine Produkte gefunden."
	}
	s := fmt.Sprintf("%d Produkte:\n", len(products))
	for i := range products {
		p := &products[i]
		s += fmt.Sprintf("  #%-4d %-30s %10s  %d/%d verfügbar\n",
			p.ID, p.Name, format.Currency(p.Mietpreis), p.Available(), p.Gesamt)
	}
	return s[:len(s)-1]
}
