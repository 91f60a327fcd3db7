// ABOUTME: Receipts command for the verleih CLI
// ABOUTME: Lists receipts and fetches the receipt for a single rental

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

var receiptRentalID int

var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "List receipts or fetch one for a rental",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runReceipts(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(receiptsCmd)
	receiptsCmd.Flags().IntVar(&receiptRentalID, "rental", 0, "Fetch the receipt for this rental id")
}

// runReceipts executes the listing or single fetch and returns an exit code
func runReceipts(ctx context.Context, w io.Writer) int {
	c, _, closeLog := newClient()
	defer closeLog()

	if receiptRentalID != 0 {
		receipt, err := c.Receipt(ctx, receiptRentalID)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		printResult(w, receipt, formatReceiptHuman(receipt))
		return 0
	}

	receipts, err := c.Receipts(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	printResult(w, receipts, formatReceiptsHuman(receipts))
	return 0
}

func formatReceiptHuman(r *api.Receipt) string {
	number := r.Number
	if number == "" {
		number = strconv.Itoa(r.ID)
	}
	s := fmt.Sprintf("Quittung %s (Verleihung #%d)", number, r.RentalID)
	if r.CreatedAt != "" {
		s += "\n    Erstellt: " + format.DateTime(r.CreatedAt)
	}
	s += "\n    Betrag:   " + format.Currency(ptr(r.TotalAmount()))
	return s
}

func formatReceiptsHuman(receipts []api.Receipt) string {
	if len(receipts) == 0 {
		return "Keine Quittungen gefunden."
	}
	s := fmt.Sprintf("%d Quittungen:\n", len(receipts))
	for i := range receipts {
		r := &receipts[i]
		s += fmt.Sprintf("  #%-4d Verleihung #%-4d %10s  %s\n",
			r.ID, r.RentalID, format.Currency(ptr(r.TotalAmount())), format.Date(r.CreatedAt))
	}
	return s[:len(s)-1]
}
