// ABOUTME: Tests for wire type accessors and status derivation
// ABOUTME: Covers nil safety, absent-value defaults, and the Classify rules

package api

import (
	"testing"
	"time"

	"github.com/holgerweigert/verleih/internal/format"
)

func fptr(v float64) *float64 { return &v }

func wireDate(d time.Duration) string {
	return time.Now().Add(d).Format("2006-01-02")
}

func TestRentalClassify(t *testing.T) {
	past := wireDate(-72 * time.Hour)
	future := wireDate(72 * time.Hour)

	tests := []struct {
		name   string
		rental Rental
		want   RentalStatus
	}{
		{"return date wins", Rental{ReturnDate: "2024-01-10", DueDate: past}, StatusReturned},
		{"return date wins over stored overdue", Rental{ReturnDate: "2024-01-10", Status: "overdue"}, StatusReturned},
		{"past due date is overdue", Rental{DueDate: past}, StatusOverdue},
		{"future due date is active", Rental{DueDate: future}, StatusActive},
		{"no dates no status defaults active", Rental{}, StatusActive},
		{"stored status honored when dates silent", Rental{Status: "overdue"}, StatusOverdue},
		{"stored returned honored", Rental{Status: "returned"}, StatusReturned},
		{"German stored status folded", Rental{Status: "zurückgegeben"}, StatusReturned},
		{"unknown stored status ignored", Rental{Status: "pending"}, StatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rental.Classify(); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRentalClassify_Stable(t *testing.T) {
	rentals := []Rental{
		{DueDate: wireDate(-72 * time.Hour)},
		{ReturnDate: "2024-01-10"},
		{DueDate: wireDate(72 * time.Hour)},
	}
	for _, r := range rentals {
		first := r.Classify()
		r.Status = string(first)
		if second := r.Classify(); second != first {
			t.Errorf("re-classifying %s yielded %s", first, second)
		}
	}
}

func TestRentalAccessors(t *testing.T) {
	var nilRental *Rental
	if nilRental.Price() != 0 || nilRental.Total() != 0 || nilRental.DisplayCustomer() != "" {
		t.Error("nil rental accessors must return zero values")
	}

	r := Rental{RentalPrice: fptr(25), DepositAmount: fptr(50)}
	if r.Total() != 75 {
		t.Errorf("expected total 75 from price plus deposit, got %v", r.Total())
	}

	r.TotalAmount = fptr(100)
	if r.Total() != 100 {
		t.Errorf("stored total must win, got %v", r.Total())
	}
}

func TestRentalDisplayNames(t *testing.T) {
	r := Rental{
		CustomerName: "Hans Meier",
		ProductName:  "Zapfanlage",
	}
	if r.DisplayCustomer() != "Hans Meier" || r.DisplayProduct() != "Zapfanlage" {
		t.Errorf("denormalized names not used: %q / %q", r.DisplayCustomer(), r.DisplayProduct())
	}

	r.Kunde = &Customer{Firma: "Brauerei Kirschenholz"}
	r.Produkt = &Product{Name: "Bierzeltgarnitur"}
	if r.DisplayCustomer() != "Brauerei Kirschenholz" {
		t.Errorf("embedded customer must win, got %q", r.DisplayCustomer())
	}
	if r.DisplayProduct() != "Bierzeltgarnitur" {
		t.Errorf("embedded product must win, got %q", r.DisplayProduct())
	}
}

func TestCustomerDisplayName(t *testing.T) {
	c := Customer{Firma: "Brauerei Kirschenholz", Vorname: "Hans", Nachname: "Meier"}
	if c.DisplayName() != "Brauerei Kirschenholz" {
		t.Errorf("company name must win, got %q", c.DisplayName())
	}

	c.Firma = ""
	if c.DisplayName() != "Hans Meier" {
		t.Errorf("expected person name, got %q", c.DisplayName())
	}

	var nilCustomer *Customer
	if nilCustomer.DisplayName() != "" || nilCustomer.AddressLine() != "" {
		t.Error("nil customer accessors must return empty strings")
	}
}

func TestProductAvailableClamped(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    int
	}{
		{"within range", Product{Verfuegbar: 3, Gesamt: 10}, 3},
		{"negative clamped to zero", Product{Verfuegbar: -2, Gesamt: 10}, 0},
		{"above total clamped to total", Product{Verfuegbar: 15, Gesamt: 10}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.Available(); got != tt.want {
				t.Errorf("Available() = %d, want %d", got, tt.want)
			}
		})
	}

	var nilProduct *Product
	if nilProduct.Available() != 0 || nilProduct.Price() != 0 || nilProduct.Deposit() != 0 {
		t.Error("nil product accessors must return zero values")
	}
}

func TestReceiptTotalAmount(t *testing.T) {
	rc := Receipt{Amount: fptr(130)}
	if rc.TotalAmount() != 130 {
		t.Errorf("stored amount must win, got %v", rc.TotalAmount())
	}

	rc = Receipt{Positions: []format.PriceItem{
		{Menge: 2, PreisProEinheit: 4},
		{Menge: 1, PreisProEinheit: 5},
	}}
	if rc.TotalAmount() != 13 {
		t.Errorf("expected position sum 13, got %v", rc.TotalAmount())
	}
}
