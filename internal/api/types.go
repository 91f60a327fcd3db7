// ABOUTME: Wire types for the rental backend REST API
// ABOUTME: German field names follow the backend schema; accessors default absent values

package api

import (
	"time"

	"github.com/holgerweigert/verleih/internal/format"
)

// nowWire renders the current day in the backend's date-only format.
func nowWire() string {
	return time.Now().Format("2006-01-02")
}

// Customer is a rental customer: either a company (Firma set) or a
// private person.
type Customer struct {
	ID       int    `json:"id"`
	Firma    string `json:"firma,omitempty"`
	Vorname  string `json:"vorname,omitempty"`
	Nachname string `json:"nachname,omitempty"`
	Strasse  string `json:"strasse,omitempty"`
	PLZ      string `json:"plz,omitempty"`
	Ort      string `json:"ort,omitempty"`
	Telefon  string `json:"telefon,omitempty"`
	Email    string `json:"email,omitempty"`
}

// DisplayName resolves the company name if present, else "first last".
func (c *Customer) DisplayName() string {
	if c == nil {
		return ""
	}
	return format.CustomerName(c.Firma, c.Vorname, c.Nachname)
}

// AddressLine renders the postal address, dropping absent parts.
func (c *Customer) AddressLine() string {
	if c == nil {
		return ""
	}
	return format.Address(c.Strasse, c.PLZ, c.Ort)
}

// Product is a rentable piece of equipment.
type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Beschreibung string   `json:"beschreibung,omitempty"`
	Mietpreis    *float64 `json:"mietpreis,omitempty"`
	Kaution      *float64 `json:"kaution,omitempty"`
	Verfuegbar   int      `json:"verfuegbar"`
	Gesamt       int      `json:"gesamt"`
}

// Price is the rental price per period, 0 when absent.
func (p *Product) Price() float64 {
	if p == nil || p.Mietpreis == nil {
		return 0
	}
	return *p.Mietpreis
}

// Deposit is the deposit amount, 0 when absent.
func (p *Product) Deposit() float64 {
	if p == nil || p.Kaution == nil {
		return 0
	}
	return *p.Kaution
}

// Available clamps the available count into [0, total].
func (p *Product) Available() int {
	if p == nil {
		return 0
	}
	n := p.Verfuegbar
	if n < 0 {
		n = 0
	}
	if n > p.Gesamt {
		n = p.Gesamt
	}
	return n
}

// RentalStatus is the closed set of rental states.
type RentalStatus string

const (
	StatusActive   RentalStatus = "active"
	StatusReturned RentalStatus = "returned"
	StatusOverdue  RentalStatus = "overdue"
)

// normalizeStatus folds German synonyms into the closed set. Unknown
// input yields the empty status.
func normalizeStatus(s string) RentalStatus {
	switch s {
	case "active", "ausgeliehen":
		return StatusActive
	case "returned", "zurückgegeben":
		return StatusReturned
	case "overdue", "überfällig":
		return StatusOverdue
	default:
		return ""
	}
}

// Rental is a rental transaction. ReturnDate is set once the rental is
// closed; DueDate is the agreed return deadline.
type Rental struct {
	ID            int       `json:"id"`
	CustomerID    int       `json:"customer_id"`
	ProductID     int       `json:"product_id"`
	CustomerName  string    `json:"customer_name,omitempty"`
	ProductName   string    `json:"product_name,omitempty"`
	Kunde         *Customer `json:"kunde,omitempty"`
	Produkt       *Product  `json:"produkt,omitempty"`
	RentalDate    string    `json:"rental_date"`
	DueDate       string    `json:"due_date,omitempty"`
	ReturnDate    string    `json:"return_date,omitempty"`
	RentalPrice   *float64  `json:"rental_price,omitempty"`
	DepositAmount *float64  `json:"deposit_amount,omitempty"`
	TotalAmount   *float64  `json:"total_amount,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status,omitempty"`
}

// Price is the rental price, 0 when absent.
func (r *Rental) Price() float64 {
	if r == nil || r.RentalPrice == nil {
		return 0
	}
	return *r.RentalPrice
}

// Deposit is the deposit amount, 0 when absent.
func (r *Rental) Deposit() float64 {
	if r == nil || r.DepositAmount == nil {
		return 0
	}
	return *r.DepositAmount
}

// Total is the stored total amount; when the backend did not compute
// one, price plus deposit.
func (r *Rental) Total() float64 {
	if r == nil {
		return 0
	}
	if r.TotalAmount != nil {
		return *r.TotalAmount
	}
	return r.Price() + r.Deposit()
}

// DisplayCustomer prefers the embedded customer record over the
// denormalized name field.
func (r *Rental) DisplayCustomer() string {
	if r == nil {
		return ""
	}
	if r.Kunde != nil {
		return r.Kunde.DisplayName()
	}
	return r.CustomerName
}

// DisplayProduct prefers the embedded product record over the
// denormalized name field.
func (r *Rental) DisplayProduct() string {
	if r == nil {
		return ""
	}
	if r.Produkt != nil {
		return r.Produkt.Name
	}
	return r.ProductName
}

// Classify derives the display status. A recorded return date always
// wins; otherwise a past due date means overdue. The stored status
// field is honored where the dates are silent, so the function is
// authoritative regardless of whether the backend sends a status.
// Classify(Classify result fed back as Status) is stable.
func (r *Rental) Classify() RentalStatus {
	if r == nil {
		return StatusActive
	}
	stored := normalizeStatus(r.Status)
	if r.ReturnDate != "" || stored == StatusReturned {
		return StatusReturned
	}
	if format.IsOverdue(r.DueDate) || stored == StatusOverdue {
		return StatusOverdue
	}
	return StatusActive
}

// Duration is the rental length in days, using the return date when
// the rental is closed and today otherwise.
func (r *Rental) Duration() int {
	if r == nil || r.RentalDate == "" {
		return 0
	}
	end := r.ReturnDate
	if end == "" {
		end = nowWire()
	}
	return format.RentalDuration(r.RentalDate, end)
}

// Receipt is a generated rental receipt.
type Receipt struct {
	ID        int                `json:"id"`
	RentalID  int                `json:"rental_id"`
	Number    string             `json:"number,omitempty"`
	CreatedAt string             `json:"created_at,omitempty"`
	Amount    *float64           `json:"amount,omitempty"`
	Positions []format.PriceItem `json:"positionen,omitempty"`
}

// TotalAmount is the stored amount; when absent, the sum over the
// receipt positions.
func (rc *Receipt) TotalAmount() float64 {
	if rc == nil {
		return 0
	}
	if rc.Amount != nil {
		return *rc.Amount
	}
	return format.TotalPrice(rc.Positions)
}

// Stats is the server-computed dashboard snapshot.
type Stats struct {
	ActiveRentals  int `json:"activeRentals"`
	TotalCustomers int `json:"totalCustomers"`
}

// LoginRequest is the credential body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
}

// CreateRentalRequest is the body for POST /rentals.
type CreateRentalRequest struct {
	CustomerID    int     `json:"customer_id"`
	ProductID     int     `json:"product_id"`
	RentalDate    string  `json:"rental_date"`
	DueDate       string  `json:"due_date,omitempty"`
	RentalPrice   float64 `json:"rental_price"`
	DepositAmount float64 `json:"deposit_amount"`
	Notes         string  `json:"notes,omitempty"`
}

// ReturnRequest is the body for POST /rentals/{id}/return.
type ReturnRequest struct {
	ReturnDate      string `json:"return_date"`
	DepositReturned bool   `json:"deposit_returned"`
}
