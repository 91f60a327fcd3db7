// ABOUTME: Rental and receipt resource operations
// ABOUTME: List by status, create, update, close via return, fetch receipts

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// RentalFilter is the status filter for rental listings.
type RentalFilter string

const (
	FilterActive   RentalFilter = "active"
	FilterReturned RentalFilter = "returned"
	FilterAll      RentalFilter = "all"
)

// Rentals lists rentals filtered by status. An empty filter defaults
// to active, matching the app's home screen.
func (c *Client) Rentals(ctx context.Context, filter RentalFilter) ([]Rental, error) {
	if filter == "" {
		filter = FilterActive
	}
	query := url.Values{"status": {string(filter)}}
	var rentals []Rental
	if err := c.do(ctx, http.MethodGet, "/rentals", query, nil, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// Rental fetches a single rental by id.
func (c *Client) Rental(ctx context.Context, id int) (*Rental, error) {
	var rental Rental
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rentals/%d", id), nil, nil, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// CreateRental opens a new rental. Customer and product are required;
// the backend validates everything else.
func (c *Client) CreateRental(ctx context.Context, req *CreateRentalRequest) (*Rental, error) {
	if req == nil || req.CustomerID == 0 {
		return nil, ErrMissingCustomer
	}
	if req.ProductID == 0 {
		return nil, ErrMissingProduct
	}
	if req.RentalDate == "" {
		req.RentalDate = nowWire()
	}
	var rental Rental
	if err := c.do(ctx, http.MethodPost, "/rentals", nil, req, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// UpdateRental updates an open rental.
func (c *Client) UpdateRental(ctx context.Context, id int, rental *Rental) (*Rental, error) {
	var updated Rental
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/rentals/%d", id), nil, rental, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ReturnRental closes a rental. An empty return date defaults to today.
func (c *Client) ReturnRental(ctx context.Context, id int, req ReturnRequest) (*Rental, error) {
	if req.ReturnDate == "" {
		req.ReturnDate = nowWire()
	}
	var rental Rental
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/rentals/%d/return", id), nil, req, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// Receipt generates or fetches the receipt for a rental.
func (c *Client) Receipt(ctx context.Context, rentalID int) (*Receipt, error) {
	var receipt Receipt
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rentals/%d/receipt", rentalID), nil, nil, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Receipts lists all receipts.
func (c *Client) Receipts(ctx context.Context) ([]Receipt, error) {
	var receipts []Receipt
	if err := c.do(ctx, http.MethodGet, "/receipts", nil, nil, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

// Stats fetches the server-computed dashboard counters.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
