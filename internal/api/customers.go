// ABOUTME: Customer resource operations
// ABOUTME: List with optional search, get, create, update, delete

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Customers lists all customers. A non-empty search term is forwarded
// as the `search` query parameter; an empty one is omitted entirely.
func (c *Client) Customers(ctx context.Context, search string) ([]Customer, error) {
	var query url.Values
	if search != "" {
		query = url.Values{"search": {search}}
	}
	var customers []Customer
	if err := c.do(ctx, http.MethodGet, "/customers", query, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// Customer fetches a single customer by id.
func (c *Client) Customer(ctx context.Context, id int) (*Customer, error) {
	var customer Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer creates a new customer and returns the stored record.
func (c *Client) CreateCustomer(ctx context.Context, customer *Customer) (*Customer, error) {
	var created Customer
	if err := c.do(ctx, http.MethodPost, "/customers", nil, customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCustomer updates an existing customer.
func (c *Client) UpdateCustomer(ctx context.Context, id int, customer *Customer) (*Customer, error) {
	var updated Customer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), nil, customer, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCustomer deletes a customer by id.
func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil, nil)
}
