// ABOUTME: Product resource operations
// ABOUTME: Read-only listing and single fetch of rentable equipment

package api

import (
	"context"
	"fmt"
	"net/http"
)

// Products lists all products.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id int) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AvailableProducts lists products with at least one unit on hand.
func (c *Client) AvailableProducts(ctx context.Context) ([]Product, error) {
	products, err := c.Products(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Available() > 0 {
			available = append(available, p)
		}
	}
	return available, nil
}
