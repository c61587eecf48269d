package catalog

import (
	"context"
	"errors"
)

//go:generate mockgen -source=catalog.go -destination=resolver_mock.go -package=catalog

// Product is the catalog collaborator's view of a sellable product.
type Product struct {
	ID    string
	Name  string
	MOQ   int
	Price int64 // unit price in cents
	Image string
}

// Resolver looks up product details from the external catalog.
type Resolver interface {
	Resolve(ctx context.Context, productID string) (*Product, error)
}

var ErrNotFound = errors.New("product not found")
