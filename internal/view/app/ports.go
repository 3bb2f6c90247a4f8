package app

import "context"

type Line struct {
	ProductID string
	Color     string
	Quantity  int64
}

// CartStore is the slice of the cart store this service drives: read the
// ordered lines, and the two mutations user edits translate into.
type CartStore interface {
	Load(ctx context.Context) ([]Line, error)
	SetQuantity(ctx context.Context, productID, color string, quantity int64) error
	Remove(ctx context.Context, productID, color string) error
}

type Product struct {
	Name     string
	Price    float64
	ImageURL string
}

// ProductReader resolves a product for display. The second return reports
// whether it resolved: every lookup failure is just "not found" here, so
// the port has no error path at all.
type ProductReader interface {
	Fetch(ctx context.Context, productID string) (Product, bool)
}
