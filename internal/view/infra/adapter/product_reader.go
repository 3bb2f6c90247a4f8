package adapter

import (
	"context"

	catalogapp "github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	viewapp "github.com/dwikikusuma/storefront-cart/internal/view/app"
)

type ProductReaderAdapter struct {
	lookup catalogapp.Lookup
}

func NewProductReaderAdapter(lookup catalogapp.Lookup) *ProductReaderAdapter {
	return &ProductReaderAdapter{lookup: lookup}
}

// Fetch maps the catalog's error-based contract onto the view's found flag.
// Any lookup error means the row does not render.
func (a *ProductReaderAdapter) Fetch(ctx context.Context, productID string) (viewapp.Product, bool) {
	p, err := a.lookup.Fetch(ctx, productID)
	if err != nil {
		return viewapp.Product{}, false
	}
	return viewapp.Product{
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
	}, true
}
