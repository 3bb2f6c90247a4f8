package app

import (
	"context"
	"errors"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
)

// ErrNotFound covers every way a lookup can fail: missing product, non-2xx
// status, transport error, undecodable body. Callers skip the item either
// way, so the distinctions are collapsed on purpose.
var ErrNotFound = errors.New("product not found")

type Lookup interface {
	Fetch(ctx context.Context, productID string) (domain.Product, error)
}
