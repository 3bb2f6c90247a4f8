package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	viewapp "github.com/dwikikusuma/storefront-cart/internal/view/app"
)

type CartStoreAdapter struct {
	store *cartapp.Store
}

func NewCartStoreAdapter(store *cartapp.Store) *CartStoreAdapter {
	return &CartStoreAdapter{store: store}
}

func (a *CartStoreAdapter) Load(ctx context.Context) ([]viewapp.Line, error) {
	items, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]viewapp.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, viewapp.Line{
			ProductID: it.ProductID,
			Color:     it.Color,
			Quantity:  it.Quantity,
		})
	}
	return lines, nil
}

func (a *CartStoreAdapter) SetQuantity(ctx context.Context, productID, color string, quantity int64) error {
	return a.store.SetQuantity(ctx, productID, color, quantity)
}

func (a *CartStoreAdapter) Remove(ctx context.Context, productID, color string) error {
	return a.store.Remove(ctx, productID, color)
}
