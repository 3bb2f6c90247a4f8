package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
)

// DefaultSlotKey is the key the cart is stored under when none is configured.
const DefaultSlotKey = "cart"

// Store owns the persisted cart slot: a single JSON-encoded array of line
// items under one key. All mutations are full read-modify-write cycles so
// the persisted list is always the source of truth for the next render.
type Store struct {
	kv  KV
	key string
}

func NewStore(kv KV, slotKey string) *Store {
	if slotKey == "" {
		slotKey = DefaultSlotKey
	}
	return &Store{kv: kv, key: slotKey}
}

// Load reads the slot. An absent key or a value that does not parse as a
// line-item array is treated as an empty cart, never as a failure: a broken
// slot must not take the page down.
func (s *Store) Load(ctx context.Context) (domain.Cart, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return domain.Cart{}, nil
		}
		return nil, fmt.Errorf("read cart slot: %w", err)
	}

	var items domain.Cart
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return domain.Cart{}, nil
	}
	if items == nil {
		items = domain.Cart{}
	}
	return items, nil
}

// Save replaces the slot with the given items, preserving order.
func (s *Store) Save(ctx context.Context, items domain.Cart) error {
	if items == nil {
		items = domain.Cart{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("write cart slot: %w", err)
	}
	return nil
}

// SetQuantity updates the entry identified by productID+color. A quantity of
// zero or less removes the entry. The list is persisted either way, so a
// miss is a no-op that still rewrites the unchanged slot.
func (s *Store) SetQuantity(ctx context.Context, productID, color string, quantity int64) error {
	items, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if idx, ok := items.Find(productID, color); ok {
		if quantity <= 0 {
			items = append(items[:idx], items[idx+1:]...)
		} else {
			items[idx].Quantity = quantity
		}
	}

	return s.Save(ctx, items)
}

// Remove drops the entry identified by productID+color and persists.
func (s *Store) Remove(ctx context.Context, productID, color string) error {
	items, err := s.Load(ctx)
	if err != nil {
		return err
	}

	kept := make(domain.Cart, 0, len(items))
	for _, it := range items {
		if !it.Is(productID, color) {
			kept = append(kept, it)
		}
	}

	return s.Save(ctx, kept)
}
