package app

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/storefront-cart/internal/metrics"
	"github.com/dwikikusuma/storefront-cart/internal/view/domain"
)

// Service reconciles the persisted cart with fresh product data into a
// renderable view, and is the single path every user edit goes through:
// mutate the store, then Refresh. There is no partial re-render, so the
// totals shown always come from persisted state.
type Service struct {
	cart     CartStore
	products ProductReader
	log      *slog.Logger

	maxConcurrent int
}

// NewService builds the view service. maxConcurrent bounds the product
// fetches per refresh; values below 1 mean fully sequential.
func NewService(cart CartStore, products ProductReader, log *slog.Logger, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		cart:          cart,
		products:      products,
		log:           log,
		maxConcurrent: maxConcurrent,
	}
}

// Refresh loads the cart and resolves every line's product. Fetches run
// concurrently into a slice indexed by storage position, so rows render in
// storage order no matter when each response lands. Unresolved products and
// zero-quantity lines are dropped from both the rows and the totals.
func (s *Service) Refresh(ctx context.Context) (domain.View, error) {
	lines, err := s.cart.Load(ctx)
	if err != nil {
		return domain.View{}, err
	}

	rows := make([]*domain.Row, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range lines {
		g.Go(func() error {
			ln := lines[idx]
			if ln.Quantity <= 0 {
				return nil
			}

			product, ok := s.products.Fetch(gctx, ln.ProductID)
			if !ok {
				s.log.Warn("product unresolved, dropping row",
					slog.String("product_id", ln.ProductID),
					slog.String("color", ln.Color),
				)
				return nil
			}

			rows[idx] = &domain.Row{
				ProductID:   ln.ProductID,
				Color:       ln.Color,
				Name:        product.Name,
				ImageURL:    product.ImageURL,
				UnitPrice:   product.Price,
				Quantity:    ln.Quantity,
				LineTotal:   float64(ln.Quantity) * product.Price,
				QuantityMin: domain.QuantityMin,
				QuantityMax: domain.QuantityMax,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.View{}, err
	}

	view := domain.View{Rows: make([]domain.Row, 0, len(lines))}
	for _, row := range rows {
		if row == nil {
			continue
		}
		view.Rows = append(view.Rows, *row)
		view.TotalQuantity += row.Quantity
		view.TotalPrice += row.LineTotal
	}

	metrics.CartRefreshesTotal.Inc()
	return view, nil
}

// CommitQuantity applies an edited quantity value. The raw input parses as
// an integer; anything unparseable or negative counts as zero, which
// removes the line. Values above the control bound clamp to it.
func (s *Service) CommitQuantity(ctx context.Context, productID, color, raw string) (domain.View, error) {
	quantity := parseQuantity(raw)

	if err := s.cart.SetQuantity(ctx, productID, color, quantity); err != nil {
		return domain.View{}, err
	}
	return s.Refresh(ctx)
}

// Delete drops a line and re-renders.
func (s *Service) Delete(ctx context.Context, productID, color string) (domain.View, error) {
	if err := s.cart.Remove(ctx, productID, color); err != nil {
		return domain.View{}, err
	}
	return s.Refresh(ctx)
}

func parseQuantity(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0
	}
	if n > domain.QuantityMax {
		return domain.QuantityMax
	}
	return n
}
