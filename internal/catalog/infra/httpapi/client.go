package httpapi

import (
	"context"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
	"github.com/dwikikusuma/storefront-cart/internal/metrics"
)

type productPayload struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// Client fetches products from the remote storefront API. No retries and no
// timeout tuning beyond the transport default: a slow or broken catalog just
// means fewer rows rendered.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetRetryCount(0),
	}
}

// Fetch resolves one product by id. Every failure mode collapses to
// app.ErrNotFound; no fault ever propagates past this boundary.
func (c *Client) Fetch(ctx context.Context, productID string) (domain.Product, error) {
	var payload productPayload

	// Force JSON handling so a 200 with a non-JSON body (maintenance page,
	// misrouted proxy) fails decoding instead of yielding a zero product.
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		ForceContentType("application/json").
		Get("/api/products/" + url.PathEscape(productID))
	if err != nil || !resp.IsSuccess() {
		metrics.ProductLookupsTotal.WithLabelValues("not_found").Inc()
		return domain.Product{}, app.ErrNotFound
	}

	metrics.ProductLookupsTotal.WithLabelValues("ok").Inc()
	return domain.Product{
		Name:     payload.Name,
		Price:    payload.Price,
		ImageURL: payload.ImageURL,
	}, nil
}
