package web_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	viewapp "github.com/dwikikusuma/storefront-cart/internal/view/app"
	viewdomain "github.com/dwikikusuma/storefront-cart/internal/view/domain"
	"github.com/dwikikusuma/storefront-cart/internal/view/infra/adapter"
	"github.com/dwikikusuma/storefront-cart/internal/web"
)

type fakeLookup map[string]catalogdomain.Product

func (f fakeLookup) Fetch(ctx context.Context, productID string) (catalogdomain.Product, error) {
	p, ok := f[productID]
	if !ok {
		return catalogdomain.Product{}, catalogapp.ErrNotFound
	}
	return p, nil
}

func newTestRouter(t *testing.T, seed cartdomain.Cart, products fakeLookup) (*gin.Engine, *cartapp.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := cartapp.NewStore(memory.New(), "")
	if seed != nil {
		if err := store.Save(context.Background(), seed); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	views := viewapp.NewService(
		adapter.NewCartStoreAdapter(store),
		adapter.NewProductReaderAdapter(products),
		slog.Default(),
		2,
	)

	r := gin.New()
	web.NewHandler(views, store, checkoutapp.NewService(), slog.Default()).Register(r, "cartweb-test")
	return r, store
}

func decodeView(t *testing.T, body []byte) viewdomain.View {
	t.Helper()
	var view viewdomain.View
	if err := json.Unmarshal(body, &view); err != nil {
		t.Fatalf("decode view: %v\nbody: %s", err, body)
	}
	return view
}

func TestGetCart(t *testing.T) {
	r, _ := newTestRouter(t,
		cartdomain.Cart{
			{ProductID: "A", Color: "red", Quantity: 2},
			{ProductID: "B", Color: "blue", Quantity: 1}, // no matching product
		},
		fakeLookup{"A": {Name: "Kanap A", Price: 10.00, ImageURL: "http://img/a.jpg"}},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	view := decodeView(t, w.Body.Bytes())
	if len(view.Rows) != 1 || view.Rows[0].ProductID != "A" {
		t.Fatalf("expected only A to render, got %+v", view.Rows)
	}
	if view.TotalQuantity != 2 || view.FormatTotalPrice() != "20.00" {
		t.Fatalf("unexpected totals: qty=%d price=%s", view.TotalQuantity, view.FormatTotalPrice())
	}
}

func TestPutCart(t *testing.T) {
	r, store := newTestRouter(t, nil, fakeLookup{"A": {Name: "Kanap A", Price: 4.00}})

	body := `[{"productId":"A","color":"red","quantity":3}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	view := decodeView(t, w.Body.Bytes())
	if view.TotalQuantity != 3 || view.FormatTotalPrice() != "12.00" {
		t.Fatalf("unexpected totals: qty=%d price=%s", view.TotalQuantity, view.FormatTotalPrice())
	}

	persisted, _ := store.Load(context.Background())
	if len(persisted) != 1 || persisted[0].ProductID != "A" {
		t.Fatalf("cart not persisted: %+v", persisted)
	}
}

func TestCommitQuantityRoute(t *testing.T) {
	t.Run("edit to zero removes row", func(t *testing.T) {
		r, store := newTestRouter(t,
			cartdomain.Cart{
				{ProductID: "A", Color: "red", Quantity: 2},
				{ProductID: "B", Color: "blue", Quantity: 1},
			},
			fakeLookup{
				"A": {Name: "Kanap A", Price: 10.00},
				"B": {Name: "Kanap B", Price: 5.00},
			},
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/cart/items/A/quantity",
			strings.NewReader(`{"color":"red","quantity":"0"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		view := decodeView(t, w.Body.Bytes())
		if len(view.Rows) != 1 || view.Rows[0].ProductID != "B" {
			t.Fatalf("expected only B to render, got %+v", view.Rows)
		}

		persisted, _ := store.Load(context.Background())
		if _, ok := persisted.Find("A", "red"); ok {
			t.Fatalf("A/red should be gone from storage: %+v", persisted)
		}
	})

	t.Run("malformed body -> 400", func(t *testing.T) {
		r, _ := newTestRouter(t, nil, fakeLookup{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/cart/items/A/quantity", strings.NewReader("{{{"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDeleteItemRoute(t *testing.T) {
	r, store := newTestRouter(t,
		cartdomain.Cart{
			{ProductID: "A", Color: "red", Quantity: 2},
			{ProductID: "A", Color: "green", Quantity: 1},
		},
		fakeLookup{"A": {Name: "Kanap A", Price: 10.00}},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/items/A?color=red", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	view := decodeView(t, w.Body.Bytes())
	if len(view.Rows) != 1 || view.Rows[0].Color != "green" {
		t.Fatalf("expected only the green row to survive, got %+v", view.Rows)
	}

	persisted, _ := store.Load(context.Background())
	if _, ok := persisted.Find("A", "red"); ok {
		t.Fatalf("A/red should be gone from storage: %+v", persisted)
	}
}

func TestCheckoutRoute(t *testing.T) {
	checkoutForm := func(overrides map[string]string) url.Values {
		form := url.Values{}
		form.Set("firstName", "John")
		form.Set("lastName", "Doe")
		form.Set("address", "12 Main St.")
		form.Set("city", "New York")
		form.Set("email", "john@example.com")
		for k, v := range overrides {
			form.Set(k, v)
		}
		return form
	}

	post := func(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid first name -> 422, no navigation", func(t *testing.T) {
		r, _ := newTestRouter(t, nil, fakeLookup{})

		w := post(r, checkoutForm(map[string]string{"firstName": "John1"}))
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
		}
		if loc := w.Header().Get("Location"); loc != "" {
			t.Fatalf("no Location expected, got %q", loc)
		}
		if !strings.Contains(w.Body.String(), "Please enter a valid first name.") {
			t.Fatalf("missing first-name message: %s", w.Body.String())
		}
	})

	t.Run("valid -> redirect with numeric orderId", func(t *testing.T) {
		r, _ := newTestRouter(t, nil, fakeLookup{})

		w := post(r, checkoutForm(nil))
		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
		}

		loc := w.Header().Get("Location")
		const prefix = "confirmation.html?orderId="
		if !strings.HasPrefix(loc, prefix) {
			t.Fatalf("unexpected location %q", loc)
		}
		id, err := strconv.ParseInt(strings.TrimPrefix(loc, prefix), 10, 64)
		if err != nil {
			t.Fatalf("orderId not numeric in %q: %v", loc, err)
		}
		if id < 0 || id >= 1_000_000_000 {
			t.Fatalf("orderId out of range: %d", id)
		}
	})

	t.Run("cart untouched by successful checkout", func(t *testing.T) {
		seed := cartdomain.Cart{{ProductID: "A", Color: "red", Quantity: 2}}
		r, store := newTestRouter(t, seed, fakeLookup{"A": {Name: "Kanap A", Price: 10.00}})

		w := post(r, checkoutForm(nil))
		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", w.Code)
		}

		persisted, _ := store.Load(context.Background())
		if len(persisted) != 1 {
			t.Fatalf("checkout must not clear the cart, got %+v", persisted)
		}
	})
}
