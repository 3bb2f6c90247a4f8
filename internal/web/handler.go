package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	"github.com/dwikikusuma/storefront-cart/internal/metrics"
	viewapp "github.com/dwikikusuma/storefront-cart/internal/view/app"
)

// Handler exposes the cart page's operations as HTTP routes. Every edit
// goes through the view service so a response always reflects persisted
// state, never a local-only update.
type Handler struct {
	views    *viewapp.Service
	carts    *cartapp.Store
	checkout *checkoutapp.Service
	log      *slog.Logger
}

func NewHandler(views *viewapp.Service, carts *cartapp.Store, checkout *checkoutapp.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{views: views, carts: carts, checkout: checkout, log: log}
}

func (h *Handler) Register(r *gin.Engine, serviceName string) {
	r.Use(RequestID(), RequestLogger(h.log), metrics.PrometheusMiddleware(serviceName))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/cart", h.getCart)
	r.PUT("/cart", h.putCart)
	r.POST("/cart/items/:productId/quantity", h.commitQuantity)
	r.DELETE("/cart/items/:productId", h.deleteItem)
	r.POST("/checkout", h.submitCheckout)
}

// ready guards against a partially wired handler: a missing dependency
// aborts the one call with a log line instead of panicking the process.
func (h *Handler) ready(c *gin.Context) bool {
	if h.views == nil || h.carts == nil || h.checkout == nil {
		h.log.Error("handler dependencies missing, aborting request",
			slog.String("path", c.Request.URL.Path))
		c.Status(http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (h *Handler) getCart(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	view, err := h.views.Refresh(c.Request.Context())
	if err != nil {
		h.log.Error("refresh failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// putCart replaces the whole slot. This is how carts assembled elsewhere
// (the product page is out of scope here) reach this service.
func (h *Handler) putCart(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var items []cartdomain.LineItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart payload: " + err.Error()})
		return
	}

	if err := h.carts.Save(c.Request.Context(), items); err != nil {
		h.log.Error("cart save failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
		return
	}

	view, err := h.views.Refresh(c.Request.Context())
	if err != nil {
		h.log.Error("refresh failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
		return
	}
	c.JSON(http.StatusOK, view)
}

type quantityEdit struct {
	Color    string `json:"color"`
	Quantity string `json:"quantity"`
}

// commitQuantity is the quantity-edit commit: the body carries the raw
// input value, parsing rules live in the view service.
func (h *Handler) commitQuantity(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var edit quantityEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid edit payload: " + err.Error()})
		return
	}

	view, err := h.views.CommitQuantity(c.Request.Context(), c.Param("productId"), edit.Color, edit.Quantity)
	if err != nil {
		h.log.Error("quantity commit failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) deleteItem(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	view, err := h.views.Delete(c.Request.Context(), c.Param("productId"), c.Query("color"))
	if err != nil {
		h.log.Error("delete failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// submitCheckout validates the form fields. Failures come back as per-field
// messages with submission blocked; success redirects to the confirmation
// page carrying the order id. The cart is not cleared here.
func (h *Handler) submitCheckout(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form: " + err.Error()})
		return
	}

	fields := make(map[string]string, len(c.Request.PostForm))
	for name := range c.Request.PostForm {
		fields[name] = c.Request.PostForm.Get(name)
	}

	draft, conf, errs := h.checkout.Submit(fields)
	if len(errs) > 0 {
		metrics.CheckoutsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
	h.log.Info("order submitted",
		slog.Int64("order_id", conf.OrderID),
		slog.Int("fields", len(draft)),
	)
	c.Redirect(http.StatusSeeOther, conf.Location)
}
