// productapi is a seeded stand-in for the external product service, so the
// cart can be exercised locally end to end. Same wire contract as the real
// thing: GET /api/products and GET /api/products/{id}.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"

	"github.com/dwikikusuma/storefront-cart/pkg/logger"
	"github.com/dwikikusuma/storefront-cart/pkg/shutdown"
)

type product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
}

var catalog = []product{
	{
		ID:          "107fb5b75607497b96722bda5b504926",
		Name:        "Kanap Sinopé",
		Price:       1849,
		ImageURL:    "/images/kanap01.jpeg",
		Description: "Three-seat sofa in velvet.",
		Colors:      []string{"Blue", "White", "Black"},
	},
	{
		ID:          "415b7cacb65d43b2b5c1ff70f3393ad1",
		Name:        "Kanap Cyrus",
		Price:       4499,
		ImageURL:    "/images/kanap02.jpeg",
		Description: "Corner sofa with chaise longue.",
		Colors:      []string{"Black/Yellow", "Black/Red"},
	},
	{
		ID:          "055743915a544fde83cfdfc904935ee7",
		Name:        "Kanap Calycé",
		Price:       3199,
		ImageURL:    "/images/kanap03.jpeg",
		Description: "Two-seat sofa in leather.",
		Colors:      []string{"Pink", "Grey", "Purple"},
	},
	{
		ID:          "a557292fe5814ea2b15c6ef4bd73e481",
		Name:        "Kanap Autonoé",
		Price:       1499,
		ImageURL:    "/images/kanap04.jpeg",
		Description: "Compact loveseat for small rooms.",
		Colors:      []string{"Red", "Silver"},
	},
}

type apiConfig struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort int    `envconfig:"HTTP_PORT" default:"3000"`
}

func main() {
	var cfg apiConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "productapi",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog)
	})
	router.GET("/api/products/:productId", func(c *gin.Context) {
		id := c.Param("productId")
		for _, p := range catalog {
			if p.ID == id {
				c.JSON(http.StatusOK, p)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("product api starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
