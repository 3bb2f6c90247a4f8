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

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/memory"
	cartredis "github.com/dwikikusuma/storefront-cart/internal/cart/infra/redis"
	"github.com/dwikikusuma/storefront-cart/internal/catalog/infra/httpapi"
	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	viewapp "github.com/dwikikusuma/storefront-cart/internal/view/app"
	"github.com/dwikikusuma/storefront-cart/internal/view/infra/adapter"
	"github.com/dwikikusuma/storefront-cart/internal/web"
	"github.com/dwikikusuma/storefront-cart/pkg/config"
	"github.com/dwikikusuma/storefront-cart/pkg/logger"
	"github.com/dwikikusuma/storefront-cart/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service:   "cartweb",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	kv := mustKV(cfg, log)

	carts := cartapp.NewStore(kv, cfg.CartSlotKey)
	lookup := httpapi.NewClient(cfg.ProductAPIBaseURL)
	views := viewapp.NewService(
		adapter.NewCartStoreAdapter(carts),
		adapter.NewProductReaderAdapter(lookup),
		log,
		cfg.FetchConcurrency,
	)
	checkout := checkoutapp.NewService()

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	web.NewHandler(views, carts, checkout, log).Register(router, "cartweb")

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
		log.Info("http server starting",
			slog.String("addr", addr),
			slog.String("product_api", cfg.ProductAPIBaseURL),
		)
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

func mustKV(cfg config.Config, log *slog.Logger) cartapp.KV {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not set, cart lives in process memory")
		return memory.New()
	}

	kv, err := cartredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connect failed", slog.Any("err", err))
		os.Exit(1)
	}
	return kv
}
