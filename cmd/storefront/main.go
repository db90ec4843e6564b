package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abusaud/storefront/internal/api"
	"github.com/abusaud/storefront/internal/catalog"
	"github.com/abusaud/storefront/internal/config"
	"github.com/abusaud/storefront/internal/order"
	"github.com/abusaud/storefront/internal/repository"
	"github.com/abusaud/storefront/internal/repository/memory"
	"github.com/abusaud/storefront/internal/service"
	"github.com/abusaud/storefront/internal/whatsapp"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	linker, err := whatsapp.NewLinker(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Number, cfg.WhatsApp.CountryCode)
	if err != nil {
		logger.Fatal("Invalid WhatsApp configuration", zap.Error(err))
	}

	cat := catalog.Default()
	repos := memory.NewRepositories(cat, cfg.Cart.TTL, logger)
	formatter := order.NewFormatter(cfg.Store.Name, cfg.Store.CurrencySuffix, linker)
	svc := service.NewStorefrontService(cat, repos, formatter, cfg.Cart.ClearOnCheckout, logger)

	router := api.NewRouter(cfg, svc, logger)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepCarts(ctx, repos, cfg.Cart.SweepInterval, logger)

	go func() {
		logger.Info("Starting storefront",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("whatsapp_number", linker.Number()),
			zap.Int("products", cat.Len()),
			zap.Bool("clear_cart_on_checkout", cfg.Cart.ClearOnCheckout),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

// sweepCarts drops idle cart sessions until ctx is done
func sweepCarts(ctx context.Context, repos *repository.Repositories, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := repos.Cart.Sweep(ctx, now); removed > 0 {
				logger.Info("Expired idle carts", zap.Int("removed", removed))
			}
		}
	}
}
