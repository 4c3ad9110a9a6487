package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/captionkit-backend/internal/adapter/provider/mailinglist"
	"github.com/heartmarshall/captionkit-backend/internal/config"
	"github.com/heartmarshall/captionkit-backend/internal/service/generator"
	"github.com/heartmarshall/captionkit-backend/internal/service/saved"
	"github.com/heartmarshall/captionkit-backend/internal/service/subscription"
	"github.com/heartmarshall/captionkit-backend/internal/service/trending"
	"github.com/heartmarshall/captionkit-backend/internal/transport/middleware"
	"github.com/heartmarshall/captionkit-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// storage slot, restores saved captions, and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage_driver", cfg.Storage.Driver),
	)

	storage, err := OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close()

	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rl.Stop()

	handler := NewHandler(ctx, cfg, logger, storage.Slot, rl)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHandler builds the services over slot and returns the fully wrapped
// HTTP handler. Saved captions are loaded from slot before it returns, and
// retention pruning runs in the background until ctx is cancelled.
func NewHandler(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	slot Slot,
	rl *middleware.RateLimiter,
) http.Handler {
	store := saved.NewService(logger, slot, cfg.Storage.SlotKey)
	store.Load(ctx)
	startRetention(ctx, cfg.Storage, store)

	gen := generator.NewService(logger, generator.NewEngine(), cfg.Generator)
	subs := subscription.NewService(logger, mailinglist.NewStub(logger), cfg.Subscription)

	mux := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), rest.HealthCheck{
			Name:   "storage",
			Detail: cfg.Storage.Driver,
			Pinger: slot,
		}),
		Captions:      rest.NewCaptionHandler(gen, logger),
		Hashtags:      rest.NewHashtagHandler(trending.NewService(logger), logger),
		Saved:         rest.NewSavedHandler(store, logger),
		Subscriptions: rest.NewSubscriptionHandler(subs, logger),
	}, rest.Limits{
		Generate:  rl.Limit("generate", cfg.RateLimit.GeneratePerMinute),
		Subscribe: rl.Limit("subscribe", cfg.RateLimit.SubscribePerMinute),
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger, "/live", "/ready"),
		middleware.CORS(cfg.CORS),
	)(mux)
}
