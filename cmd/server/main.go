package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"packport/internal/assistant"
	assistanthandler "packport/internal/assistant/handler"
	assistantmetrics "packport/internal/assistant/metrics"
	"packport/internal/auth"
	authhandler "packport/internal/auth/handler"
	"packport/internal/auth/token"
	cataloghandler "packport/internal/catalog/handler"
	"packport/internal/catalog/store"
	"packport/internal/community"
	communityhandler "packport/internal/community/handler"
	"packport/internal/compare"
	"packport/internal/platform/config"
	"packport/internal/platform/httpserver"
	"packport/internal/platform/logger"
	platformmetrics "packport/internal/platform/metrics"
	"packport/internal/platform/middleware"
	"packport/internal/rewards"
	rewardshandler "packport/internal/rewards/handler"
	rewardsstore "packport/internal/rewards/store"
	"packport/internal/selection"
	selectionhandler "packport/internal/selection/handler"
	selectionmetrics "packport/internal/selection/metrics"
)

// main wires dependencies and owns the server lifecycle. Business logic
// lives in the internal services.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Debug)

	catalog, err := seedCatalog(cfg)
	if err != nil {
		log.Error("seeding catalog failed", "error", err)
		os.Exit(1)
	}

	tokens := token.NewService(cfg.JWTSigningKey, "packport")
	authService, err := auth.NewService(tokens, cfg.DemoEmail, cfg.DemoPassword)
	if err != nil {
		log.Error("building auth service failed", "error", err)
		os.Exit(1)
	}
	validator := auth.SessionValidator{Tokens: tokens}

	session := selection.NewSession()
	builder := compare.NewBuilder(nil)
	assistantService := assistant.NewService(nil, "", cfg.AssistantDelay, assistantmetrics.New())
	rewardsService := rewards.NewService(rewardsstore.NewInMemory(), nil)
	communityService := community.NewService(catalog)

	selectionHandler := selectionhandler.New(session, catalog, builder, log, selectionmetrics.New())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(platformmetrics.New().Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Open surfaces: browsing, scanning and the assistant work for guests.
	cataloghandler.New(catalog, nil, log).Register(r)
	selectionHandler.Register(r)
	authhandler.New(authService, log).Register(r)
	assistanthandler.New(assistantService, assistant.DefaultSuggestions(), log).Register(r)

	// Guest-locked surfaces.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(validator, log))
		selectionHandler.RegisterCompare(r)
		rewardshandler.New(rewardsService, log).Register(r)
		communityhandler.New(communityService, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting packport server", "addr", cfg.Addr, "catalog_products", catalog.Len(ctx))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func seedCatalog(cfg config.Server) (*store.InMemory, error) {
	if cfg.CatalogPath != "" {
		return store.SeedFromFile(cfg.CatalogPath)
	}
	return store.SeedEmbedded()
}
