package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"goal-quantifier/config"
	"goal-quantifier/domain"
	httpLayer "goal-quantifier/http"
	"goal-quantifier/repository"
	"goal-quantifier/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	quantifier, err := newQuantifier(cfg, logger)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	stateService := service.NewStateService(store, quantifier, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.GetRefill())
	defer rateLimiter.Stop()

	agent := domain.AgentDescriptor{
		Name:        cfg.Agent.Name,
		Description: cfg.Agent.Description,
		Model:       cfg.Agent.Model,
		OutputKey:   cfg.Agent.OutputKey,
		Instruction: cfg.Agent.Instruction,
	}

	router := httpLayer.NewRouter(httpLayer.RouterDeps{
		FutureValue:    httpLayer.NewFutureValueHandler(quantifier, logger),
		Quantification: httpLayer.NewQuantificationHandler(quantifier, logger),
		State:          httpLayer.NewStateHandler(stateService, logger),
		Tools:          httpLayer.NewToolHandler(quantifier, agent, logger),
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Timeout:        cfg.Server.GetWriteTimeout(),
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.GetReadTimeout(),
		WriteTimeout: cfg.Server.GetWriteTimeout(),
		IdleTimeout:  cfg.Server.GetIdleTimeout(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("API listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("store", cfg.Store.Kind),
			zap.Float64("inflation_rate", quantifier.InflationRate()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GetShutdownTimeout())
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server exited")
	return nil
}

func openStore(ctx context.Context, sc config.StoreConfig) (repository.DocumentStore, func(), error) {
	switch sc.Kind {
	case config.StoreRedis:
		store := repository.NewRedisDocumentStore(repository.RedisOptions{
			Addr:      sc.RedisAddr,
			Password:  sc.Password,
			DB:        sc.DB,
			KeyPrefix: sc.KeyPrefix,
			TTL:       sc.GetTTL(),
		})
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("connecting to redis at %s: %w", sc.RedisAddr, err)
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing redis", zap.Error(err))
			}
		}, nil
	default:
		return repository.NewDocumentStoreMemory(), func() {}, nil
	}
}
