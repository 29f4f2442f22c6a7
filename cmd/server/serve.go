package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog/srd"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/config"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/handlers/rest"
	characterorch "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/choices"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/progression"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/resources"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/charlock"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/clock"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/idgen"
	redisclient "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/redis"
	characterrepo "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/repositories/character"
)

var httpPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON API server",
	Long:  `Start the HTTP server with the full rules engine wired to Redis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP port (overrides HTTP_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	port := cfg.HTTP.Port
	if httpPort != 0 {
		port = httpPort
	}

	client, err := redisclient.NewClient(cfg.Redis.Addr, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			slog.Error("failed to close redis client", "error", closeErr)
		}
	}()

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	store := srd.New()
	locker := charlock.New()

	characterService, err := characterorch.NewOrchestrator(&characterorch.Config{
		CharacterRepo: characterRepo,
		Catalog:       store,
		Locker:        locker,
		IDGenerator:   idgen.NewPrefixed("char"),
	})
	if err != nil {
		return fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	choiceService, err := choices.NewOrchestrator(&choices.Config{
		CharacterRepo: characterRepo,
		Catalog:       store,
		Registry:      choices.DefaultRegistry(),
		Locker:        locker,
		Clock:         clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create choices orchestrator: %w", err)
	}

	progressionService, err := progression.NewOrchestrator(&progression.Config{
		CharacterRepo: characterRepo,
		Catalog:       store,
		Locker:        locker,
	})
	if err != nil {
		return fmt.Errorf("failed to create progression orchestrator: %w", err)
	}

	resourceService, err := resources.NewOrchestrator(&resources.Config{
		CharacterRepo: characterRepo,
		Catalog:       store,
		Locker:        locker,
	})
	if err != nil {
		return fmt.Errorf("failed to create resources orchestrator: %w", err)
	}

	handler, err := rest.New(&rest.Config{
		CharacterService:   characterService,
		ChoiceService:      choiceService,
		ProgressionService: progressionService,
		ResourceService:    resourceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		slog.Info("HTTP server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		slog.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
