package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ShopBot_Go/internal/bootstrap"
	"github.com/osse101/ShopBot_Go/internal/chat"
	"github.com/osse101/ShopBot_Go/internal/config"
	"github.com/osse101/ShopBot_Go/internal/database"
	"github.com/osse101/ShopBot_Go/internal/directory"
	"github.com/osse101/ShopBot_Go/internal/economy"
	"github.com/osse101/ShopBot_Go/internal/inventory"
	"github.com/osse101/ShopBot_Go/internal/server"
	"github.com/osse101/ShopBot_Go/internal/world"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shopbot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	if _, err := bootstrap.SeedCatalog(ctx, cfg, repos.Catalog); err != nil {
		return err
	}

	events, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}

	chatTransport, err := bootstrap.InitializeChatTransport(cfg, events.Bus)
	if err != nil {
		events.Hub.Stop()
		return err
	}

	svc := server.Services{
		Directory: directory.NewService(repos.Directory, events.Bus),
		Inventory: inventory.NewService(repos.Inventory),
		Economy:   economy.NewService(repos.Economy, events.Bus),
		World:     world.NewService(repos.World, events.Bus),
		Chat:      chat.NewService(repos.World, chatTransport.Deliverer),
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, dbPool, svc, events.Hub)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Hub:    events.Hub,
		Chat:   chatTransport,
	})

	return nil
}
