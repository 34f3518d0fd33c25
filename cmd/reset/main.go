// Command reset prepares a database for the game server: it (re)creates the
// database, applies migrations and seeds the world catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/ShopBot_Go/internal/bootstrap"
	"github.com/osse101/ShopBot_Go/internal/config"
	"github.com/osse101/ShopBot_Go/internal/database"
)

func main() {
	drop := flag.Bool("drop", false, "drop the database before recreating it")
	dev := flag.Bool("dev", false, "seed the dev harness player")
	flag.Parse()

	if err := run(*drop, *dev); err != nil {
		slog.Error("Database reset failed", "error", err)
		os.Exit(1)
	}
}

func run(drop, dev bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	bootstrap.InitLogger(cfg, os.Stdout)
	cfg.SeedDevData = cfg.SeedDevData || dev

	ctx := context.Background()

	if err := ensureDatabase(ctx, cfg, drop); err != nil {
		return err
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.DBName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(pool)
	result, err := bootstrap.SeedCatalog(ctx, cfg, repos.Catalog)
	if err != nil {
		return err
	}

	slog.Info("Database ready",
		"database", cfg.DBName,
		"seeded", !result.Skipped,
		"locations", result.Locations,
		"dev_players", result.DevPlayers)
	return nil
}

// ensureDatabase connects to the server's maintenance database and creates
// the target database, dropping it first when asked.
func ensureDatabase(ctx context.Context, cfg *config.Config, drop bool) error {
	adminCfg := *cfg
	adminCfg.DBName = "postgres"

	conn, err := pgx.Connect(ctx, adminCfg.GetDBConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	name := pgx.Identifier{cfg.DBName}.Sanitize()

	if drop {
		slog.Info("Terminating existing connections", "database", cfg.DBName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
			slog.Warn("Failed to terminate connections", "error", err)
		}

		slog.Info("Dropping database", "database", cfg.DBName)
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name); err != nil {
			return fmt.Errorf("failed to drop database: %w", err)
		}
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		slog.Info("Database already exists", "database", cfg.DBName)
		return nil
	}

	slog.Info("Creating database", "database", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+name); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}
