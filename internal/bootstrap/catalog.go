package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ShopBot_Go/internal/catalog"
	"github.com/osse101/ShopBot_Go/internal/config"
	"github.com/osse101/ShopBot_Go/internal/repository"
)

// SeedCatalog loads the world catalog (embedded, or cfg.CatalogPath when
// set), validates it and writes it once into an empty database.
func SeedCatalog(ctx context.Context, cfg *config.Config, repo repository.Catalog) (*catalog.SeedResult, error) {
	slog.Info(LogMsgSeedingCatalog)

	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	var c *catalog.Catalog
	if cfg.CatalogPath != "" {
		slog.Info(LogMsgCatalogFromFile, "path", cfg.CatalogPath)
		c, err = loader.Load(cfg.CatalogPath)
	} else {
		c, err = loader.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	result, err := catalog.Seed(ctx, repo, c, cfg.SeedDevData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
	}

	if result.Skipped {
		slog.Info(LogMsgCatalogSkipped, "dev_players", result.DevPlayers)
	} else {
		slog.Info(LogMsgCatalogSeeded,
			"locations", result.Locations,
			"items", result.Items,
			"shopkeepers", result.Shopkeepers,
			"stock", result.Stock,
			"dev_players", result.DevPlayers)
	}

	return result, nil
}
