package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/logger"
	"github.com/osse101/ShopBot_Go/internal/repository"
)

// SeedResult reports what Seed wrote. Skipped means the world was already
// populated.
type SeedResult struct {
	Skipped     bool
	Locations   int
	Items       int
	Shopkeepers int
	Stock       int
	DevPlayers  int
}

// Seed writes the catalog in one transaction when the location table is
// empty. When withDevPlayers is set, every dev player whose identity is not
// registered yet is written too, on a fresh or an existing world.
func Seed(ctx context.Context, repo repository.Catalog, c *Catalog, withDevPlayers bool) (*SeedResult, error) {
	log := logger.FromContext(ctx)

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	count, err := tx.CountLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountLocationsFailed, err)
	}

	result := &SeedResult{}
	if count > 0 {
		log.Info(LogMsgCatalogAlreadySeeded, "locations", count)
		result.Skipped = true
	} else if err := seedWorld(ctx, tx, c, result); err != nil {
		return nil, err
	}

	if withDevPlayers {
		if err := seedDevPlayers(ctx, tx, c, result); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgCatalogSeeded,
		"locations", result.Locations,
		"items", result.Items,
		"shopkeepers", result.Shopkeepers,
		"stock", result.Stock,
		"dev_players", result.DevPlayers)
	return result, nil
}

func seedWorld(ctx context.Context, tx repository.CatalogTx, c *Catalog, result *SeedResult) error {
	for _, loc := range c.Locations {
		if err := tx.InsertLocation(ctx, domain.Location{ID: loc.ID, Name: loc.Name, IsStart: loc.IsStart}); err != nil {
			return fmt.Errorf(ErrMsgInsertLocationFailed, loc.ID, err)
		}
		result.Locations++
	}

	for _, it := range c.Items {
		if err := tx.InsertItem(ctx, domain.Item{ID: it.ID, Name: it.Name, Description: it.Description}); err != nil {
			return fmt.Errorf(ErrMsgInsertItemFailed, it.ID, err)
		}
		result.Items++
	}

	// Stock record ids follow catalog order, so the first listing is /buy_1
	for _, sk := range c.Shopkeepers {
		keeper, err := tx.InsertEntity(ctx, domain.NewEntity{
			Name:         sk.Name,
			LocationID:   sk.LocationID,
			IsShopkeeper: true,
		})
		if err != nil {
			return fmt.Errorf(ErrMsgInsertShopkeeperFailed, sk.Name, err)
		}
		result.Shopkeepers++

		for _, st := range sk.Stock {
			price := st.Price
			if _, err := tx.InsertInventoryRecord(ctx, domain.InventoryRecord{
				EntityID: keeper.ID,
				ItemID:   st.ItemID,
				Quantity: st.Quantity,
				Price:    &price,
			}); err != nil {
				return fmt.Errorf(ErrMsgInsertStockFailed, sk.Name, err)
			}
			result.Stock++
		}
	}
	return nil
}

func seedDevPlayers(ctx context.Context, tx repository.CatalogTx, c *Catalog, result *SeedResult) error {
	log := logger.FromContext(ctx)

	for _, p := range c.DevPlayers {
		identity := p.ExternalIdentity
		_, err := tx.GetEntityByIdentity(ctx, identity)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrEntityNotFound) {
			return fmt.Errorf(ErrMsgLookupDevPlayerFailed, p.Name, err)
		}

		if _, err := tx.InsertEntity(ctx, domain.NewEntity{
			ExternalIdentity: &identity,
			Name:             p.Name,
			LocationID:       p.LocationID,
			Money:            p.Money,
		}); err != nil {
			return fmt.Errorf(ErrMsgInsertDevPlayerFailed, p.Name, err)
		}
		result.DevPlayers++
		log.Info(LogMsgDevPlayerSeeded, "identity", identity)
	}
	return nil
}
