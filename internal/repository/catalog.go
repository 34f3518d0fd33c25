package repository

import (
	"context"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

// Catalog defines the persistence needed to seed reference data
type Catalog interface {
	BeginTx(ctx context.Context) (CatalogTx, error)
}

// CatalogTx defines the seeding operations available in a transaction
type CatalogTx interface {
	Tx
	CountLocations(ctx context.Context) (int64, error)
	InsertLocation(ctx context.Context, location domain.Location) error
	InsertItem(ctx context.Context, item domain.Item) error
	InsertEntity(ctx context.Context, entity domain.NewEntity) (*domain.Entity, error)
	GetEntityByIdentity(ctx context.Context, externalIdentity string) (*domain.Entity, error)
	InsertInventoryRecord(ctx context.Context, record domain.InventoryRecord) (*domain.InventoryRecord, error)
}
