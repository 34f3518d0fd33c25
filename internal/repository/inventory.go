package repository

import (
	"context"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

// Inventory defines the persistence behind the inventory ledger
type Inventory interface {
	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx defines the ledger operations available in a transaction
type InventoryTx interface {
	Tx
	GetItem(ctx context.Context, itemID int64) (*domain.Item, error)
	GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error)
	GetLocation(ctx context.Context, locationID int64) (*domain.Location, error)

	// ListHoldings returns records with quantity > 0 in insertion order
	ListHoldings(ctx context.Context, entityID int64) ([]domain.Holding, error)

	// GetHoldingForUpdate locks the (entity, item) record. Returns
	// domain.ErrInventoryRecordNotFound when the entity holds no such row.
	GetHoldingForUpdate(ctx context.Context, entityID, itemID int64) (*domain.InventoryRecord, error)

	// CreditHolding adds quantity to the (entity, item) record, creating it if needed
	CreditHolding(ctx context.Context, entityID, itemID int64, quantity int) (*domain.InventoryRecord, error)

	UpdateInventoryQuantity(ctx context.Context, recordID int64, quantity int) error

	// ListForSale returns the stock of the lowest-id shopkeeper at the location
	ListForSale(ctx context.Context, locationID int64) ([]domain.ForSaleListing, error)
}
