package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

// Economy defines the persistence behind purchases
type Economy interface {
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx defines the purchase operations available in a transaction.
// The ForUpdate lookups take row locks held until commit or rollback.
type EconomyTx interface {
	InventoryTx
	GetInventoryRecordForUpdate(ctx context.Context, recordID int64) (*domain.InventoryRecord, error)
	GetEntityForUpdate(ctx context.Context, entityID int64) (*domain.Entity, error)
	UpdateEntityMoney(ctx context.Context, entityID int64, money decimal.Decimal) error
}
