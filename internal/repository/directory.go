package repository

import (
	"context"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

// Directory defines the persistence behind the entity directory
type Directory interface {
	BeginTx(ctx context.Context) (DirectoryTx, error)
}

// DirectoryTx defines the entity operations available in a transaction.
// Lookups return domain.ErrEntityNotFound when nothing matches.
type DirectoryTx interface {
	Tx
	ListStartLocations(ctx context.Context) ([]domain.Location, error)
	InsertEntity(ctx context.Context, entity domain.NewEntity) (*domain.Entity, error)
	GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error)
	GetEntityByIdentity(ctx context.Context, externalIdentity string) (*domain.Entity, error)
	UpdateEntityName(ctx context.Context, entityID int64, name string) error
}
