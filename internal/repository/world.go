package repository

import (
	"context"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

// World defines the persistence behind navigation, status and chat
type World interface {
	BeginTx(ctx context.Context) (WorldTx, error)
}

// WorldTx defines the navigation operations available in a transaction
type WorldTx interface {
	InventoryTx
	ListLocations(ctx context.Context) ([]domain.Location, error)
	UpdateEntityLocation(ctx context.Context, entityID, locationID int64) error

	// ListPlayersAtLocation returns non-shopkeeper entities ordered by id
	ListPlayersAtLocation(ctx context.Context, locationID int64) ([]domain.Entity, error)
}
