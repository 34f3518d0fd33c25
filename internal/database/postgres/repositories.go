package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ShopBot_Go/internal/repository"
)

// CatalogRepository seeds reference data
type CatalogRepository struct {
	store
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{store: newStore(db)}
}

// BeginTx starts a seeding transaction
func (r *CatalogRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	uow, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return uow, nil
}

// DirectoryRepository implements the entity directory persistence
type DirectoryRepository struct {
	store
}

// NewDirectoryRepository creates a new DirectoryRepository
func NewDirectoryRepository(db *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{store: newStore(db)}
}

// BeginTx starts a directory transaction
func (r *DirectoryRepository) BeginTx(ctx context.Context) (repository.DirectoryTx, error) {
	uow, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return uow, nil
}

// InventoryRepository implements the inventory ledger persistence
type InventoryRepository struct {
	store
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{store: newStore(db)}
}

// BeginTx starts a ledger transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	uow, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return uow, nil
}

// EconomyRepository implements the purchase persistence
type EconomyRepository struct {
	store
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{store: newStore(db)}
}

// BeginTx starts a purchase transaction
func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	uow, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return uow, nil
}

// WorldRepository implements navigation and presence persistence
type WorldRepository struct {
	store
}

// NewWorldRepository creates a new WorldRepository
func NewWorldRepository(db *pgxpool.Pool) *WorldRepository {
	return &WorldRepository{store: newStore(db)}
}

// BeginTx starts a world transaction
func (r *WorldRepository) BeginTx(ctx context.Context) (repository.WorldTx, error) {
	uow, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return uow, nil
}
