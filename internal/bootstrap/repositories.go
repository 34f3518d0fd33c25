package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ShopBot_Go/internal/database/postgres"
	"github.com/osse101/ShopBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Catalog   repository.Catalog
	Directory repository.Directory
	Inventory repository.Inventory
	Economy   repository.Economy
	World     repository.World
}

// InitializeRepositories creates the postgres repositories over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Catalog:   postgres.NewCatalogRepository(dbPool),
		Directory: postgres.NewDirectoryRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Economy:   postgres.NewEconomyRepository(dbPool),
		World:     postgres.NewWorldRepository(dbPool),
	}
}
