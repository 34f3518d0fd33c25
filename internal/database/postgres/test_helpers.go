package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/ShopBot_Go/internal/database"
	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/repository"
)

// setupTestPool starts a throwaway Postgres container, applies the embedded
// migrations and returns a pool. The test is skipped when Docker is unavailable.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test, failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(connStr, 10, 30*time.Second, time.Hour)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))
	return pool
}

// testWorld holds the ids of the fixture rows inserted by seedTestWorld
type testWorld struct {
	TavernID   int64
	BakeryID   int64
	BreadID    int64
	SwordID    int64
	BarryID    int64
	StockID    int64
	PlayerID   int64
	PlayerName string
}

// seedTestWorld inserts a start location, a bakery with one shopkeeper selling
// 16 bread at 5, and one player with 40 money standing in the tavern.
func seedTestWorld(t *testing.T, pool *pgxpool.Pool) testWorld {
	t.Helper()
	ctx := context.Background()

	tx, err := NewCatalogRepository(pool).BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	w := testWorld{TavernID: 1, BakeryID: 2, BreadID: 1, SwordID: 2, PlayerName: "Almond"}

	require.NoError(t, tx.InsertLocation(ctx, domain.Location{ID: w.TavernID, Name: "Tavern", IsStart: true}))
	require.NoError(t, tx.InsertLocation(ctx, domain.Location{ID: w.BakeryID, Name: "Bakery"}))
	require.NoError(t, tx.InsertItem(ctx, domain.Item{ID: w.BreadID, Name: "Bread", Description: "Fresh"}))
	require.NoError(t, tx.InsertItem(ctx, domain.Item{ID: w.SwordID, Name: "Short Sword", Description: "Sharp"}))

	barry, err := tx.InsertEntity(ctx, domain.NewEntity{Name: "Barry", LocationID: w.BakeryID, IsShopkeeper: true})
	require.NoError(t, err)
	w.BarryID = barry.ID

	price := decimal.NewFromInt(5)
	stock, err := tx.InsertInventoryRecord(ctx, domain.InventoryRecord{
		EntityID: barry.ID,
		ItemID:   w.BreadID,
		Quantity: 16,
		Price:    &price,
	})
	require.NoError(t, err)
	w.StockID = stock.ID

	identity := "discord:almond"
	player, err := tx.InsertEntity(ctx, domain.NewEntity{
		ExternalIdentity: &identity,
		Name:             w.PlayerName,
		LocationID:       w.TavernID,
		Money:            decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	w.PlayerID = player.ID

	require.NoError(t, tx.Commit(ctx))
	return w
}
