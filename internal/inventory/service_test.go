package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/testing/memstore"
)

type fixture struct {
	store  *memstore.Store
	svc    Service
	player domain.Entity
	barry  domain.Entity
	bread  domain.Item
	sword  domain.Item
}

func setup() fixture {
	store := memstore.New()
	store.AddLocation(1, "Tavern", true)
	store.AddLocation(2, "Bakery", false)
	bread := store.AddItem(1, "Bread", "Fresh")
	sword := store.AddItem(2, "Short Sword", "Sharp")
	barry := store.AddShopkeeper("Barry", 2)
	player := store.AddPlayer("discord:1", "Almond", 1, 40)
	return fixture{
		store:  store,
		svc:    NewService(store.Inventory()),
		player: player,
		barry:  barry,
		bread:  bread,
		sword:  sword,
	}
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("zero delta is a no-op", func(t *testing.T) {
		f := setup()

		require.NoError(t, f.svc.Transfer(ctx, f.player.ID, f.bread.ID, 0))

		holdings, err := f.svc.ListHoldings(ctx, f.player.ID)
		require.NoError(t, err)
		assert.Empty(t, holdings)
	})

	t.Run("positive delta creates a record", func(t *testing.T) {
		f := setup()

		require.NoError(t, f.svc.Transfer(ctx, f.player.ID, f.bread.ID, 3))

		assert.Equal(t, 3, f.store.HoldingQuantity(f.player.ID, f.bread.ID))
	})

	t.Run("positive delta adds to existing record", func(t *testing.T) {
		f := setup()
		f.store.AddHolding(f.player.ID, f.bread.ID, 2)

		require.NoError(t, f.svc.Transfer(ctx, f.player.ID, f.bread.ID, 3))

		assert.Equal(t, 5, f.store.HoldingQuantity(f.player.ID, f.bread.ID))
	})

	t.Run("negative delta without record", func(t *testing.T) {
		f := setup()

		err := f.svc.Transfer(ctx, f.player.ID, f.bread.ID, -1)

		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("negative delta past zero writes nothing", func(t *testing.T) {
		f := setup()
		f.store.AddHolding(f.player.ID, f.bread.ID, 2)

		err := f.svc.Transfer(ctx, f.player.ID, f.bread.ID, -3)

		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.Equal(t, 2, f.store.HoldingQuantity(f.player.ID, f.bread.ID))
	})

	t.Run("negative delta to exactly zero", func(t *testing.T) {
		f := setup()
		f.store.AddHolding(f.player.ID, f.bread.ID, 2)

		require.NoError(t, f.svc.Transfer(ctx, f.player.ID, f.bread.ID, -2))

		assert.Equal(t, 0, f.store.HoldingQuantity(f.player.ID, f.bread.ID))
		holdings, err := f.svc.ListHoldings(ctx, f.player.ID)
		require.NoError(t, err)
		assert.Empty(t, holdings, "zero-quantity records are not holdings")
	})

	t.Run("unknown item", func(t *testing.T) {
		f := setup()

		err := f.svc.Transfer(ctx, f.player.ID, 99, 1)

		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown entity", func(t *testing.T) {
		f := setup()

		err := f.svc.Transfer(ctx, 99, f.bread.ID, 1)

		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})

	t.Run("storage failure is rolled back", func(t *testing.T) {
		f := setup()
		f.store.AddHolding(f.player.ID, f.bread.ID, 2)
		f.store.FailOn("Commit", errors.New("disk full"))

		err := f.svc.Transfer(ctx, f.player.ID, f.bread.ID, 5)

		require.Error(t, err)
		f.store.FailOn("Commit", nil)
		assert.Equal(t, 2, f.store.HoldingQuantity(f.player.ID, f.bread.ID))
	})
}

func TestListHoldings(t *testing.T) {
	ctx := context.Background()

	t.Run("insertion order and idempotent", func(t *testing.T) {
		f := setup()
		f.store.AddHolding(f.player.ID, f.sword.ID, 1)
		f.store.AddHolding(f.player.ID, f.bread.ID, 4)

		first, err := f.svc.ListHoldings(ctx, f.player.ID)
		require.NoError(t, err)
		second, err := f.svc.ListHoldings(ctx, f.player.ID)
		require.NoError(t, err)

		require.Len(t, first, 2)
		assert.Equal(t, "Short Sword", first[0].Item.Name)
		assert.Equal(t, "Bread", first[1].Item.Name)
		assert.Equal(t, 4, first[1].Quantity)
		assert.Equal(t, first, second)
	})

	t.Run("unknown entity", func(t *testing.T) {
		f := setup()

		_, err := f.svc.ListHoldings(ctx, 99)

		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})
}

func TestListForSale(t *testing.T) {
	ctx := context.Background()

	t.Run("includes zero-quantity stock", func(t *testing.T) {
		f := setup()
		f.store.AddStock(f.barry.ID, f.bread.ID, 16, 5)
		f.store.AddStock(f.barry.ID, f.sword.ID, 0, 50)

		listings, err := f.svc.ListForSale(ctx, 2)

		require.NoError(t, err)
		require.Len(t, listings, 2)
		assert.Equal(t, "Bread", listings[0].Item.Name)
		assert.Equal(t, 16, listings[0].Record.Quantity)
		assert.Equal(t, "5", listings[0].Record.Price.String())
		assert.Equal(t, 0, listings[1].Record.Quantity)
	})

	t.Run("lowest shopkeeper id wins", func(t *testing.T) {
		f := setup()
		f.store.AddStock(f.barry.ID, f.bread.ID, 16, 5)
		rival := f.store.AddShopkeeper("Rival", 2)
		f.store.AddStock(rival.ID, f.sword.ID, 3, 45)

		listings, err := f.svc.ListForSale(ctx, 2)

		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, f.barry.ID, listings[0].Record.EntityID)
	})

	t.Run("unpriced rows are hidden", func(t *testing.T) {
		f := setup()
		f.store.AddHolding(f.barry.ID, f.bread.ID, 5)
		f.store.AddStock(f.barry.ID, f.sword.ID, 1, 50)

		listings, err := f.svc.ListForSale(ctx, 2)

		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "Short Sword", listings[0].Item.Name)
		assert.NotNil(t, listings[0].Record.Price)
	})

	t.Run("only unpriced rows means empty", func(t *testing.T) {
		f := setup()
		f.store.AddHolding(f.barry.ID, f.bread.ID, 5)

		listings, err := f.svc.ListForSale(ctx, 2)

		require.NoError(t, err)
		assert.Empty(t, listings)
	})

	t.Run("no shopkeeper means empty", func(t *testing.T) {
		f := setup()

		listings, err := f.svc.ListForSale(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, listings)
	})

	t.Run("unknown location", func(t *testing.T) {
		f := setup()

		_, err := f.svc.ListForSale(ctx, 99)

		assert.ErrorIs(t, err, domain.ErrLocationNotFound)
	})
}
