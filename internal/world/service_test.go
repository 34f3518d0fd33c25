package world

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/event"
	"github.com/osse101/ShopBot_Go/internal/testing/memstore"
)

func newWorld() *memstore.Store {
	store := memstore.New()
	store.AddLocation(1, "Tavern", true)
	store.AddLocation(2, "Baker Barry", false)
	store.AddLocation(3, "Old Ironworks", false)
	store.AddItem(1, "Bread", "Fresh")
	barry := store.AddShopkeeper("Barry", 2)
	store.AddStock(barry.ID, 1, 16, 5)
	return store
}

func TestMove(t *testing.T) {
	ctx := context.Background()

	t.Run("move then status", func(t *testing.T) {
		// ARRANGE
		store := newWorld()
		player := store.AddPlayer("discord:1", "Almond", 1, 40)
		svc := NewService(store.World(), nil)

		// ACT
		require.NoError(t, svc.Move(ctx, player.ID, 2))
		status, err := svc.Status(ctx, player.ID)

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, int64(2), status.LocationID)
		assert.Equal(t, "Baker Barry", status.LocationName)
	})

	t.Run("moving to the current location is allowed", func(t *testing.T) {
		store := newWorld()
		player := store.AddPlayer("discord:1", "Almond", 1, 40)
		svc := NewService(store.World(), nil)

		assert.NoError(t, svc.Move(ctx, player.ID, 1))
	})

	t.Run("unknown destination", func(t *testing.T) {
		store := newWorld()
		player := store.AddPlayer("discord:1", "Almond", 1, 40)
		svc := NewService(store.World(), nil)

		err := svc.Move(ctx, player.ID, 99)

		assert.ErrorIs(t, err, domain.ErrLocationNotFound)
		got, _ := store.Entity(player.ID)
		assert.Equal(t, int64(1), got.LocationID)
	})

	t.Run("unknown entity", func(t *testing.T) {
		svc := NewService(newWorld().World(), nil)

		err := svc.Move(ctx, 99, 2)

		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})

	t.Run("publishes entity.moved", func(t *testing.T) {
		store := newWorld()
		player := store.AddPlayer("discord:1", "Almond", 1, 40)
		bus := event.NewMemoryBus()
		var payload event.EntityMovedPayloadV1
		bus.Subscribe(event.EntityMoved, func(ctx context.Context, evt event.Event) error {
			var err error
			payload, err = event.DecodePayload[event.EntityMovedPayloadV1](evt.Payload)
			return err
		})
		svc := NewService(store.World(), bus)

		require.NoError(t, svc.Move(ctx, player.ID, 3))

		assert.Equal(t, int64(1), payload.FromLocationID)
		assert.Equal(t, int64(3), payload.ToLocationID)
	})
}

func TestWhoIsHere(t *testing.T) {
	ctx := context.Background()
	store := newWorld()
	second := store.AddPlayer("discord:2", "Walnut", 2, 0)
	first := store.AddPlayer("discord:1", "Almond", 1, 0)
	third := store.AddPlayer("discord:3", "Pecan", 2, 0)
	svc := NewService(store.World(), nil)

	t.Run("non-shopkeepers ordered by id", func(t *testing.T) {
		players, err := svc.WhoIsHere(ctx, 2)

		require.NoError(t, err)
		require.Len(t, players, 2)
		assert.Equal(t, second.ID, players[0].ID)
		assert.Equal(t, third.ID, players[1].ID)
		for _, p := range players {
			assert.False(t, p.IsShopkeeper)
		}
	})

	t.Run("single player", func(t *testing.T) {
		players, err := svc.WhoIsHere(ctx, 1)

		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Equal(t, first.ID, players[0].ID)
	})

	t.Run("empty location", func(t *testing.T) {
		players, err := svc.WhoIsHere(ctx, 3)

		require.NoError(t, err)
		assert.Empty(t, players)
	})

	t.Run("unknown location", func(t *testing.T) {
		_, err := svc.WhoIsHere(ctx, 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDescribeLocation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newWorld().World(), nil)

	t.Run("shop lists its stock", func(t *testing.T) {
		desc, err := svc.DescribeLocation(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, "Baker Barry", desc.Location.Name)
		assert.False(t, desc.NothingForSale)
		require.Len(t, desc.Listings, 1)
		assert.Equal(t, "Bread", desc.Listings[0].Item.Name)
	})

	t.Run("nothing for sale sentinel", func(t *testing.T) {
		desc, err := svc.DescribeLocation(ctx, 1)

		require.NoError(t, err)
		assert.True(t, desc.NothingForSale)
		assert.Empty(t, desc.Listings)
	})

	t.Run("shopkeeper with only unpriced goods sells nothing", func(t *testing.T) {
		store := newWorld()
		store.AddItem(2, "Anvil", "Heavy")
		olga := store.AddShopkeeper("Olga", 3)
		store.AddHolding(olga.ID, 2, 1)

		desc, err := NewService(store.World(), nil).DescribeLocation(ctx, 3)

		require.NoError(t, err)
		assert.True(t, desc.NothingForSale)
		assert.Empty(t, desc.Listings)
	})

	t.Run("unknown location", func(t *testing.T) {
		_, err := svc.DescribeLocation(ctx, 99)

		assert.ErrorIs(t, err, domain.ErrLocationNotFound)
		assert.Equal(t, "No such location", domain.UserMessage(err))
	})
}

func TestListLocations(t *testing.T) {
	svc := NewService(newWorld().World(), nil)

	locations, err := svc.ListLocations(context.Background())

	require.NoError(t, err)
	require.Len(t, locations, 3)
	assert.Equal(t, "Tavern", locations[0].Name)
	assert.True(t, locations[0].IsStart)
	assert.Equal(t, int64(3), locations[2].ID)
}

func TestStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates holdings", func(t *testing.T) {
		store := newWorld()
		player := store.AddPlayer("discord:1", "Almond", 1, 35)
		store.AddHolding(player.ID, 1, 1)
		svc := NewService(store.World(), nil)

		status, err := svc.Status(ctx, player.ID)

		require.NoError(t, err)
		assert.Equal(t, "Almond", status.Name)
		assert.True(t, status.Money.Equal(decimal.NewFromInt(35)))
		assert.Equal(t, "Tavern", status.LocationName)
		require.Len(t, status.Holdings, 1)
		assert.Equal(t, "Bread", status.Holdings[0].Item.Name)
	})

	t.Run("zero-quantity records are hidden", func(t *testing.T) {
		store := newWorld()
		player := store.AddPlayer("discord:1", "Almond", 1, 0)
		store.AddHolding(player.ID, 1, 0)
		svc := NewService(store.World(), nil)

		status, err := svc.Status(ctx, player.ID)

		require.NoError(t, err)
		assert.Empty(t, status.Holdings)
	})

	t.Run("unknown entity", func(t *testing.T) {
		svc := NewService(newWorld().World(), nil)

		_, err := svc.Status(ctx, 99)

		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})
}
