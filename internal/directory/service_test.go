package directory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/event"
	"github.com/osse101/ShopBot_Go/internal/repository"
	"github.com/osse101/ShopBot_Go/internal/testing/memstore"
)

// MockRepository implements repository.Directory for failure paths
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.DirectoryTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.DirectoryTx), args.Error(1)
}

func newWorld() *memstore.Store {
	store := memstore.New()
	store.AddLocation(1, "Tavern", true)
	store.AddLocation(2, "Bakery", false)
	return store
}

func TestRegister(t *testing.T) {
	t.Run("creates player at start location with nothing", func(t *testing.T) {
		// ARRANGE
		store := newWorld()
		svc := NewService(store.Directory(), nil)

		// ACT
		entity, err := svc.Register(context.Background(), "discord:1", "Almond")

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, "Almond", entity.Name)
		assert.Equal(t, int64(1), entity.LocationID)
		assert.False(t, entity.IsShopkeeper)
		assert.True(t, entity.Money.IsZero())
		assert.Equal(t, "discord:1", entity.Identity())
		assert.Len(t, store.Entities(), 1)
	})

	t.Run("normalizes the display name", func(t *testing.T) {
		store := newWorld()
		svc := NewService(store.Directory(), nil)

		entity, err := svc.Register(context.Background(), "discord:1", "  Zoe\u0301 ")

		require.NoError(t, err)
		assert.Equal(t, "Zo\u00e9", entity.Name)
	})

	t.Run("empty name is a validation error", func(t *testing.T) {
		store := newWorld()
		svc := NewService(store.Directory(), nil)

		_, err := svc.Register(context.Background(), "discord:1", "   ")

		assert.ErrorIs(t, err, domain.ErrNameRequired)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, "Please provide a name, like: /start Almond", domain.UserMessage(err))
		assert.Empty(t, store.Entities())
	})

	t.Run("empty identity is a validation error", func(t *testing.T) {
		svc := NewService(newWorld().Directory(), nil)

		_, err := svc.Register(context.Background(), "", "Almond")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("name longer than limit is rejected", func(t *testing.T) {
		svc := NewService(newWorld().Directory(), nil)
		long := make([]rune, domain.MaxNameLength+1)
		for i := range long {
			long[i] = 'a'
		}

		_, err := svc.Register(context.Background(), "discord:1", string(long))

		assert.ErrorIs(t, err, domain.ErrNameTooLong)
	})

	t.Run("no start location", func(t *testing.T) {
		store := memstore.New()
		store.AddLocation(2, "Bakery", false)
		svc := NewService(store.Directory(), nil)

		_, err := svc.Register(context.Background(), "discord:1", "Almond")

		assert.ErrorIs(t, err, domain.ErrNoStartLocation)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, "No starting locations found", domain.UserMessage(err))
	})

	t.Run("more than one start location", func(t *testing.T) {
		store := newWorld()
		store.AddLocation(3, "Second Tavern", true)
		svc := NewService(store.Directory(), nil)

		_, err := svc.Register(context.Background(), "discord:1", "Almond")

		assert.ErrorIs(t, err, domain.ErrMultipleStartLocations)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, store.Entities())
	})

	t.Run("duplicate identity conflicts and keeps one entity", func(t *testing.T) {
		store := newWorld()
		svc := NewService(store.Directory(), nil)
		_, err := svc.Register(context.Background(), "discord:1", "Almond")
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "discord:1", "Almond Again")

		assert.ErrorIs(t, err, domain.ErrIdentityTaken)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Len(t, store.Entities(), 1)
		assert.Equal(t, "Almond", store.Entities()[0].Name)
	})

	t.Run("publishes entity.registered", func(t *testing.T) {
		store := newWorld()
		bus := event.NewMemoryBus()
		var got []event.Event
		bus.Subscribe(event.EntityRegistered, func(ctx context.Context, evt event.Event) error {
			got = append(got, evt)
			return nil
		})
		svc := NewService(store.Directory(), bus)

		entity, err := svc.Register(context.Background(), "discord:1", "Almond")

		require.NoError(t, err)
		require.Len(t, got, 1)
		payload, err := event.DecodePayload[event.EntityRegisteredPayloadV1](got[0].Payload)
		require.NoError(t, err)
		assert.Equal(t, entity.ID, payload.EntityID)
	})

	t.Run("begin transaction failure", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("BeginTx", mock.Anything).Return(nil, errors.New("db down"))
		svc := NewService(repo, nil)

		_, err := svc.Register(context.Background(), "discord:1", "Almond")

		require.Error(t, err)
		assert.Nil(t, domain.Kind(err))
		assert.Contains(t, err.Error(), "db down")
		repo.AssertExpectations(t)
	})

	t.Run("commit failure leaves nothing behind", func(t *testing.T) {
		store := newWorld()
		store.FailOn("Commit", errors.New("commit failed"))
		svc := NewService(store.Directory(), nil)

		_, err := svc.Register(context.Background(), "discord:1", "Almond")

		require.Error(t, err)
		store.FailOn("Commit", nil)
		assert.Empty(t, store.Entities())
	})
}

func TestRegister_ConcurrentSameIdentity(t *testing.T) {
	store := newWorld()
	svc := NewService(store.Directory(), nil)

	const attempts = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	var successes, conflicts int

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), "discord:1", "Almond")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, store.Entities(), 1)
}

func TestResolve(t *testing.T) {
	store := newWorld()
	player := store.AddPlayer("discord:1", "Almond", 1, 0)
	svc := NewService(store.Directory(), nil)

	t.Run("known identity", func(t *testing.T) {
		entity, err := svc.Resolve(context.Background(), "discord:1")

		require.NoError(t, err)
		assert.Equal(t, player.ID, entity.ID)
	})

	t.Run("unknown identity", func(t *testing.T) {
		_, err := svc.Resolve(context.Background(), "discord:2")

		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
		assert.Equal(t, "No such player!", domain.UserMessage(err))
	})
}

func TestRename(t *testing.T) {
	t.Run("overwrites name", func(t *testing.T) {
		store := newWorld()
		player := store.AddPlayer("discord:1", "Almond", 1, 0)
		svc := NewService(store.Directory(), nil)

		err := svc.Rename(context.Background(), player.ID, "Walnut")

		require.NoError(t, err)
		got, _ := store.Entity(player.ID)
		assert.Equal(t, "Walnut", got.Name)
	})

	t.Run("names need not be unique", func(t *testing.T) {
		store := newWorld()
		store.AddPlayer("discord:1", "Almond", 1, 0)
		other := store.AddPlayer("discord:2", "Walnut", 1, 0)
		svc := NewService(store.Directory(), nil)

		assert.NoError(t, svc.Rename(context.Background(), other.ID, "Almond"))
	})

	t.Run("empty name", func(t *testing.T) {
		store := newWorld()
		player := store.AddPlayer("discord:1", "Almond", 1, 0)
		svc := NewService(store.Directory(), nil)

		err := svc.Rename(context.Background(), player.ID, "")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown entity", func(t *testing.T) {
		svc := NewService(newWorld().Directory(), nil)

		err := svc.Rename(context.Background(), 99, "Walnut")

		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})
}

func TestGetEntity(t *testing.T) {
	store := newWorld()
	player := store.AddPlayer("discord:1", "Almond", 1, 0)
	svc := NewService(store.Directory(), nil)

	entity, err := svc.GetEntity(context.Background(), player.ID)
	require.NoError(t, err)
	assert.Equal(t, "Almond", entity.Name)

	_, err = svc.GetEntity(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
