package discord

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

func TestIdentityRoundTrip(t *testing.T) {
	identity := IdentityFor("12345")
	assert.Equal(t, "discord:12345", identity)

	id, ok := DiscordUserID(identity)
	assert.True(t, ok)
	assert.Equal(t, "12345", id)

	_, ok = DiscordUserID("tester")
	assert.False(t, ok)
	_, ok = DiscordUserID("discord:")
	assert.False(t, ok)
}

func TestPlayerCache_Expires(t *testing.T) {
	cache := NewPlayerCache(10, 20*time.Millisecond)
	cache.Set("u1", 7)

	id, ok := cache.Get("u1")
	require.True(t, ok)
	assert.Equal(t, int64(7), id)

	assert.Eventually(t, func() bool {
		_, ok := cache.Get("u1")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestPlayerCache_Evicts(t *testing.T) {
	cache := NewPlayerCache(2, time.Minute)
	cache.Set("u1", 1)
	cache.Set("u2", 2)
	cache.Set("u3", 3)

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get("u1")
	assert.False(t, ok)
}

func TestPlayerCache_NilIsEmpty(t *testing.T) {
	var cache *PlayerCache
	cache.Set("u1", 1)
	_, ok := cache.Get("u1")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestPlayerID_ResolvesOnce(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	var resolves atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/entities/resolve", func(w http.ResponseWriter, r *http.Request) {
		resolves.Add(1)
		WriteJSON(w, http.StatusOK, domain.Entity{ID: 4})
	})

	// ACT
	first, err1 := tc.APIClient.PlayerID(context.Background(), "u1")
	second, err2 := tc.APIClient.PlayerID(context.Background(), "u1")

	// ASSERT
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, int64(4), first)
	assert.Equal(t, int64(4), second)
	assert.Equal(t, int32(1), resolves.Load())
}

func TestPlayerID_PropagatesServerErrors(t *testing.T) {
	tc := SetupTestContext(t)
	tc.APIClient.MaxRetries = 0
	tc.Mux.HandleFunc("GET /api/v1/entities/resolve", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusInternalServerError, domain.ErrMsgSomethingWentWrong)
	})

	_, err := tc.APIClient.PlayerID(context.Background(), "u1")

	require.Error(t, err)
	assert.NotEqual(t, ErrNotRegistered, err)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
}
