package discord

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

// ErrNotRegistered is returned when a Discord user has no player yet
var ErrNotRegistered = &APIError{Status: http.StatusNotFound, Message: MsgNotRegistered}

// PlayerCache maps Discord user ids to entity ids. Entity ids never change
// once assigned, so entries only expire to bound memory.
type PlayerCache struct {
	entries *expirable.LRU[string, int64]
}

// NewPlayerCache creates a cache holding up to size users for ttl
func NewPlayerCache(size int, ttl time.Duration) *PlayerCache {
	return &PlayerCache{
		entries: expirable.NewLRU[string, int64](size, nil, ttl),
	}
}

// Get returns the cached entity id for a Discord user
func (c *PlayerCache) Get(userID string) (int64, bool) {
	if c == nil {
		return 0, false
	}
	return c.entries.Get(userID)
}

// Set caches the entity id for a Discord user
func (c *PlayerCache) Set(userID string, entityID int64) {
	if c == nil {
		return
	}
	c.entries.Add(userID, entityID)
}

// Len returns the number of live entries
func (c *PlayerCache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// IdentityFor returns the external identity of a Discord user
func IdentityFor(userID string) string {
	return domain.PlatformDiscord + ":" + userID
}

// DiscordUserID extracts the Discord user id from an external identity
func DiscordUserID(identity string) (string, bool) {
	id, ok := strings.CutPrefix(identity, domain.PlatformDiscord+":")
	return id, ok && id != ""
}

// PlayerID resolves the entity behind a Discord user, consulting the cache
// first. Unknown users get ErrNotRegistered.
func (c *APIClient) PlayerID(ctx context.Context, userID string) (int64, error) {
	if id, ok := c.players.Get(userID); ok {
		return id, nil
	}

	entity, err := c.Resolve(ctx, IdentityFor(userID))
	if err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return 0, ErrNotRegistered
		}
		return 0, err
	}

	c.players.Set(userID, entity.ID)
	return entity.ID, nil
}

// Join registers a Discord user. created is false when the user already had
// a player, which is then returned as-is.
func (c *APIClient) Join(ctx context.Context, userID, name string) (entity *domain.Entity, created bool, err error) {
	identity := IdentityFor(userID)

	entity, err = c.Register(ctx, identity, name)
	if err == nil {
		c.players.Set(userID, entity.ID)
		return entity, true, nil
	}
	if !IsStatus(err, http.StatusConflict) {
		return nil, false, err
	}

	entity, err = c.Resolve(ctx, identity)
	if err != nil {
		return nil, false, err
	}
	c.players.Set(userID, entity.ID)
	return entity, false, nil
}
