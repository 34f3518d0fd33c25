package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ShopBot_Go/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// EntityIDKey is the context key for the entity addressed by the route
	EntityIDKey contextKey = "entity_id"
	// LocationIDKey is the context key for the location addressed by the route
	LocationIDKey contextKey = "location_id"
)

// WithEntityID adds an entity id to the context
func WithEntityID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, EntityIDKey, id)
}

// GetEntityID returns the entity id stored by EntityID
func GetEntityID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(EntityIDKey).(int64)
	return id, ok
}

// WithLocationID adds a location id to the context
func WithLocationID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, LocationIDKey, id)
}

// GetLocationID returns the location id stored by LocationID
func GetLocationID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(LocationIDKey).(int64)
	return id, ok
}

// EntityID parses the {entityID} route parameter once for every handler
// mounted below it. Non-numeric ids are rejected with 400.
func EntityID(next http.Handler) http.Handler {
	return idParam(URLParamEntityID, ErrMsgInvalidEntityID, WithEntityID)(next)
}

// LocationID parses the {locationID} route parameter
func LocationID(next http.Handler) http.Handler {
	return idParam(URLParamLocationID, ErrMsgInvalidLocationID, WithLocationID)(next)
}

func idParam(name, errMsg string, store func(context.Context, int64) context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, name)
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgInvalidIDParam, "param", name, "value", raw)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": errMsg})
				return
			}
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}
