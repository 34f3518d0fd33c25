package domain

import "github.com/shopspring/decimal"

// Entity is any participant in the world: a player or a shopkeeper.
// Shopkeepers have no external identity.
type Entity struct {
	ID               int64           `json:"entity_id"`
	ExternalIdentity *string         `json:"external_identity,omitempty"`
	Name             string          `json:"name"`
	LocationID       int64           `json:"location_id"`
	IsShopkeeper     bool            `json:"is_shopkeeper"`
	Money            decimal.Decimal `json:"money"`
}

// Identity returns the external identity or an empty string for shopkeepers
func (e *Entity) Identity() string {
	if e.ExternalIdentity == nil {
		return ""
	}
	return *e.ExternalIdentity
}

// NewEntity carries the fields needed to insert an entity
type NewEntity struct {
	ExternalIdentity *string
	Name             string
	LocationID       int64
	IsShopkeeper     bool
	Money            decimal.Decimal
}

// EntityStatus is the aggregated view behind the status command
type EntityStatus struct {
	EntityID     int64           `json:"entity_id"`
	Name         string          `json:"name"`
	Money        decimal.Decimal `json:"money"`
	LocationID   int64           `json:"location_id"`
	LocationName string          `json:"location_name"`
	Holdings     []Holding       `json:"holdings"`
}
