package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/osse101/ShopBot_Go/internal/validation"
)

//go:embed catalog.json
var defaultCatalog []byte

//go:embed catalog.schema.json
var catalogSchema []byte

// ErrInvalidCatalog is returned when a catalog fails semantic validation
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the reference data a fresh world starts from
type Catalog struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`

	Locations   []LocationDef   `json:"locations"`
	Items       []ItemDef       `json:"items"`
	Shopkeepers []ShopkeeperDef `json:"shopkeepers"`
	DevPlayers  []DevPlayerDef  `json:"dev_players,omitempty"`
}

// LocationDef is a location row
type LocationDef struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	IsStart bool   `json:"is_start"`
}

// ItemDef is an item row
type ItemDef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ShopkeeperDef is a shopkeeper and its priced stock
type ShopkeeperDef struct {
	Name       string     `json:"name"`
	LocationID int64      `json:"location_id"`
	Stock      []StockDef `json:"stock"`
}

// StockDef is one priced inventory row owned by a shopkeeper
type StockDef struct {
	ItemID   int64           `json:"item_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// DevPlayerDef is a pre-registered player used for local testing
type DevPlayerDef struct {
	ExternalIdentity string          `json:"external_identity"`
	Name             string          `json:"name"`
	LocationID       int64           `json:"location_id"`
	Money            decimal.Decimal `json:"money"`
}

// Loader reads and validates catalogs
type Loader interface {
	Default() (*Catalog, error)
	Load(path string) (*Catalog, error)
	Parse(data []byte, source string) (*Catalog, error)
	Validate(c *Catalog) error
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader with the catalog schema registered
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.AddSchema(SchemaFileName, catalogSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgAddSchemaFailed, err)
	}
	return &loader{schemaValidator: v}, nil
}

// Default parses the embedded catalog
func (l *loader) Default() (*Catalog, error) {
	return l.Parse(defaultCatalog, CatalogFileName)
}

// Load reads a catalog from disk
func (l *loader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	return l.Parse(data, path)
}

// Parse validates data against the schema, decodes it, then checks
// cross references
func (l *loader) Parse(data []byte, source string) (*Catalog, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaFileName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, source, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	if err := l.Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the rules the schema cannot express
func (l *loader) Validate(c *Catalog) error {
	if len(c.Locations) == 0 {
		return fmt.Errorf(ErrFmtNoLocations, ErrInvalidCatalog)
	}

	locations := make(map[int64]bool, len(c.Locations))
	starts := 0
	for _, loc := range c.Locations {
		if locations[loc.ID] {
			return fmt.Errorf(ErrFmtDuplicateLocation, ErrInvalidCatalog, loc.ID)
		}
		locations[loc.ID] = true
		if loc.IsStart {
			starts++
		}
	}
	if starts != 1 {
		return fmt.Errorf(ErrFmtStartLocationCount, ErrInvalidCatalog, starts)
	}

	items := make(map[int64]bool, len(c.Items))
	for _, it := range c.Items {
		if items[it.ID] {
			return fmt.Errorf(ErrFmtDuplicateItem, ErrInvalidCatalog, it.ID)
		}
		items[it.ID] = true
	}

	for _, sk := range c.Shopkeepers {
		if err := validateShopkeeper(sk, locations, items); err != nil {
			return err
		}
	}

	identities := make(map[string]bool, len(c.DevPlayers))
	for _, p := range c.DevPlayers {
		if identities[p.ExternalIdentity] {
			return fmt.Errorf(ErrFmtDuplicateDevIdentity, ErrInvalidCatalog, p.ExternalIdentity)
		}
		identities[p.ExternalIdentity] = true
		if !locations[p.LocationID] {
			return fmt.Errorf(ErrFmtUnknownLocation, ErrInvalidCatalog, p.Name, p.LocationID)
		}
		if p.Money.IsNegative() {
			return fmt.Errorf(ErrFmtNegativeDevPlayerGold, ErrInvalidCatalog, p.Name)
		}
	}

	return nil
}

func validateShopkeeper(sk ShopkeeperDef, locations, items map[int64]bool) error {
	if !locations[sk.LocationID] {
		return fmt.Errorf(ErrFmtUnknownLocation, ErrInvalidCatalog, sk.Name, sk.LocationID)
	}

	// The inventory table allows one row per (entity, item)
	stocked := make(map[int64]bool, len(sk.Stock))
	for _, st := range sk.Stock {
		if !items[st.ItemID] {
			return fmt.Errorf(ErrFmtUnknownItem, ErrInvalidCatalog, sk.Name, st.ItemID)
		}
		if stocked[st.ItemID] {
			return fmt.Errorf(ErrFmtDuplicateStock, ErrInvalidCatalog, sk.Name, st.ItemID)
		}
		stocked[st.ItemID] = true
		if st.Quantity < 0 {
			return fmt.Errorf(ErrFmtNegativeQuantity, ErrInvalidCatalog, sk.Name, st.ItemID)
		}
		if st.Price.IsNegative() {
			return fmt.Errorf(ErrFmtNegativePrice, ErrInvalidCatalog, sk.Name, st.ItemID)
		}
	}
	return nil
}
