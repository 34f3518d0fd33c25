// Package memstore is a map-backed implementation of the repository
// interfaces for service tests. A transaction works on a copy of the state
// and holds the store lock until it commits or rolls back, so transactions
// are serialized the way row locks serialize them in Postgres.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/repository"
)

var errTxClosed = errors.New(repository.ErrMsgTxClosed)

// Store backs every repository interface. Use the Directory, Inventory,
// Economy, World and Catalog accessors to get the typed views.
type Store struct {
	mu     sync.Mutex
	failMu sync.Mutex
	state  state
	fail   map[string]error
}

type state struct {
	locations    map[int64]domain.Location
	items        map[int64]domain.Item
	entities     map[int64]domain.Entity
	records      map[int64]domain.InventoryRecord
	nextEntityID int64
	nextRecordID int64
}

func (s state) clone() state {
	c := state{
		locations:    make(map[int64]domain.Location, len(s.locations)),
		items:        make(map[int64]domain.Item, len(s.items)),
		entities:     make(map[int64]domain.Entity, len(s.entities)),
		records:      make(map[int64]domain.InventoryRecord, len(s.records)),
		nextEntityID: s.nextEntityID,
		nextRecordID: s.nextRecordID,
	}
	for k, v := range s.locations {
		c.locations[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.entities {
		c.entities[k] = v
	}
	for k, v := range s.records {
		c.records[k] = v
	}
	return c
}

// New creates an empty store
func New() *Store {
	return &Store{
		state: state{}.clone(),
		fail:  make(map[string]error),
	}
}

// FailOn makes the named Tx method return err until cleared with a nil err
func (s *Store) FailOn(method string, err error) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	if err == nil {
		delete(s.fail, method)
		return
	}
	s.fail[method] = err
}

func (s *Store) failure(method string) error {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	return s.fail[method]
}

// ---- Fixture helpers (outside any transaction) ----

// AddLocation inserts a location
func (s *Store) AddLocation(id int64, name string, isStart bool) domain.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc := domain.Location{ID: id, Name: name, IsStart: isStart}
	s.state.locations[id] = loc
	return loc
}

// AddItem inserts an item
func (s *Store) AddItem(id int64, name, description string) domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := domain.Item{ID: id, Name: name, Description: description}
	s.state.items[id] = item
	return item
}

// AddPlayer inserts a player with the given identity and money
func (s *Store) AddPlayer(identity, name string, locationID int64, money int64) domain.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := identity
	return s.state.insertEntity(domain.NewEntity{
		ExternalIdentity: &id,
		Name:             name,
		LocationID:       locationID,
		Money:            decimal.NewFromInt(money),
	})
}

// AddShopkeeper inserts a shopkeeper
func (s *Store) AddShopkeeper(name string, locationID int64) domain.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.insertEntity(domain.NewEntity{Name: name, LocationID: locationID, IsShopkeeper: true})
}

// AddStock inserts a priced inventory record for a shopkeeper
func (s *Store) AddStock(entityID, itemID int64, quantity int, price int64) domain.InventoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := decimal.NewFromInt(price)
	return s.state.insertRecord(domain.InventoryRecord{EntityID: entityID, ItemID: itemID, Quantity: quantity, Price: &p})
}

// AddHolding inserts an unpriced inventory record
func (s *Store) AddHolding(entityID, itemID int64, quantity int) domain.InventoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.insertRecord(domain.InventoryRecord{EntityID: entityID, ItemID: itemID, Quantity: quantity})
}

// Entity returns the committed entity or false
func (s *Store) Entity(id int64) (domain.Entity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.state.entities[id]
	return e, ok
}

// Entities returns every committed entity ordered by id
func (s *Store) Entities() []domain.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Entity, 0, len(s.state.entities))
	for _, e := range s.state.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Record returns the committed inventory record or false
func (s *Store) Record(id int64) (domain.InventoryRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.records[id]
	return r, ok
}

// HoldingQuantity returns how many of itemID the entity holds
func (s *Store) HoldingQuantity(entityID, itemID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.state.holding(entityID, itemID); ok {
		return r.Quantity
	}
	return 0
}

// ---- BeginTx for every repository interface ----

func (s *Store) begin() (*Tx, error) {
	if err := s.failure("BeginTx"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &Tx{store: s, st: s.state.clone()}, nil
}

// Directory returns the store as a repository.Directory
func (s *Store) Directory() repository.Directory { return directoryRepo{s} }

// Inventory returns the store as a repository.Inventory
func (s *Store) Inventory() repository.Inventory { return inventoryRepo{s} }

// Economy returns the store as a repository.Economy
func (s *Store) Economy() repository.Economy { return economyRepo{s} }

// World returns the store as a repository.World
func (s *Store) World() repository.World { return worldRepo{s} }

// Catalog returns the store as a repository.Catalog
func (s *Store) Catalog() repository.Catalog { return catalogRepo{s} }

type directoryRepo struct{ s *Store }
type inventoryRepo struct{ s *Store }
type economyRepo struct{ s *Store }
type worldRepo struct{ s *Store }
type catalogRepo struct{ s *Store }

func (r directoryRepo) BeginTx(ctx context.Context) (repository.DirectoryTx, error) {
	tx, err := r.s.begin()
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (r inventoryRepo) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.s.begin()
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (r economyRepo) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.s.begin()
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (r worldRepo) BeginTx(ctx context.Context) (repository.WorldTx, error) {
	tx, err := r.s.begin()
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (r catalogRepo) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	tx, err := r.s.begin()
	if err != nil {
		return nil, err
	}
	return tx, nil
}
