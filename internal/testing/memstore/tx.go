package memstore

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/repository"
)

// Tx is an open transaction on a Store
type Tx struct {
	store *Store
	st    state
	done  bool
}

var (
	_ repository.CatalogTx   = (*Tx)(nil)
	_ repository.DirectoryTx = (*Tx)(nil)
	_ repository.InventoryTx = (*Tx)(nil)
	_ repository.EconomyTx   = (*Tx)(nil)
	_ repository.WorldTx     = (*Tx)(nil)
)

// Commit publishes the transaction's state to the store
func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}
	if err := t.store.failure("Commit"); err != nil {
		return err
	}
	t.store.state = t.st
	t.done = true
	t.store.mu.Unlock()
	return nil
}

// Rollback discards the transaction's state
func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}

func (t *Tx) fail(method string) error {
	return t.store.failure(method)
}

// ---- state helpers ----

func (s *state) insertEntity(e domain.NewEntity) domain.Entity {
	s.nextEntityID++
	entity := domain.Entity{
		ID:               s.nextEntityID,
		ExternalIdentity: e.ExternalIdentity,
		Name:             e.Name,
		LocationID:       e.LocationID,
		IsShopkeeper:     e.IsShopkeeper,
		Money:            e.Money,
	}
	s.entities[entity.ID] = entity
	return entity
}

func (s *state) insertRecord(r domain.InventoryRecord) domain.InventoryRecord {
	s.nextRecordID++
	r.ID = s.nextRecordID
	s.records[r.ID] = r
	return r
}

func (s *state) holding(entityID, itemID int64) (domain.InventoryRecord, bool) {
	for _, r := range s.records {
		if r.EntityID == entityID && r.ItemID == itemID {
			return r, true
		}
	}
	return domain.InventoryRecord{}, false
}

func (s *state) sortedRecords() []domain.InventoryRecord {
	out := make([]domain.InventoryRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedLocations(m map[int64]domain.Location, keep func(domain.Location) bool) []domain.Location {
	out := make([]domain.Location, 0, len(m))
	for _, l := range m {
		if keep(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---- Locations and items ----

func (t *Tx) CountLocations(ctx context.Context) (int64, error) {
	if err := t.fail("CountLocations"); err != nil {
		return 0, err
	}
	return int64(len(t.st.locations)), nil
}

func (t *Tx) InsertLocation(ctx context.Context, location domain.Location) error {
	if err := t.fail("InsertLocation"); err != nil {
		return err
	}
	t.st.locations[location.ID] = location
	return nil
}

func (t *Tx) InsertItem(ctx context.Context, item domain.Item) error {
	if err := t.fail("InsertItem"); err != nil {
		return err
	}
	t.st.items[item.ID] = item
	return nil
}

func (t *Tx) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	if err := t.fail("GetLocation"); err != nil {
		return nil, err
	}
	loc, ok := t.st.locations[locationID]
	if !ok {
		return nil, domain.ErrLocationNotFound
	}
	return &loc, nil
}

func (t *Tx) ListLocations(ctx context.Context) ([]domain.Location, error) {
	if err := t.fail("ListLocations"); err != nil {
		return nil, err
	}
	return sortedLocations(t.st.locations, func(domain.Location) bool { return true }), nil
}

func (t *Tx) ListStartLocations(ctx context.Context) ([]domain.Location, error) {
	if err := t.fail("ListStartLocations"); err != nil {
		return nil, err
	}
	return sortedLocations(t.st.locations, func(l domain.Location) bool { return l.IsStart }), nil
}

func (t *Tx) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	if err := t.fail("GetItem"); err != nil {
		return nil, err
	}
	item, ok := t.st.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

// ---- Entities ----

func (t *Tx) InsertEntity(ctx context.Context, entity domain.NewEntity) (*domain.Entity, error) {
	if err := t.fail("InsertEntity"); err != nil {
		return nil, err
	}
	if _, ok := t.st.locations[entity.LocationID]; !ok {
		return nil, domain.ErrLocationNotFound
	}
	if entity.ExternalIdentity != nil {
		for _, e := range t.st.entities {
			if e.ExternalIdentity != nil && *e.ExternalIdentity == *entity.ExternalIdentity {
				return nil, domain.ErrIdentityTaken
			}
		}
	}
	created := t.st.insertEntity(entity)
	return &created, nil
}

func (t *Tx) GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error) {
	if err := t.fail("GetEntity"); err != nil {
		return nil, err
	}
	e, ok := t.st.entities[entityID]
	if !ok {
		return nil, domain.ErrEntityNotFound
	}
	return &e, nil
}

func (t *Tx) GetEntityForUpdate(ctx context.Context, entityID int64) (*domain.Entity, error) {
	if err := t.fail("GetEntityForUpdate"); err != nil {
		return nil, err
	}
	return t.GetEntity(ctx, entityID)
}

func (t *Tx) GetEntityByIdentity(ctx context.Context, externalIdentity string) (*domain.Entity, error) {
	if err := t.fail("GetEntityByIdentity"); err != nil {
		return nil, err
	}
	for _, e := range t.st.entities {
		if e.ExternalIdentity != nil && *e.ExternalIdentity == externalIdentity {
			return &e, nil
		}
	}
	return nil, domain.ErrEntityNotFound
}

func (t *Tx) UpdateEntityName(ctx context.Context, entityID int64, name string) error {
	if err := t.fail("UpdateEntityName"); err != nil {
		return err
	}
	e, ok := t.st.entities[entityID]
	if !ok {
		return domain.ErrEntityNotFound
	}
	e.Name = name
	t.st.entities[entityID] = e
	return nil
}

func (t *Tx) UpdateEntityLocation(ctx context.Context, entityID, locationID int64) error {
	if err := t.fail("UpdateEntityLocation"); err != nil {
		return err
	}
	if _, ok := t.st.locations[locationID]; !ok {
		return domain.ErrLocationNotFound
	}
	e, ok := t.st.entities[entityID]
	if !ok {
		return domain.ErrEntityNotFound
	}
	e.LocationID = locationID
	t.st.entities[entityID] = e
	return nil
}

func (t *Tx) UpdateEntityMoney(ctx context.Context, entityID int64, money decimal.Decimal) error {
	if err := t.fail("UpdateEntityMoney"); err != nil {
		return err
	}
	if money.IsNegative() {
		return domain.ErrInsufficientFunds
	}
	e, ok := t.st.entities[entityID]
	if !ok {
		return domain.ErrEntityNotFound
	}
	e.Money = money
	t.st.entities[entityID] = e
	return nil
}

func (t *Tx) ListPlayersAtLocation(ctx context.Context, locationID int64) ([]domain.Entity, error) {
	if err := t.fail("ListPlayersAtLocation"); err != nil {
		return nil, err
	}
	out := make([]domain.Entity, 0)
	for _, e := range t.st.entities {
		if e.LocationID == locationID && !e.IsShopkeeper {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---- Inventory ----

func (t *Tx) InsertInventoryRecord(ctx context.Context, record domain.InventoryRecord) (*domain.InventoryRecord, error) {
	if err := t.fail("InsertInventoryRecord"); err != nil {
		return nil, err
	}
	created := t.st.insertRecord(record)
	return &created, nil
}

func (t *Tx) GetInventoryRecordForUpdate(ctx context.Context, recordID int64) (*domain.InventoryRecord, error) {
	if err := t.fail("GetInventoryRecordForUpdate"); err != nil {
		return nil, err
	}
	r, ok := t.st.records[recordID]
	if !ok {
		return nil, domain.ErrInventoryRecordNotFound
	}
	return &r, nil
}

func (t *Tx) GetHoldingForUpdate(ctx context.Context, entityID, itemID int64) (*domain.InventoryRecord, error) {
	if err := t.fail("GetHoldingForUpdate"); err != nil {
		return nil, err
	}
	r, ok := t.st.holding(entityID, itemID)
	if !ok {
		return nil, domain.ErrInventoryRecordNotFound
	}
	return &r, nil
}

func (t *Tx) CreditHolding(ctx context.Context, entityID, itemID int64, quantity int) (*domain.InventoryRecord, error) {
	if err := t.fail("CreditHolding"); err != nil {
		return nil, err
	}
	if r, ok := t.st.holding(entityID, itemID); ok {
		r.Quantity += quantity
		t.st.records[r.ID] = r
		return &r, nil
	}
	created := t.st.insertRecord(domain.InventoryRecord{EntityID: entityID, ItemID: itemID, Quantity: quantity})
	return &created, nil
}

func (t *Tx) UpdateInventoryQuantity(ctx context.Context, recordID int64, quantity int) error {
	if err := t.fail("UpdateInventoryQuantity"); err != nil {
		return err
	}
	if quantity < 0 {
		return domain.ErrInsufficientStock
	}
	r, ok := t.st.records[recordID]
	if !ok {
		return domain.ErrInventoryRecordNotFound
	}
	r.Quantity = quantity
	t.st.records[recordID] = r
	return nil
}

func (t *Tx) ListHoldings(ctx context.Context, entityID int64) ([]domain.Holding, error) {
	if err := t.fail("ListHoldings"); err != nil {
		return nil, err
	}
	out := make([]domain.Holding, 0)
	for _, r := range t.st.sortedRecords() {
		if r.EntityID != entityID || r.Quantity <= 0 {
			continue
		}
		out = append(out, domain.Holding{Item: t.st.items[r.ItemID], Quantity: r.Quantity})
	}
	return out, nil
}

func (t *Tx) ListForSale(ctx context.Context, locationID int64) ([]domain.ForSaleListing, error) {
	if err := t.fail("ListForSale"); err != nil {
		return nil, err
	}
	var shopID int64
	for _, e := range t.st.entities {
		if e.LocationID == locationID && e.IsShopkeeper && (shopID == 0 || e.ID < shopID) {
			shopID = e.ID
		}
	}
	out := make([]domain.ForSaleListing, 0)
	if shopID == 0 {
		return out, nil
	}
	for _, r := range t.st.sortedRecords() {
		if r.EntityID == shopID && r.ForSale() {
			out = append(out, domain.ForSaleListing{Record: r, Item: t.st.items[r.ItemID]})
		}
	}
	return out, nil
}
