package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/osse101/ShopBot_Go/internal/database/generated"
	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/repository"
)

// unitOfWork binds the generated queries to one pgx transaction. It satisfies
// every repository.*Tx interface; each repository hands it out under the
// narrower interface its service is allowed to use.
type unitOfWork struct {
	tx pgx.Tx
	q  *generated.Queries
}

var (
	_ repository.CatalogTx   = (*unitOfWork)(nil)
	_ repository.DirectoryTx = (*unitOfWork)(nil)
	_ repository.InventoryTx = (*unitOfWork)(nil)
	_ repository.EconomyTx   = (*unitOfWork)(nil)
	_ repository.WorldTx     = (*unitOfWork)(nil)
)

// Commit commits the transaction
func (u *unitOfWork) Commit(ctx context.Context) error {
	if err := u.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback(ctx context.Context) error {
	return u.tx.Rollback(ctx)
}

// ---- Locations ----

func (u *unitOfWork) CountLocations(ctx context.Context) (int64, error) {
	count, err := u.q.CountLocations(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountLocations, err)
	}
	return count, nil
}

func (u *unitOfWork) InsertLocation(ctx context.Context, location domain.Location) error {
	err := u.q.InsertLocation(ctx, generated.InsertLocationParams{
		LocationID: location.ID,
		Name:       location.Name,
		IsStart:    location.IsStart,
	})
	if err != nil {
		return fmt.Errorf("%s %d: %w", ErrMsgFailedToInsertLocation, location.ID, err)
	}
	return nil
}

func (u *unitOfWork) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	row, err := u.q.GetLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLocation, err)
	}
	location := mapLocation(row)
	return &location, nil
}

func (u *unitOfWork) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := u.q.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLocations, err)
	}
	return mapLocations(rows), nil
}

func (u *unitOfWork) ListStartLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := u.q.ListStartLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStartLocations, err)
	}
	return mapLocations(rows), nil
}

// ---- Items ----

func (u *unitOfWork) InsertItem(ctx context.Context, item domain.Item) error {
	err := u.q.InsertItem(ctx, generated.InsertItemParams{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
	})
	if err != nil {
		return fmt.Errorf("%s %d: %w", ErrMsgFailedToInsertItem, item.ID, err)
	}
	return nil
}

func (u *unitOfWork) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	row, err := u.q.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	item := mapItem(row)
	return &item, nil
}

// ---- Entities ----

// InsertEntity inserts an entity. A second entity with the same external
// identity violates idx_entity_external_identity and maps to ErrIdentityTaken.
func (u *unitOfWork) InsertEntity(ctx context.Context, entity domain.NewEntity) (*domain.Entity, error) {
	row, err := u.q.InsertEntity(ctx, generated.InsertEntityParams{
		ExternalIdentity: ptrToText(entity.ExternalIdentity),
		Name:             entity.Name,
		LocationID:       entity.LocationID,
		IsShopkeeper:     entity.IsShopkeeper,
		Money:            decimalToNumeric(entity.Money),
	})
	if err != nil {
		switch pgErrorCode(err) {
		case PgErrorCodeUniqueViolation:
			return nil, domain.ErrIdentityTaken
		case PgErrorCodeForeignKeyViolation:
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertEntity, err)
	}
	return mapEntity(row)
}

func (u *unitOfWork) GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error) {
	row, err := u.q.GetEntity(ctx, entityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntityNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEntity, err)
	}
	return mapEntity(row)
}

func (u *unitOfWork) GetEntityForUpdate(ctx context.Context, entityID int64) (*domain.Entity, error) {
	row, err := u.q.GetEntityForUpdate(ctx, entityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntityNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEntityForUpdate, err)
	}
	return mapEntity(row)
}

func (u *unitOfWork) GetEntityByIdentity(ctx context.Context, externalIdentity string) (*domain.Entity, error) {
	row, err := u.q.GetEntityByExternalIdentity(ctx, strToText(externalIdentity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntityNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEntityByIdentity, err)
	}
	return mapEntity(row)
}

func (u *unitOfWork) UpdateEntityName(ctx context.Context, entityID int64, name string) error {
	n, err := u.q.UpdateEntityName(ctx, generated.UpdateEntityNameParams{
		EntityID: entityID,
		Name:     name,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateEntityName, err)
	}
	if n == 0 {
		return domain.ErrEntityNotFound
	}
	return nil
}

func (u *unitOfWork) UpdateEntityLocation(ctx context.Context, entityID, locationID int64) error {
	n, err := u.q.UpdateEntityLocation(ctx, generated.UpdateEntityLocationParams{
		EntityID:   entityID,
		LocationID: locationID,
	})
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeForeignKeyViolation {
			return domain.ErrLocationNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateEntityLocation, err)
	}
	if n == 0 {
		return domain.ErrEntityNotFound
	}
	return nil
}

func (u *unitOfWork) UpdateEntityMoney(ctx context.Context, entityID int64, money decimal.Decimal) error {
	n, err := u.q.UpdateEntityMoney(ctx, generated.UpdateEntityMoneyParams{
		EntityID: entityID,
		Money:    decimalToNumeric(money),
	})
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeCheckViolation {
			return domain.ErrInsufficientFunds
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateEntityMoney, err)
	}
	if n == 0 {
		return domain.ErrEntityNotFound
	}
	return nil
}

func (u *unitOfWork) ListPlayersAtLocation(ctx context.Context, locationID int64) ([]domain.Entity, error) {
	rows, err := u.q.ListPlayersAtLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlayers, err)
	}
	return mapEntities(rows)
}

// ---- Inventory ----

func (u *unitOfWork) InsertInventoryRecord(ctx context.Context, record domain.InventoryRecord) (*domain.InventoryRecord, error) {
	quantity, err := quantityToInt4(record.Quantity)
	if err != nil {
		return nil, err
	}
	row, err := u.q.InsertInventoryRecord(ctx, generated.InsertInventoryRecordParams{
		EntityID: record.EntityID,
		ItemID:   record.ItemID,
		Quantity: quantity,
		Price:    decimalPtrToNumeric(record.Price),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertInventoryItem, err)
	}
	return mapInventoryRecord(row)
}

func (u *unitOfWork) GetInventoryRecordForUpdate(ctx context.Context, recordID int64) (*domain.InventoryRecord, error) {
	row, err := u.q.GetInventoryRecordForUpdate(ctx, recordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryRecordNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventoryRecord, err)
	}
	return mapInventoryRecord(row)
}

func (u *unitOfWork) GetHoldingForUpdate(ctx context.Context, entityID, itemID int64) (*domain.InventoryRecord, error) {
	row, err := u.q.GetHoldingForUpdate(ctx, generated.GetHoldingForUpdateParams{
		EntityID: entityID,
		ItemID:   itemID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryRecordNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHolding, err)
	}
	return mapInventoryRecord(row)
}

func (u *unitOfWork) CreditHolding(ctx context.Context, entityID, itemID int64, quantity int) (*domain.InventoryRecord, error) {
	q, err := quantityToInt4(quantity)
	if err != nil {
		return nil, err
	}
	row, err := u.q.CreditHolding(ctx, generated.CreditHoldingParams{
		EntityID: entityID,
		ItemID:   itemID,
		Quantity: q,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreditHolding, err)
	}
	return mapInventoryRecord(row)
}

func (u *unitOfWork) UpdateInventoryQuantity(ctx context.Context, recordID int64, quantity int) error {
	q, err := quantityToInt4(quantity)
	if err != nil {
		return err
	}
	n, err := u.q.UpdateInventoryQuantity(ctx, generated.UpdateInventoryQuantityParams{
		InventoryRecordID: recordID,
		Quantity:          q,
	})
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeCheckViolation {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateQuantity, err)
	}
	if n == 0 {
		return domain.ErrInventoryRecordNotFound
	}
	return nil
}

func (u *unitOfWork) ListHoldings(ctx context.Context, entityID int64) ([]domain.Holding, error) {
	rows, err := u.q.ListHoldings(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHoldings, err)
	}
	return mapHoldings(rows), nil
}

func (u *unitOfWork) ListForSale(ctx context.Context, locationID int64) ([]domain.ForSaleListing, error) {
	rows, err := u.q.ListForSale(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListForSale, err)
	}
	return mapListings(rows)
}
