package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/logger"
	"github.com/osse101/ShopBot_Go/internal/repository"
)

// Service defines the inventory ledger
type Service interface {
	ListHoldings(ctx context.Context, entityID int64) ([]domain.Holding, error)
	Transfer(ctx context.Context, entityID, itemID int64, delta int) error
	ListForSale(ctx context.Context, locationID int64) ([]domain.ForSaleListing, error)
}

type service struct {
	repo repository.Inventory
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory) Service {
	return &service{repo: repo}
}

// ListHoldings returns the entity's non-empty records in insertion order
func (s *service) ListHoldings(ctx context.Context, entityID int64) ([]domain.Holding, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	holdings, err := ListHoldingsTx(ctx, tx, entityID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return holdings, nil
}

// Transfer adds delta (which may be negative) of an item to an entity's
// inventory in its own transaction
func (s *service) Transfer(ctx context.Context, entityID, itemID int64, delta int) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgTransferCalled, "entity_id", entityID, "item_id", itemID, "delta", delta)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := TransferTx(ctx, tx, entityID, itemID, delta); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	log.Info(LogMsgTransferDone, "entity_id", entityID, "item_id", itemID, "delta", delta)
	return nil
}

// ListForSale returns the priced stock of the location's shopkeeper,
// zero-quantity rows included. Unpriced rows are not listed.
func (s *service) ListForSale(ctx context.Context, locationID int64) ([]domain.ForSaleListing, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	listings, err := ListForSaleTx(ctx, tx, locationID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return listings, nil
}

// TransferTx applies delta inside an open transaction. It writes nothing when
// it fails, so the caller may keep using the transaction or roll it back.
func TransferTx(ctx context.Context, tx repository.InventoryTx, entityID, itemID int64, delta int) error {
	if delta == 0 {
		logger.FromContext(ctx).Debug(LogMsgTransferNoop, "entity_id", entityID, "item_id", itemID)
		return nil
	}

	if _, err := tx.GetItem(ctx, itemID); err != nil {
		return fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if _, err := tx.GetEntity(ctx, entityID); err != nil {
		return fmt.Errorf(ErrMsgGetEntityFailed, err)
	}

	if delta > 0 {
		if _, err := tx.CreditHolding(ctx, entityID, itemID, delta); err != nil {
			return fmt.Errorf(ErrMsgCreditFailed, delta, itemID, entityID, err)
		}
		return nil
	}

	record, err := tx.GetHoldingForUpdate(ctx, entityID, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrInventoryRecordNotFound) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf(ErrMsgGetHoldingFailed, err)
	}

	remaining := record.Quantity + delta
	if remaining < 0 {
		return domain.ErrInsufficientStock
	}
	if err := tx.UpdateInventoryQuantity(ctx, record.ID, remaining); err != nil {
		return fmt.Errorf(ErrMsgDebitFailed, -delta, itemID, entityID, err)
	}
	return nil
}

// ListHoldingsTx lists holdings inside an open transaction
func ListHoldingsTx(ctx context.Context, tx repository.InventoryTx, entityID int64) ([]domain.Holding, error) {
	if _, err := tx.GetEntity(ctx, entityID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetEntityFailed, err)
	}
	holdings, err := tx.ListHoldings(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListHoldingsFailed, err)
	}
	return holdings, nil
}

// ListForSaleTx lists a location's stock inside an open transaction
func ListForSaleTx(ctx context.Context, tx repository.InventoryTx, locationID int64) ([]domain.ForSaleListing, error) {
	if _, err := tx.GetLocation(ctx, locationID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetLocationFailed, err)
	}
	listings, err := tx.ListForSale(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListForSaleFailed, err)
	}
	return listings, nil
}
