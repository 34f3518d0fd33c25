package economy

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/event"
	"github.com/osse101/ShopBot_Go/internal/inventory"
	"github.com/osse101/ShopBot_Go/internal/logger"
	"github.com/osse101/ShopBot_Go/internal/repository"
)

// Service defines the interface for economy operations
type Service interface {
	Purchase(ctx context.Context, buyerID, inventoryRecordID int64, quantity int) (*domain.PurchaseResult, error)
}

type service struct {
	repo repository.Economy
	bus  event.Bus
}

// NewService creates a new economy service. bus may be nil.
func NewService(repo repository.Economy, bus event.Bus) Service {
	return &service{
		repo: repo,
		bus:  bus,
	}
}

// Purchase moves quantity units of a shop's inventory record into the buyer's
// backpack and debits price × quantity from the buyer. Everything happens in
// one transaction; the record row is locked before the buyer row.
func (s *service) Purchase(ctx context.Context, buyerID, inventoryRecordID int64, quantity int) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "buyer_id", buyerID, "inventory_record_id", inventoryRecordID, "quantity", quantity)

	// 1. Validate request
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	// 2. Begin transaction
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 3. Lock and check the stock
	record, err := tx.GetInventoryRecordForUpdate(ctx, inventoryRecordID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryRecordFailed, inventoryRecordID, err)
	}
	if !record.ForSale() {
		return nil, domain.ErrNotForSale
	}
	// Debit and credit would land on the same row
	if record.EntityID == buyerID {
		return nil, domain.ErrOwnStock
	}
	if record.Quantity < quantity {
		log.Info(LogMsgPurchaseRejectedStock, "available", record.Quantity, "requested", quantity)
		return nil, domain.ErrInsufficientStock
	}

	item, err := tx.GetItem(ctx, record.ItemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, record.ItemID, err)
	}

	unitPrice := *record.Price
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	// 4. Lock and check the buyer
	buyer, err := tx.GetEntityForUpdate(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetBuyerFailed, buyerID, err)
	}
	if buyer.Money.LessThan(total) {
		log.Info(LogMsgPurchaseRejectedFunds, "money", buyer.Money, "total", total)
		return nil, domain.ErrInsufficientFunds
	}

	// 5. Apply. The seller is not credited.
	stockRemaining := record.Quantity - quantity
	if err := tx.UpdateInventoryQuantity(ctx, record.ID, stockRemaining); err != nil {
		return nil, fmt.Errorf(ErrMsgDebitStockFailed, err)
	}
	moneyRemaining := buyer.Money.Sub(total)
	if err := tx.UpdateEntityMoney(ctx, buyer.ID, moneyRemaining); err != nil {
		return nil, fmt.Errorf(ErrMsgDebitMoneyFailed, err)
	}
	if err := inventory.TransferTx(ctx, tx, buyer.ID, record.ItemID, quantity); err != nil {
		return nil, fmt.Errorf(ErrMsgCreditBuyerFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	result := &domain.PurchaseResult{
		BuyerID:           buyer.ID,
		InventoryRecordID: record.ID,
		Item:              *item,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		Total:             total,
		MoneyRemaining:    moneyRemaining,
		StockRemaining:    stockRemaining,
	}

	event.PublishBestEffort(ctx, s.bus, event.NewPurchaseCompletedEvent(result), log)

	log.Info(LogMsgItemPurchased, "buyer_id", buyer.ID, "item", item.Name, "quantity", quantity, "total", total)
	return result, nil
}
