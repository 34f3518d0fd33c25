package economy

// ==================== Error Messages ====================

// Database operation error messages
const (
	ErrMsgBeginTransactionFailed   = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed  = "failed to commit transaction: %w"
	ErrMsgGetInventoryRecordFailed = "failed to lock inventory record %d: %w"
	ErrMsgGetBuyerFailed           = "failed to lock buyer %d: %w"
	ErrMsgGetItemFailed            = "failed to get item %d: %w"
	ErrMsgDebitStockFailed         = "failed to debit seller stock: %w"
	ErrMsgDebitMoneyFailed         = "failed to debit buyer money: %w"
	ErrMsgCreditBuyerFailed        = "failed to credit buyer inventory: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgPurchaseCalled        = "Purchase called"
	LogMsgItemPurchased         = "Item purchased"
	LogMsgPurchaseRejectedStock = "Purchase rejected, not enough stock"
	LogMsgPurchaseRejectedFunds = "Purchase rejected, not enough money"
)
