package inventory

// Error format strings
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetEntityFailed         = "failed to get entity: %w"
	ErrMsgGetItemFailed           = "failed to get item: %w"
	ErrMsgGetLocationFailed       = "failed to get location: %w"
	ErrMsgListHoldingsFailed      = "failed to list holdings: %w"
	ErrMsgListForSaleFailed       = "failed to list items for sale: %w"
	ErrMsgCreditFailed            = "failed to credit %d of item %d to entity %d: %w"
	ErrMsgDebitFailed             = "failed to debit %d of item %d from entity %d: %w"
	ErrMsgGetHoldingFailed        = "failed to get holding: %w"
)

// Log messages
const (
	LogMsgTransferCalled = "Transfer called"
	LogMsgTransferNoop   = "Transfer of zero is a no-op"
	LogMsgTransferDone   = "Inventory transferred"
)
