package world

// Error format strings
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetEntityFailed         = "failed to get entity: %w"
	ErrMsgGetLocationFailed       = "failed to get location: %w"
	ErrMsgListLocationsFailed     = "failed to list locations: %w"
	ErrMsgListPlayersFailed       = "failed to list players: %w"
	ErrMsgMoveFailed              = "failed to move entity %d to location %d: %w"
)

// Log messages
const (
	LogMsgMoveCalled  = "Move called"
	LogMsgEntityMoved = "Entity moved"
)
