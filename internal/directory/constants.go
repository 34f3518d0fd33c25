package directory

// Error format strings
const (
	ErrMsgBeginTransactionFailed   = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed  = "failed to commit transaction: %w"
	ErrMsgListStartLocationsFailed = "failed to list start locations: %w"
	ErrMsgInsertEntityFailed       = "failed to insert entity: %w"
	ErrMsgResolveFailed            = "failed to resolve identity: %w"
	ErrMsgRenameFailed             = "failed to rename entity: %w"
	ErrMsgGetEntityFailed          = "failed to get entity: %w"
)

// Log messages
const (
	LogMsgRegisterCalled   = "Register called"
	LogMsgEntityRegistered = "Entity registered"
	LogMsgResolveCalled    = "Resolve called"
	LogMsgRenameCalled     = "Rename called"
	LogMsgEntityRenamed    = "Entity renamed"
	LogMsgNoStartLocation  = "Registration failed, start location is not unique"
)
