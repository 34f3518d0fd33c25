package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"

	// PgErrorCodeCheckViolation is raised when a CHECK constraint fails (negative money or quantity)
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetLocation         = "failed to get location"
	ErrMsgFailedToListLocations       = "failed to list locations"
	ErrMsgFailedToListStartLocations  = "failed to list start locations"
	ErrMsgFailedToCountLocations      = "failed to count locations"
	ErrMsgFailedToInsertLocation      = "failed to insert location"
	ErrMsgFailedToGetItem             = "failed to get item"
	ErrMsgFailedToInsertItem          = "failed to insert item"
	ErrMsgFailedToInsertInventoryItem = "failed to insert inventory record"
)

// Error Messages - Entity Operations
const (
	ErrMsgFailedToGetEntity            = "failed to get entity"
	ErrMsgFailedToGetEntityForUpdate   = "failed to get entity for update"
	ErrMsgFailedToGetEntityByIdentity  = "failed to get entity by identity"
	ErrMsgFailedToInsertEntity         = "failed to insert entity"
	ErrMsgFailedToUpdateEntityName     = "failed to update entity name"
	ErrMsgFailedToUpdateEntityLocation = "failed to update entity location"
	ErrMsgFailedToUpdateEntityMoney    = "failed to update entity money"
	ErrMsgFailedToListPlayers          = "failed to list players at location"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetInventoryRecord = "failed to get inventory record for update"
	ErrMsgFailedToGetHolding         = "failed to get holding for update"
	ErrMsgFailedToCreditHolding      = "failed to credit holding"
	ErrMsgFailedToUpdateQuantity     = "failed to update inventory quantity"
	ErrMsgFailedToListHoldings       = "failed to list holdings"
	ErrMsgFailedToListForSale        = "failed to list items for sale"
)

// Error Messages - Conversion Operations
const (
	ErrMsgInvalidNumeric     = "invalid numeric value"
	ErrMsgQuantityOutOfRange    = "quantity out of range"
)
