package catalog

// Embedded file names
const (
	CatalogFileName = "catalog.json"
	SchemaFileName  = "catalog.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgSchemaFailed       = "schema validation failed for %s: %w"
	ErrMsgAddSchemaFailed    = "failed to register catalog schema: %w"
)

// Validation error formats, used with ErrInvalidCatalog
const (
	ErrFmtNoLocations           = "%w: no locations defined"
	ErrFmtStartLocationCount    = "%w: expected exactly one start location, found %d"
	ErrFmtDuplicateLocation     = "%w: duplicate location id %d"
	ErrFmtDuplicateItem         = "%w: duplicate item id %d"
	ErrFmtUnknownLocation       = "%w: %s references unknown location %d"
	ErrFmtUnknownItem           = "%w: %s stocks unknown item %d"
	ErrFmtDuplicateStock        = "%w: %s stocks item %d twice"
	ErrFmtNegativePrice         = "%w: %s sells item %d at a negative price"
	ErrFmtNegativeQuantity      = "%w: %s stocks a negative quantity of item %d"
	ErrFmtDuplicateDevIdentity  = "%w: duplicate dev player identity %q"
	ErrFmtNegativeDevPlayerGold = "%w: dev player %q has negative money"
)

// Database operation error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgCountLocationsFailed    = "failed to count locations: %w"
	ErrMsgInsertLocationFailed    = "failed to insert location %d: %w"
	ErrMsgInsertItemFailed        = "failed to insert item %d: %w"
	ErrMsgInsertShopkeeperFailed  = "failed to insert shopkeeper '%s': %w"
	ErrMsgInsertStockFailed       = "failed to insert stock for '%s': %w"
	ErrMsgInsertDevPlayerFailed   = "failed to insert dev player '%s': %w"
	ErrMsgLookupDevPlayerFailed   = "failed to look up dev player '%s': %w"
)

// Log messages
const (
	LogMsgCatalogAlreadySeeded = "Catalog already seeded, skipping"
	LogMsgCatalogSeeded        = "Catalog seeded"
	LogMsgDevPlayerSeeded      = "Dev player seeded"
)
