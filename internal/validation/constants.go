package validation

import "errors"

// ErrSchemaValidation is returned when a document does not match its schema
var ErrSchemaValidation = errors.New("schema validation failed")

const (
	ErrMsgParseSchemaFailed   = "failed to parse schema %s: %w"
	ErrMsgAddResourceFailed   = "failed to add schema resource %s: %w"
	ErrMsgCompileSchemaFailed = "failed to compile schema %s: %w"
	ErrMsgUnknownSchema       = "schema %s is not registered"
	ErrMsgParseDataFailed     = "failed to parse JSON data: %w"
)
