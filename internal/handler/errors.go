package handler

// Generic HTTP error messages for client responses.
// These do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgServiceError      = "Service error"
	LogMsgInternalError     = "Internal error"
	LogMsgMissingQueryParam = "Missing query parameter"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgPurchaseRequest   = "Purchase request"
)

// Operation names used in logs
const (
	OpRegister         = "Register"
	OpResolve          = "Resolve"
	OpRename           = "Rename"
	OpStatus           = "Status"
	OpListHoldings     = "List holdings"
	OpMove             = "Move"
	OpPurchase         = "Purchase"
	OpSay              = "Say"
	OpListLocations    = "List locations"
	OpDescribeLocation = "Describe location"
	OpWhoIsHere        = "Who is here"
)

// Success messages
const (
	MsgRenamed = "Name updated"
	MsgMoved   = "Moved"
)
