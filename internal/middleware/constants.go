package middleware

// URL parameter names
const (
	URLParamEntityID   = "entityID"
	URLParamLocationID = "locationID"
)

// Error messages written by the middleware
const (
	ErrMsgInvalidEntityID   = "Invalid entity ID"
	ErrMsgInvalidLocationID = "Invalid location ID"
)

// Log messages
const (
	LogMsgInvalidIDParam = "Invalid id path parameter"
)
