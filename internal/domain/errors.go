package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// The messages are shown to players verbatim, so keep them readable.
const (
	// Kind messages
	ErrMsgValidation        = "invalid input"
	ErrMsgNotFound          = "not found"
	ErrMsgConflict          = "conflict"
	ErrMsgInsufficientStock = "There isn't enough in stock"
	ErrMsgInsufficientFunds = "You don't have enough money"

	// Specific errors
	ErrMsgNameRequired            = "Please provide a name, like: /start Almond"
	ErrMsgIdentityRequired        = "An external identity is required"
	ErrMsgIdentityTaken           = "You are already registered"
	ErrMsgEntityNotFound          = "No such player!"
	ErrMsgNoStartLocation         = "No starting locations found"
	ErrMsgMultipleStartLocations  = "No unique starting location found"
	ErrMsgLocationNotFound        = "No such location"
	ErrMsgItemNotFound            = "No such item"
	ErrMsgInventoryRecordNotFound = "No such item for sale"
	ErrMsgNotForSale              = "That is not for sale"
	ErrMsgOwnStock                = "You can't buy your own stock"
	ErrMsgInvalidQuantity         = "Quantity must be at least 1"
	ErrMsgMessageRequired         = "Please say something, like: /say Hello"
	ErrMsgMessageTooLong          = "That message is too long"
	ErrMsgNameTooLong             = "That name is too long"
)

// Error kinds. Every error the core returns unwraps to exactly one of these,
// so callers can branch with errors.Is(err, domain.ErrNotFound).
var (
	ErrValidation        = errors.New(ErrMsgValidation)
	ErrNotFound          = errors.New(ErrMsgNotFound)
	ErrConflict          = errors.New(ErrMsgConflict)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
)

// Specific domain errors. Error() returns the player-facing message and
// Unwrap() returns the kind.
var (
	// Directory errors
	ErrNameRequired           = newError(ErrValidation, ErrMsgNameRequired)
	ErrNameTooLong            = newError(ErrValidation, ErrMsgNameTooLong)
	ErrIdentityRequired       = newError(ErrValidation, ErrMsgIdentityRequired)
	ErrIdentityTaken          = newError(ErrConflict, ErrMsgIdentityTaken)
	ErrEntityNotFound         = newError(ErrNotFound, ErrMsgEntityNotFound)
	ErrNoStartLocation        = newError(ErrNotFound, ErrMsgNoStartLocation)
	ErrMultipleStartLocations = newError(ErrNotFound, ErrMsgMultipleStartLocations)

	// Catalog errors
	ErrLocationNotFound = newError(ErrNotFound, ErrMsgLocationNotFound)
	ErrItemNotFound     = newError(ErrNotFound, ErrMsgItemNotFound)

	// Ledger and economy errors
	ErrInventoryRecordNotFound = newError(ErrNotFound, ErrMsgInventoryRecordNotFound)
	ErrNotForSale              = newError(ErrValidation, ErrMsgNotForSale)
	ErrOwnStock                = newError(ErrValidation, ErrMsgOwnStock)
	ErrInvalidQuantity         = newError(ErrValidation, ErrMsgInvalidQuantity)

	// Chat errors
	ErrMessageRequired = newError(ErrValidation, ErrMsgMessageRequired)
	ErrMessageTooLong  = newError(ErrValidation, ErrMsgMessageTooLong)
)

// Error is a domain error with a display message and a kind.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

// Unwrap returns the error kind
func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the kind sentinel of err, or nil when err is not a domain error.
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrInsufficientStock, ErrInsufficientFunds} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// UserMessage extracts the player-facing message from err. Internal faults
// collapse to a generic message.
func UserMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Error()
	}
	if kind := Kind(err); kind != nil {
		return kind.Error()
	}
	return ErrMsgSomethingWentWrong
}

// ErrMsgSomethingWentWrong is shown for faults outside the error taxonomy.
const ErrMsgSomethingWentWrong = "Something went wrong, please try again later"
