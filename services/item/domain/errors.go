package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	// Stores report a read miss as (nil, false, nil); the application layer
	// converts it to this error where a caller needs one.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItem indicates the item fields violate domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrGeneratedKeyMissing indicates the database returned no identifier
	// for an inserted row. Save treats this as fatal.
	ErrGeneratedKeyMissing = errors.New("generated key missing")
)
