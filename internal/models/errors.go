package models

import "errors"

// Domain errors that can be returned by repositories and mappings
var (
	// ErrDuplicateTransaction indicates a ledger entry with the same
	// (reference, status) pair already exists, meaning the same gateway event
	// was delivered more than once.
	ErrDuplicateTransaction = errors.New("duplicate transaction")

	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrCartOrderConflict indicates the cart already has a placed order, so a
	// new authorization cannot start from it.
	ErrCartOrderConflict = errors.New("cart already has a placed order")

	// ErrUnmappedState indicates a gateway payment state outside the known set
	ErrUnmappedState = errors.New("unmapped gateway payment state")

	// ErrUnmappedEvent indicates a webhook event name outside the known set
	ErrUnmappedEvent = errors.New("unmapped webhook event")

	// ErrUnknownReference indicates a webhook referenced a payment id with no
	// matching local transaction.
	ErrUnknownReference = errors.New("unknown transaction reference")
)
