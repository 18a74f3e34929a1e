package domain

import "errors"

// Sentinel errors shared across services. Controllers map these to HTTP
// status codes; anything else is treated as an internal error.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Swap engine errors.
var (
	// ErrNotOwned is returned when the offered slot is not owned by the requester.
	ErrNotOwned = errors.New("slot not owned by caller")
	// ErrNotSwappable is returned when a referenced slot is not in SWAPPABLE status.
	ErrNotSwappable = errors.New("slot is not available for swapping")
	// ErrSelfSwap is returned when a proposal targets the requester's own slot.
	ErrSelfSwap = errors.New("cannot swap with your own slot")
	// ErrNotPending is returned when responding to an already resolved request.
	ErrNotPending = errors.New("swap request already resolved")
	// ErrInvalidTransition is returned for status changes the owner may not make
	// (anything touching SWAP_PENDING, which only the engine assigns).
	ErrInvalidTransition = errors.New("invalid slot status transition")
	// ErrConflict is returned when a concurrent transaction won the race on the
	// same rows. The engine does not retry; retry policy belongs to the caller.
	ErrConflict = errors.New("conflicting concurrent update")
	// ErrIntegrity is returned when a slot referenced by a swap request no
	// longer exists. Fatal: logged and never retried.
	ErrIntegrity = errors.New("swap request references a missing slot")
)
