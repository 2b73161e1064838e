package utils

import "errors"

var (
	// Recoverable, user-facing conditions.
	ErrNoAvailablePurchase = errors.New("no purchase with remaining sessions for this duration")
	ErrAlreadyExhausted    = errors.New("purchase already exhausted")
	ErrInvalidDuration     = errors.New("duration is not one of the configured session durations")
	ErrNotOwner            = errors.New("only the owner may modify this record")
	ErrPurchaseInUse       = errors.New("purchase still has logged sessions")
	ErrEmailNotAllowed     = errors.New("email not allowed")
	ErrAccountInactive     = errors.New("account is deactivated")

	ErrRecordNotFound  = errors.New("record not found")
	ErrAccountNotFound = errors.New("account not found")

	// Internal failures.
	ErrDatabaseError      = errors.New("database error")
	ErrInvariantViolation = errors.New("session counter invariant violated")
)
