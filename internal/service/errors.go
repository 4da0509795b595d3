package service

import "errors"

// Failure taxonomy surfaced to callers. All are terminal for the call;
// nothing is retried on the caller's behalf.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrPaymentMismatch   = errors.New("payment total does not match final amount")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
)
