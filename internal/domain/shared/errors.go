package shared

import "errors"

// Common errors shared by the money converter, account entity, and ledger service
var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance for withdrawal")
)
