package domain

import "errors"

var (
	// Record errors
	ErrRecordNotFound       = errors.New("record not found")
	ErrRecordAmountExceeded = errors.New("record amount cannot be greater than 1000")
	ErrNegativeAmount       = errors.New("record amount cannot be negative")
	ErrInvalidKind          = errors.New("record kind must be CREDITOR or DEBTOR")
	ErrMissingUser          = errors.New("record user cannot be empty")
	ErrInvalidField         = errors.New("invalid record field")
	ErrEmptyBatch           = errors.New("batch contains no records")

	// Wallet errors
	ErrWalletNotFound = errors.New("wallet not found")

	// Locking errors
	ErrLockTimeout = errors.New("wallet row is locked by another transaction")
)
