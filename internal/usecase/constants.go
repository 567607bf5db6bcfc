package usecase

import "time"

const (
	// DefaultLockTimeout caps how long a batch waits for wallet row locks
	// before the store aborts the acquiring statement.
	DefaultLockTimeout = 5 * time.Second

	// DefaultPageSize is used when a list request omits a limit.
	DefaultPageSize = 20

	// MaxPageSize caps list request page sizes.
	MaxPageSize = 100
)
