package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/snw/walletd/internal/domain"
)

// WalletRepository defines data access for wallets.
type WalletRepository interface {
	GetByUser(ctx context.Context, user string) (*domain.Wallet, error)
	// LockByUsers acquires FOR UPDATE locks on the wallet rows of the given
	// users. Users without a wallet row are silently skipped; the insert that
	// creates them happens inside the same transaction.
	LockByUsers(ctx context.Context, tx Transaction, users []string) error
	Upsert(ctx context.Context, tx Transaction, wallet *domain.Wallet) (*domain.Wallet, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Wallet, error)
}

// RecordRepository defines data access for financial records.
type RecordRepository interface {
	Create(ctx context.Context, record *domain.Record) error
	CreateBatch(ctx context.Context, tx Transaction, records []*domain.Record) error
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Record, error)
	GetByUser(ctx context.Context, user string) ([]*domain.Record, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Record, error)
	Update(ctx context.Context, tx Transaction, record *domain.Record) error
	Delete(ctx context.Context, tx Transaction, id string) error
	// SumByUser recomputes every user's balance from the records table,
	// CREDITOR amounts positive and DEBTOR amounts negative. Users with no
	// records are absent from the result.
	SumByUser(ctx context.Context, tx Transaction) (map[string]decimal.Decimal, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// EventPublisher publishes domain events after successful commits.
type EventPublisher interface {
	PublishBatchCommitted(ctx context.Context, event domain.BatchCommitted) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
