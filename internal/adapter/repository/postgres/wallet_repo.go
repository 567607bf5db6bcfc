package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/snw/walletd/internal/domain"
	"github.com/snw/walletd/internal/infrastructure/postgres/generated"
	"github.com/snw/walletd/internal/usecase"
)

// PostgreSQL error code returned when lock_timeout expires.
const pgErrLockNotAvailable = "55P03"

// WalletRepository implements usecase.WalletRepository.
type WalletRepository struct {
	pool        *pgxpool.Pool
	queries     *generated.Queries
	lockTimeout time.Duration
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(pool *pgxpool.Pool, lockTimeout time.Duration) *WalletRepository {
	if lockTimeout <= 0 {
		lockTimeout = usecase.DefaultLockTimeout
	}

	return &WalletRepository{
		pool:        pool,
		queries:     generated.New(pool),
		lockTimeout: lockTimeout,
	}
}

// GetByUser retrieves a wallet by its user identifier.
func (r *WalletRepository) GetByUser(ctx context.Context, user string) (*domain.Wallet, error) {
	row, err := r.queries.GetWalletByUser(ctx, user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}

		return nil, err
	}

	return rowToWallet(row), nil
}

// LockByUsers acquires FOR UPDATE locks on the wallet rows of the given
// users. Users without a wallet row yet are simply not returned by the
// query; their rows are created by Upsert inside the same transaction.
// A lock wait exceeding the configured timeout maps to domain.ErrLockTimeout.
func (r *WalletRepository) LockByUsers(ctx context.Context, tx usecase.Transaction, users []string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	// lock_timeout does not accept bind parameters.
	setTimeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
	if _, err := pgxTx.Exec(ctx, setTimeout); err != nil {
		return err
	}

	if _, err := queries.LockWalletsByUsers(ctx, users); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrLockNotAvailable {
			return domain.ErrLockTimeout
		}

		return err
	}

	return nil
}

// Upsert inserts a wallet row or replaces its credit if the user already has one.
func (r *WalletRepository) Upsert(ctx context.Context, tx usecase.Transaction, wallet *domain.Wallet) (*domain.Wallet, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.UpsertWallet(ctx, generated.UpsertWalletParams{
		User:      wallet.User,
		Credit:    decimalToNumeric(wallet.Credit),
		CreatedAt: timeToPgTimestamptz(wallet.CreatedAt),
		UpdatedAt: timeToPgTimestamptz(wallet.UpdatedAt),
	})
	if err != nil {
		return nil, err
	}

	return rowToWallet(row), nil
}

// List lists wallets with pagination, ordered by user.
func (r *WalletRepository) List(ctx context.Context, limit, offset int) ([]*domain.Wallet, error) {
	rows, err := r.queries.ListWallets(ctx, generated.ListWalletsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	wallets := make([]*domain.Wallet, 0, len(rows))
	for _, row := range rows {
		wallets = append(wallets, rowToWallet(row))
	}

	return wallets, nil
}

func rowToWallet(row generated.Wallet) *domain.Wallet {
	return &domain.Wallet{
		User:      row.User,
		Credit:    numericToDecimal(row.Credit),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
