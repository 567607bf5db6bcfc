package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/snw/walletd/internal/domain"
)

// WalletUseCase is the ledger reconciliation engine. It turns batches of
// signed records into wallet credit updates, enforcing the [0, 1,000,000]
// boundary invariant under concurrent batches.
type WalletUseCase struct {
	txManager  TransactionManager
	walletRepo WalletRepository
	recordRepo RecordRepository
	idGen      IDGenerator
	publisher  EventPublisher
}

// NewWalletUseCase creates a new WalletUseCase. publisher may be nil.
func NewWalletUseCase(
	txManager TransactionManager,
	walletRepo WalletRepository,
	recordRepo RecordRepository,
	idGen IDGenerator,
	publisher EventPublisher,
) *WalletUseCase {
	return &WalletUseCase{
		txManager:  txManager,
		walletRepo: walletRepo,
		recordRepo: recordRepo,
		idGen:      idGen,
		publisher:  publisher,
	}
}

// BatchRecordInput is one draft record in a batch submission.
type BatchRecordInput struct {
	User   string
	Kind   domain.Kind
	Amount decimal.Decimal
}

// ReconcileBatch applies a batch of records atomically: it aggregates the
// batch per user, locks the affected wallets, recomputes authoritative
// balances from the records table, validates the boundary invariant for
// every user, and commits the wallet updates together with the new records.
// On any error nothing is written.
func (uc *WalletUseCase) ReconcileBatch(ctx context.Context, inputs []BatchRecordInput) ([]*domain.Wallet, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	// 0. Per-record validation before any locking. A single over-cap amount
	// fails the whole batch up front.
	now := time.Now().UTC()

	drafts := make([]*domain.Record, len(inputs))
	for i, in := range inputs {
		record := &domain.Record{
			User:      in.User,
			Kind:      in.Kind,
			Amount:    in.Amount,
			CreatedAt: now,
		}

		if err := record.Validate(); err != nil {
			return nil, err
		}

		drafts[i] = record
	}

	// 1. Aggregate to one net delta per user, folding in batch order.
	deltas := aggregateByUser(drafts)

	// 2. Sort the affected users (DEADLOCK PREVENTION): every concurrent
	// batch locks shared wallets in the same order.
	users := make([]string, 0, len(deltas))
	for user := range deltas {
		users = append(users, user)
	}
	sort.Strings(users)

	// 3. Begin transaction; locks are released on commit or rollback.
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.walletRepo.LockByUsers(ctx, tx, users); err != nil {
		return nil, err
	}

	// 4. Recompute authoritative balances from the records table. The cached
	// wallet credit is never an input to the boundary check.
	balances, err := uc.recordRepo.SumByUser(ctx, tx)
	if err != nil {
		return nil, err
	}

	// 5. Validate every user, accumulating all violations.
	if err := checkBoundaries(deltas, balances); err != nil {
		return nil, err
	}

	// 6. Commit: upsert wallets to prior + delta, then persist the records.
	wallets := make([]*domain.Wallet, 0, len(users))
	for _, user := range users {
		prior := balances[user] // zero value when the user has no records

		wallet, err := uc.walletRepo.Upsert(ctx, tx, &domain.Wallet{
			User:      user,
			Credit:    prior.Add(deltas[user]),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, err
		}

		wallets = append(wallets, wallet)
	}

	for _, record := range drafts {
		record.ID = uc.idGen.Generate()
	}

	if err := uc.recordRepo.CreateBatch(ctx, tx, drafts); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.publishCommitted(ctx, wallets, len(drafts))

	return wallets, nil
}

// GetWallet returns the cached wallet for a user.
func (uc *WalletUseCase) GetWallet(ctx context.Context, user string) (*domain.Wallet, error) {
	return uc.walletRepo.GetByUser(ctx, user)
}

// ListWallets lists wallets with pagination.
func (uc *WalletUseCase) ListWallets(ctx context.Context, limit, offset int) ([]*domain.Wallet, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return uc.walletRepo.List(ctx, limit, offset)
}

func (uc *WalletUseCase) publishCommitted(ctx context.Context, wallets []*domain.Wallet, recordCount int) {
	if uc.publisher == nil {
		return
	}

	event := domain.BatchCommitted{
		BatchID:     uc.idGen.Generate(),
		RecordCount: recordCount,
		Wallets:     make([]domain.WalletBalance, 0, len(wallets)),
		OccurredAt:  time.Now().UTC(),
	}
	for _, w := range wallets {
		event.Wallets = append(event.Wallets, domain.WalletBalance{User: w.User, Credit: w.Credit})
	}

	// Best effort: the batch is already durable, so a publish failure is
	// logged and not surfaced to the caller.
	if err := uc.publisher.PublishBatchCommitted(ctx, event); err != nil {
		log.Error().Err(err).Str("batch_id", event.BatchID).Msg("failed to publish batch committed event")
	}
}

// aggregateByUser folds the batch into one net delta per user, CREDITOR
// amounts adding and DEBTOR amounts subtracting in batch order.
func aggregateByUser(records []*domain.Record) map[string]decimal.Decimal {
	deltas := make(map[string]decimal.Decimal)
	for _, record := range records {
		deltas[record.User] = deltas[record.User].Add(record.SignedAmount())
	}

	return deltas
}

// checkBoundaries validates every user's proposed delta against the
// [0, 1,000,000] boundary and the reconciled prior balance. Violations are
// accumulated for all users before deciding, never short-circuited, so the
// caller sees the complete set in one response.
func checkBoundaries(deltas, balances map[string]decimal.Decimal) error {
	violations := make(map[string][]string)

	for user, delta := range deltas {
		var found []string

		prior, hasPrior := balances[user]

		// A net-negative batch can only draw against recorded history. The
		// raw sign check applies when there is no history to draw from.
		if !hasPrior && delta.IsNegative() {
			found = append(found, domain.ViolationMinBoundary)
		}

		if delta.GreaterThan(domain.MaxWalletCredit) {
			found = append(found, domain.ViolationMaxBoundary)
		}

		if hasPrior {
			// Two rejection modes share the minimum violation: the legacy
			// prior < delta comparison, kept for compatibility, and the
			// overdraft check that stops the credit from going below zero.
			if prior.LessThan(delta) || prior.Add(delta).IsNegative() {
				found = append(found, domain.ViolationMinBoundary)
			}

			if prior.Add(delta).GreaterThan(domain.MaxWalletCredit) {
				found = append(found, domain.ViolationMaxBoundary)
			}
		}

		if len(found) > 0 {
			violations[user] = found
		}
	}

	if len(violations) > 0 {
		return &domain.BoundaryError{Violations: violations}
	}

	return nil
}
