package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/snw/walletd/internal/domain"
)

// RecordUseCase handles single-record operations. These bypass the
// reconciliation engine and carry no cross-record invariant.
type RecordUseCase struct {
	txManager  TransactionManager
	recordRepo RecordRepository
	idGen      IDGenerator
	retrier    Retrier
}

// NewRecordUseCase creates a new RecordUseCase. retrier may be nil.
func NewRecordUseCase(
	txManager TransactionManager,
	recordRepo RecordRepository,
	idGen IDGenerator,
	retrier Retrier,
) *RecordUseCase {
	return &RecordUseCase{
		txManager:  txManager,
		recordRepo: recordRepo,
		idGen:      idGen,
		retrier:    retrier,
	}
}

// CreateRecordInput represents input for creating a record.
type CreateRecordInput struct {
	User   string
	Kind   domain.Kind
	Amount decimal.Decimal
}

// CreateRecord creates a single record.
func (uc *RecordUseCase) CreateRecord(ctx context.Context, input CreateRecordInput) (*domain.Record, error) {
	record := &domain.Record{
		ID:        uc.idGen.Generate(),
		User:      input.User,
		Kind:      input.Kind,
		Amount:    input.Amount,
		CreatedAt: time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// GetRecord retrieves a record by ID.
func (uc *RecordUseCase) GetRecord(ctx context.Context, id string) (*domain.Record, error) {
	return uc.recordRepo.GetByID(ctx, id)
}

// GetRecordsByUser lists all records belonging to a user.
func (uc *RecordUseCase) GetRecordsByUser(ctx context.Context, user string) ([]*domain.Record, error) {
	return uc.recordRepo.GetByUser(ctx, user)
}

// ListRecords lists records with pagination.
func (uc *RecordUseCase) ListRecords(ctx context.Context, limit, offset int) ([]*domain.Record, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return uc.recordRepo.List(ctx, limit, offset)
}

// UpdateRecordInput represents input for replacing a record's mutable fields.
type UpdateRecordInput struct {
	User   string
	Kind   domain.Kind
	Amount decimal.Decimal
}

// UpdateRecord replaces a record's user, kind and amount. The row is locked
// before the write so concurrent updates serialize.
func (uc *RecordUseCase) UpdateRecord(ctx context.Context, id string, input UpdateRecordInput) (*domain.Record, error) {
	var updated *domain.Record

	err := uc.withRetry(ctx, func() error {
		return uc.inTx(ctx, func(tx Transaction) error {
			record, err := uc.recordRepo.GetByIDForUpdate(ctx, tx, id)
			if err != nil {
				return err
			}

			record.User = input.User
			record.Kind = input.Kind
			record.Amount = input.Amount

			if err := record.Validate(); err != nil {
				return err
			}

			if err := uc.recordRepo.Update(ctx, tx, record); err != nil {
				return err
			}

			updated = record

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// PartialUpdateRecord applies a field map to a record. Only "user" and
// "amount" are recognized.
func (uc *RecordUseCase) PartialUpdateRecord(ctx context.Context, id string, changes map[string]any) (*domain.Record, error) {
	var updated *domain.Record

	err := uc.withRetry(ctx, func() error {
		return uc.inTx(ctx, func(tx Transaction) error {
			record, err := uc.recordRepo.GetByIDForUpdate(ctx, tx, id)
			if err != nil {
				return err
			}

			for key, value := range changes {
				if err := applyChange(record, key, value); err != nil {
					return err
				}
			}

			if err := record.Validate(); err != nil {
				return err
			}

			if err := uc.recordRepo.Update(ctx, tx, record); err != nil {
				return err
			}

			updated = record

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteRecord deletes a record by ID, locking the row first.
func (uc *RecordUseCase) DeleteRecord(ctx context.Context, id string) error {
	return uc.withRetry(ctx, func() error {
		return uc.inTx(ctx, func(tx Transaction) error {
			if _, err := uc.recordRepo.GetByIDForUpdate(ctx, tx, id); err != nil {
				return err
			}

			return uc.recordRepo.Delete(ctx, tx, id)
		})
	})
}

func (uc *RecordUseCase) withRetry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}

	return uc.retrier.Retry(ctx, operation)
}

func (uc *RecordUseCase) inTx(ctx context.Context, fn func(tx Transaction) error) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func applyChange(record *domain.Record, key string, value any) error {
	switch key {
	case "user":
		user, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: user must be a string", domain.ErrInvalidField)
		}

		record.User = user
	case "amount":
		amount, err := decimalFromAny(value)
		if err != nil {
			return err
		}

		record.Amount = amount
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidField, key)
	}

	return nil
}

func decimalFromAny(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case string:
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: amount is not a valid decimal", domain.ErrInvalidField)
		}

		return amount, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: amount must be a string or number", domain.ErrInvalidField)
	}
}
