package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/snw/walletd/internal/domain"
	"github.com/snw/walletd/internal/infrastructure/postgres/generated"
	"github.com/snw/walletd/internal/usecase"
)

// RecordRepository implements usecase.RecordRepository.
type RecordRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a single record.
func (r *RecordRepository) Create(ctx context.Context, record *domain.Record) error {
	_, err := r.queries.CreateRecord(ctx, generated.CreateRecordParams{
		ID:        record.ID,
		User:      record.User,
		Kind:      string(record.Kind),
		Amount:    decimalToNumeric(record.Amount),
		CreatedAt: timeToPgTimestamptz(record.CreatedAt),
	})

	return err
}

// CreateBatch bulk-inserts records inside the given transaction using COPY.
func (r *RecordRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, records []*domain.Record) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows := make([]generated.BulkInsertRecordsParams, 0, len(records))
	for _, record := range records {
		rows = append(rows, generated.BulkInsertRecordsParams{
			ID:        record.ID,
			User:      record.User,
			Kind:      string(record.Kind),
			Amount:    decimalToNumeric(record.Amount),
			CreatedAt: timeToPgTimestamptz(record.CreatedAt),
		})
	}

	inserted, err := queries.BulkInsertRecords(ctx, rows)
	if err != nil {
		return err
	}

	if inserted != int64(len(records)) {
		return fmt.Errorf("bulk insert wrote %d of %d records", inserted, len(records))
	}

	return nil
}

// GetByID retrieves a record by ID.
func (r *RecordRepository) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	row, err := r.queries.GetRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return rowToRecord(row), nil
}

// GetByIDForUpdate retrieves a record by ID with a FOR UPDATE lock.
func (r *RecordRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Record, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetRecordByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return rowToRecord(row), nil
}

// GetByUser retrieves all records of a user in insertion order.
func (r *RecordRepository) GetByUser(ctx context.Context, user string) ([]*domain.Record, error) {
	rows, err := r.queries.ListRecordsByUser(ctx, user)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToRecord(row))
	}

	return records, nil
}

// List lists records with pagination.
func (r *RecordRepository) List(ctx context.Context, limit, offset int) ([]*domain.Record, error) {
	rows, err := r.queries.ListRecords(ctx, generated.ListRecordsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	records := make([]*domain.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToRecord(row))
	}

	return records, nil
}

// Update rewrites the mutable fields of a record.
func (r *RecordRepository) Update(ctx context.Context, tx usecase.Transaction, record *domain.Record) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateRecord(ctx, generated.UpdateRecordParams{
		ID:     record.ID,
		User:   record.User,
		Kind:   string(record.Kind),
		Amount: decimalToNumeric(record.Amount),
	})
}

// Delete removes a record.
func (r *RecordRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteRecord(ctx, id)
}

// SumByUser recomputes every user's balance from the records table,
// counting CREDITOR amounts as positive and DEBTOR amounts as negative.
func (r *RecordRepository) SumByUser(ctx context.Context, tx usecase.Transaction) (map[string]decimal.Decimal, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows, err := queries.SumRecordsByUser(ctx)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[row.User] = numericToDecimal(row.Balance)
	}

	return sums, nil
}

func rowToRecord(row generated.Record) *domain.Record {
	return &domain.Record{
		ID:        row.ID,
		User:      row.User,
		Kind:      domain.Kind(row.Kind),
		Amount:    numericToDecimal(row.Amount),
		CreatedAt: row.CreatedAt.Time,
	}
}
