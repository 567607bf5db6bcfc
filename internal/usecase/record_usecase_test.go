package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/snw/walletd/internal/domain"
	"github.com/snw/walletd/internal/usecase"
	"github.com/snw/walletd/internal/usecase/mocks"
)

func newRecordUseCase(t *testing.T) (*usecase.RecordUseCase, *mocks.MockRecordRepository, *mocks.MockTransactionManager) {
	t.Helper()

	recordRepo := mocks.NewMockRecordRepository()
	txMgr := mocks.NewMockTransactionManager()
	idGen := mocks.NewMockIDGenerator()

	uc := usecase.NewRecordUseCase(txMgr, recordRepo, idGen, nil)

	return uc, recordRepo, txMgr
}

func TestRecordUseCase_CreateRecord(t *testing.T) {
	uc, recordRepo, _ := newRecordUseCase(t)

	record, err := uc.CreateRecord(context.Background(), usecase.CreateRecordInput{
		User:   "user1",
		Kind:   domain.KindCreditor,
		Amount: decimal.RequireFromString("12.50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.ID == "" {
		t.Error("expected generated ID")
	}

	if recordRepo.Count() != 1 {
		t.Errorf("expected 1 stored record, got %d", recordRepo.Count())
	}
}

func TestRecordUseCase_CreateRecordValidation(t *testing.T) {
	uc, recordRepo, _ := newRecordUseCase(t)

	tests := []struct {
		name    string
		input   usecase.CreateRecordInput
		wantErr error
	}{
		{
			name:    "amount over cap",
			input:   usecase.CreateRecordInput{User: "u", Kind: domain.KindCreditor, Amount: decimal.NewFromInt(1001)},
			wantErr: domain.ErrRecordAmountExceeded,
		},
		{
			name:    "invalid kind",
			input:   usecase.CreateRecordInput{User: "u", Kind: "HOLD", Amount: decimal.NewFromInt(1)},
			wantErr: domain.ErrInvalidKind,
		},
		{
			name:    "missing user",
			input:   usecase.CreateRecordInput{Kind: domain.KindDebtor, Amount: decimal.NewFromInt(1)},
			wantErr: domain.ErrMissingUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateRecord(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if recordRepo.Count() != 0 {
		t.Errorf("expected no records stored, got %d", recordRepo.Count())
	}
}

func TestRecordUseCase_UpdateRecord(t *testing.T) {
	uc, recordRepo, txMgr := newRecordUseCase(t)

	recordRepo.Create(context.Background(), &domain.Record{
		ID: "rec-1", User: "user1", Kind: domain.KindCreditor, Amount: decimal.NewFromInt(10),
	})

	updated, err := uc.UpdateRecord(context.Background(), "rec-1", usecase.UpdateRecordInput{
		User:   "user2",
		Kind:   domain.KindDebtor,
		Amount: decimal.NewFromInt(20),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.User != "user2" || updated.Kind != domain.KindDebtor {
		t.Errorf("unexpected record after update: %+v", updated)
	}

	if len(txMgr.Transactions) != 1 || !txMgr.Transactions[0].Committed {
		t.Error("expected a committed transaction")
	}
}

func TestRecordUseCase_UpdateMissingRecord(t *testing.T) {
	uc, _, txMgr := newRecordUseCase(t)

	_, err := uc.UpdateRecord(context.Background(), "ghost", usecase.UpdateRecordInput{
		User: "user1", Kind: domain.KindCreditor, Amount: decimal.NewFromInt(1),
	})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	if len(txMgr.Transactions) != 1 || !txMgr.Transactions[0].RolledBack {
		t.Error("expected rollback when the record is missing")
	}
}

func TestRecordUseCase_PartialUpdateRecord(t *testing.T) {
	uc, recordRepo, _ := newRecordUseCase(t)

	recordRepo.Create(context.Background(), &domain.Record{
		ID: "rec-1", User: "user1", Kind: domain.KindCreditor, Amount: decimal.NewFromInt(10),
	})

	t.Run("updates known fields", func(t *testing.T) {
		updated, err := uc.PartialUpdateRecord(context.Background(), "rec-1", map[string]any{
			"user":   "user9",
			"amount": "42.25",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if updated.User != "user9" || !updated.Amount.Equal(decimal.RequireFromString("42.25")) {
			t.Errorf("unexpected record after patch: %+v", updated)
		}
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		_, err := uc.PartialUpdateRecord(context.Background(), "rec-1", map[string]any{
			"kind": "DEBTOR",
		})
		if !errors.Is(err, domain.ErrInvalidField) {
			t.Fatalf("expected ErrInvalidField, got %v", err)
		}
	})

	t.Run("rejects malformed amount", func(t *testing.T) {
		_, err := uc.PartialUpdateRecord(context.Background(), "rec-1", map[string]any{
			"amount": "not-a-number",
		})
		if !errors.Is(err, domain.ErrInvalidField) {
			t.Fatalf("expected ErrInvalidField, got %v", err)
		}
	})
}

func TestRecordUseCase_DeleteRecord(t *testing.T) {
	uc, recordRepo, _ := newRecordUseCase(t)

	recordRepo.Create(context.Background(), &domain.Record{
		ID: "rec-1", User: "user1", Kind: domain.KindCreditor, Amount: decimal.NewFromInt(10),
	})

	if err := uc.DeleteRecord(context.Background(), "rec-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if recordRepo.Count() != 0 {
		t.Error("expected record to be deleted")
	}

	if err := uc.DeleteRecord(context.Background(), "rec-1"); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on second delete, got %v", err)
	}
}

func TestRecordUseCase_UpdateUsesRetrier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordRepo := mocks.NewMockRecordRepository()
	txMgr := mocks.NewMockTransactionManager()
	idGen := mocks.NewMockIDGenerator()
	retrier := mocks.NewMockRetrier(ctrl)

	retrier.EXPECT().Retry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, operation func() error) error {
			return operation()
		})

	recordRepo.Create(context.Background(), &domain.Record{
		ID: "rec-1", User: "user1", Kind: domain.KindCreditor, Amount: decimal.NewFromInt(10),
	})

	uc := usecase.NewRecordUseCase(txMgr, recordRepo, idGen, retrier)

	if _, err := uc.UpdateRecord(context.Background(), "rec-1", usecase.UpdateRecordInput{
		User: "user1", Kind: domain.KindCreditor, Amount: decimal.NewFromInt(11),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecordUseCase_ListRecordsClampsLimit(t *testing.T) {
	recordRepo := mocks.NewMockRecordRepository()
	txMgr := mocks.NewMockTransactionManager()
	idGen := mocks.NewMockIDGenerator()

	var gotLimit int
	recordRepo.ListFunc = func(ctx context.Context, limit, offset int) ([]*domain.Record, error) {
		gotLimit = limit
		return nil, nil
	}

	uc := usecase.NewRecordUseCase(txMgr, recordRepo, idGen, nil)

	if _, err := uc.ListRecords(context.Background(), 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != usecase.DefaultPageSize {
		t.Errorf("expected default limit %d, got %d", usecase.DefaultPageSize, gotLimit)
	}

	if _, err := uc.ListRecords(context.Background(), 10_000, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != usecase.MaxPageSize {
		t.Errorf("expected clamped limit %d, got %d", usecase.MaxPageSize, gotLimit)
	}
}
