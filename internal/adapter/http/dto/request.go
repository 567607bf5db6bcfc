package dto

import (
	"github.com/shopspring/decimal"

	"github.com/snw/walletd/internal/domain"
	"github.com/snw/walletd/internal/usecase"
)

// BatchRecordRequest represents one record in a batch submission. The status
// field carries the accounting direction, CREDITOR or DEBTOR.
type BatchRecordRequest struct {
	User   string          `json:"user"`
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *BatchRecordRequest) ToUseCaseInput() usecase.BatchRecordInput {
	return usecase.BatchRecordInput{
		User:   r.User,
		Kind:   domain.Kind(r.Status),
		Amount: r.Amount,
	}
}

// BatchToUseCaseInputs converts a batch submission to use case inputs.
func BatchToUseCaseInputs(records []BatchRecordRequest) []usecase.BatchRecordInput {
	inputs := make([]usecase.BatchRecordInput, len(records))
	for i, r := range records {
		inputs[i] = r.ToUseCaseInput()
	}
	return inputs
}

// CreateRecordRequest represents a request to create a single record.
type CreateRecordRequest struct {
	User   string          `json:"user"`
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateRecordRequest) ToUseCaseInput() usecase.CreateRecordInput {
	return usecase.CreateRecordInput{
		User:   r.User,
		Kind:   domain.Kind(r.Status),
		Amount: r.Amount,
	}
}

// UpdateRecordRequest represents a request to replace a record's fields.
type UpdateRecordRequest struct {
	User   string          `json:"user"`
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateRecordRequest) ToUseCaseInput() usecase.UpdateRecordInput {
	return usecase.UpdateRecordInput{
		User:   r.User,
		Kind:   domain.Kind(r.Status),
		Amount: r.Amount,
	}
}
