package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/snw/walletd/internal/domain"
)

// WalletResponse represents a wallet in API responses.
type WalletResponse struct {
	User      string          `json:"user"`
	Credit    decimal.Decimal `json:"credit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WalletFromDomain converts a domain wallet to a response.
func WalletFromDomain(w *domain.Wallet) *WalletResponse {
	return &WalletResponse{
		User:      w.User,
		Credit:    w.Credit,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// WalletsFromDomain converts domain wallets to responses.
func WalletsFromDomain(wallets []*domain.Wallet) []*WalletResponse {
	result := make([]*WalletResponse, len(wallets))
	for i, w := range wallets {
		result[i] = WalletFromDomain(w)
	}
	return result
}

// RecordResponse represents a record in API responses.
type RecordResponse struct {
	ID        string          `json:"id"`
	User      string          `json:"user"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// RecordFromDomain converts a domain record to a response.
func RecordFromDomain(r *domain.Record) *RecordResponse {
	return &RecordResponse{
		ID:        r.ID,
		User:      r.User,
		Status:    string(r.Kind),
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt,
	}
}

// RecordsFromDomain converts domain records to responses.
func RecordsFromDomain(records []*domain.Record) []*RecordResponse {
	result := make([]*RecordResponse, len(records))
	for i, r := range records {
		result[i] = RecordFromDomain(r)
	}
	return result
}

// ListRecordsResponse represents one page of records.
type ListRecordsResponse struct {
	Records []*RecordResponse `json:"records"`
}

// ListWalletsResponse represents one page of wallets.
type ListWalletsResponse struct {
	Wallets []*WalletResponse `json:"wallets"`
}

// ErrorResponse represents an error in API responses. Violations is populated
// only for boundary rejections and maps each user to the violated constraints.
type ErrorResponse struct {
	Error      string              `json:"error"`
	Message    string              `json:"message,omitempty"`
	Violations map[string][]string `json:"violations,omitempty"`
}
