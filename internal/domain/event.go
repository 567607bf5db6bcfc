package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletBalance is a user/credit pair carried by events.
type WalletBalance struct {
	User   string          `json:"user"`
	Credit decimal.Decimal `json:"credit"`
}

// BatchCommitted is emitted after a batch of records has been durably
// committed together with its wallet updates.
type BatchCommitted struct {
	BatchID     string          `json:"batch_id"`
	RecordCount int             `json:"record_count"`
	Wallets     []WalletBalance `json:"wallets"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
