package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxWalletCredit is the upper bound of the wallet boundary invariant.
// A wallet's credit must stay within [0, MaxWalletCredit] at all times.
var MaxWalletCredit = decimal.NewFromInt(1_000_000)

// Wallet holds the cached credit balance for one user. The credit column is
// derived state: it always equals the signed sum of the user's records after
// a successful batch commit, but validation never trusts it over a fresh
// recomputation from the records table.
type Wallet struct {
	User      string
	Credit    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
