package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the accounting sign of a record.
type Kind string

const (
	// KindCreditor increases the owning user's wallet credit.
	KindCreditor Kind = "CREDITOR"
	// KindDebtor decreases the owning user's wallet credit.
	KindDebtor Kind = "DEBTOR"
)

// Valid reports whether k is a known accounting kind.
func (k Kind) Valid() bool {
	return k == KindCreditor || k == KindDebtor
}

// MaxRecordAmount is the hard cap on a single record's amount,
// independent of the cumulative wallet boundary.
var MaxRecordAmount = decimal.NewFromInt(1000)

// Record represents a single signed financial record belonging to a user.
// Records are immutable once committed by the reconciliation engine; only
// the standalone CRUD operations may touch individual rows afterwards.
type Record struct {
	CreatedAt time.Time
	ID        string
	User      string
	Kind      Kind
	Amount    decimal.Decimal
}

// Validate checks the record's fields against the per-record rules.
func (r *Record) Validate() error {
	if r.User == "" {
		return ErrMissingUser
	}

	if !r.Kind.Valid() {
		return ErrInvalidKind
	}

	if r.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if r.Amount.GreaterThan(MaxRecordAmount) {
		return ErrRecordAmountExceeded
	}

	return nil
}

// SignedAmount returns the amount with the accounting sign applied:
// positive for CREDITOR, negative for DEBTOR.
func (r *Record) SignedAmount() decimal.Decimal {
	if r.Kind == KindDebtor {
		return r.Amount.Neg()
	}

	return r.Amount
}
