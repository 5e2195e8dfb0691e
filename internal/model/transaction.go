package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money entering from money leaving an account.
type TransactionType string

const (
	// TypeIncome is money entering the account.
	TypeIncome TransactionType = "income"
	// TypeExpense is money leaving the account.
	TypeExpense TransactionType = "expense"
)

// TransactionStatus reflects backend settlement state.
type TransactionStatus string

const (
	// StatusCompleted indicates a settled transaction.
	StatusCompleted TransactionStatus = "completed"
	// StatusPending indicates an unsettled transaction.
	StatusPending TransactionStatus = "pending"
	// StatusFailed indicates a rejected transaction.
	StatusFailed TransactionStatus = "failed"
)

// Transaction represents a single ledger entry on an account.
type Transaction struct {
	ID          string            `json:"id"`
	AccountID   string            `json:"account_id"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Amount      decimal.Decimal   `json:"amount"`
	ReferenceID string            `json:"reference_id,omitempty"`
}

// Signed returns the amount with expenses negated, for summation.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks the invariants the cache and exporters rely on.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if t.AccountID == "" {
		return fmt.Errorf("transaction %s: account ID is required", t.ID)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction %s: date is required", t.ID)
	}
	switch t.Type {
	case TypeIncome, TypeExpense:
	default:
		return fmt.Errorf("transaction %s: unknown type %q", t.ID, t.Type)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction %s: amount must be non-negative", t.ID)
	}
	return nil
}
