// Package storage provides the local SQLite cache for the paisera client.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paisera/paisera/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidDateRange   = errors.New("start date must be before end date")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrInvalidBudget      = errors.New("invalid budget")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates a slice of transactions.
func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	for i, txn := range transactions {
		if err := txn.Validate(); err != nil {
			return fmt.Errorf("%w: index %d: %v", ErrInvalidTransaction, i, err)
		}
	}
	return nil
}

// validateAccounts validates a slice of accounts.
func validateAccounts(accounts []model.Account) error {
	if accounts == nil {
		return fmt.Errorf("%w: accounts", ErrNilParameter)
	}
	for i, acct := range accounts {
		if err := acct.Validate(); err != nil {
			return fmt.Errorf("%w: index %d: %v", ErrInvalidAccount, i, err)
		}
	}
	return nil
}

// validateBudget validates a single budget row.
func validateBudget(budget *model.Budget) error {
	if budget == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if budget.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidBudget)
	}
	if strings.TrimSpace(budget.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidBudget)
	}
	if budget.Month < 1 || budget.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidBudget, budget.Month)
	}
	return nil
}
