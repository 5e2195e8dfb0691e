// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of bank account.
type AccountType string

const (
	// AccountTypeSavings is a savings account.
	AccountTypeSavings AccountType = "savings"
	// AccountTypeCurrent is a current (checking) account.
	AccountTypeCurrent AccountType = "current"
	// AccountTypeSalary is a salary account.
	AccountTypeSalary AccountType = "salary"
)

// Account represents a linked bank account as returned by the backend.
type Account struct {
	ID            string          `json:"id"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	MaskedAccount string          `json:"masked_account"`
	AccountType   AccountType     `json:"account_type"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

// LastFour returns the trailing four digits of the masked account number.
func (a Account) LastFour() string {
	masked := strings.TrimSpace(a.MaskedAccount)
	if len(masked) <= 4 {
		return masked
	}
	return masked[len(masked)-4:]
}

// DisplayName returns a short human-readable label for the account.
func (a Account) DisplayName() string {
	return fmt.Sprintf("%s ••••%s", a.BankName, a.LastFour())
}

// Validate checks that the account has the fields every caller relies on.
func (a Account) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("account ID is required")
	}
	if a.BankName == "" {
		return fmt.Errorf("account %s: bank name is required", a.ID)
	}
	return nil
}
