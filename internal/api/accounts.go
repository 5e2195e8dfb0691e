package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/paisera/paisera/internal/common"
	"github.com/paisera/paisera/internal/model"
)

// ListAccounts returns the user's linked bank accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := c.getWithRetry(ctx, "/accounts", nil, &accounts); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// DeleteAccount removes an account, authorized by the user's PIN.
// Per the backend contract, every rejection reads as an invalid PIN to the
// caller; transport failures are folded in as well so the gate shows one
// consistent message.
func (c *Client) DeleteAccount(ctx context.Context, accountID, pin string) error {
	body := struct {
		PIN string `json:"pin"`
	}{PIN: pin}

	err := c.do(ctx, http.MethodDelete, "/accounts/"+url.PathEscape(accountID), nil, body, nil)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return common.ErrInvalidPIN
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return common.ErrInvalidPIN
		}
		return common.NewUserError("Invalid PIN", err)
	}
	return nil
}

// ListTransactions returns transactions, optionally bounded by date.
func (c *Client) ListTransactions(ctx context.Context, from, to *time.Time) ([]model.Transaction, error) {
	query := url.Values{}
	if from != nil {
		query.Set("from", from.Format("2006-01-02"))
	}
	if to != nil {
		query.Set("to", to.Format("2006-01-02"))
	}

	var transactions []model.Transaction
	if err := c.getWithRetry(ctx, "/transactions", query, &transactions); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// ListBudgets returns the budgets for the given month and year.
func (c *Client) ListBudgets(ctx context.Context, month, year int) ([]model.Budget, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))

	var budgets []model.Budget
	if err := c.getWithRetry(ctx, "/budgets", query, &budgets); err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// CreateBudget creates a monthly category budget.
func (c *Client) CreateBudget(ctx context.Context, budget model.Budget) error {
	if err := c.do(ctx, http.MethodPost, "/budgets", nil, budget, nil); err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// UpdateBudget updates an existing budget.
func (c *Client) UpdateBudget(ctx context.Context, budget model.Budget) error {
	if budget.ID == "" {
		return fmt.Errorf("budget ID is required")
	}
	if err := c.do(ctx, http.MethodPut, "/budgets/"+url.PathEscape(budget.ID), nil, budget, nil); err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	return nil
}

// DeleteBudget removes a budget.
func (c *Client) DeleteBudget(ctx context.Context, budgetID string) error {
	if err := c.do(ctx, http.MethodDelete, "/budgets/"+url.PathEscape(budgetID), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
