package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// InsightsSummary is the income/expense/savings rollup for the user.
type InsightsSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Savings      decimal.Decimal `json:"savings"`
}

// MonthlySpend is one month's total spend.
type MonthlySpend struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CategorySpend is one category's share of spend for a month.
type CategorySpend struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// GetInsightsSummary fetches the overall income/expense summary.
func (c *Client) GetInsightsSummary(ctx context.Context) (*InsightsSummary, error) {
	var summary InsightsSummary
	if err := c.getWithRetry(ctx, "/insights/summary", nil, &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch insights summary: %w", err)
	}
	return &summary, nil
}

// GetMonthlySpending fetches per-month spend totals for a year.
func (c *Client) GetMonthlySpending(ctx context.Context, month, year int) ([]MonthlySpend, error) {
	query := monthYearQuery(month, year)

	var spending []MonthlySpend
	if err := c.getWithRetry(ctx, "/insights/monthly", query, &spending); err != nil {
		return nil, fmt.Errorf("failed to fetch monthly spending: %w", err)
	}
	return spending, nil
}

// GetCategoryBreakdown fetches category-wise spend for a month.
func (c *Client) GetCategoryBreakdown(ctx context.Context, month, year int) ([]CategorySpend, error) {
	query := monthYearQuery(month, year)

	var breakdown []CategorySpend
	if err := c.getWithRetry(ctx, "/insights/category-breakdown", query, &breakdown); err != nil {
		return nil, fmt.Errorf("failed to fetch category breakdown: %w", err)
	}
	return breakdown, nil
}

func monthYearQuery(month, year int) url.Values {
	query := url.Values{}
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))
	return query
}
