package storage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paisera/paisera/internal/common"
	"github.com/paisera/paisera/internal/model"
)

// MonthTotals is an income/expense rollup for one calendar month.
type MonthTotals struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (m MonthTotals) Net() decimal.Decimal {
	return m.Income.Sub(m.Expense)
}

// GetMonthlyTotals aggregates cached transactions into per-month income and
// expense totals, oldest month first. Months are keyed "YYYY-MM".
func (s *SQLiteStorage) GetMonthlyTotals(ctx context.Context, months int) ([]MonthTotals, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT strftime('%Y-%m', date) AS month, type, amount
		FROM transactions
		WHERE status != 'failed'
		ORDER BY month
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[string]*MonthTotals)
	var order []string

	for rows.Next() {
		var month, txnType, amountStr string
		if err := rows.Scan(&month, &txnType, &amountStr); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("bad cached amount %q: %w", amountStr, common.ErrDatabaseCorrupted)
		}

		entry, ok := totals[month]
		if !ok {
			entry = &MonthTotals{Month: month}
			totals[month] = entry
			order = append(order, month)
		}

		switch model.TransactionType(txnType) {
		case model.TypeIncome:
			entry.Income = entry.Income.Add(amount)
		case model.TypeExpense:
			entry.Expense = entry.Expense.Add(amount)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if months > 0 && len(order) > months {
		order = order[len(order)-months:]
	}

	result := make([]MonthTotals, 0, len(order))
	for _, month := range order {
		result = append(result, *totals[month])
	}
	return result, nil
}

// GetCategorySummary returns total expense per category for one month.
func (s *SQLiteStorage) GetCategorySummary(ctx context.Context, month, year int) (map[string]decimal.Decimal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(NULLIF(category, ''), 'Uncategorized'), amount
		FROM transactions
		WHERE type = 'expense'
		  AND status != 'failed'
		  AND CAST(strftime('%m', date) AS INTEGER) = ?
		  AND CAST(strftime('%Y', date) AS INTEGER) = ?
	`, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summary := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category, amountStr string
		if err := rows.Scan(&category, &amountStr); err != nil {
			return nil, fmt.Errorf("failed to scan category summary: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("bad cached amount %q: %w", amountStr, common.ErrDatabaseCorrupted)
		}
		summary[category] = summary[category].Add(amount)
	}

	return summary, rows.Err()
}
