package storage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paisera/paisera/internal/common"
	"github.com/paisera/paisera/internal/model"
)

// SaveBudgets upserts budget rows for a month. One row per (category, month, year).
func (s *SQLiteStorage) SaveBudgets(ctx context.Context, budgets []model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if budgets == nil {
		return fmt.Errorf("%w: budgets", ErrNilParameter)
	}
	for i := range budgets {
		if err := validateBudget(&budgets[i]); err != nil {
			return fmt.Errorf("budget at index %d: %w", i, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO budgets (id, category, month, year, limit_amount, spent_amount)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(category, month, year) DO UPDATE SET
			id = excluded.id,
			limit_amount = excluded.limit_amount,
			spent_amount = excluded.spent_amount,
			cached_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, budget := range budgets {
		if _, err := stmt.ExecContext(ctx,
			budget.ID,
			budget.Category,
			budget.Month,
			budget.Year,
			budget.LimitAmount.String(),
			budget.SpentAmount.String(),
		); err != nil {
			return fmt.Errorf("failed to save budget %s: %w", budget.ID, err)
		}
	}

	return tx.Commit()
}

// ListBudgets returns cached budgets for a month, ordered by category.
func (s *SQLiteStorage) ListBudgets(ctx context.Context, month, year int) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, month, year, limit_amount, spent_amount
		FROM budgets
		WHERE month = ? AND year = ?
		ORDER BY category
	`, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var (
			budget             model.Budget
			limitStr, spentStr string
		)
		if err := rows.Scan(&budget.ID, &budget.Category, &budget.Month, &budget.Year, &limitStr, &spentStr); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}

		limit, err := decimal.NewFromString(limitStr)
		if err != nil {
			return nil, fmt.Errorf("budget %s: bad cached limit %q: %w", budget.ID, limitStr, common.ErrDatabaseCorrupted)
		}
		spent, err := decimal.NewFromString(spentStr)
		if err != nil {
			return nil, fmt.Errorf("budget %s: bad cached spent %q: %w", budget.ID, spentStr, common.ErrDatabaseCorrupted)
		}

		budget.LimitAmount = limit
		budget.SpentAmount = spent
		budgets = append(budgets, budget)
	}

	return budgets, rows.Err()
}
