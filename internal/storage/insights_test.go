package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisera/paisera/internal/model"
)

func seedInsightsData(t *testing.T, store *SQLiteStorage) {
	t.Helper()
	ctx := context.Background()

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	txns := []model.Transaction{
		{ID: "t1", AccountID: "acc1", Date: jan, Description: "Salary", Category: "Salary", Type: model.TypeIncome, Status: model.StatusCompleted, Amount: decimal.NewFromInt(80000)},
		{ID: "t2", AccountID: "acc1", Date: jan, Description: "Groceries", Category: "Food", Type: model.TypeExpense, Status: model.StatusCompleted, Amount: decimal.NewFromInt(4500)},
		{ID: "t3", AccountID: "acc1", Date: jan.Add(48 * time.Hour), Description: "Dinner", Category: "Food", Type: model.TypeExpense, Status: model.StatusCompleted, Amount: decimal.NewFromInt(1500)},
		{ID: "t4", AccountID: "acc1", Date: feb, Description: "Rent", Category: "Housing", Type: model.TypeExpense, Status: model.StatusCompleted, Amount: decimal.NewFromInt(25000)},
		{ID: "t5", AccountID: "acc1", Date: feb, Description: "Bounced payment", Category: "Food", Type: model.TypeExpense, Status: model.StatusFailed, Amount: decimal.NewFromInt(9999)},
		{ID: "t6", AccountID: "acc1", Date: feb, Description: "No category", Type: model.TypeExpense, Status: model.StatusCompleted, Amount: decimal.NewFromInt(300)},
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))
}

func TestGetMonthlyTotals(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	seedInsightsData(t, store)

	totals, err := store.GetMonthlyTotals(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "2026-01", totals[0].Month)
	assert.True(t, totals[0].Income.Equal(decimal.NewFromInt(80000)))
	assert.True(t, totals[0].Expense.Equal(decimal.NewFromInt(6000)))
	assert.True(t, totals[0].Net().Equal(decimal.NewFromInt(74000)))

	assert.Equal(t, "2026-02", totals[1].Month)
	assert.True(t, totals[1].Expense.Equal(decimal.NewFromInt(25300)),
		"failed transactions are excluded, got %s", totals[1].Expense)
}

func TestGetMonthlyTotals_LimitKeepsLatest(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	seedInsightsData(t, store)

	totals, err := store.GetMonthlyTotals(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "2026-02", totals[0].Month)
}

func TestGetCategorySummary(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	seedInsightsData(t, store)

	summary, err := store.GetCategorySummary(context.Background(), 1, 2026)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.True(t, summary["Food"].Equal(decimal.NewFromInt(6000)))

	feb, err := store.GetCategorySummary(context.Background(), 2, 2026)
	require.NoError(t, err)
	assert.True(t, feb["Housing"].Equal(decimal.NewFromInt(25000)))
	assert.True(t, feb["Uncategorized"].Equal(decimal.NewFromInt(300)),
		"blank categories fold into Uncategorized")
	assert.NotContains(t, feb, "Food", "failed transaction must not count")
}

func TestBudgets_RoundTripAndUpsert(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	budgets := []model.Budget{
		{ID: "b1", Category: "Food", Month: 2, Year: 2026, LimitAmount: decimal.NewFromInt(10000), SpentAmount: decimal.NewFromInt(6000)},
		{ID: "b2", Category: "Travel", Month: 2, Year: 2026, LimitAmount: decimal.NewFromInt(5000), SpentAmount: decimal.NewFromInt(0)},
	}
	require.NoError(t, store.SaveBudgets(ctx, budgets))

	budgets[0].SpentAmount = decimal.NewFromInt(7500)
	require.NoError(t, store.SaveBudgets(ctx, budgets[:1]))

	got, err := store.ListBudgets(ctx, 2, 2026)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Food", got[0].Category)
	assert.True(t, got[0].SpentAmount.Equal(decimal.NewFromInt(7500)))

	other, err := store.ListBudgets(ctx, 3, 2026)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSaveBudgets_RejectsInvalid(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name   string
		budget model.Budget
	}{
		{name: "missing ID", budget: model.Budget{Category: "Food", Month: 1, Year: 2026}},
		{name: "missing category", budget: model.Budget{ID: "b1", Month: 1, Year: 2026}},
		{name: "month out of range", budget: model.Budget{ID: "b1", Category: "Food", Month: 13, Year: 2026}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveBudgets(ctx, []model.Budget{tt.budget})
			assert.ErrorIs(t, err, ErrInvalidBudget)
		})
	}
}
