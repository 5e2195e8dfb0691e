package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisera/paisera/internal/model"
)

func testAccount() model.Account {
	return model.Account{
		ID:            "acc1",
		BankName:      "HDFC Bank",
		AccountNumber: "50100012345678",
		MaskedAccount: "XXXX5678",
		AccountType:   model.AccountTypeSavings,
		Currency:      "INR",
		Balance:       decimal.RequireFromString("12500.50"),
	}
}

func testTransactions() []model.Transaction {
	return []model.Transaction{
		{
			ID:          "txn-2",
			AccountID:   "acc1",
			Date:        time.Date(2026, 2, 15, 10, 30, 0, 0, time.UTC),
			Description: "Swiggy order",
			Category:    "Food",
			Type:        model.TypeExpense,
			Status:      model.StatusCompleted,
			Amount:      decimal.RequireFromString("450.00"),
		},
		{
			ID:          "txn-1",
			AccountID:   "acc1",
			Date:        time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
			Description: "Salary credit",
			Category:    "Salary",
			Type:        model.TypeIncome,
			Status:      model.StatusCompleted,
			Amount:      decimal.NewFromInt(80000),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testTransactions()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "date,description,category,type,status,amount,account_id,reference_id", lines[0])
	assert.Contains(t, lines[1], "Swiggy order")
	assert.Contains(t, lines[1], "-450", "expenses are written negative")
	assert.Contains(t, lines[2], "80000")
	assert.NotContains(t, lines[2], "-80000", "income stays positive")
}

func TestWriteCSV_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "date,description,category,type,status,amount,account_id,reference_id\n", buf.String())
}

func TestWriteCSV_RejectsInvalidTransaction(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []model.Transaction{{ID: "bad"}})
	require.Error(t, err)
}

func TestWriteOFX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOFX(&buf, testAccount(), testTransactions()))

	out := buf.String()
	assert.Contains(t, out, "<STMTTRNRS>")
	assert.Contains(t, out, "<CURDEF>INR")
	assert.Contains(t, out, "<FITID>txn-1")
	assert.Contains(t, out, "<FITID>txn-2")
	assert.Contains(t, out, "CREDIT")
	assert.Contains(t, out, "DEBIT")
	assert.Contains(t, out, "Swiggy order")
	assert.Contains(t, out, "<ACCTTYPE>SAVINGS")
}

func TestWriteOFX_CurrentAccountMapsToChecking(t *testing.T) {
	account := testAccount()
	account.AccountType = model.AccountTypeCurrent

	var buf bytes.Buffer
	require.NoError(t, WriteOFX(&buf, account, nil))
	assert.Contains(t, buf.String(), "<ACCTTYPE>CHECKING")
}

func TestWriteOFX_NoTransactions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOFX(&buf, testAccount(), nil))
	assert.Contains(t, buf.String(), "<BALAMT>")
}

func TestWriteOFX_RejectsInvalidAccount(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOFX(&buf, model.Account{}, nil)
	require.Error(t, err)
	assert.Empty(t, buf.String(), "nothing is written on validation failure")
}
