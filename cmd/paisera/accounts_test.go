package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/paisera/paisera/internal/model"
)

func TestFormatDeleteWarning(t *testing.T) {
	acct := model.Account{
		ID:            "acc-1",
		BankName:      "HDFC Bank",
		MaskedAccount: "XXXX4821",
		Balance:       decimal.RequireFromString("152340.55"),
	}

	warning := formatDeleteWarning(acct)

	assert.Contains(t, warning, "HDFC Bank")
	assert.Contains(t, warning, "4821")
	assert.Contains(t, warning, "cannot be undone")

	// The live balance never appears before the PIN is entered.
	assert.NotContains(t, warning, "₹")
	assert.NotContains(t, warning, "152340")
	assert.NotContains(t, warning, "1,52,340")
}
