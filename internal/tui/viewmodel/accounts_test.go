package viewmodel

import (
	"testing"

	"github.com/paisera/paisera/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccounts() []model.Account {
	return []model.Account{
		{ID: "a1", BankName: "HDFC Bank"},
		{ID: "a2", BankName: "SBI"},
		{ID: "a3", BankName: "ICICI"},
	}
}

func TestAccountsView_CursorClamps(t *testing.T) {
	v := NewAccountsView(testAccounts())

	v.MoveCursor(-5)
	assert.Equal(t, 0, v.Cursor)

	v.MoveCursor(10)
	assert.Equal(t, 2, v.Cursor)

	selected, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "a3", selected.ID)
}

func TestAccountsView_RevealIsPerAccount(t *testing.T) {
	v := NewAccountsView(testAccounts())
	assert.False(t, v.IsRevealed("a1"))

	v.Reveal("a1")
	assert.True(t, v.IsRevealed("a1"))
	assert.False(t, v.IsRevealed("a2"))
}

func TestAccountsView_Remove(t *testing.T) {
	v := NewAccountsView(testAccounts())
	v.Reveal("a3")
	v.MoveCursor(2)

	v.Remove("a3")
	assert.Len(t, v.Accounts, 2)
	assert.Equal(t, 1, v.Cursor, "cursor moves back in bounds")
	assert.False(t, v.IsRevealed("a3"))

	selected, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "a2", selected.ID)
}

func TestAccountsView_EmptySelection(t *testing.T) {
	v := NewAccountsView(nil)
	_, ok := v.Selected()
	assert.False(t, ok)
}
