package viewmodel

import "github.com/paisera/paisera/internal/model"

// AccountsView is the pure state behind the accounts browser: the fetched
// accounts, the cursor, and which balances the user has revealed through
// the PIN gate.
type AccountsView struct {
	revealed map[string]bool
	Accounts []model.Account
	Cursor   int
}

// NewAccountsView returns a view over the given accounts.
func NewAccountsView(accounts []model.Account) AccountsView {
	return AccountsView{
		Accounts: accounts,
		revealed: make(map[string]bool),
	}
}

// Selected returns the account under the cursor, if any.
func (v AccountsView) Selected() (model.Account, bool) {
	if v.Cursor < 0 || v.Cursor >= len(v.Accounts) {
		return model.Account{}, false
	}
	return v.Accounts[v.Cursor], true
}

// MoveCursor shifts the cursor by delta, clamped to the list bounds.
func (v *AccountsView) MoveCursor(delta int) {
	v.Cursor += delta
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= len(v.Accounts) {
		v.Cursor = len(v.Accounts) - 1
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
}

// Reveal marks an account's balance as visible. This is the balance-reveal
// success continuation: purely local, no backend call involved.
func (v *AccountsView) Reveal(accountID string) {
	if v.revealed == nil {
		v.revealed = make(map[string]bool)
	}
	v.revealed[accountID] = true
}

// IsRevealed reports whether an account's balance is visible.
func (v AccountsView) IsRevealed(accountID string) bool {
	return v.revealed[accountID]
}

// Remove drops an account from the view after a successful deletion and
// keeps the cursor in bounds.
func (v *AccountsView) Remove(accountID string) {
	kept := v.Accounts[:0]
	for _, a := range v.Accounts {
		if a.ID != accountID {
			kept = append(kept, a)
		}
	}
	v.Accounts = kept
	delete(v.revealed, accountID)
	if v.Cursor >= len(v.Accounts) && v.Cursor > 0 {
		v.Cursor = len(v.Accounts) - 1
	}
}
