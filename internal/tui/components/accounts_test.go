package components

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisera/paisera/internal/common"
	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/tui/themes"
)

type fakeAccountService struct {
	accounts  []model.Account
	deleteErr error
	deleted   []string
}

func (f *fakeAccountService) ListAccounts(_ context.Context) ([]model.Account, error) {
	return f.accounts, nil
}

func (f *fakeAccountService) DeleteAccount(_ context.Context, accountID, _ string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, accountID)
	return nil
}

func loadedAccountsModel(service *fakeAccountService) AccountsModel {
	m := NewAccountsModel(service, themes.Default)
	updated, _ := m.Update(AccountsLoadedMsg{Accounts: service.accounts})
	return updated.(AccountsModel)
}

// step feeds one message and any messages its commands produce back into
// the model until the queue drains.
func step(t *testing.T, m AccountsModel, msg tea.Msg) AccountsModel {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		updated, cmd := m.Update(next)
		var ok bool
		m, ok = updated.(AccountsModel)
		require.True(t, ok)

		for _, produced := range drain(cmd) {
			if produced != nil {
				queue = append(queue, produced)
			}
		}
	}
	return m
}

func TestAccounts_BalanceRevealIsLocal(t *testing.T) {
	service := &fakeAccountService{accounts: []model.Account{
		{ID: "acc-1", BankName: "HDFC Bank", MaskedAccount: "XXXX4821", Balance: decimal.NewFromInt(12500)},
	}}
	m := loadedAccountsModel(service)

	assert.Contains(t, m.View(), "Check Balance")
	assert.NotContains(t, m.View(), "12,500")

	// Open the gate, enter the PIN, confirm. Verification is local.
	m = step(t, m, keyMsg("enter"))
	for _, d := range []string{"9", "9", "9", "9"} {
		m = step(t, m, keyMsg(d))
	}
	m = step(t, m, keyMsg("enter"))

	view := m.View()
	assert.Contains(t, view, "Available Balance")
	assert.Contains(t, view, "₹12,500")
	assert.Empty(t, service.deleted, "reveal must not touch the backend")
}

func TestAccounts_DeleteWithCorrectPIN(t *testing.T) {
	service := &fakeAccountService{accounts: []model.Account{
		{ID: "acc-1", BankName: "HDFC Bank"},
		{ID: "acc-2", BankName: "SBI"},
	}}
	m := loadedAccountsModel(service)

	m = step(t, m, keyMsg("d"))
	for _, d := range []string{"4", "3", "2", "1"} {
		m = step(t, m, keyMsg(d))
	}
	m = step(t, m, keyMsg("enter"))

	assert.Equal(t, []string{"acc-1"}, service.deleted)
	assert.NotContains(t, m.View(), "HDFC Bank")
	assert.Contains(t, m.View(), "SBI")
	assert.NotContains(t, m.View(), "Invalid PIN")
}

func TestAccounts_DeleteWithWrongPINKeepsGateOpen(t *testing.T) {
	service := &fakeAccountService{
		accounts:  []model.Account{{ID: "acc-1", BankName: "HDFC Bank"}},
		deleteErr: common.ErrInvalidPIN,
	}
	m := loadedAccountsModel(service)

	m = step(t, m, keyMsg("d"))
	for _, d := range []string{"0", "0", "0", "0"} {
		m = step(t, m, keyMsg(d))
	}
	m = step(t, m, keyMsg("enter"))

	view := m.View()
	assert.Contains(t, view, "Invalid PIN")
	assert.True(t, m.gate.IsOpen(), "gate stays open for retry")
}

func TestAccounts_CancelTwoDigitsIn(t *testing.T) {
	service := &fakeAccountService{accounts: []model.Account{{ID: "acc-1", BankName: "HDFC Bank"}}}
	m := loadedAccountsModel(service)

	m = step(t, m, keyMsg("enter"))
	m = step(t, m, keyMsg("1"))
	m = step(t, m, keyMsg("2"))
	m = step(t, m, keyMsg("esc"))

	assert.False(t, m.gate.IsOpen())
	assert.NotContains(t, m.View(), "Available Balance")
	assert.Empty(t, service.deleted)
}
