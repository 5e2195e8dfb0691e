package components

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/money"
	"github.com/paisera/paisera/internal/tui/themes"
	"github.com/paisera/paisera/internal/tui/viewmodel"
)

// AccountService is the slice of the backend the accounts browser needs.
type AccountService interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	DeleteAccount(ctx context.Context, accountID, pin string) error
}

// AccountsModel is the interactive accounts browser. It hosts two of the
// gate's caller contexts: balance reveal (local continuation) and account
// deletion (destructive backend call).
type AccountsModel struct {
	service  AccountService
	err      error
	accounts viewmodel.AccountsView
	gate     PinGateModel
	layout   viewmodel.Layout
	theme    themes.Theme
	keys     KeyMap
	loading  bool
	quitting bool
}

// NewAccountsModel creates the accounts browser.
func NewAccountsModel(service AccountService, theme themes.Theme) AccountsModel {
	return AccountsModel{
		service: service,
		theme:   theme,
		gate:    NewPinGateModel("Enter PIN", nil, theme),
		keys:    DefaultKeyMap(),
		loading: true,
	}
}

// Init loads the account list.
func (m AccountsModel) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.loadAccounts())
}

func (m AccountsModel) loadAccounts() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		accounts, err := m.service.ListAccounts(ctx)
		return AccountsLoadedMsg{Accounts: accounts, Err: err}
	}
}

// Update handles messages.
func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = viewmodel.Layout{Width: msg.Width, Height: msg.Height}
		var cmd tea.Cmd
		m.gate, cmd = m.gate.Update(msg)
		return m, cmd

	case AccountsLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.accounts = viewmodel.NewAccountsView(msg.Accounts)
		}
		return m, nil

	case GateConfirmedMsg:
		return m.handleGateConfirmed(msg)

	case GateCanceledMsg:
		return m, nil

	case tea.KeyMsg:
		// While the gate is up it owns the keyboard.
		if m.gate.IsOpen() {
			var cmd tea.Cmd
			m.gate, cmd = m.gate.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.gate, cmd = m.gate.Update(msg)
	return m, cmd
}

func (m AccountsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		m.accounts.MoveCursor(1)

	case key.Matches(msg, m.keys.Up):
		m.accounts.MoveCursor(-1)

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadAccounts()

	case key.Matches(msg, m.keys.Reveal):
		account, ok := m.accounts.Selected()
		if !ok || m.accounts.IsRevealed(account.ID) {
			return m, nil
		}
		// Balance reveal gates a purely local continuation; the value is
		// already fetched, so verification resolves locally.
		m.gate.SetTitle("Enter PIN")
		m.gate.OpenWithVerify(viewmodel.ConfirmationRequest{
			"action":     "reveal_balance",
			"account_id": account.ID,
		}, nil)

	case key.Matches(msg, m.keys.Delete):
		account, ok := m.accounts.Selected()
		if !ok {
			return m, nil
		}
		service := m.service
		m.gate.SetTitle("Confirm Deletion")
		m.gate.OpenWithVerify(viewmodel.ConfirmationRequest{
			"action":     "delete_account",
			"account_id": account.ID,
		}, func(request viewmodel.ConfirmationRequest, pin string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			accountID, _ := request["account_id"].(string)
			return service.DeleteAccount(ctx, accountID, pin)
		})
	}

	return m, nil
}

func (m AccountsModel) handleGateConfirmed(msg GateConfirmedMsg) (tea.Model, tea.Cmd) {
	accountID, _ := msg.Request["account_id"].(string)

	switch msg.Request["action"] {
	case "reveal_balance":
		m.accounts.Reveal(accountID)
		return m, nil

	case "delete_account":
		m.accounts.Remove(accountID)
		return m, func() tea.Msg { return AccountDeletedMsg{AccountID: accountID} }
	}

	return m, nil
}

// View renders the browser.
func (m AccountsModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return m.theme.StatusPending.Render("Loading accounts...")
	}
	if m.err != nil {
		return m.theme.StatusError.Render("Failed to load accounts: " + m.err.Error())
	}

	if m.gate.IsOpen() {
		return m.gate.View()
	}

	if len(m.accounts.Accounts) == 0 {
		return m.theme.Box.Render(
			m.theme.Title.Render("No accounts yet") + "\n" +
				m.theme.Muted.Render("Add a bank account to view balances securely."),
		)
	}

	title := m.theme.Title.Render("Accounts")
	cards := m.renderCards()
	help := m.theme.Muted.Render(m.keys.HelpLine())

	return lipgloss.JoinVertical(lipgloss.Left, title, cards, "", help)
}

// renderCards lays the account cards out in the breakpoint's column count.
func (m AccountsModel) renderCards() string {
	columns := m.layout.Columns()
	if columns < 1 {
		columns = 1
	}

	var rows []string
	var row []string
	for i, account := range m.accounts.Accounts {
		row = append(row, m.renderCard(account, i == m.accounts.Cursor))
		if len(row) == columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return strings.Join(rows, "\n")
}

func (m AccountsModel) renderCard(account model.Account, selected bool) string {
	icon := themes.GetAccountTypeIcon(string(account.AccountType))
	header := fmt.Sprintf("%s %s", icon, account.BankName)
	if selected {
		header = m.theme.Selected.Render(header)
	} else {
		header = m.theme.Bold.Render(header)
	}

	masked := m.theme.Muted.Render("•••• " + account.LastFour())

	var balance string
	if m.accounts.IsRevealed(account.ID) {
		balance = m.theme.Muted.Render("Available Balance") + "\n" +
			m.theme.Bold.Render(money.FormatINRCompact(account.Balance))
	} else {
		balance = m.theme.StatusInfo.Render("🔒 Check Balance")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, masked, "", balance)

	box := m.theme.RoundedBox
	if selected {
		box = box.BorderForeground(m.theme.Primary)
	}
	return box.Render(content)
}
