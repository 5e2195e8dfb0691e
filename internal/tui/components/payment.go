package components

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/money"
	"github.com/paisera/paisera/internal/tui/themes"
	"github.com/paisera/paisera/internal/tui/viewmodel"
)

// PaymentProcessor is the downstream collaborator that turns a confirmed
// payment into a backend call. The gate never talks to it directly; the
// assembled request is forwarded after confirmation.
type PaymentProcessor interface {
	Forward(ctx context.Context, request model.PaymentRequest) error
}

// PaymentSpec describes one kind of bill or recharge flow.
type PaymentSpec struct {
	Provider        *string
	Title           string
	DestLabel       string
	DestPlaceholder string
	BillType        model.BillType
	ValidateDest    func(string) error
}

// FastagSpec is the FASTag vehicle recharge flow.
func FastagSpec() PaymentSpec {
	provider := "FASTag"
	return PaymentSpec{
		Title:           "FASTag Recharge",
		BillType:        model.BillTypeFastag,
		Provider:        &provider,
		DestLabel:       "Vehicle number",
		DestPlaceholder: "TN09AB1234",
		ValidateDest: func(v string) error {
			if len(strings.TrimSpace(v)) < 6 {
				return fmt.Errorf("vehicle number looks too short")
			}
			return nil
		},
	}
}

// GooglePlaySpec is the Google Play balance recharge flow.
func GooglePlaySpec() PaymentSpec {
	provider := "Google Play"
	return PaymentSpec{
		Title:           "Google Play Recharge",
		BillType:        model.BillTypeGooglePlay,
		Provider:        &provider,
		DestLabel:       "Google account email",
		DestPlaceholder: "you@gmail.com",
		ValidateDest: func(v string) error {
			if !strings.Contains(v, "@") {
				return fmt.Errorf("enter a valid email address")
			}
			return nil
		},
	}
}

// TransferSpec is the direct account transfer flow.
func TransferSpec() PaymentSpec {
	return PaymentSpec{
		Title:           "Transfer Money",
		BillType:        model.BillTypeTransfer,
		DestLabel:       "Recipient account / UPI ID",
		DestPlaceholder: "name@upi",
		ValidateDest: func(v string) error {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("recipient is required")
			}
			return nil
		},
	}
}

type paymentStep int

const (
	stepDestination paymentStep = iota
	stepAmount
	stepConfirm
	stepForwarding
	stepDone
	stepFailed
)

// PaymentModel runs a two-step payment form followed by the PIN gate, then
// forwards the assembled request to the processor.
type PaymentModel struct {
	processor PaymentProcessor
	billID    *string
	err       error
	spec      PaymentSpec
	accountID string
	formError string
	destInput textinput.Model
	amtInput  textinput.Model
	gate      PinGateModel
	theme     themes.Theme
	layout    viewmodel.Layout
	step      paymentStep
}

// NewPaymentModel creates a payment flow for the given spec and source
// account. billID is non-nil when paying a saved biller.
func NewPaymentModel(spec PaymentSpec, accountID string, billID *string, processor PaymentProcessor, theme themes.Theme) PaymentModel {
	dest := textinput.New()
	dest.Placeholder = spec.DestPlaceholder
	dest.CharLimit = 64
	dest.Focus()

	amt := textinput.New()
	amt.Placeholder = "Amount"
	amt.CharLimit = 12

	return PaymentModel{
		spec:      spec,
		accountID: accountID,
		billID:    billID,
		processor: processor,
		theme:     theme,
		destInput: dest,
		amtInput:  amt,
		gate:      NewPinGateModel("Enter PIN", nil, theme),
	}
}

// Init starts the input cursor blink.
func (m PaymentModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m PaymentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = viewmodel.Layout{Width: msg.Width, Height: msg.Height}
		var cmd tea.Cmd
		m.gate, cmd = m.gate.Update(msg)
		return m, cmd

	case GateConfirmedMsg:
		return m.forward(msg.PIN)

	case GateCanceledMsg:
		m.step = stepAmount
		return m, nil

	case PaymentForwardedMsg:
		if msg.Err != nil {
			m.step = stepFailed
			m.err = msg.Err
		} else {
			m.step = stepDone
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.gate, cmd = m.gate.Update(msg)
	return m, cmd
}

func (m PaymentModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.step == stepConfirm {
		var cmd tea.Cmd
		m.gate, cmd = m.gate.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		switch m.step {
		case stepAmount:
			m.step = stepDestination
			m.formError = ""
			m.destInput.Focus()
			m.amtInput.Blur()
			return m, nil
		default:
			return m, tea.Quit
		}

	case "enter":
		return m.advance()
	}

	var cmd tea.Cmd
	switch m.step {
	case stepDestination:
		m.destInput, cmd = m.destInput.Update(msg)
	case stepAmount:
		m.amtInput, cmd = m.amtInput.Update(msg)
	}
	return m, cmd
}

// advance moves the form forward, validating the current step.
func (m PaymentModel) advance() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepDestination:
		dest := strings.TrimSpace(m.destInput.Value())
		if m.spec.ValidateDest != nil {
			if err := m.spec.ValidateDest(dest); err != nil {
				m.formError = err.Error()
				return m, nil
			}
		}
		m.formError = ""
		m.step = stepAmount
		m.destInput.Blur()
		m.amtInput.Focus()
		return m, textinput.Blink

	case stepAmount:
		amount, err := decimal.NewFromString(strings.TrimSpace(m.amtInput.Value()))
		if err != nil || !amount.IsPositive() {
			m.formError = "Enter an amount greater than zero"
			return m, nil
		}
		m.formError = ""
		m.step = stepConfirm
		m.amtInput.Blur()
		m.gate.Open(viewmodel.ConfirmationRequest{
			"action": "confirm_payment",
			"to":     strings.TrimSpace(m.destInput.Value()),
			"amount": amount.String(),
		})
		return m, nil

	case stepDone, stepFailed:
		return m, tea.Quit
	}

	return m, nil
}

// forward assembles the processor payload with a fresh reference ID and
// hands it off. The PIN travels inside the forwarded request; it is not
// verified locally.
func (m PaymentModel) forward(pin string) (tea.Model, tea.Cmd) {
	amount, err := decimal.NewFromString(strings.TrimSpace(m.amtInput.Value()))
	if err != nil {
		m.step = stepFailed
		m.err = fmt.Errorf("invalid amount: %w", err)
		return m, nil
	}

	request := model.PaymentRequest{
		BillID:      m.billID,
		AccountID:   m.accountID,
		Amount:      amount,
		PIN:         pin,
		BillType:    m.spec.BillType,
		Provider:    m.spec.Provider,
		ReferenceID: uuid.NewString(),
		To:          strings.TrimSpace(m.destInput.Value()),
	}

	m.step = stepForwarding
	processor := m.processor
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return PaymentForwardedMsg{Request: request, Err: processor.Forward(ctx, request)}
	}
}

// View renders the flow.
func (m PaymentModel) View() string {
	title := m.theme.Title.Render(m.spec.Title)

	var body string
	switch m.step {
	case stepDestination:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Normal.Render(m.spec.DestLabel),
			m.destInput.View(),
			m.renderFormError(),
			m.theme.Muted.Render("[Enter] Continue | [Esc] Cancel"),
		)

	case stepAmount:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Normal.Render("Amount ("+money.RupeeSymbol+")"),
			m.amtInput.View(),
			m.renderFormError(),
			m.theme.Muted.Render("[Enter] Pay | [Esc] Back"),
		)

	case stepConfirm:
		return m.gate.View()

	case stepForwarding:
		body = m.theme.StatusPending.Render("Forwarding payment...")

	case stepDone:
		body = m.theme.StatusSuccess.Render("✓ Payment submitted") + "\n" +
			m.theme.Muted.Render("[Enter] Close")

	case stepFailed:
		body = m.theme.StatusError.Render("Payment failed: "+m.err.Error()) + "\n" +
			m.theme.Muted.Render("[Enter] Close")
	}

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (m PaymentModel) renderFormError() string {
	if m.formError == "" {
		return ""
	}
	return m.theme.StatusError.Render(m.formError)
}
