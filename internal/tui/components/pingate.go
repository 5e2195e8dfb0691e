package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paisera/paisera/internal/tui/themes"
	"github.com/paisera/paisera/internal/tui/viewmodel"
)

// VerifyFunc performs the caller-supplied verification for a submitted
// (request, pin) pair. It runs off the update loop; a nil error closes the
// gate, anything else keeps it open with the failure message.
type VerifyFunc func(request viewmodel.ConfirmationRequest, pin string) error

// PinGateModel is the modal confirmation gate: a masked 4-cell PIN widget
// wrapped around a protected action.
type PinGateModel struct {
	verify         VerifyFunc
	pending        *viewmodel.Submission
	title          string
	failureMessage string
	theme          themes.Theme
	spinner        spinner.Model
	gate           viewmodel.Gate
	width          int
	height         int
}

// NewPinGateModel creates a gate with the given modal title and verifier.
func NewPinGateModel(title string, verify VerifyFunc, theme themes.Theme) PinGateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return PinGateModel{
		title:          title,
		verify:         verify,
		theme:          theme,
		spinner:        s,
		gate:           viewmodel.NewGate(),
		failureMessage: "Invalid PIN",
	}
}

// Open starts a confirmation for the given request.
func (m *PinGateModel) Open(request viewmodel.ConfirmationRequest) {
	m.pending = nil
	m.gate.Open(request)
}

// OpenWithVerify starts a confirmation with a per-request verifier, for
// callers that protect more than one kind of action behind a single gate.
func (m *PinGateModel) OpenWithVerify(request viewmodel.ConfirmationRequest, verify VerifyFunc) {
	m.verify = verify
	m.Open(request)
}

// SetTitle changes the modal title for the next open.
func (m *PinGateModel) SetTitle(title string) {
	m.title = title
}

// IsOpen reports whether the gate is showing.
func (m PinGateModel) IsOpen() bool {
	return m.gate.State() != viewmodel.GateClosed
}

// State exposes the gate state for callers that need it.
func (m PinGateModel) State() viewmodel.GateState {
	return m.gate.State()
}

// Update handles messages.
func (m PinGateModel) Update(msg tea.Msg) (PinGateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case pinVerifiedMsg:
		return m.handleVerified(msg)

	case spinner.TickMsg:
		if m.gate.State() == viewmodel.GateSubmitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m PinGateModel) handleKey(msg tea.KeyMsg) (PinGateModel, tea.Cmd) {
	if !m.IsOpen() {
		return m, nil
	}

	key := msg.String()
	switch {
	case key == "esc":
		m.pending = nil
		m.gate.Cancel()
		return m, func() tea.Msg { return GateCanceledMsg{} }

	case key == "enter":
		sub, ok := m.gate.Submit()
		if !ok {
			return m, nil
		}
		m.pending = &sub
		return m, tea.Batch(m.spinner.Tick, m.verifyCmd(sub))

	case key == "backspace":
		m.gate.Backspace(m.gate.Buffer().Focus())
		return m, nil

	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		m.gate.SetDigit(m.gate.Buffer().Focus(), key)
		return m, nil
	}

	return m, nil
}

func (m PinGateModel) handleVerified(msg pinVerifiedMsg) (PinGateModel, tea.Cmd) {
	accepted := m.gate.Resolve(msg.seq, msg.err, m.failureMessage)
	if !accepted {
		// Stale result for an abandoned attempt.
		return m, nil
	}

	if msg.err == nil {
		sub := m.pending
		m.pending = nil
		return m, func() tea.Msg {
			return GateConfirmedMsg{Request: sub.Request, PIN: sub.PIN}
		}
	}

	m.pending = nil
	return m, nil
}

// verifyCmd runs the caller's verification off the update loop.
func (m PinGateModel) verifyCmd(sub viewmodel.Submission) tea.Cmd {
	verify := m.verify
	return func() tea.Msg {
		if verify == nil {
			return pinVerifiedMsg{seq: sub.Seq}
		}
		return pinVerifiedMsg{seq: sub.Seq, err: verify(sub.Request, sub.PIN)}
	}
}

// View renders the modal.
func (m PinGateModel) View() string {
	if !m.IsOpen() {
		return ""
	}

	title := m.theme.Title.Render(m.title)
	cells := m.renderCells()

	var status string
	switch m.gate.State() {
	case viewmodel.GateSubmitting:
		status = m.theme.StatusPending.Render(m.spinner.View() + " Verifying...")
	case viewmodel.GateError:
		status = m.theme.StatusError.Render(m.gate.ErrorMessage())
	default:
		if m.gate.CanSubmit() {
			status = m.theme.Muted.Render("[Enter] Confirm | [Esc] Cancel")
		} else {
			status = m.theme.Muted.Render("Enter your 4-digit PIN | [Esc] Cancel")
		}
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		cells,
		"",
		status,
	)

	box := m.theme.RoundedBox.Render(content)
	if m.width == 0 || m.height == 0 {
		return box
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderCells draws the four masked slots. Values are never echoed; a
// filled slot shows a dot.
func (m PinGateModel) renderCells() string {
	buf := m.gate.Buffer()
	editable := m.gate.State() == viewmodel.GateAwaitingInput || m.gate.State() == viewmodel.GateError

	cells := make([]string, 0, viewmodel.PinLength)
	for i := 0; i < viewmodel.PinLength; i++ {
		glyph := " "
		if buf.Slot(i) != "" {
			glyph = "●"
		}

		style := m.theme.PinCell
		if editable && i == buf.Focus() {
			style = m.theme.PinCellFocus
		}
		cells = append(cells, style.Render(glyph))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(cells, " "))
}
