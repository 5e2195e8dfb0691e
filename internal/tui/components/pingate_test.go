package components

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisera/paisera/internal/tui/themes"
	"github.com/paisera/paisera/internal/tui/viewmodel"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "backspace" {
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain executes a command tree and returns every non-tick message it
// produces, feeding nothing back into the model.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, sub := range batch {
			msgs = append(msgs, drain(sub)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// findVerified pulls the verification result out of a submit's command.
func findVerified(t *testing.T, cmd tea.Cmd) pinVerifiedMsg {
	t.Helper()
	for _, msg := range drain(cmd) {
		if verified, ok := msg.(pinVerifiedMsg); ok {
			return verified
		}
	}
	t.Fatal("no pinVerifiedMsg produced")
	return pinVerifiedMsg{}
}

func typePIN(gate PinGateModel, pin string) PinGateModel {
	for _, r := range pin {
		gate, _ = gate.Update(keyMsg(string(r)))
	}
	return gate
}

func TestPinGate_SubmitRequiresFourDigits(t *testing.T) {
	gate := NewPinGateModel("Enter PIN", nil, themes.Default)
	gate.Open(viewmodel.ConfirmationRequest{"action": "reveal_balance"})

	gate = typePIN(gate, "12")
	gate, cmd := gate.Update(keyMsg("enter"))

	assert.Nil(t, cmd, "incomplete buffer must not submit")
	assert.Equal(t, viewmodel.GateAwaitingInput, gate.State())
}

func TestPinGate_SuccessEmitsConfirmedOnce(t *testing.T) {
	var calls int
	verify := func(request viewmodel.ConfirmationRequest, pin string) error {
		calls++
		assert.Equal(t, "4321", pin)
		assert.Equal(t, "acc-1", request["account_id"])
		return nil
	}

	gate := NewPinGateModel("Enter PIN", verify, themes.Default)
	gate.Open(viewmodel.ConfirmationRequest{"account_id": "acc-1"})
	gate = typePIN(gate, "4321")

	gate, cmd := gate.Update(keyMsg("enter"))
	assert.Equal(t, viewmodel.GateSubmitting, gate.State())

	verified := findVerified(t, cmd)
	require.NoError(t, verified.err)
	assert.Equal(t, 1, calls)

	gate, cmd = gate.Update(verified)
	assert.Equal(t, viewmodel.GateClosed, gate.State())

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	confirmed, ok := msgs[0].(GateConfirmedMsg)
	require.True(t, ok)
	assert.Equal(t, "4321", confirmed.PIN)
	assert.Equal(t, "acc-1", confirmed.Request["account_id"])

	// A replay of the same result must not emit a second confirmation.
	gate, cmd = gate.Update(verified)
	assert.Nil(t, cmd)
	assert.Equal(t, viewmodel.GateClosed, gate.State())
}

func TestPinGate_FailureShowsMessageAndResets(t *testing.T) {
	verify := func(_ viewmodel.ConfirmationRequest, _ string) error {
		return errors.New("backend said no")
	}

	gate := NewPinGateModel("Confirm Deletion", verify, themes.Default)
	gate.Open(viewmodel.ConfirmationRequest{"account_id": "acc-1"})
	gate = typePIN(gate, "0000")

	gate, cmd := gate.Update(keyMsg("enter"))
	verified := findVerified(t, cmd)
	require.Error(t, verified.err)

	gate, _ = gate.Update(verified)
	assert.Equal(t, viewmodel.GateError, gate.State())
	assert.Contains(t, gate.View(), "Invalid PIN")

	// Typing again recovers and a correct retry succeeds.
	gate = typePIN(gate, "1")
	assert.Equal(t, viewmodel.GateAwaitingInput, gate.State())
	assert.NotContains(t, gate.View(), "Invalid PIN")
}

func TestPinGate_CancelDiscardsLateResult(t *testing.T) {
	block := make(chan error, 1)
	verify := func(_ viewmodel.ConfirmationRequest, _ string) error {
		return <-block
	}

	gate := NewPinGateModel("Enter PIN", verify, themes.Default)
	gate.Open(viewmodel.ConfirmationRequest{"account_id": "acc-1"})
	gate = typePIN(gate, "1234")

	gate, cmd := gate.Update(keyMsg("enter"))
	require.Equal(t, viewmodel.GateSubmitting, gate.State())

	gate, cancelCmd := gate.Update(keyMsg("esc"))
	assert.Equal(t, viewmodel.GateClosed, gate.State())

	msgs := drain(cancelCmd)
	require.Len(t, msgs, 1)
	_, canceled := msgs[0].(GateCanceledMsg)
	assert.True(t, canceled)

	// The verification finishes after the cancel; its result is stale.
	block <- nil
	verified := findVerified(t, cmd)
	gate, confirmCmd := gate.Update(verified)
	assert.Nil(t, confirmCmd, "stale success must not fire the continuation")
	assert.Equal(t, viewmodel.GateClosed, gate.State())
}

func TestPinGate_ViewMasksDigits(t *testing.T) {
	gate := NewPinGateModel("Enter PIN", nil, themes.Default)
	gate.Open(viewmodel.ConfirmationRequest{})
	gate = typePIN(gate, "1234")

	view := gate.View()
	for _, digit := range []string{"1", "2", "3", "4"} {
		assert.False(t, strings.Contains(view, digit), "digit %s must not be echoed", digit)
	}
	assert.Equal(t, 4, strings.Count(view, "●"))
}

func TestPinGate_NonDigitKeysIgnored(t *testing.T) {
	gate := NewPinGateModel("Enter PIN", nil, themes.Default)
	gate.Open(viewmodel.ConfirmationRequest{})

	for _, k := range []string{"a", "x", "!", " "} {
		gate, _ = gate.Update(keyMsg(k))
	}

	assert.Equal(t, 0, strings.Count(gate.View(), "●"))
}
