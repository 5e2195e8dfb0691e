// Package components contains the bubbletea components of the TUI.
package components

import (
	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/tui/viewmodel"
)

// pinVerifiedMsg carries the outcome of an in-flight PIN verification back
// to the gate. Seq ties it to the submission it belongs to so a result
// arriving after cancel or reopen is recognized as stale.
type pinVerifiedMsg struct {
	err error
	seq uint64
}

// GateConfirmedMsg is emitted exactly once when the gate closes on a
// successful verification, carrying the submitted pair.
type GateConfirmedMsg struct {
	Request viewmodel.ConfirmationRequest
	PIN     string
}

// GateCanceledMsg is emitted when the user dismisses the gate.
type GateCanceledMsg struct{}

// AccountsLoadedMsg carries the fetched account list.
type AccountsLoadedMsg struct {
	Err      error
	Accounts []model.Account
}

// AccountDeletedMsg reports the deletion of an account.
type AccountDeletedMsg struct {
	AccountID string
}

// PaymentForwardedMsg reports the payment handed to the processor.
type PaymentForwardedMsg struct {
	Err     error
	Request model.PaymentRequest
}
