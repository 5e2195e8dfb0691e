package viewmodel

// GateState is the confirmation gate's lifecycle state.
type GateState int

const (
	// GateClosed means no confirmation is in progress.
	GateClosed GateState = iota
	// GateAwaitingInput means the PIN widget is open and editable.
	GateAwaitingInput
	// GateSubmitting means a verification is in flight; input is frozen.
	GateSubmitting
	// GateError means the last attempt failed; the widget stays open.
	GateError
)

// ConfirmationRequest is the opaque payload describing what is being
// authorized. The gate never inspects it; it is handed back to the caller
// together with the collected PIN at submission time.
type ConfirmationRequest map[string]any

// Submission is what the caller receives when a complete PIN is submitted.
type Submission struct {
	Request ConfirmationRequest
	PIN     string
	Seq     uint64
}

// Gate mediates between a protected action and the PIN buffer. It is a
// pure state machine: the caller performs the actual verification and
// reports the outcome through Resolve.
type Gate struct {
	request ConfirmationRequest
	errMsg  string
	buffer  PinBuffer
	seq     uint64
	state   GateState
}

// NewGate returns a closed gate.
func NewGate() Gate {
	return Gate{state: GateClosed}
}

// State returns the current gate state.
func (g Gate) State() GateState {
	return g.state
}

// Buffer returns a copy of the PIN buffer for rendering.
func (g Gate) Buffer() PinBuffer {
	return g.buffer
}

// Request returns the pending confirmation payload.
func (g Gate) Request() ConfirmationRequest {
	return g.request
}

// ErrorMessage returns the inline failure message, if any.
func (g Gate) ErrorMessage() string {
	return g.errMsg
}

// Open starts a confirmation for the given request. Only valid from
// Closed; reopening an already-open gate is a no-op. Each open bumps the
// sequence number so results from an abandoned attempt can be recognized
// as stale.
func (g *Gate) Open(request ConfirmationRequest) bool {
	if g.state != GateClosed {
		return false
	}
	g.seq++
	g.state = GateAwaitingInput
	g.request = request
	g.errMsg = ""
	g.buffer.Reset()
	return true
}

// SetDigit forwards a keystroke to the buffer. Editing from the Error
// state re-enters AwaitingInput and clears the message. Input is ignored
// while Submitting or Closed.
func (g *Gate) SetDigit(index int, char string) bool {
	if g.state != GateAwaitingInput && g.state != GateError {
		return false
	}
	accepted := g.buffer.SetDigit(index, char)
	if accepted && g.state == GateError {
		g.state = GateAwaitingInput
		g.errMsg = ""
	}
	return accepted
}

// Backspace forwards a backspace to the buffer, with the same state rules
// as SetDigit.
func (g *Gate) Backspace(index int) {
	if g.state != GateAwaitingInput && g.state != GateError {
		return
	}
	g.buffer.Backspace(index)
	if g.state == GateError {
		g.state = GateAwaitingInput
		g.errMsg = ""
	}
}

// Submit moves to Submitting and hands the caller the (request, pin) pair
// to verify. The complete-buffer precondition is hard: a partial buffer
// returns ok=false and changes nothing.
func (g *Gate) Submit() (Submission, bool) {
	if g.state != GateAwaitingInput || !g.buffer.IsComplete() {
		return Submission{}, false
	}
	g.state = GateSubmitting
	return Submission{
		Request: g.request,
		PIN:     g.buffer.Value(),
		Seq:     g.seq,
	}, true
}

// Resolve applies a verification outcome for the submission identified by
// seq. A result that arrives after the gate was canceled or reopened is
// stale and is discarded without touching state. Success closes the gate;
// the caller runs its success continuation exactly when Resolve returns
// accepted=true with err == nil. Failure keeps the gate open with the
// message shown and the buffer reset so the user retypes all four digits.
func (g *Gate) Resolve(seq uint64, err error, failureMessage string) (accepted bool) {
	if g.state != GateSubmitting || seq != g.seq {
		return false
	}

	if err == nil {
		g.state = GateClosed
		g.request = nil
		g.errMsg = ""
		g.buffer.Reset()
		return true
	}

	g.state = GateError
	if failureMessage == "" {
		failureMessage = "Invalid PIN"
	}
	g.errMsg = failureMessage
	g.buffer.Reset()
	return true
}

// Cancel closes the gate from any non-Closed state, discarding the buffer
// and request without invoking any continuation.
func (g *Gate) Cancel() bool {
	if g.state == GateClosed {
		return false
	}
	g.state = GateClosed
	g.request = nil
	g.errMsg = ""
	g.buffer.Reset()
	return true
}

// CanSubmit reports whether the submit control should be enabled.
func (g Gate) CanSubmit() bool {
	return g.state == GateAwaitingInput && g.buffer.IsComplete()
}
