package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/paisera/paisera/internal/tui/viewmodel"
)

// Prompter asks for confirmations and PINs on a plain terminal, for
// commands that run without a full-screen interface.
type Prompter struct {
	reader *NonBlockingReader
	writer io.Writer
}

// NewPrompter creates a prompter reading from reader and writing to writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// Confirm asks a yes/no question. Anything other than y/yes is a no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprint(p.writer, FormatPrompt(question+" [y/N]"))

	line, err := p.reader.ReadLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// PromptPIN reads a transaction PIN and validates its shape. The user gets
// three attempts at entering a well-formed PIN before the prompt gives up.
func (p *Prompter) PromptPIN(ctx context.Context, label string) (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		fmt.Fprint(p.writer, FormatPrompt(label))

		line, err := p.reader.ReadLine(ctx)
		if err != nil {
			return "", err
		}

		pin := strings.TrimSpace(line)
		if isWellFormedPIN(pin) {
			return pin, nil
		}

		fmt.Fprintln(p.writer, FormatError(fmt.Sprintf("PIN must be exactly %d digits", viewmodel.PinLength)))
	}

	return "", fmt.Errorf("too many malformed PIN attempts")
}

func isWellFormedPIN(pin string) bool {
	if len(pin) != viewmodel.PinLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
