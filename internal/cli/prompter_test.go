package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes word", input: "YES\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty defaults to no", input: "\n", want: false},
		{name: "garbage defaults to no", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm(context.Background(), "Delete account?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Delete account?")
		})
	}
}

func TestPrompter_PromptPIN(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1234\n"), &out)

	pin, err := p.PromptPIN(context.Background(), "Enter PIN")
	require.NoError(t, err)
	assert.Equal(t, "1234", pin)
}

func TestPrompter_PromptPIN_RetriesMalformed(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("12\nabcd\n5678\n"), &out)

	pin, err := p.PromptPIN(context.Background(), "Enter PIN")
	require.NoError(t, err)
	assert.Equal(t, "5678", pin)
	assert.Contains(t, out.String(), "exactly 4 digits")
}

func TestPrompter_PromptPIN_GivesUp(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1\n2\n3\n4\n"), &out)

	_, err := p.PromptPIN(context.Background(), "Enter PIN")
	require.Error(t, err)
}

func TestReader_ContextCancellation(t *testing.T) {
	// A reader that never produces input.
	blocked, _ := io.Pipe()
	r := NewNonBlockingReader(blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}
