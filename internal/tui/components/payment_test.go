package components

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/tui/themes"
)

type fakeProcessor struct {
	err      error
	received []model.PaymentRequest
}

func (f *fakeProcessor) Forward(_ context.Context, request model.PaymentRequest) error {
	f.received = append(f.received, request)
	return f.err
}

// stepPayment is the PaymentModel counterpart of step.
func stepPayment(t *testing.T, m PaymentModel, msg tea.Msg) PaymentModel {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		updated, cmd := m.Update(next)
		var ok bool
		m, ok = updated.(PaymentModel)
		require.True(t, ok)

		for _, produced := range drain(cmd) {
			if produced != nil {
				queue = append(queue, produced)
			}
		}
	}
	return m
}

func typeText(t *testing.T, m PaymentModel, text string) PaymentModel {
	t.Helper()
	for _, r := range text {
		m = stepPayment(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestPayment_FastagForwardsExactPayload(t *testing.T) {
	processor := &fakeProcessor{}
	m := NewPaymentModel(FastagSpec(), "acc-7", nil, processor, themes.Default)

	m = typeText(t, m, "TN09AB1234")
	m = stepPayment(t, m, keyMsg("enter"))

	m = typeText(t, m, "200")
	m = stepPayment(t, m, keyMsg("enter"))

	for _, d := range []string{"1", "2", "3", "4"} {
		m = stepPayment(t, m, keyMsg(d))
	}
	m = stepPayment(t, m, keyMsg("enter"))

	require.Len(t, processor.received, 1)
	got := processor.received[0]

	assert.Nil(t, got.BillID)
	assert.Equal(t, "acc-7", got.AccountID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "1234", got.PIN)
	assert.Equal(t, model.BillTypeFastag, got.BillType)
	require.NotNil(t, got.Provider)
	assert.Equal(t, "FASTag", *got.Provider)
	assert.NotEmpty(t, got.ReferenceID)
	assert.Equal(t, "TN09AB1234", got.To)

	assert.Contains(t, m.View(), "Payment submitted")
}

func TestPayment_FreshReferencePerPayment(t *testing.T) {
	refs := make(map[string]bool)
	for i := 0; i < 3; i++ {
		processor := &fakeProcessor{}
		m := NewPaymentModel(GooglePlaySpec(), "acc-1", nil, processor, themes.Default)

		m = typeText(t, m, "u@gmail.com")
		m = stepPayment(t, m, keyMsg("enter"))
		m = typeText(t, m, "150")
		m = stepPayment(t, m, keyMsg("enter"))
		for _, d := range []string{"1", "2", "3", "4"} {
			m = stepPayment(t, m, keyMsg(d))
		}
		stepPayment(t, m, keyMsg("enter"))

		require.Len(t, processor.received, 1)
		refs[processor.received[0].ReferenceID] = true
	}
	assert.Len(t, refs, 3, "reference IDs must be unique")
}

func TestPayment_InvalidDestinationBlocksContinue(t *testing.T) {
	m := NewPaymentModel(FastagSpec(), "acc-1", nil, &fakeProcessor{}, themes.Default)

	m = typeText(t, m, "TN1")
	m = stepPayment(t, m, keyMsg("enter"))

	assert.Contains(t, m.View(), "too short")
	assert.Contains(t, m.View(), "Vehicle number", "still on the destination step")
}

func TestPayment_ZeroAmountBlocksPay(t *testing.T) {
	m := NewPaymentModel(GooglePlaySpec(), "acc-1", nil, &fakeProcessor{}, themes.Default)

	m = typeText(t, m, "u@gmail.com")
	m = stepPayment(t, m, keyMsg("enter"))
	m = typeText(t, m, "0")
	m = stepPayment(t, m, keyMsg("enter"))

	assert.Contains(t, m.View(), "greater than zero")
}

func TestPayment_ProcessorFailureIsReported(t *testing.T) {
	processor := &fakeProcessor{err: errors.New("processor unavailable")}
	m := NewPaymentModel(TransferSpec(), "acc-1", nil, processor, themes.Default)

	m = typeText(t, m, "ravi@upi")
	m = stepPayment(t, m, keyMsg("enter"))
	m = typeText(t, m, "500")
	m = stepPayment(t, m, keyMsg("enter"))
	for _, d := range []string{"9", "8", "7", "6"} {
		m = stepPayment(t, m, keyMsg(d))
	}
	m = stepPayment(t, m, keyMsg("enter"))

	assert.Contains(t, m.View(), "Payment failed")
}
