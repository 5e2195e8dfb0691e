package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinBuffer_SetDigit_RejectsNonDigits(t *testing.T) {
	rejected := []string{"a", "x", " ", ".", "-", "12", "d1", "①", "٣", "\n"}

	for _, input := range rejected {
		t.Run("rejects "+input, func(t *testing.T) {
			b := NewPinBuffer()
			b.SetDigit(0, "5")

			before := b
			assert.False(t, b.SetDigit(1, input))
			assert.Equal(t, before, b, "rejected input must leave the buffer unchanged")
		})
	}
}

func TestPinBuffer_SetDigit_AcceptsDigitsAndEmpty(t *testing.T) {
	b := NewPinBuffer()

	for i, d := range []string{"0", "9", "4", "7"} {
		assert.True(t, b.SetDigit(i, d))
		assert.Equal(t, d, b.Slot(i))
	}

	assert.True(t, b.SetDigit(2, ""), "empty string blanks a slot")
	assert.Equal(t, "", b.Slot(2))
}

func TestPinBuffer_FocusAdvancesOnDigit(t *testing.T) {
	b := NewPinBuffer()

	b.SetDigit(0, "1")
	assert.Equal(t, 1, b.Focus())
	b.SetDigit(1, "2")
	assert.Equal(t, 2, b.Focus())
	b.SetDigit(2, "3")
	assert.Equal(t, 3, b.Focus())

	// Last slot never advances past the end.
	b.SetDigit(3, "4")
	assert.Equal(t, 3, b.Focus())
}

func TestPinBuffer_Backspace(t *testing.T) {
	t.Run("empty slot above zero moves focus left only", func(t *testing.T) {
		b := NewPinBuffer()
		b.SetDigit(0, "7") // focus now 1, slot 1 empty

		b.Backspace(1)
		assert.Equal(t, 0, b.Focus())
		assert.Equal(t, "7", b.Slot(0), "previous slot content is not deleted")
	})

	t.Run("slot zero is a no-op", func(t *testing.T) {
		b := NewPinBuffer()
		b.Backspace(0)
		assert.Equal(t, 0, b.Focus())
		assert.Equal(t, NewPinBuffer(), b)
	})

	t.Run("filled slot clears in place", func(t *testing.T) {
		b := NewPinBuffer()
		b.SetDigit(0, "1")
		b.SetDigit(1, "2")

		b.Backspace(1)
		assert.Equal(t, "", b.Slot(1))
		assert.Equal(t, 1, b.Focus())
	})
}

func TestPinBuffer_IsComplete(t *testing.T) {
	b := NewPinBuffer()
	assert.False(t, b.IsComplete())

	// Every partial fill count stays incomplete.
	for i, d := range []string{"1", "2", "3"} {
		b.SetDigit(i, d)
		assert.False(t, b.IsComplete(), "%d filled slots must be incomplete", i+1)
	}

	b.SetDigit(3, "4")
	assert.True(t, b.IsComplete())
	assert.Equal(t, "1234", b.Value())

	// Blanking any slot breaks completeness; length stays 4.
	b.SetDigit(1, "")
	assert.False(t, b.IsComplete())
}

func TestPinBuffer_Reset(t *testing.T) {
	b := NewPinBuffer()
	for i, d := range []string{"9", "9", "9", "9"} {
		b.SetDigit(i, d)
	}

	b.Reset()
	require.Equal(t, NewPinBuffer(), b)
	for i := 0; i < PinLength; i++ {
		assert.Equal(t, "", b.Slot(i))
	}
	assert.Equal(t, 0, b.Focus())
}
