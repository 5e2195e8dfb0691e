// Package viewmodel holds the pure UI state machines behind the TUI
// components, kept free of bubbletea so they can be tested directly.
package viewmodel

// PinLength is the fixed number of PIN digits.
const PinLength = 4

// PinBuffer is the 4-slot entry buffer behind the PIN widget. Slots are
// blanked, never removed; the buffer always has exactly PinLength slots.
type PinBuffer struct {
	slots [PinLength]string
	focus int
}

// NewPinBuffer returns an empty buffer focused on the first slot.
func NewPinBuffer() PinBuffer {
	return PinBuffer{}
}

// SetDigit writes char into the slot at index. Only the empty string or a
// single decimal digit is accepted; anything else is a silent no-op.
// Accepting a digit before the last slot advances focus.
func (b *PinBuffer) SetDigit(index int, char string) bool {
	if index < 0 || index >= PinLength {
		return false
	}
	if !isDigitOrEmpty(char) {
		return false
	}

	b.slots[index] = char
	if char != "" && index < PinLength-1 {
		b.focus = index + 1
	}
	return true
}

// Backspace handles a backspace key on the slot at index. An empty slot
// above the first moves focus left without touching the previous slot's
// content; backspace on slot 0 does nothing. A filled slot is cleared in
// place.
func (b *PinBuffer) Backspace(index int) {
	if index < 0 || index >= PinLength {
		return
	}

	if b.slots[index] == "" {
		if index > 0 {
			b.focus = index - 1
		}
		return
	}

	b.slots[index] = ""
	b.focus = index
}

// Focus returns the index of the focused slot.
func (b PinBuffer) Focus() int {
	return b.focus
}

// Slot returns the content of the slot at index.
func (b PinBuffer) Slot(index int) string {
	if index < 0 || index >= PinLength {
		return ""
	}
	return b.slots[index]
}

// IsComplete reports whether all slots hold a digit.
func (b PinBuffer) IsComplete() bool {
	for _, s := range b.slots {
		if s == "" {
			return false
		}
	}
	return true
}

// Value returns the concatenated digits; meaningful only when complete.
func (b PinBuffer) Value() string {
	var v string
	for _, s := range b.slots {
		v += s
	}
	return v
}

// Reset blanks every slot and returns focus to the first.
func (b *PinBuffer) Reset() {
	*b = PinBuffer{}
}

func isDigitOrEmpty(char string) bool {
	if char == "" {
		return true
	}
	if len(char) != 1 {
		return false
	}
	return char[0] >= '0' && char[0] <= '9'
}
