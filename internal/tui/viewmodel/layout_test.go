package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakpointFor(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  Breakpoint
	}{
		{name: "tiny terminal", width: 40, want: BreakpointMobile},
		{name: "just under tablet", width: 79, want: BreakpointMobile},
		{name: "tablet lower bound", width: 80, want: BreakpointTablet},
		{name: "just under desktop", width: 119, want: BreakpointTablet},
		{name: "desktop lower bound", width: 120, want: BreakpointDesktop},
		{name: "wide desktop", width: 200, want: BreakpointDesktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BreakpointFor(tt.width))
		})
	}
}

func TestLayout_Columns(t *testing.T) {
	assert.Equal(t, 1, Layout{Width: 60}.Columns())
	assert.Equal(t, 2, Layout{Width: 100}.Columns())
	assert.Equal(t, 3, Layout{Width: 160}.Columns())
}
