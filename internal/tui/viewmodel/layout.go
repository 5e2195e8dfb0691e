package viewmodel

// Breakpoint is the viewport class derived from the terminal width. All
// responsive layout decisions go through this single provider instead of
// ad hoc width checks scattered across components.
type Breakpoint int

const (
	// BreakpointMobile is a narrow terminal (stacked single-column layout).
	BreakpointMobile Breakpoint = iota
	// BreakpointTablet is a medium terminal (two-column layout).
	BreakpointTablet
	// BreakpointDesktop is a wide terminal (full layout with side panels).
	BreakpointDesktop
)

// Width thresholds, in terminal columns.
const (
	tabletMinWidth  = 80
	desktopMinWidth = 120
)

// BreakpointFor classifies a terminal width.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width < tabletMinWidth:
		return BreakpointMobile
	case width < desktopMinWidth:
		return BreakpointTablet
	default:
		return BreakpointDesktop
	}
}

// Layout carries the current terminal dimensions and exposes the derived
// breakpoint to components.
type Layout struct {
	Width  int
	Height int
}

// Breakpoint returns the viewport class for the current width.
func (l Layout) Breakpoint() Breakpoint {
	return BreakpointFor(l.Width)
}

// Columns returns how many account cards fit side by side.
func (l Layout) Columns() int {
	switch l.Breakpoint() {
	case BreakpointMobile:
		return 1
	case BreakpointTablet:
		return 2
	default:
		return 3
	}
}

func (b Breakpoint) String() string {
	switch b {
	case BreakpointMobile:
		return "mobile"
	case BreakpointTablet:
		return "tablet"
	default:
		return "desktop"
	}
}
