package carousel

import "fmt"

// Mode reports whether timer ticks still move the window.
type Mode int

const (
	// ModeAutoAdvancing is the initial mode: ticks advance the window.
	ModeAutoAdvancing Mode = iota
	// ModeManual is entered on the first manual navigation and never left.
	ModeManual
)

func (m Mode) String() string {
	switch m {
	case ModeAutoAdvancing:
		return "auto-advancing"
	case ModeManual:
		return "manual"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Command is a navigation request fed into Window.Reduce.
type Command int

const (
	CommandAdvance Command = iota + 1
	CommandRetreat
	CommandTick
)

func (c Command) String() string {
	switch c {
	case CommandAdvance:
		return "advance"
	case CommandRetreat:
		return "retreat"
	case CommandTick:
		return "tick"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// State is the only mutable part of a carousel. Start is always in
// [0, length).
type State struct {
	Start int  `json:"start"`
	Mode  Mode `json:"mode"`
}

// Window is the validated geometry of a carousel.
type Window struct {
	length int
	size   int
}

// NewWindow validates the geometry of a carousel over length items showing
// size items at a time. size may exceed length; the window then repeats items.
func NewWindow(length, size int) (Window, error) {
	if length <= 0 {
		return Window{}, fmt.Errorf("%w: item list is empty", ErrInvalidArgument)
	}
	if size <= 0 {
		return Window{}, fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidArgument, size)
	}
	return Window{length: length, size: size}, nil
}

// Len returns the number of items in the underlying list.
func (w Window) Len() int { return w.length }

// Size returns the number of items visible at once.
func (w Window) Size() int { return w.size }

// Initial returns the state a carousel starts in.
func (w Window) Initial() State {
	return State{Start: 0, Mode: ModeAutoAdvancing}
}

// At normalises an arbitrary start index, negative values included, into a
// manual-mode state. Landing on an explicit position counts as navigation.
func (w Window) At(start int) State {
	if w.length <= 0 {
		return State{Mode: ModeManual}
	}
	return State{Start: w.mod(start), Mode: ModeManual}
}

// Advance moves the window forward by one full page.
func (w Window) Advance(s State) State {
	if w.length <= 0 {
		return s
	}
	s.Start = w.mod(s.Start + w.size)
	return s
}

// Retreat moves the window back by one full page. It is the exact inverse of
// Advance.
func (w Window) Retreat(s State) State {
	if w.length <= 0 {
		return s
	}
	s.Start = (w.mod(s.Start) - w.size%w.length + w.length) % w.length
	return s
}

// Reduce applies cmd to s. Manual commands switch the state to ModeManual;
// ticks only move the window while the state is still auto-advancing.
func (w Window) Reduce(s State, cmd Command) State {
	switch cmd {
	case CommandAdvance:
		s = w.Advance(s)
		s.Mode = ModeManual
	case CommandRetreat:
		s = w.Retreat(s)
		s.Mode = ModeManual
	case CommandTick:
		if s.Mode == ModeAutoAdvancing {
			s = w.Advance(s)
		}
	}
	return s
}

// Indices returns the list positions visible for s, in display order.
func (w Window) Indices(s State) []int {
	if w.length <= 0 {
		return nil
	}
	out := make([]int, w.size)
	for i := range out {
		out[i] = w.mod(s.Start + i)
	}
	return out
}

// Pages returns how many advances it takes for the windows to cover every
// item at least once.
func (w Window) Pages() int {
	if w.length <= 0 {
		return 0
	}
	return (w.length + w.size - 1) / w.size
}

func (w Window) mod(i int) int {
	r := i % w.length
	if r < 0 {
		r += w.length
	}
	return r
}

// Visible returns the items shown for s. The result always holds w.Size()
// items. items must be the list w was built for.
func Visible[T any](items []T, w Window, s State) []T {
	if len(items) == 0 || w.length != len(items) {
		return nil
	}
	out := make([]T, 0, w.size)
	for _, idx := range w.Indices(s) {
		out = append(out, items[idx])
	}
	return out
}
