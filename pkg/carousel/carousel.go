package carousel

// Carousel owns a list of items, its window geometry and the current state.
// It is not safe for concurrent use; wrap it in a Loop when ticks and user
// input arrive from different goroutines.
type Carousel[T any] struct {
	items  []T
	window Window
	state  State
}

// New validates the configuration and returns a carousel positioned on the
// first page.
func New[T any](items []T, windowSize int) (*Carousel[T], error) {
	window, err := NewWindow(len(items), windowSize)
	if err != nil {
		return nil, err
	}
	return &Carousel[T]{
		items:  append([]T(nil), items...),
		window: window,
		state:  window.Initial(),
	}, nil
}

// Items returns a copy of the carousel items.
func (c *Carousel[T]) Items() []T {
	return append([]T(nil), c.items...)
}

func (c *Carousel[T]) Window() Window { return c.window }

func (c *Carousel[T]) State() State { return c.state }

// Visible returns the currently displayed items.
func (c *Carousel[T]) Visible() []T {
	return Visible(c.items, c.window, c.state)
}

// Dispatch applies cmd and returns the new state.
func (c *Carousel[T]) Dispatch(cmd Command) State {
	c.state = c.window.Reduce(c.state, cmd)
	return c.state
}

func (c *Carousel[T]) Advance() State { return c.Dispatch(CommandAdvance) }

func (c *Carousel[T]) Retreat() State { return c.Dispatch(CommandRetreat) }

func (c *Carousel[T]) Tick() State { return c.Dispatch(CommandTick) }

// Snapshot captures the state together with the visible items.
func (c *Carousel[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Start:   c.state.Start,
		Mode:    c.state.Mode,
		Visible: c.Visible(),
	}
}

// Snapshot is a point-in-time view of a carousel.
type Snapshot[T any] struct {
	Start   int
	Mode    Mode
	Visible []T
}
