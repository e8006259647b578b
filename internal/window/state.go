// Package window persists the launcher window geometry. Loading repairs
// states that would leave the window too small or off every display, and
// saving is debounced so a drag produces one write.
package window

import "github.com/modu-ai/moai-deck/internal/store"

// Minimum window size.
const (
	MinWidth  = 360
	MinHeight = 400
)

// State is the saved window geometry. X and Y are nil when no position is
// known and the shell should pick one.
type State struct {
	X         *int `json:"x,omitempty"`
	Y         *int `json:"y,omitempty"`
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Maximized bool `json:"maximized"`
}

// Rect is a display's work area in global screen coordinates.
type Rect struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// DefaultState returns the geometry used when nothing is saved.
func DefaultState() State {
	return State{Width: 420, Height: 640}
}

// NewStore returns a Store for the window state file.
func NewStore(path string, opts ...store.Option) *store.Store[State] {
	return store.New(path, DefaultState, opts...)
}

// Load reads the saved state and repairs it for the given displays.
func Load(st *store.Store[State], displays []Rect) State {
	return Normalize(st.Load(), displays)
}

// Normalize clamps the size to the minimums and drops a position that lies
// on none of displays. An empty display list keeps the position.
func Normalize(s State, displays []Rect) State {
	s.Width = max(s.Width, MinWidth)
	s.Height = max(s.Height, MinHeight)

	if s.X == nil || s.Y == nil {
		s.X, s.Y = nil, nil
		return s
	}
	if len(displays) == 0 {
		return s
	}
	for _, d := range displays {
		if d.Contains(*s.X, *s.Y) {
			return s
		}
	}
	s.X, s.Y = nil, nil
	return s
}

// Position returns a State position pair from plain ints.
func Position(x, y int) (*int, *int) {
	return &x, &y
}
