package window

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize_ClampsSize(t *testing.T) {
	t.Parallel()

	got := Normalize(State{Width: 100, Height: 50}, nil)
	if got.Width != MinWidth || got.Height != MinHeight {
		t.Errorf("Normalize() size = %dx%d, want %dx%d", got.Width, got.Height, MinWidth, MinHeight)
	}

	got = Normalize(State{Width: 800, Height: 900}, nil)
	if got.Width != 800 || got.Height != 900 {
		t.Errorf("Normalize() changed valid size to %dx%d", got.Width, got.Height)
	}
}

func TestNormalize_Position(t *testing.T) {
	t.Parallel()

	displays := []Rect{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 2560, Height: 1440},
	}

	tests := []struct {
		name     string
		x, y     int
		displays []Rect
		keep     bool
	}{
		{"primary", 100, 100, displays, true},
		{"secondary", 2000, 500, displays, true},
		{"right of all", 5000, 100, displays, false},
		{"negative", -500, -500, displays, false},
		{"below primary", 100, 1200, displays, false},
		{"no display info", 9999, 9999, nil, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			x, y := Position(tt.x, tt.y)
			got := Normalize(State{X: x, Y: y, Width: 500, Height: 500}, tt.displays)
			if tt.keep {
				if got.X == nil || got.Y == nil || *got.X != tt.x || *got.Y != tt.y {
					t.Errorf("position should be kept, got %v,%v", got.X, got.Y)
				}
				return
			}
			if got.X != nil || got.Y != nil {
				t.Errorf("off-display position should be dropped, got %d,%d", *got.X, *got.Y)
			}
		})
	}
}

func TestNormalize_PartialPositionDropped(t *testing.T) {
	t.Parallel()

	x := 10
	got := Normalize(State{X: &x, Width: 500, Height: 500}, nil)
	if got.X != nil || got.Y != nil {
		t.Error("a position with only X should be dropped")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "window-state.json")
	content := `{"x": 4000, "y": 10, "width": 200, "height": 300, "maximized": true}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Load(NewStore(path), []Rect{{Width: 1920, Height: 1080}})
	if got.X != nil || got.Y != nil {
		t.Error("off-display position should be omitted")
	}
	if got.Width != MinWidth || got.Height != MinHeight {
		t.Errorf("size = %dx%d, want clamped", got.Width, got.Height)
	}
	if !got.Maximized {
		t.Error("maximized flag should be kept")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	got := Load(NewStore(filepath.Join(t.TempDir(), "none.json")), nil)
	if got != DefaultState() {
		t.Errorf("Load() = %+v, want default %+v", got, DefaultState())
	}
}
