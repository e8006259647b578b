package launch

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestOpener_OpenURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{"https://example.com/docs"}},
		{"linux", "xdg-open", []string{"https://example.com/docs"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "https://example.com/docs"}},
	}
	for _, tt := range tests {
		var calls []startCall
		o := NewOpener(WithOpenerGOOS(tt.goos), WithOpenerStartFunc(recordStarts(&calls)))
		if err := o.OpenURL(context.Background(), "https://example.com/docs"); err != nil {
			t.Fatalf("%s: OpenURL() error: %v", tt.goos, err)
		}
		if len(calls) != 1 || calls[0].name != tt.wantName || !slices.Equal(calls[0].args, tt.wantArgs) {
			t.Errorf("%s: calls = %+v, want %s %v", tt.goos, calls, tt.wantName, tt.wantArgs)
		}
	}
}

func TestOpener_OpenURL_RejectsOtherSchemes(t *testing.T) {
	t.Parallel()

	var calls []startCall
	o := NewOpener(WithOpenerGOOS("linux"), WithOpenerStartFunc(recordStarts(&calls)))
	for _, raw := range []string{"file:///etc/passwd", "javascript:alert(1)", "not a url", "https://"} {
		if err := o.OpenURL(context.Background(), raw); !errors.Is(err, ErrUnsupportedURL) {
			t.Errorf("OpenURL(%q) error = %v, want ErrUnsupportedURL", raw, err)
		}
	}
	if len(calls) != 0 {
		t.Errorf("nothing should be opened, got %v", calls)
	}
}

func TestOpener_OpenPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var calls []startCall
	o := NewOpener(WithOpenerGOOS("linux"), WithOpenerStartFunc(recordStarts(&calls)))
	if err := o.OpenPath(context.Background(), dir); err != nil {
		t.Fatalf("OpenPath() error: %v", err)
	}
	if calls[0].name != "xdg-open" || calls[0].args[0] != dir {
		t.Errorf("call = %+v", calls[0])
	}

	if err := o.OpenPath(context.Background(), ""); !errors.Is(err, ErrNoDir) {
		t.Errorf("OpenPath(\"\") error = %v, want ErrNoDir", err)
	}
}
