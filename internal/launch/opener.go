package launch

import (
	"context"
	"fmt"
	"net/url"
	"runtime"
)

// Opener hands paths and URLs to the OS shell handler.
type Opener struct {
	goos  string
	start StartFunc
}

// OpenerOption configures an Opener.
type OpenerOption func(*Opener)

// WithOpenerGOOS overrides platform detection (used for testing).
func WithOpenerGOOS(goos string) OpenerOption {
	return func(o *Opener) {
		o.goos = goos
	}
}

// WithOpenerStartFunc sets a custom process starter (used for testing).
func WithOpenerStartFunc(fn StartFunc) OpenerOption {
	return func(o *Opener) {
		o.start = fn
	}
}

// NewOpener creates an Opener for the running platform.
func NewOpener(opts ...OpenerOption) *Opener {
	o := &Opener{goos: runtime.GOOS, start: defaultStart}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OpenPath reveals a folder in the file manager.
func (o *Opener) OpenPath(ctx context.Context, path string) error {
	if err := checkDir(path); err != nil {
		return err
	}
	name, args := o.handler(path)
	return o.start(ctx, "", name, args...)
}

// OpenURL opens an http or https URL in the default browser.
func (o *Opener) OpenURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, raw)
	}
	name, args := o.handler(u.String())
	return o.start(ctx, "", name, args...)
}

func (o *Opener) handler(target string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}
