package launch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/modu-ai/moai-deck/pkg/models"
)

type startCall struct {
	dir  string
	name string
	args []string
}

func recordStarts(calls *[]startCall) StartFunc {
	return func(_ context.Context, dir, name string, args ...string) error {
		*calls = append(*calls, startCall{dir: dir, name: name, args: args})
		return nil
	}
}

func TestBuildArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{"plain", Request{Dir: "/p"}, []string{"claude"}},
		{"model", Request{Dir: "/p", Model: "opus"}, []string{"claude", "--model", "opus"}},
		{"skip", Request{Dir: "/p", SkipPermissions: true}, []string{"claude", SkipPermissionsFlag}},
		{"both", Request{Dir: "/p", Model: "sonnet", SkipPermissions: true}, []string{"claude", "--model", "sonnet", SkipPermissionsFlag}},
	}
	for _, tt := range tests {
		if got := BuildArgs("claude", tt.req); !slices.Equal(got, tt.want) {
			t.Errorf("%s: BuildArgs() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDispatcher_Launch_Linux(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var calls []startCall
	d := NewDispatcher(
		WithGOOS("linux"),
		WithStartFunc(recordStarts(&calls)),
		WithTerminal([]string{"kitty", "--hold", "-e"}),
	)

	err := d.Launch(context.Background(), Request{Dir: dir, Model: "opus", SkipPermissions: true})
	if err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("start calls = %d, want 1", len(calls))
	}

	c := calls[0]
	if c.dir != dir {
		t.Errorf("working dir = %q, want %q", c.dir, dir)
	}
	if c.name != "kitty" {
		t.Errorf("name = %q, want kitty", c.name)
	}
	want := []string{"--hold", "-e", "claude", "--model", "opus", SkipPermissionsFlag}
	if !slices.Equal(c.args, want) {
		t.Errorf("args = %v, want %v", c.args, want)
	}
}

func TestDispatcher_Launch_Darwin(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "it's here")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	var calls []startCall
	d := NewDispatcher(WithGOOS("darwin"), WithStartFunc(recordStarts(&calls)), WithCommand("claude"))
	if err := d.Launch(context.Background(), Request{Dir: dir, Model: "haiku"}); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	c := calls[0]
	if c.name != "osascript" {
		t.Fatalf("name = %q, want osascript", c.name)
	}
	script := strings.Join(c.args, " ")
	if !strings.Contains(script, `do script "cd `) {
		t.Errorf("script missing do script: %s", script)
	}
	if !strings.Contains(script, `'\\''s here`) {
		t.Errorf("folder with quote not escaped: %s", script)
	}
	if !strings.Contains(script, "claude --model haiku") {
		t.Errorf("script missing command: %s", script)
	}
}

func TestDispatcher_Launch_Windows(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var calls []startCall
	d := NewDispatcher(WithGOOS("windows"), WithStartFunc(recordStarts(&calls)), WithMode(models.LaunchTmux))
	if err := d.Launch(context.Background(), Request{Dir: dir}); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	c := calls[0]
	want := []string{"/c", "start", "", "/D", dir, "cmd", "/k", "claude"}
	if c.name != "cmd" || !slices.Equal(c.args, want) {
		t.Errorf("invocation = %s %v, want cmd %v", c.name, c.args, want)
	}
}

func TestDispatcher_Launch_Tmux(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "my.app")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	var runs [][]string
	runner := func(_ context.Context, name string, args ...string) (string, error) {
		runs = append(runs, append([]string{name}, args...))
		if len(args) > 0 && args[0] == "has-session" {
			return "", errors.New("no session")
		}
		return "", nil
	}
	var starts []startCall
	d := NewDispatcher(
		WithGOOS("linux"),
		WithMode(models.LaunchTmux),
		WithStartFunc(recordStarts(&starts)),
		WithTmux(NewTmuxLauncher(WithTmuxRunFunc(runner))),
	)

	if err := d.Launch(context.Background(), Request{Dir: dir, Model: "opus"}); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	if len(starts) != 0 {
		t.Errorf("terminal should not be started in tmux mode, got %v", starts)
	}

	want := [][]string{
		{"tmux", "has-session", "-t", "=deck-my-app"},
		{"tmux", "new-session", "-d", "-s", "deck-my-app", "-c", dir},
		{"tmux", "send-keys", "-t", "deck-my-app:0.0", "claude --model opus", "Enter"},
	}
	if len(runs) != len(want) {
		t.Fatalf("runs = %v, want %v", runs, want)
	}
	for i := range want {
		if !slices.Equal(runs[i], want[i]) {
			t.Errorf("run[%d] = %v, want %v", i, runs[i], want[i])
		}
	}
}

func TestDispatcher_Launch_InvalidDir(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var calls []startCall
	d := NewDispatcher(WithGOOS("linux"), WithStartFunc(recordStarts(&calls)))

	for _, dir := range []string{"", file, filepath.Join(t.TempDir(), "missing")} {
		err := d.Launch(context.Background(), Request{Dir: dir})
		if !errors.Is(err, ErrNoDir) {
			t.Errorf("Launch(%q) error = %v, want ErrNoDir", dir, err)
		}
	}
	if len(calls) != 0 {
		t.Errorf("nothing should be started, got %v", calls)
	}
}

func TestDispatcher_Launch_StartErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("exec: not found")
	d := NewDispatcher(WithGOOS("linux"), WithStartFunc(func(context.Context, string, string, ...string) error {
		return boom
	}))
	if err := d.Launch(context.Background(), Request{Dir: t.TempDir()}); !errors.Is(err, boom) {
		t.Errorf("Launch() error = %v, want %v", err, boom)
	}
}

func TestDispatcher_Launch_NoTerminal(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(WithGOOS("linux"), WithTerminal([]string{""}))
	if err := d.Launch(context.Background(), Request{Dir: t.TempDir()}); !errors.Is(err, ErrNoTerminal) {
		t.Errorf("Launch() error = %v, want ErrNoTerminal", err)
	}
}

func TestShellQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", "''"},
		{"claude", "claude"},
		{"--model", "--model"},
		{"/home/me/src", "/home/me/src"},
		{"my project", "'my project'"},
		{"it's", `'it'\''s'`},
		{"$(rm -rf)", "'$(rm -rf)'"},
	}
	for _, tt := range tests {
		if got := ShellQuote(tt.in); got != tt.want {
			t.Errorf("ShellQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
