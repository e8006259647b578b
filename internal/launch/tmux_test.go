package launch

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestTmuxLauncher_Start_PicksFreeName(t *testing.T) {
	t.Parallel()

	existing := map[string]bool{"=deck-api": true, "=deck-api-2": true}
	var created string
	runner := func(_ context.Context, _ string, args ...string) (string, error) {
		switch args[0] {
		case "has-session":
			if existing[args[2]] {
				return "", nil
			}
			return "", errors.New("can't find session")
		case "new-session":
			created = args[3]
		}
		return "", nil
	}

	l := NewTmuxLauncher(WithTmuxRunFunc(runner))
	res, err := l.Start(context.Background(), "/src/api", []string{"claude"})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if res.SessionName != "deck-api-3" || created != "deck-api-3" {
		t.Errorf("session = %q (created %q), want deck-api-3", res.SessionName, created)
	}
}

func TestTmuxLauncher_Start_NamesExhausted(t *testing.T) {
	t.Parallel()

	var checked []string
	created := false
	runner := func(_ context.Context, _ string, args ...string) (string, error) {
		switch args[0] {
		case "has-session":
			checked = append(checked, args[2])
		case "new-session":
			created = true
		}
		return "", nil
	}

	l := NewTmuxLauncher(WithTmuxRunFunc(runner))
	_, err := l.Start(context.Background(), "/src/api", []string{"claude"})
	if !errors.Is(err, ErrSessionsExhausted) {
		t.Fatalf("Start() error = %v, want ErrSessionsExhausted", err)
	}
	if created {
		t.Error("new-session should not run when every name is taken")
	}
	if len(checked) != maxSessionSuffix {
		t.Errorf("checked %d names, want %d", len(checked), maxSessionSuffix)
	}
	if last := checked[len(checked)-1]; last != "=deck-api-9" {
		t.Errorf("last checked = %q, want =deck-api-9", last)
	}
}

func TestTmuxLauncher_Start_LastSuffixFree(t *testing.T) {
	t.Parallel()

	var created string
	runner := func(_ context.Context, _ string, args ...string) (string, error) {
		switch args[0] {
		case "has-session":
			if args[2] == "=deck-api-9" {
				return "", errors.New("can't find session")
			}
		case "new-session":
			created = args[3]
		}
		return "", nil
	}

	l := NewTmuxLauncher(WithTmuxRunFunc(runner))
	res, err := l.Start(context.Background(), "/src/api", []string{"claude"})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if res.SessionName != "deck-api-9" || created != "deck-api-9" {
		t.Errorf("session = %q (created %q), want deck-api-9", res.SessionName, created)
	}
}

func TestTmuxLauncher_Start_NewSessionFails(t *testing.T) {
	t.Parallel()

	runner := func(_ context.Context, _ string, args ...string) (string, error) {
		if args[0] == "has-session" {
			return "", errors.New("no server")
		}
		if args[0] == "new-session" {
			return "", errors.New("tmux: command not found")
		}
		return "", nil
	}

	l := NewTmuxLauncher(WithTmuxRunFunc(runner))
	_, err := l.Start(context.Background(), "/src/api", []string{"claude"})
	if err == nil || !strings.Contains(err.Error(), "create session") {
		t.Errorf("Start() error = %v, want create session error", err)
	}
}

func TestSessionName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir, want string
	}{
		{"/src/api", "deck-api"},
		{"/src/api/", "deck-api"},
		{"/src/my.app", "deck-my-app"},
		{"/src/two words", "deck-two-words"},
		{"/", "deck-root"},
	}
	for _, tt := range tests {
		if got := SessionName(tt.dir); got != tt.want {
			t.Errorf("SessionName(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}
