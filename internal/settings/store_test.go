package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modu-ai/moai-deck/pkg/models"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestStore_Get_MissingFile(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "settings.json"))
	if n := s.Get().Len(); n != 0 {
		t.Errorf("Get().Len() = %d, want 0", n)
	}
	if m := s.Model(); m != "" {
		t.Errorf("Model() = %q, want empty", m)
	}
}

func TestStore_Get_NullAndNonObject(t *testing.T) {
	t.Parallel()

	for _, content := range []string{"null", "[]", "42", "{broken"} {
		s := NewStore(writeSettings(t, content))
		if n := s.Get().Len(); n != 0 {
			t.Errorf("content %q: Get().Len() = %d, want 0", content, n)
		}
		if got := s.SecurityStatus(); got != (models.SecurityStatus{}) {
			t.Errorf("content %q: SecurityStatus() = %+v, want zero", content, got)
		}
	}
}

func TestStore_SetModel_PreservesUnknownFields(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `{
  "env": {"FOO": "bar"},
  "statusLine": {"type": "command", "command": "moai statusline"},
  "includeCoAuthoredBy": false
}`)
	s := NewStore(path)

	if err := s.SetModel("opus"); err != nil {
		t.Fatalf("SetModel() error: %v", err)
	}
	if got := s.SecurityStatus(); got != (models.SecurityStatus{}) {
		t.Errorf("SecurityStatus() = %+v, want zero", got)
	}

	reloaded := NewStore(path)
	if got := reloaded.Model(); got != "opus" {
		t.Errorf("Model() after restart = %q, want opus", got)
	}

	doc := reloaded.Get()
	wantKeys := []string{"env", "statusLine", "includeCoAuthoredBy", "model"}
	if got := doc.Keys(); strings.Join(got, ",") != strings.Join(wantKeys, ",") {
		t.Errorf("Keys() = %v, want %v", got, wantKeys)
	}

	var env map[string]string
	if !doc.Decode("env", &env) || env["FOO"] != "bar" {
		t.Errorf("env not preserved: %v", env)
	}
	var co bool
	if !doc.Decode("includeCoAuthoredBy", &co) || co {
		t.Errorf("includeCoAuthoredBy not preserved")
	}
}

func TestStore_SetModel_Remove(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `{"model": "sonnet", "theme": "dark"}`)
	s := NewStore(path)

	if err := s.SetModel(""); err != nil {
		t.Fatalf("SetModel(\"\") error: %v", err)
	}
	if s.Model() != "" {
		t.Error("model should be removed")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "model") {
		t.Errorf("file still contains model: %s", data)
	}
	if !strings.Contains(string(data), `"theme": "dark"`) {
		t.Errorf("file lost theme: %s", data)
	}
}

func TestStore_SetModel_KeepsPosition(t *testing.T) {
	t.Parallel()

	s := NewStore(writeSettings(t, `{"a": 1, "model": "haiku", "b": 2}`))
	if err := s.SetModel("opus"); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(s.Get().Keys(), ","); got != "a,model,b" {
		t.Errorf("Keys() = %s, want a,model,b", got)
	}
}

func TestStore_SetModel_RefusesUnparsableFile(t *testing.T) {
	t.Parallel()

	const content = `{"model": "haiku", "env": {"FOO": "bar"},}`
	path := writeSettings(t, content)
	s := NewStore(path)

	err := s.SetModel("opus")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("SetModel() error = %v, want ErrUnreadable", err)
	}
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != content {
		t.Errorf("file rewritten: %s", data)
	}
}

func TestStore_SetModel_MissingFileCreates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	s := NewStore(path)
	if err := s.SetModel("opus"); err != nil {
		t.Fatalf("SetModel() error: %v", err)
	}
	if got := NewStore(path).Model(); got != "opus" {
		t.Errorf("Model() after reopen = %q, want opus", got)
	}
}

func TestStore_Get_ReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewStore(writeSettings(t, `{"model": "haiku"}`))
	doc := s.Get()
	doc.Delete("model")

	if s.Model() != "haiku" {
		t.Error("mutating Get() result changed the store")
	}
}

func TestSecurityStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    models.SecurityStatus
	}{
		{"empty", `{}`, models.SecurityStatus{}},
		{"deny list", `{"permissions": {"deny": ["Bash(rm:*)", "Read(.env)"]}}`, models.SecurityStatus{DenyCount: 2}},
		{"empty deny", `{"permissions": {"deny": [], "allow": ["Bash"]}}`, models.SecurityStatus{}},
		{"hook present", `{"hooks": {"PreToolUse": [{"matcher": "Bash", "hooks": []}]}}`, models.SecurityStatus{HasHook: true}},
		{"hook empty", `{"hooks": {"PreToolUse": []}}`, models.SecurityStatus{}},
		{"other hooks only", `{"hooks": {"PostToolUse": [{}]}}`, models.SecurityStatus{}},
		{"deny wrong type", `{"permissions": {"deny": "all"}}`, models.SecurityStatus{}},
		{"hooks wrong type", `{"hooks": {"PreToolUse": {"a": 1}}}`, models.SecurityStatus{}},
		{
			"both",
			`{"permissions": {"deny": ["x"]}, "hooks": {"PreToolUse": [{}]}}`,
			models.SecurityStatus{DenyCount: 1, HasHook: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := NewDocument()
			if err := json.Unmarshal([]byte(tt.content), doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := SecurityStatusOf(doc); got != tt.want {
				t.Errorf("SecurityStatusOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
