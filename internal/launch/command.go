package launch

import (
	"strings"
)

// SkipPermissionsFlag is the assistant flag that bypasses permission prompts.
const SkipPermissionsFlag = "--dangerously-skip-permissions"

// Request describes one launch of the assistant.
type Request struct {
	// Dir is the project folder used as the working directory.
	Dir string

	// Model is passed as --model when non-empty.
	Model string

	// SkipPermissions adds SkipPermissionsFlag.
	SkipPermissions bool
}

// BuildArgs returns the assistant argv for req, starting with command.
func BuildArgs(command string, req Request) []string {
	args := []string{command}
	if req.Model != "" {
		args = append(args, "--model", req.Model)
	}
	if req.SkipPermissions {
		args = append(args, SkipPermissionsFlag)
	}
	return args
}

// ShellQuote quotes s for a POSIX shell. Words made only of safe characters
// are returned unchanged.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !isSafeShellRune(r) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ShellJoin quotes and joins args into one shell command line.
func ShellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = ShellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func isSafeShellRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("-_./=:@%+,", r)
}

// appleScriptString escapes s for use inside an AppleScript string literal.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
