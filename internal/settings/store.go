// Package settings reads and patches the assistant's user settings document.
// The document is owned by the assistant; this package only touches the
// model field and reads the security policy fields.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modu-ai/moai-deck/internal/store"
	"github.com/modu-ai/moai-deck/pkg/models"
)

// ErrUnreadable is returned when a patch would overwrite a settings file
// that exists but could not be parsed.
var ErrUnreadable = errors.New("settings: existing file could not be parsed")

// Field names within the settings document.
const (
	fieldModel       = "model"
	fieldPermissions = "permissions"
	fieldHooks       = "hooks"
)

// Store gives typed access to the settings document.
type Store struct {
	doc *store.Store[*Document]
}

// NewStore creates a Store for the settings file at path. A missing or
// unparsable file reads as an empty document.
func NewStore(path string, opts ...store.Option) *Store {
	return &Store{doc: store.New(path, NewDocument, opts...)}
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.doc.Path()
}

// Get returns a copy of the current document.
func (s *Store) Get() *Document {
	return s.current().Clone()
}

// Model returns the configured model name, or "" when unset.
func (s *Store) Model() string {
	var m string
	if !s.current().Decode(fieldModel, &m) {
		return ""
	}
	return m
}

// SetModel sets the model field, or removes it when name is empty. Every
// other field is written back unchanged. A file that exists but does not
// parse is left alone and ErrUnreadable is returned.
func (s *Store) SetModel(name string) error {
	if err := s.doc.ReadErr(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadable, s.doc.Path(), err)
	}

	var setErr error
	_, err := s.doc.Update(func(cur *Document) *Document {
		next := orEmpty(cur).Clone()
		if name == "" {
			next.Delete(fieldModel)
			return next
		}
		if setErr = next.Set(fieldModel, name); setErr != nil {
			return cur
		}
		return next
	})
	if setErr != nil {
		return setErr
	}
	return err
}

// SecurityStatus projects the deny list length and pre-tool hook presence
// from the current document.
func (s *Store) SecurityStatus() models.SecurityStatus {
	return SecurityStatusOf(s.current())
}

// current returns the cached document. A file containing JSON null decodes
// to a nil pointer, which reads as empty.
func (s *Store) current() *Document {
	return orEmpty(s.doc.Load())
}

func orEmpty(d *Document) *Document {
	if d == nil {
		return NewDocument()
	}
	return d
}

// SecurityStatusOf computes the security projection of doc. Fields with an
// unexpected shape count as absent.
func SecurityStatusOf(doc *Document) models.SecurityStatus {
	var perms struct {
		Deny []json.RawMessage `json:"deny"`
	}
	var hooks struct {
		PreToolUse []json.RawMessage `json:"PreToolUse"`
	}

	var status models.SecurityStatus
	if doc.Decode(fieldPermissions, &perms) {
		status.DenyCount = len(perms.Deny)
	}
	if doc.Decode(fieldHooks, &hooks) {
		status.HasHook = len(hooks.PreToolUse) > 0
	}
	return status
}
