// Package project manages the ordered list of project folders and the
// per-project metadata (icon glyph and button overrides) shown next to them.
package project

import (
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/modu-ai/moai-deck/internal/store"
)

// Registry is the ordered list of project folder paths.
type Registry struct {
	store *store.Store[[]string]

	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

// NewRegistry creates a Registry persisted at path.
func NewRegistry(path string, opts ...store.Option) *Registry {
	return &Registry{
		store: store.New(path, func() []string { return []string{} }, opts...),
		subs:  make(map[int]chan struct{}),
	}
}

// Path returns the registry file path.
func (r *Registry) Path() string {
	return r.store.Path()
}

// List returns the registered paths in display order.
func (r *Registry) List() []string {
	return slices.Clone(r.store.Load())
}

// Add appends path to the registry. It returns false without writing when
// the path is already registered.
func (r *Registry) Add(path string) (string, bool, error) {
	path = NormalizePath(path)

	_, added, err := r.store.UpdateIf(func(cur []string) ([]string, bool) {
		if slices.Contains(cur, path) {
			return cur, false
		}
		return append(slices.Clone(cur), path), true
	})
	if err != nil {
		return "", false, err
	}
	if !added {
		return "", false, nil
	}

	r.notify()
	return path, true, nil
}

// Remove drops path from the registry. Removing an absent path succeeds.
func (r *Registry) Remove(path string) (bool, error) {
	path = NormalizePath(path)

	_, err := r.store.Update(func(cur []string) []string {
		return slices.DeleteFunc(slices.Clone(cur), func(p string) bool { return p == path })
	})
	if err != nil {
		return false, err
	}

	r.notify()
	return true, nil
}

// Reorder replaces the stored list with paths verbatim. The caller owns the
// ordering; no check is made that paths is a permutation of the current list.
func (r *Registry) Reorder(paths []string) (bool, error) {
	if paths == nil {
		paths = []string{}
	}
	if err := r.store.Save(slices.Clone(paths)); err != nil {
		return false, err
	}

	r.notify()
	return true, nil
}

// Subscribe returns a channel that receives a value after every mutation,
// and a func that unsubscribes it. Notifications are dropped when the
// channel is full.
func (r *Registry) Subscribe() (<-chan struct{}, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.next
	r.next++
	ch := make(chan struct{}, 1)
	r.subs[id] = ch

	return ch, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if c, ok := r.subs[id]; ok {
			delete(r.subs, id)
			close(c)
		}
	}
}

// reload drops the cached list and tells subscribers the list changed.
func (r *Registry) reload() {
	r.store.Reset()
	r.notify()
}

func (r *Registry) notify() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ch := range r.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// NormalizePath cleans p and converts it to Unicode NFC so that the same
// folder reported in decomposed form is not registered twice.
func NormalizePath(p string) string {
	if p == "" {
		return p
	}
	return norm.NFC.String(filepath.Clean(p))
}
