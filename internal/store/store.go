// Package store provides file-backed JSON persistence with an in-process
// read cache. Each Store owns one file: the file is read at most once per
// process, and every Save writes through to disk before returning.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Store is a single JSON document on disk with a lazily filled cache.
// Reads that fail for any reason fall back to the default value; writes
// that fail are returned to the caller.
type Store[T any] struct {
	mu     sync.Mutex
	path   string
	def    func() T
	cached *T
	// readErr is set when the file exists but could not be read or parsed.
	readErr error
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report read fallbacks.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates a Store backed by path. def builds the value returned when
// the file is missing or cannot be parsed; it is called on each fallback so
// callers never share a mutable default.
func New[T any](path string, def func() T, opts ...Option) *Store[T] {
	o := options{logger: slog.Default().With("module", "store")}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		path:   filepath.Clean(path),
		def:    def,
		logger: o.logger,
	}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Load returns the cached value, reading the backing file on first access.
func (s *Store[T]) Load() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Save replaces the cached value and persists it synchronously.
// The cache is updated even when the write fails.
func (s *Store[T]) Save(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(v)
}

// Update runs fn on the current value and saves the result, holding the
// lock across the read-modify-write.
func (s *Store[T]) Update(fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.loadLocked())
	return next, s.saveLocked(next)
}

// UpdateIf runs fn on the current value and saves the result only when fn
// reports a change. Unchanged values leave the file untouched.
func (s *Store[T]) UpdateIf(fn func(T) (T, bool)) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := fn(s.loadLocked())
	if !changed {
		return next, false, nil
	}
	return next, true, s.saveLocked(next)
}

// ReadErr returns why the existing backing file was replaced by the default
// on the last read. A missing file is not an error.
func (s *Store[T]) ReadErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return s.readErr
}

// Reset drops the cached value so the next Load re-reads the file.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.readErr = nil
}

func (s *Store[T]) loadLocked() T {
	if s.cached != nil {
		return *s.cached
	}

	v, err := s.read()
	if err != nil {
		s.logger.Debug("using default value", "path", s.path, "error", err)
		if !errors.Is(err, fs.ErrNotExist) {
			s.readErr = err
		}
		v = s.def()
	}
	s.cached = &v
	return v
}

func (s *Store[T]) read() (T, error) {
	var v T
	data, err := os.ReadFile(s.path)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return v, nil
}

func (s *Store[T]) saveLocked(v T) error {
	s.cached = &v

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(s.path), err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", s.path, err)
	}
	if err := atomicWrite(s.path, data); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	s.readErr = nil
	return nil
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".deck-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
