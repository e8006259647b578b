package project

import (
	"maps"

	"github.com/modu-ai/moai-deck/internal/store"
)

// DefaultIcon is the folder glyph shown when a project has no custom icon.
const DefaultIcon = "📁"

// Overrides is a free-form document of UI button overrides for one project.
type Overrides = map[string]any

// Metadata holds the sparse icon and override maps keyed by project path.
// Entries may reference paths that are no longer registered.
type Metadata struct {
	icons       *store.Store[map[string]string]
	overrides   *store.Store[map[string]Overrides]
	defaultIcon string
}

// MetadataOption configures a Metadata store.
type MetadataOption func(*Metadata)

// WithDefaultIcon sets the glyph treated as "no custom icon".
func WithDefaultIcon(glyph string) MetadataOption {
	return func(m *Metadata) {
		if glyph != "" {
			m.defaultIcon = glyph
		}
	}
}

// NewMetadata creates a Metadata store persisted at iconsPath and overridesPath.
func NewMetadata(iconsPath, overridesPath string, storeOpts []store.Option, opts ...MetadataOption) *Metadata {
	m := &Metadata{
		icons:       store.New(iconsPath, func() map[string]string { return map[string]string{} }, storeOpts...),
		overrides:   store.New(overridesPath, func() map[string]Overrides { return map[string]Overrides{} }, storeOpts...),
		defaultIcon: DefaultIcon,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DefaultIcon returns the glyph used for projects without a custom icon.
func (m *Metadata) DefaultIcon() string {
	return m.defaultIcon
}

// Icons returns a copy of the path to glyph map.
func (m *Metadata) Icons() map[string]string {
	return maps.Clone(m.icons.Load())
}

// Icon returns the glyph for path, falling back to the default glyph.
func (m *Metadata) Icon(path string) string {
	if g, ok := m.icons.Load()[NormalizePath(path)]; ok {
		return g
	}
	return m.defaultIcon
}

// SetIcon stores glyph for path. An empty glyph or the default glyph removes
// the entry instead.
func (m *Metadata) SetIcon(path, glyph string) error {
	path = NormalizePath(path)
	_, err := m.icons.Update(func(cur map[string]string) map[string]string {
		return UpsertOrRemove(cur, path, glyph, func(g string) bool {
			return g == "" || g == m.defaultIcon
		})
	})
	return err
}

// Overrides returns a deep copy of the path to override document map.
func (m *Metadata) Overrides() map[string]Overrides {
	cur := m.overrides.Load()
	out := make(map[string]Overrides, len(cur))
	for path, doc := range cur {
		out[path] = cloneOverrides(doc)
	}
	return out
}

// SetOverrides stores a deep copy of doc for path. A nil or empty doc
// removes the entry.
func (m *Metadata) SetOverrides(path string, doc Overrides) error {
	path = NormalizePath(path)
	doc = cloneOverrides(doc)
	_, err := m.overrides.Update(func(cur map[string]Overrides) map[string]Overrides {
		return UpsertOrRemove(cur, path, doc, func(d Overrides) bool {
			return len(d) == 0
		})
	})
	return err
}

func cloneOverrides(doc Overrides) Overrides {
	if doc == nil {
		return nil
	}
	out := make(Overrides, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue copies the JSON container types; scalars are immutable.
func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneOverrides(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
