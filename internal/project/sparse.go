package project

import "maps"

// UpsertOrRemove returns a copy of m with key set to v, or with key deleted
// when isDefault(v) reports true. m itself is not modified.
func UpsertOrRemove[V any](m map[string]V, key string, v V, isDefault func(V) bool) map[string]V {
	out := make(map[string]V, len(m)+1)
	maps.Copy(out, m)

	if isDefault(v) {
		delete(out, key)
	} else {
		out[key] = v
	}
	return out
}
