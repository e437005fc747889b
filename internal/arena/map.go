package arena

// Map is a side table parallel to an arena: entry i holds the value
// associated with arena index i. Used for data that must stay out of the
// arena's element type, e.g. syntax origins kept away from cacheable
// semantic values.
type Map[V any] struct {
	entries []V
}

// Append associates the next arena index with v. Callers must append in the
// same order the paired arena allocates.
func (m *Map[V]) Append(v V) {
	m.entries = append(m.entries, v)
}

// Get returns the value for a 1-based arena index.
func (m *Map[V]) Get(index uint32) (V, bool) {
	var zero V
	if m == nil || index == 0 || int(index) > len(m.entries) {
		return zero, false
	}
	return m.entries[index-1], true
}

// Len returns the number of entries.
func (m *Map[V]) Len() uint32 {
	if m == nil {
		return 0
	}
	return uint32(len(m.entries)) //nolint:gosec // bounded by paired arena
}

// Slice exposes entries in index order. Read-only.
func (m *Map[V]) Slice() []V {
	if m == nil {
		return nil
	}
	return m.entries
}
