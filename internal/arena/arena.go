// Package arena provides dense append-only storage with stable indices.
//
// Every semantic entity in the codebase lives in an arena and is referred to
// by its index. Indices are 1-based uint32 values; 0 is the shared invalid
// sentinel. Iteration order always equals allocation order, which in turn
// equals source declaration order for anything lowered from syntax — several
// consumers (source maps, diagnostics ordering) rely on that.
package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is append-only storage for values of one kind.
type Arena[T any] struct {
	data []T
}

// New returns an arena whose backing slice is pre-sized with capHint.
func New[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]T, 0, capHint)}
}

// Alloc appends value and returns its 1-based index.
func (a *Arena[T]) Alloc(value T) uint32 {
	a.data = append(a.data, value)
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}
	return n
}

// Get returns a pointer to the value at index, or nil for the 0 sentinel and
// out-of-range indices.
func (a *Arena[T]) Get(index uint32) *T {
	if a == nil || index == 0 || int(index) > len(a.data) {
		return nil
	}
	return &a.data[index-1]
}

// Len returns the number of allocated values.
func (a *Arena[T]) Len() uint32 {
	if a == nil {
		return 0
	}
	return uint32(len(a.data)) //nolint:gosec // guarded in Alloc
}

// Slice exposes the backing storage in allocation order. Read-only.
func (a *Arena[T]) Slice() []T {
	if a == nil {
		return nil
	}
	return a.data
}

// Equal compares two arenas element-wise with eq.
func (a *Arena[T]) Equal(other *Arena[T], eq func(x, y T) bool) bool {
	if a.Len() != other.Len() {
		return false
	}
	for i := range a.Slice() {
		if !eq(a.data[i], other.data[i]) {
			return false
		}
	}
	return true
}
