package arena

// Trace couples two builder responsibilities behind one allocation call:
// append a semantic value to an arena and append its originating syntax node
// to a position-aligned map. Lowering code walks syntax once per trace and
// calls Alloc at each site; which side actually materializes depends on how
// the trace was created, so a caller that only needs the semantic arena
// never pays for the source map.
//
// The same deterministic walk re-run through a map trace yields entries that
// line up index-for-index with the arena built earlier — the invariant the
// lazy source-map reconstruction depends on.
type Trace[T any, S any] struct {
	arena *Arena[T]
	srcs  *Map[S]
}

// NewTraceForArena records only semantic values.
func NewTraceForArena[T any, S any]() *Trace[T, S] {
	return &Trace[T, S]{arena: New[T](0)}
}

// NewTraceForMap records only syntax origins.
func NewTraceForMap[T any, S any]() *Trace[T, S] {
	return &Trace[T, S]{srcs: &Map[S]{}}
}

// Alloc appends one allocation. Only the thunks for the recorded side run;
// valueThunk may read context accumulated by earlier allocations. Returns
// the 1-based index of the new slot.
func (t *Trace[T, S]) Alloc(syntaxThunk func() S, valueThunk func() T) uint32 {
	switch {
	case t.arena != nil && t.srcs != nil:
		t.srcs.Append(syntaxThunk())
		return t.arena.Alloc(valueThunk())
	case t.arena != nil:
		return t.arena.Alloc(valueThunk())
	default:
		t.srcs.Append(syntaxThunk())
		return t.srcs.Len()
	}
}

// IntoArena consumes the trace and returns the semantic arena.
func (t *Trace[T, S]) IntoArena() *Arena[T] {
	a := t.arena
	t.arena = nil
	if a == nil {
		a = New[T](0)
	}
	return a
}

// IntoMap consumes the trace and returns the index-to-syntax map.
func (t *Trace[T, S]) IntoMap() *Map[S] {
	m := t.srcs
	t.srcs = nil
	if m == nil {
		m = &Map[S]{}
	}
	return m
}
