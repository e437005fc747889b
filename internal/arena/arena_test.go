package arena

import "testing"

func TestArenaIndicesAreOneBased(t *testing.T) {
	a := New[string](0)
	first := a.Alloc("x")
	second := a.Alloc("y")
	if first != 1 || second != 2 {
		t.Fatalf("indices = %d, %d, want 1, 2", first, second)
	}
	if a.Get(0) != nil {
		t.Fatal("index 0 must be the invalid sentinel")
	}
	if got := a.Get(first); got == nil || *got != "x" {
		t.Fatalf("Get(1) = %v", got)
	}
	if a.Get(3) != nil {
		t.Fatal("out-of-range Get must return nil")
	}
}

func TestArenaIterationOrder(t *testing.T) {
	a := New[int](4)
	for i := 0; i < 4; i++ {
		a.Alloc(i * 10)
	}
	for i, v := range a.Slice() {
		if v != i*10 {
			t.Fatalf("slot %d = %d, want %d", i, v, i*10)
		}
	}
}

func TestTraceSidesStayAligned(t *testing.T) {
	type node struct{ off uint32 }

	walk := func(tr *Trace[string, node]) {
		names := []string{"a", "b", "c"}
		for i, n := range names {
			n := n
			off := uint32(i * 7)
			tr.Alloc(func() node { return node{off: off} }, func() string { return n })
		}
	}

	forArena := NewTraceForArena[string, node]()
	walk(forArena)
	values := forArena.IntoArena()

	forMap := NewTraceForMap[string, node]()
	walk(forMap)
	origins := forMap.IntoMap()

	if values.Len() != 3 || origins.Len() != 3 {
		t.Fatalf("lens = %d, %d, want 3, 3", values.Len(), origins.Len())
	}
	for i := uint32(1); i <= 3; i++ {
		n, ok := origins.Get(i)
		if !ok {
			t.Fatalf("no origin for index %d", i)
		}
		if n.off != (i-1)*7 {
			t.Fatalf("origin %d off = %d, want %d", i, n.off, (i-1)*7)
		}
	}
}

func TestTraceForMapSkipsValueThunks(t *testing.T) {
	tr := NewTraceForMap[string, int]()
	evaluated := false
	tr.Alloc(func() int { return 42 }, func() string {
		evaluated = true
		return "unused"
	})
	if evaluated {
		t.Fatal("map-only trace must not evaluate value thunks")
	}
	if got := tr.IntoMap().Len(); got != 1 {
		t.Fatalf("map len = %d, want 1", got)
	}
}
