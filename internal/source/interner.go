package source

// StringID is a stable handle for an interned string.
type StringID uint32

// NoStringID maps to the empty string and doubles as the invalid sentinel.
const NoStringID StringID = 0

// Interner deduplicates strings and hands out dense ids. byID[0] is the
// empty string so NoStringID always resolves.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern returns the id for s, allocating one on first sight.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	// Own copy so we never alias a caller-owned buffer.
	cpy := string([]byte(s))
	id := StringID(len(in.byID)) //nolint:gosec // interner never exceeds uint32
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// Lookup returns the string for id, reporting whether id is valid.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup panics on an invalid id.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid string id")
	}
	return s
}

// Len counts interned strings, NoStringID included.
func (in *Interner) Len() int {
	return len(in.byID)
}
