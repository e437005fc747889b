package db

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"quill/internal/adt"
	"quill/internal/arena"
	"quill/internal/source"
	"quill/internal/syntax"
)

// Increment when the payload format changes; stale entries then miss.
const defCacheSchemaVersion uint16 = 1

// Digest keys a cache entry: sha256 over a canonical, interner-independent
// rendering of one declaration.
type Digest [32]byte

// DiskCache persists lowered definition payloads across processes. Entries
// are written atomically (temp file + rename) and keyed by content digest,
// so edits invalidate by recomputation rather than eviction.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a cache at the standard user location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCacheAt(filepath.Join(base, app))
}

// NewDiskCacheAt initializes a cache rooted at dir.
func NewDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(filepath.Join(dir, "defs"), 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "defs", hex.EncodeToString(key[:])+".mp")
}

func (c *DiskCache) put(key Digest, payload any) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

func (c *DiskCache) get(key Digest, out any) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close() //nolint:errcheck // read-only handle
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// Serialized form. Names and type refs travel as display strings and are
// re-interned on load, so payloads stay valid across interner generations.

type namePayload struct {
	Kind uint8
	Text string
	Idx  uint32
}

type fieldPayload struct {
	Name namePayload
	Type string
	// TypeErr marks the error-placeholder type ref.
	TypeErr bool
	Public  bool
}

type variantPayload struct {
	Shape  uint8
	Fields []fieldPayload
}

type structPayload struct {
	Schema  uint16
	Name    namePayload
	Variant variantPayload
}

type enumVariantPayload struct {
	Name    namePayload
	Variant variantPayload
}

type enumPayload struct {
	Schema   uint16
	Name     namePayload
	Variants []enumVariantPayload
}

// PutStruct caches one struct/union model.
func (c *DiskCache) PutStruct(key Digest, data *adt.StructData, names *source.Interner) error {
	return c.put(key, structPayload{
		Schema:  defCacheSchemaVersion,
		Name:    encodeName(data.Name, names),
		Variant: encodeVariant(data.VariantData, names),
	})
}

// GetStruct loads one struct/union model, reporting a miss on absence or
// schema skew.
func (c *DiskCache) GetStruct(key Digest, names *source.Interner) (*adt.StructData, bool, error) {
	var p structPayload
	ok, err := c.get(key, &p)
	if err != nil || !ok || p.Schema != defCacheSchemaVersion {
		return nil, false, err
	}
	return &adt.StructData{
		Name:        decodeName(p.Name, names),
		VariantData: decodeVariant(p.Variant, names),
	}, true, nil
}

// PutEnum caches one enum model.
func (c *DiskCache) PutEnum(key Digest, data *adt.EnumData, names *source.Interner) error {
	p := enumPayload{
		Schema: defCacheSchemaVersion,
		Name:   encodeName(data.Name, names),
	}
	for _, v := range data.Variants.Slice() {
		p.Variants = append(p.Variants, enumVariantPayload{
			Name:    encodeName(v.Name, names),
			Variant: encodeVariant(v.VariantData, names),
		})
	}
	return c.put(key, p)
}

// GetEnum loads one enum model.
func (c *DiskCache) GetEnum(key Digest, names *source.Interner) (*adt.EnumData, bool, error) {
	var p enumPayload
	ok, err := c.get(key, &p)
	if err != nil || !ok || p.Schema != defCacheSchemaVersion {
		return nil, false, err
	}
	variants := arena.New[adt.EnumVariantData](uint(len(p.Variants)))
	for _, v := range p.Variants {
		variants.Alloc(adt.EnumVariantData{
			Name:        decodeName(v.Name, names),
			VariantData: decodeVariant(v.Variant, names),
		})
	}
	return &adt.EnumData{Name: decodeName(p.Name, names), Variants: variants}, true, nil
}

func encodeName(n adt.Name, names *source.Interner) namePayload {
	switch n.Kind() {
	case adt.NameMissing:
		return namePayload{Kind: uint8(adt.NameMissing)}
	case adt.NameTuple:
		idx, _ := n.TupleIndex()
		return namePayload{Kind: uint8(adt.NameTuple), Idx: idx}
	default:
		return namePayload{Kind: uint8(adt.NameText), Text: n.Display(names)}
	}
}

func decodeName(p namePayload, names *source.Interner) adt.Name {
	switch adt.NameKind(p.Kind) {
	case adt.NameMissing:
		return adt.MissingName()
	case adt.NameTuple:
		return adt.NewTupleFieldName(p.Idx)
	default:
		return adt.NewName(names.Intern(p.Text))
	}
}

func encodeVariant(v *adt.VariantData, names *source.Interner) variantPayload {
	p := variantPayload{Shape: uint8(v.Kind())}
	for _, f := range v.Fields().Slice() {
		typeText := ""
		if f.TypeRef.Kind == adt.TypeRefPath {
			typeText, _ = names.Lookup(f.TypeRef.Path)
		}
		p.Fields = append(p.Fields, fieldPayload{
			Name:    encodeName(f.Name, names),
			Type:    typeText,
			TypeErr: f.TypeRef.Kind == adt.TypeRefError,
			Public:  f.Visibility == adt.VisPublic,
		})
	}
	return p
}

func decodeVariant(p variantPayload, names *source.Interner) *adt.VariantData {
	shape := adt.Shape(p.Shape)
	if shape == adt.ShapeUnit {
		return adt.NewVariantData(adt.ShapeUnit, nil)
	}
	fields := arena.New[adt.StructFieldData](uint(len(p.Fields)))
	for _, f := range p.Fields {
		tr := adt.TypeRef{Kind: adt.TypeRefError}
		if !f.TypeErr {
			tr = adt.TypeRef{Kind: adt.TypeRefPath, Path: names.Intern(f.Type)}
		}
		vis := adt.VisPrivate
		if f.Public {
			vis = adt.VisPublic
		}
		fields.Alloc(adt.StructFieldData{
			Name:       decodeName(f.Name, names),
			TypeRef:    tr,
			Visibility: vis,
		})
	}
	return adt.NewVariantData(shape, fields)
}

// Canonical digests. The rendering resolves every id through the interner,
// so two processes with different interner states agree on the key.

func structDigest(decl *syntax.StructDecl, names *source.Interner) Digest {
	var sb strings.Builder
	sb.WriteString("struct|")
	writeIdent(&sb, decl.Name, names)
	writeFieldList(&sb, decl.Fields, names)
	return sha256.Sum256([]byte(sb.String()))
}

func unionDigest(decl *syntax.UnionDecl, names *source.Interner) Digest {
	var sb strings.Builder
	sb.WriteString("union|")
	writeIdent(&sb, decl.Name, names)
	writeFieldList(&sb, decl.FieldList(), names)
	return sha256.Sum256([]byte(sb.String()))
}

func enumDigest(decl *syntax.EnumDecl, names *source.Interner) Digest {
	var sb strings.Builder
	sb.WriteString("enum|")
	writeIdent(&sb, decl.Name, names)
	for _, v := range decl.Variants {
		sb.WriteString("|variant|")
		writeIdent(&sb, v.Name, names)
		writeFieldList(&sb, v.Fields, names)
	}
	return sha256.Sum256([]byte(sb.String()))
}

func writeIdent(sb *strings.Builder, id *syntax.Ident, names *source.Interner) {
	if id == nil {
		sb.WriteString("\x00missing")
		return
	}
	s, _ := names.Lookup(id.Text)
	sb.WriteString(s)
}

func writeFieldList(sb *strings.Builder, fl syntax.FieldList, names *source.Interner) {
	switch fl.Kind {
	case syntax.FieldsRecord:
		sb.WriteString("|record")
		for _, f := range fl.Record {
			sb.WriteString("|")
			writeIdent(sb, f.Name, names)
			sb.WriteString(":")
			writeType(sb, f.Type, names)
			fmt.Fprintf(sb, ":%d", f.Vis)
		}
	case syntax.FieldsTuple:
		sb.WriteString("|tuple")
		for _, f := range fl.Tuple {
			sb.WriteString("|")
			writeType(sb, f.Type, names)
			fmt.Fprintf(sb, ":%d", f.Vis)
		}
	default:
		sb.WriteString("|unit")
	}
}

func writeType(sb *strings.Builder, t *syntax.TypeSyntax, names *source.Interner) {
	if t == nil {
		sb.WriteString("\x00err")
		return
	}
	s, _ := names.Lookup(t.Text)
	sb.WriteString(s)
}

// cachedStruct wraps a lowering thunk with best-effort disk caching.
func (d *DB) cachedStruct(key Digest, lower func() *adt.StructData) *adt.StructData {
	if d.cache != nil {
		if data, ok, _ := d.cache.GetStruct(key, d.names); ok {
			return data
		}
	}
	data := lower()
	if d.cache != nil {
		_ = d.cache.PutStruct(key, data, d.names)
	}
	return data
}

func (d *DB) cachedEnum(key Digest, lower func() *adt.EnumData) *adt.EnumData {
	if d.cache != nil {
		if data, ok, _ := d.cache.GetEnum(key, d.names); ok {
			return data
		}
	}
	data := lower()
	if d.cache != nil {
		_ = d.cache.PutEnum(key, data, d.names)
	}
	return data
}
