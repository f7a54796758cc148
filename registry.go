package klv

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/gemalto/flume"
	"github.com/gemalto/klv-go/internal/klvutil"
)

var log = flume.New("klv")

// TagDef is one entry of a tag registry.
type TagDef struct {
	Tag Tag
	// Name is the full name from the governing standard, e.g.
	// "Platform Heading Angle".
	Name   string
	Format Format
	// Multiple marks tags which the standard allows to repeat, each
	// occurrence adding an item.  Occurrences are always preserved in order;
	// the flag only documents how consumers should read them.
	Multiple bool
}

// Registry maps the tags of one local set standard to their formats.  A
// Registry is immutable once built and safe for concurrent use.
type Registry struct {
	name   string
	defs   map[Tag]*TagDef
	names  map[string]Tag
	sorted []Tag
}

// NewRegistry builds and validates a registry.  Tags and normalized names
// must be unique, and every format must define Decode, Len and Encode.
func NewRegistry(name string, defs ...TagDef) (*Registry, error) {
	r := &Registry{
		name:  name,
		defs:  make(map[Tag]*TagDef, len(defs)),
		names: make(map[string]Tag, len(defs)),
	}
	for i := range defs {
		d := defs[i]
		if _, ok := r.defs[d.Tag]; ok {
			return nil, merry.Here(ErrDuplicateTag).Appendf("%s: tag %v registered twice", name, d.Tag)
		}
		if !d.Format.complete() {
			return nil, merry.Errorf("%s: tag %v (%s) has an incomplete format", name, d.Tag, d.Name)
		}
		if d.Format.ZeroLength && d.Format.Length > 0 {
			return nil, merry.Errorf("%s: tag %v (%s) has a fixed length format accepting zero length values", name, d.Tag, d.Name)
		}
		n := normalizeName(d.Name)
		if n == "" {
			return nil, merry.Errorf("%s: tag %v has no name", name, d.Tag)
		}
		if other, ok := r.names[n]; ok {
			return nil, merry.Here(ErrDuplicateTag).Appendf("%s: name %q used by tags %v and %v", name, n, other, d.Tag)
		}
		r.defs[d.Tag] = &d
		r.names[n] = d.Tag
		r.sorted = append(r.sorted, d.Tag)
	}
	sort.Slice(r.sorted, func(i, j int) bool { return r.sorted[i] < r.sorted[j] })
	return r, nil
}

// MustRegistry is NewRegistry for package level variables.  It panics if the
// registry is invalid.
func MustRegistry(name string, defs ...TagDef) *Registry {
	r, err := NewRegistry(name, defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the name of the standard the registry describes.
func (r *Registry) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Lookup returns the definition of tag.
func (r *Registry) Lookup(tag Tag) (*TagDef, bool) {
	if r == nil {
		return nil, false
	}
	d, ok := r.defs[tag]
	return d, ok
}

// Format returns the format of tag.  Unknown tags are opaque blobs, so data
// from newer revisions of a standard decode and re-encode without loss.
func (r *Registry) Format(tag Tag) Format {
	if d, ok := r.Lookup(tag); ok {
		return d.Format
	}
	log.Debug("unregistered tag, decoding as blob", "registry", r.Name(), "tag", tag)
	return blobFormat
}

// Tags returns the registered tags in ascending order.
func (r *Registry) Tags() []Tag {
	if r == nil {
		return nil
	}
	return append([]Tag(nil), r.sorted...)
}

// TagName returns the normalized name of tag, or its hex form if the tag is
// not registered.
func (r *Registry) TagName(tag Tag) string {
	if d, ok := r.Lookup(tag); ok {
		return normalizeName(d.Name)
	}
	return tag.String()
}

// FullName returns the name of tag as written in the standard.
func (r *Registry) FullName(tag Tag) string {
	if d, ok := r.Lookup(tag); ok {
		return d.Name
	}
	return tag.String()
}

// ParseTag accepts a tag name (full or normalized), a hex number prefixed
// with "0x", or a decimal number.
func (r *Registry) ParseTag(s string) (Tag, error) {
	if strings.HasPrefix(s, "0x") {
		u, err := klvutil.ParseHexUint(s)
		if err != nil {
			return 0, merry.Prependf(err, "invalid tag %q", s)
		}
		return Tag(u), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Tag(u), nil
	}
	if r != nil {
		if t, ok := r.names[normalizeName(s)]; ok {
			return t, nil
		}
	}
	return 0, merry.Errorf("invalid tag %q", s)
}

var blobFormat = BlobFormat()

func normalizeName(s string) string {
	return klvutil.NormalizeName(s)
}
