package klv

import (
	"strings"

	"github.com/ansel1/merry"
)

// Element is one tag/value pair of a local set.
type Element struct {
	Tag   Tag
	Value Value
}

// LocalSet is an ordered sequence of elements.  Repeated tags are kept as
// separate elements, in the order they were read.
type LocalSet []Element

// Get returns the value of the first element with tag.
func (s LocalSet) Get(tag Tag) (Value, bool) {
	for _, e := range s {
		if e.Tag == tag {
			return e.Value, true
		}
	}
	return nil, false
}

// All returns the values of every element with tag, in order.
func (s LocalSet) All(tag Tag) []Value {
	var vs []Value
	for _, e := range s {
		if e.Tag == tag {
			vs = append(vs, e.Value)
		}
	}
	return vs
}

// Tags returns the tag of each element, in order, repeats included.
func (s LocalSet) Tags() []Tag {
	tags := make([]Tag, len(s))
	for i, e := range s {
		tags[i] = e.Tag
	}
	return tags
}

// Equal reports whether both sets hold the same elements in the same order.
func (s LocalSet) Equal(o LocalSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i].Tag != o[i].Tag || !Equal(s[i].Value, o[i].Value) {
			return false
		}
	}
	return true
}

func (s LocalSet) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.Tag.String() + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Len returns the number of bytes the set encodes to with reg.
func (s LocalSet) Len(reg *Registry) (int, error) {
	var total int
	for _, e := range s {
		n, err := valueLen(reg.Format(e.Tag), e.Value)
		if err != nil {
			return 0, WithTag(err, e.Tag)
		}
		total += e.Tag.Len() + BERLengthLen(n) + n
	}
	return total, nil
}

// DecodeLocalSet decodes every byte of b as local set elements.
func DecodeLocalSet(b []byte, reg *Registry) (LocalSet, error) {
	return ReadLocalSet(NewCursor(b), reg)
}

// ReadLocalSet decodes elements until c is exhausted.  Tags reg does not know
// decode to Blob.  A nil reg decodes every element to Blob.
func ReadLocalSet(c *Cursor, reg *Registry) (LocalSet, error) {
	s := LocalSet{}
	for c.Remaining() > 0 {
		e, err := readElement(c, reg)
		if err != nil {
			return nil, err
		}
		s = append(s, e)
	}
	return s, nil
}

func readElement(c *Cursor, reg *Registry) (Element, error) {
	start := c.Offset()
	t, err := ReadBEROID(c)
	if err != nil {
		return Element{}, WithOffset(err, start)
	}
	tag := Tag(t)
	n, err := ReadBERLength(c)
	if err != nil {
		return Element{}, WithTag(err, tag)
	}
	if n > c.Remaining() {
		err := merry.Here(ErrTruncatedData).Appendf("tag %v declares %d bytes, %d remaining", tag, n, c.Remaining())
		return Element{}, WithTag(WithOffset(err, c.Offset()), tag)
	}
	v, err := decodeExact(c, reg.Format(tag), n)
	if err != nil {
		return Element{}, WithTag(err, tag)
	}
	return Element{Tag: tag, Value: v}, nil
}

// EncodeLocalSet returns the encoding of s with reg.
func EncodeLocalSet(s LocalSet, reg *Registry) ([]byte, error) {
	n, err := s.Len(reg)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	c := NewCursor(b)
	if err := WriteLocalSet(c, s, reg); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

// WriteLocalSet writes the elements of s to c.  Each value is encoded into a
// buffer of its reported length before its tag and length are written, so a
// failed element leaves nothing partial in c.
func WriteLocalSet(c *Cursor, s LocalSet, reg *Registry) error {
	for _, e := range s {
		if err := writeElement(c, e, reg); err != nil {
			return WithTag(err, e.Tag)
		}
	}
	return nil
}

func writeElement(c *Cursor, e Element, reg *Registry) error {
	f := reg.Format(e.Tag)
	n, err := valueLen(f, e.Value)
	if err != nil {
		return err
	}
	scratch := NewCursor(make([]byte, n))
	if err := encodeExact(scratch, f, e.Value); err != nil {
		return err
	}
	if scratch.Remaining() != 0 {
		return merry.Here(ErrDecoderLengthMismatch).Appendf("tag %v wrote %d bytes, reported %d", e.Tag, scratch.Pos(), n)
	}
	if need := e.Tag.Len() + BERLengthLen(n) + n; need > c.Remaining() {
		return c.outOfRange(need)
	}
	if err := WriteBEROID(c, uint64(e.Tag)); err != nil {
		return err
	}
	if err := WriteBERLength(c, n); err != nil {
		return err
	}
	return c.Write(scratch.Bytes())
}
