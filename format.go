package klv

import (
	"fmt"
	"unicode/utf8"

	"github.com/ansel1/merry"
)

// Format describes how one type of value is decoded and encoded.  Formats are
// plain records of functions, so a tag registry stays a flat table.
//
// Decode reads exactly n bytes from c.  Len reports how many bytes Encode
// will write for v, and Encode writes them.  The local set codec checks both
// contracts and reports ErrDecoderLengthMismatch when a format breaks them.
type Format struct {
	Name string
	// Length is the nominal encoded length, used when a value does not carry
	// its own width.  0 means variable.
	Length int
	// Mapping is set for quantized floating point formats.
	Mapping Mapping
	// ZeroLength is set when Decode accepts a zero-length value.  Zero-length
	// values of other formats decode to an empty Blob.
	ZeroLength bool
	// Nested is set for local set formats.  Registry decodes their elements.
	Nested   bool
	Registry *Registry

	Decode func(c *Cursor, n int) (Value, error)
	Len    func(v Value) (int, error)
	Encode func(c *Cursor, v Value) error
}

func (f Format) complete() bool {
	return f.Decode != nil && f.Len != nil && f.Encode != nil
}

func wrongType(f string, v Value) error {
	return merry.Here(ErrInvalidValue).Appendf("%s format cannot encode %T", f, v)
}

// decodeExact decodes n bytes with f and verifies f consumed all of them.
func decodeExact(c *Cursor, f Format, n int) (Value, error) {
	if n > c.Remaining() {
		return nil, WithOffset(merry.Here(ErrTruncatedData).Appendf("value needs %d bytes, %d remaining", n, c.Remaining()), c.Offset())
	}
	if n == 0 && !f.ZeroLength {
		return Blob{}, nil
	}
	start := c.Pos()
	startOffset := c.Offset()
	v, err := f.Decode(c, n)
	if err != nil {
		return nil, WithOffset(err, c.Offset())
	}
	if got := c.Pos() - start; got != n {
		return nil, WithOffset(merry.Here(ErrDecoderLengthMismatch).Appendf("%s format consumed %d of %d bytes", f.Name, got, n), startOffset)
	}
	return v, nil
}

// valueLen is the encoded length of v under f.  Blobs are written as is,
// whatever the format.
func valueLen(f Format, v Value) (int, error) {
	if b, ok := v.(Blob); ok {
		return len(b), nil
	}
	return f.Len(v)
}

// encodeExact writes v with f and verifies the format wrote what it promised.
func encodeExact(c *Cursor, f Format, v Value) error {
	if b, ok := v.(Blob); ok {
		return c.Write(b)
	}
	n, err := f.Len(v)
	if err != nil {
		return err
	}
	if n > c.Remaining() {
		return c.outOfRange(n)
	}
	start := c.Pos()
	if err := f.Encode(c, v); err != nil {
		return err
	}
	if got := c.Pos() - start; got != n {
		return merry.Here(ErrDecoderLengthMismatch).Appendf("%s format wrote %d bytes, reported %d", f.Name, got, n)
	}
	return nil
}

func checkIntWidth(n int) error {
	if n < 1 || n > 8 {
		return merry.Here(ErrInvalidLength).Appendf("integer width must be 1-8 bytes, got %d", n)
	}
	return nil
}

// UintFormat encodes unsigned big-endian integers.  Any width from 1 to 8
// bytes decodes; values without a width are encoded with the given width, or
// the minimal width if it is 0.
func UintFormat(width int) Format {
	l := func(v Value) (int, error) {
		u, ok := v.(Uint)
		if !ok {
			return 0, wrongType("uint", v)
		}
		w := u.Width
		if w == 0 {
			w = width
		}
		if w == 0 {
			w = uintLen(u.Value)
		}
		if err := checkIntWidth(w); err != nil {
			return 0, err
		}
		if u.Value&^widthMask(w) != 0 {
			return 0, merry.Here(ErrInvalidValue).Appendf("%d does not fit in %d bytes", u.Value, w)
		}
		return w, nil
	}
	return Format{
		Name:   "uint",
		Length: width,
		Decode: func(c *Cursor, n int) (Value, error) {
			if err := checkIntWidth(n); err != nil {
				return nil, err
			}
			v, err := readUint(c, n)
			if err != nil {
				return nil, err
			}
			return Uint{Value: v, Width: n}, nil
		},
		Len: l,
		Encode: func(c *Cursor, v Value) error {
			w, err := l(v)
			if err != nil {
				return err
			}
			return writeUint(c, v.(Uint).Value, w)
		},
	}
}

func intLen(v int64) int {
	for n := 1; n < 8; n++ {
		lim := int64(1) << (8*uint(n) - 1)
		if v >= -lim && v < lim {
			return n
		}
	}
	return 8
}

// IntFormat encodes signed two's complement integers.
func IntFormat(width int) Format {
	l := func(v Value) (int, error) {
		i, ok := v.(Int)
		if !ok {
			return 0, wrongType("int", v)
		}
		w := i.Width
		if w == 0 {
			w = width
		}
		if w == 0 {
			w = intLen(i.Value)
		}
		if err := checkIntWidth(w); err != nil {
			return 0, err
		}
		if intLen(i.Value) > w {
			return 0, merry.Here(ErrInvalidValue).Appendf("%d does not fit in %d bytes", i.Value, w)
		}
		return w, nil
	}
	return Format{
		Name:   "int",
		Length: width,
		Decode: func(c *Cursor, n int) (Value, error) {
			if err := checkIntWidth(n); err != nil {
				return nil, err
			}
			v, err := readUint(c, n)
			if err != nil {
				return nil, err
			}
			return Int{Value: signExtend(v, n), Width: n}, nil
		},
		Len: l,
		Encode: func(c *Cursor, v Value) error {
			w, err := l(v)
			if err != nil {
				return err
			}
			return writeUint(c, uint64(v.(Int).Value)&widthMask(w), w)
		},
	}
}

// OIDFormat encodes unsigned integers as BER-OID.  Non-minimal encodings keep
// their width and are re-encoded with the same leading padding.
func OIDFormat() Format {
	l := func(v Value) (int, error) {
		u, ok := v.(Uint)
		if !ok {
			return 0, wrongType("BER-OID", v)
		}
		if n := BEROIDLen(u.Value); u.Width < n {
			return n, nil
		}
		return u.Width, nil
	}
	return Format{
		Name: "BER-OID",
		Decode: func(c *Cursor, n int) (Value, error) {
			sub, err := c.Sub(n)
			if err != nil {
				return nil, err
			}
			v, err := ReadBEROID(sub)
			if err != nil {
				return nil, err
			}
			if sub.Remaining() > 0 {
				return nil, merry.Here(ErrInvalidLength).Appendf("%d bytes after BER-OID value", sub.Remaining())
			}
			return Uint{Value: v, Width: n}, nil
		},
		Len: l,
		Encode: func(c *Cursor, v Value) error {
			n, err := l(v)
			if err != nil {
				return err
			}
			u := v.(Uint)
			for i := BEROIDLen(u.Value); i < n; i++ {
				if err := c.WriteByte(0x80); err != nil {
					return err
				}
			}
			return WriteBEROID(c, u.Value)
		},
	}
}

// StringFormat encodes UTF-8 text with no terminator.
func StringFormat() Format {
	return Format{
		Name:       "string",
		ZeroLength: true,
		Decode: func(c *Cursor, n int) (Value, error) {
			b, err := c.Read(n)
			if err != nil {
				return nil, err
			}
			if !utf8.Valid(b) {
				return nil, merry.Here(ErrInvalidValue).Append("string is not valid UTF-8")
			}
			return String(b), nil
		},
		Len: func(v Value) (int, error) {
			s, ok := v.(String)
			if !ok {
				return 0, wrongType("string", v)
			}
			return len(s), nil
		},
		Encode: func(c *Cursor, v Value) error {
			return c.WriteString(string(v.(String)))
		},
	}
}

// BlobFormat passes bytes through unchanged.  It is the format of every tag a
// registry does not know.
func BlobFormat() Format {
	return Format{
		Name:       "blob",
		ZeroLength: true,
		Decode: func(c *Cursor, n int) (Value, error) {
			b, err := c.Read(n)
			if err != nil {
				return nil, err
			}
			return Blob(append([]byte{}, b...)), nil
		},
		Len: func(v Value) (int, error) {
			b, ok := v.(Blob)
			if !ok {
				return 0, wrongType("blob", v)
			}
			return len(b), nil
		},
		Encode: func(c *Cursor, v Value) error {
			return c.Write(v.(Blob))
		},
	}
}

// EnumFormat decodes codes with base, which must produce Uint values, and
// checks them against set.  Decoded codes keep the width base read them at.
func EnumFormat(set *EnumSet, base Format) Format {
	toUint := func(v Value) (Uint, error) {
		switch t := v.(type) {
		case Enum:
			if t.Set != set {
				return Uint{}, merry.Here(ErrInvalidValue).Appendf("enumeration value from another set used for %s", set.SetName)
			}
			return Uint{Value: t.Code, Width: t.Width}, nil
		case Uint:
			if !set.KeepUnknown && !set.Has(t.Value) {
				return Uint{}, merry.Here(ErrUnknownEnumValue).Appendf("%s: %#x", set.SetName, t.Value)
			}
			return t, nil
		default:
			return Uint{}, wrongType("enumeration", v)
		}
	}
	return Format{
		Name:   "enum " + set.SetName,
		Length: base.Length,
		Decode: func(c *Cursor, n int) (Value, error) {
			v, err := base.Decode(c, n)
			if err != nil {
				return nil, err
			}
			u, ok := v.(Uint)
			if !ok {
				return nil, merry.Errorf("enumeration base format %s returned %T", base.Name, v)
			}
			if set.Has(u.Value) {
				return Enum{Set: set, Code: u.Value, Width: u.Width}, nil
			}
			if set.KeepUnknown {
				return u, nil
			}
			return nil, merry.Here(ErrUnknownEnumValue).Appendf("%s: %#x", set.SetName, u.Value)
		},
		Len: func(v Value) (int, error) {
			u, err := toUint(v)
			if err != nil {
				return 0, err
			}
			return base.Len(u)
		},
		Encode: func(c *Cursor, v Value) error {
			u, err := toUint(v)
			if err != nil {
				return err
			}
			return base.Encode(c, u)
		},
	}
}

// FloatFormat encodes quantized floating point values through m.  Floats
// without a width are encoded with the given width.
func FloatFormat(m Mapping, width int) Format {
	l := func(v Value) (int, error) {
		f, ok := v.(Float)
		if !ok {
			return 0, wrongType("float", v)
		}
		if f.Width != 0 {
			return f.Width, nil
		}
		if width == 0 {
			return 0, merry.Here(ErrInvalidValue).Append("float has no width and format has no default")
		}
		return width, nil
	}
	return Format{
		Name:    fmt.Sprintf("float %T", m),
		Length:  width,
		Mapping: m,
		Decode: func(c *Cursor, n int) (Value, error) {
			if err := checkWidth(n); err != nil {
				return nil, err
			}
			raw, err := readUint(c, n)
			if err != nil {
				return nil, err
			}
			return m.Decode(raw, n)
		},
		Len: l,
		Encode: func(c *Cursor, v Value) error {
			w, err := l(v)
			if err != nil {
				return err
			}
			raw, err := m.Encode(v.(Float), w)
			if err != nil {
				return err
			}
			return writeUint(c, raw, w)
		},
	}
}

// SetFormat decodes nested local sets with reg.  A nil registry decodes every
// element as a Blob.
func SetFormat(reg *Registry) Format {
	return Format{
		Name:       "local set",
		ZeroLength: true,
		Nested:     true,
		Registry:   reg,
		Decode: func(c *Cursor, n int) (Value, error) {
			sub, err := c.Sub(n)
			if err != nil {
				return nil, err
			}
			return ReadLocalSet(sub, reg)
		},
		Len: func(v Value) (int, error) {
			s, ok := v.(LocalSet)
			if !ok {
				return 0, wrongType("local set", v)
			}
			return s.Len(reg)
		},
		Encode: func(c *Cursor, v Value) error {
			return WriteLocalSet(c, v.(LocalSet), reg)
		},
	}
}
