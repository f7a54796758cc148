package klv

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a decoded KLV value.  The set of implementations is closed: Uint,
// Int, Float, String, Blob, Enum, Record, List and LocalSet.  Each variant
// keeps what is needed to re-encode it at the length it was decoded from.
type Value interface {
	fmt.Stringer
	isValue()
}

// Uint is an unsigned big-endian integer of up to 8 bytes.  Width is the
// encoded byte width; 0 lets the format choose.
type Uint struct {
	Value uint64
	Width int
}

// Int is a signed two's complement integer of up to 8 bytes.
type Int struct {
	Value int64
	Width int
}

// Float is a floating point value carried on the wire as a quantized integer.
// Unavailable floats hold a reserved bit pattern in Raw instead of a number.
type Float struct {
	Value       float64
	Width       int
	Unavailable bool
	Raw         uint64
}

// String is UTF-8 text, encoded without terminator.
type String string

// Blob is an opaque byte string.  Values of unregistered tags decode to Blob.
type Blob []byte

// Enum is a code from a closed set of named codes.  Width is the encoded
// byte width of the code, as for Uint; 0 lets the format choose.
type Enum struct {
	Set   *EnumSet
	Code  uint64
	Width int
}

// Field is one named member of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered composite of independently typed fields.  Optional
// trailing fields which were absent on the wire are absent from the Record.
type Record []Field

// List is a homogeneous sequence of values.
type List []Value

func (Uint) isValue()     {}
func (Int) isValue()      {}
func (Float) isValue()    {}
func (String) isValue()   {}
func (Blob) isValue()     {}
func (Enum) isValue()     {}
func (Record) isValue()   {}
func (List) isValue()     {}
func (LocalSet) isValue() {}

func (v Uint) String() string {
	return strconv.FormatUint(v.Value, 10)
}

func (v Int) String() string {
	return strconv.FormatInt(v.Value, 10)
}

func (v Float) String() string {
	if v.Unavailable {
		return fmt.Sprintf("unavailable (%#x)", v.Raw)
	}
	return strconv.FormatFloat(v.Value, 'g', -1, 64)
}

func (v String) String() string {
	return string(v)
}

func (v Blob) String() string {
	return fmt.Sprintf("%#x", []byte(v))
}

func (v Enum) String() string {
	if v.Set != nil {
		if s := v.Set.Name(v.Code); s != "" {
			return s
		}
	}
	return fmt.Sprintf("%#x", v.Code)
}

// Get returns the value of the first field with the given name.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (r Record) String() string {
	parts := make([]string, len(r))
	for i, f := range r {
		parts[i] = f.Name + ": " + f.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Equal reports whether two values are the same variant with the same
// content.  Widths of integers and floats take part in the comparison; a zero
// width matches any width.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case Uint:
		bv, ok := b.(Uint)
		return ok && av.Value == bv.Value && widthEqual(av.Width, bv.Width)
	case Int:
		bv, ok := b.(Int)
		return ok && av.Value == bv.Value && widthEqual(av.Width, bv.Width)
	case Float:
		bv, ok := b.(Float)
		if !ok || av.Unavailable != bv.Unavailable || !widthEqual(av.Width, bv.Width) {
			return false
		}
		if av.Unavailable {
			return av.Raw == bv.Raw
		}
		return av.Value == bv.Value || math.IsNaN(av.Value) && math.IsNaN(bv.Value)
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Blob:
		bv, ok := b.(Blob)
		return ok && bytes.Equal(av, bv)
	case Enum:
		bv, ok := b.(Enum)
		return ok && av.Code == bv.Code && av.Set == bv.Set && widthEqual(av.Width, bv.Width)
	case Record:
		bv, ok := b.(Record)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i].Name != bv[i].Name || !Equal(av[i].Value, bv[i].Value) {
				return false
			}
		}
		return true
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case LocalSet:
		bv, ok := b.(LocalSet)
		return ok && av.Equal(bv)
	default:
		panic(fmt.Sprintf("klv: unexpected value type %T", a))
	}
}

func widthEqual(a, b int) bool {
	return a == 0 || b == 0 || a == b
}

// EnumSet is a closed set of named codes.
type EnumSet struct {
	// Name of the enumeration, e.g. "Icing Detected".
	SetName string
	Values  map[uint64]string
	// KeepUnknown makes formats decode codes outside the set to Uint instead
	// of failing with ErrUnknownEnumValue.
	KeepUnknown bool
}

// Name returns the name registered for code, or "".
func (s *EnumSet) Name(code uint64) string {
	return s.Values[code]
}

// Has reports whether code is a member of the set.
func (s *EnumSet) Has(code uint64) bool {
	_, ok := s.Values[code]
	return ok
}

// Parse looks up a code by name.  Names are compared after normalisation, so
// "Home Position" and "HomePosition" are the same.
func (s *EnumSet) Parse(name string) (uint64, bool) {
	n := normalizeName(name)
	for code, v := range s.Values {
		if normalizeName(v) == n {
			return code, true
		}
	}
	return 0, false
}

// Value returns the Enum for code.  It panics if code is not in the set, and
// is intended for building values in code.
func (s *EnumSet) Value(code uint64) Enum {
	if !s.Has(code) {
		panic(fmt.Sprintf("klv: %#x is not a member of %s", code, s.SetName))
	}
	return Enum{Set: s, Code: code}
}
