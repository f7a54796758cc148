package klv

import (
	"fmt"

	"github.com/ansel1/merry"
)

// Framing says how the length of a record field or list element is found.
type Framing int

const (
	// Fixed fields take the nominal Length of their format.
	Fixed Framing = iota
	// BERLength fields are preceded by a BER length.
	BERLength
	// OID fields are self-delimiting BER-OID values.
	OID
	// Rest fields take every remaining byte.
	Rest
)

func (f Framing) String() string {
	switch f {
	case Fixed:
		return "fixed"
	case BERLength:
		return "BER length"
	case OID:
		return "BER-OID"
	case Rest:
		return "rest"
	}
	return "unknown framing"
}

// FieldFormat describes one member of a record.
type FieldFormat struct {
	Name    string
	Format  Format
	Framing Framing
	// Optional fields may be missing from the end of a record.
	Optional bool
}

// checkFraming panics if a Fixed element uses a format without a fixed
// length, which could never consume any bytes.
func checkFraming(name string, f Format, framing Framing) {
	if framing == Fixed && f.Length <= 0 {
		panic(fmt.Sprintf("klv: %s: fixed framing needs a fixed length format, %s has none", name, f.Name))
	}
}

// readFramed decodes one framed value from c.
func readFramed(c *Cursor, f Format, framing Framing) (Value, error) {
	var n int
	switch framing {
	case Fixed:
		n = f.Length
		if n > c.Remaining() {
			return nil, WithOffset(merry.Here(ErrTruncatedData).Appendf("%s needs %d bytes, %d remaining", f.Name, n, c.Remaining()), c.Offset())
		}
	case BERLength:
		l, err := ReadBERLength(c)
		if err != nil {
			return nil, err
		}
		if l > c.Remaining() {
			return nil, WithOffset(merry.Here(ErrTruncatedData).Appendf("%s declares %d bytes, %d remaining", f.Name, l, c.Remaining()), c.Offset())
		}
		n = l
	case OID:
		l, err := oidLen(c)
		if err != nil {
			return nil, err
		}
		n = l
	case Rest:
		n = c.Remaining()
	default:
		return nil, merry.Errorf("unknown framing %d", framing)
	}
	return decodeExact(c, f, n)
}

// framedValueLen is the length of v without framing.  Fixed values must
// take exactly the length of their format, or they could not be read back.
func framedValueLen(f Format, framing Framing, v Value) (int, error) {
	n, err := valueLen(f, v)
	if err != nil {
		return 0, err
	}
	if framing == Fixed && n != f.Length {
		return 0, merry.Here(ErrInvalidValue).Appendf("%s value takes %d bytes, fixed length is %d", f.Name, n, f.Length)
	}
	return n, nil
}

func framedLen(f Format, framing Framing, v Value) (int, error) {
	n, err := framedValueLen(f, framing, v)
	if err != nil {
		return 0, err
	}
	if framing == BERLength {
		n += BERLengthLen(n)
	}
	return n, nil
}

func writeFramed(c *Cursor, f Format, framing Framing, v Value) error {
	n, err := framedValueLen(f, framing, v)
	if err != nil {
		return err
	}
	if framing == BERLength {
		if err := WriteBERLength(c, n); err != nil {
			return err
		}
	}
	return encodeExact(c, f, v)
}

// RecordFormat decodes a composite value as the sequence of fields.  It
// panics if a Fixed field has a variable length format.
func RecordFormat(name string, fields ...FieldFormat) Format {
	for _, fd := range fields {
		checkFraming(name+"."+fd.Name, fd.Format, fd.Framing)
	}
	check := func(v Value) (Record, error) {
		r, ok := v.(Record)
		if !ok {
			return nil, wrongType(name, v)
		}
		if len(r) > len(fields) {
			return nil, merry.Here(ErrInvalidValue).Appendf("%s has %d fields, at most %d allowed", name, len(r), len(fields))
		}
		for i, fd := range fields {
			if i >= len(r) {
				if !fd.Optional {
					return nil, merry.Here(ErrInvalidValue).Appendf("%s is missing required field %s", name, fd.Name)
				}
				continue
			}
			if r[i].Name != fd.Name {
				return nil, merry.Here(ErrInvalidValue).Appendf("%s field %d is %q, expected %q", name, i, r[i].Name, fd.Name)
			}
		}
		return r, nil
	}
	return Format{
		Name: name,
		Decode: func(c *Cursor, n int) (Value, error) {
			sub, err := c.Sub(n)
			if err != nil {
				return nil, err
			}
			r := make(Record, 0, len(fields))
			for _, fd := range fields {
				if sub.Remaining() == 0 {
					if fd.Optional {
						break
					}
					return nil, WithOffset(merry.Here(ErrTruncatedData).Appendf("%s ends before field %s", name, fd.Name), sub.Offset())
				}
				v, err := readFramed(sub, fd.Format, fd.Framing)
				if err != nil {
					return nil, merry.Prependf(err, "%s.%s", name, fd.Name)
				}
				r = append(r, Field{Name: fd.Name, Value: v})
			}
			if sub.Remaining() > 0 {
				return nil, WithOffset(merry.Here(ErrInvalidLength).Appendf("%d bytes after last field of %s", sub.Remaining(), name), sub.Offset())
			}
			return r, nil
		},
		Len: func(v Value) (int, error) {
			r, err := check(v)
			if err != nil {
				return 0, err
			}
			var total int
			for i, f := range r {
				n, err := framedLen(fields[i].Format, fields[i].Framing, f.Value)
				if err != nil {
					return 0, merry.Prependf(err, "%s.%s", name, f.Name)
				}
				total += n
			}
			return total, nil
		},
		Encode: func(c *Cursor, v Value) error {
			r, err := check(v)
			if err != nil {
				return err
			}
			for i, f := range r {
				if err := writeFramed(c, fields[i].Format, fields[i].Framing, f.Value); err != nil {
					return merry.Prependf(err, "%s.%s", name, f.Name)
				}
			}
			return nil
		},
	}
}

// ListFormat decodes a homogeneous list of framed elements.  Counted lists
// start with the number of elements as a BER-OID; uncounted lists run to the
// end of the value.  It panics if framing is Fixed and elem has a variable
// length.
func ListFormat(name string, elem Format, framing Framing, counted bool) Format {
	checkFraming(name, elem, framing)
	check := func(v Value) (List, error) {
		l, ok := v.(List)
		if !ok {
			return nil, wrongType(name, v)
		}
		return l, nil
	}
	return Format{
		Name:       name,
		ZeroLength: !counted,
		Decode: func(c *Cursor, n int) (Value, error) {
			sub, err := c.Sub(n)
			if err != nil {
				return nil, err
			}
			var l List
			if counted {
				count, err := ReadBEROID(sub)
				if err != nil {
					return nil, err
				}
				for i := uint64(0); i < count; i++ {
					if sub.Remaining() == 0 {
						return nil, WithOffset(merry.Here(ErrTruncatedData).Appendf("%s declares %d elements, found %d", name, count, i), sub.Offset())
					}
					v, err := readFramed(sub, elem, framing)
					if err != nil {
						return nil, merry.Prependf(err, "%s[%d]", name, i)
					}
					l = append(l, v)
				}
				if sub.Remaining() > 0 {
					return nil, WithOffset(merry.Here(ErrInvalidLength).Appendf("%d bytes after last element of %s", sub.Remaining(), name), sub.Offset())
				}
				return l, nil
			}
			for i := 0; sub.Remaining() > 0; i++ {
				v, err := readFramed(sub, elem, framing)
				if err != nil {
					return nil, merry.Prependf(err, "%s[%d]", name, i)
				}
				l = append(l, v)
			}
			return l, nil
		},
		Len: func(v Value) (int, error) {
			l, err := check(v)
			if err != nil {
				return 0, err
			}
			var total int
			if counted {
				total = BEROIDLen(uint64(len(l)))
			}
			for _, e := range l {
				n, err := framedLen(elem, framing, e)
				if err != nil {
					return 0, err
				}
				total += n
			}
			return total, nil
		},
		Encode: func(c *Cursor, v Value) error {
			l, err := check(v)
			if err != nil {
				return err
			}
			if counted {
				if err := WriteBEROID(c, uint64(len(l))); err != nil {
					return err
				}
			}
			for _, e := range l {
				if err := writeFramed(c, elem, framing, e); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
