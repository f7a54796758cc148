package klv

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/gemalto/klv-go/internal/klvutil"
)

// Hex2bytes converts hex string to bytes.  Any non-hex characters in the
// string are stripped first.  Panics on error.
func Hex2bytes(s string) []byte {
	b, err := klvutil.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Print writes a human readable form of set, one element per line:
//
//	PlatformHeadingAngle (0x05/2): 159.97436484321355
//
// Nested local sets, records and lists are indented below their element.
func Print(w io.Writer, prefix, indent string, set LocalSet, reg *Registry) error {
	for i, e := range set {
		if i > 0 {
			fmt.Fprint(w, "\n")
		}
		if err := printElement(w, prefix, indent, e, reg); err != nil {
			return err
		}
	}
	return nil
}

// PrintPacket prints the key and standard of p, followed by its elements.
func PrintPacket(w io.Writer, prefix, indent string, p Packet) error {
	s, ok := LookupStandard(p.Key)
	if !ok {
		fmt.Fprintf(w, "%s%v (unregistered):", prefix, p.Key)
		s = &Standard{}
	} else {
		fmt.Fprintf(w, "%s%s (%v):", prefix, s.Name, p.Key)
	}
	if len(p.Set) == 0 {
		return nil
	}
	fmt.Fprint(w, "\n")
	return Print(w, prefix+indent, indent, p.Set, s.Registry)
}

func printElement(w io.Writer, prefix, indent string, e Element, reg *Registry) error {
	f := reg.Format(e.Tag)
	n, err := valueLen(f, e.Value)
	fmt.Fprintf(w, "%s%s (%v/%d):", prefix, reg.TagName(e.Tag), e.Tag, n)
	if err != nil {
		fmt.Fprintf(w, " (%s)", err.Error())
		return WithTag(err, e.Tag)
	}
	return printValue(w, prefix+indent, indent, e.Value, f.Registry)
}

func printValue(w io.Writer, prefix, indent string, v Value, reg *Registry) error {
	switch t := v.(type) {
	case LocalSet:
		for _, e := range t {
			fmt.Fprint(w, "\n")
			if err := printElement(w, prefix, indent, e, reg); err != nil {
				return err
			}
		}
	case Record:
		for _, f := range t {
			fmt.Fprintf(w, "\n%s%s:", prefix, f.Name)
			if err := printValue(w, prefix+indent, indent, f.Value, nil); err != nil {
				return err
			}
		}
	case List:
		for i, e := range t {
			fmt.Fprintf(w, "\n%s[%d]:", prefix, i)
			if err := printValue(w, prefix+indent, indent, e, nil); err != nil {
				return err
			}
		}
	case String:
		fmt.Fprintf(w, " %q", string(t))
	default:
		fmt.Fprint(w, " ", v.String())
	}
	return nil
}

// PrintPrettyHex writes the raw bytes of a local set, one element per line,
// with tag, length and value separated by "|".  Elements of nested local
// sets are indented below their parent.  Bytes which do not form a valid
// element are written unformatted on a final line.
func PrintPrettyHex(w io.Writer, prefix, indent string, b []byte, reg *Registry) error {
	printPrettyHex(w, prefix, indent, NewCursor(b), reg)
	return nil
}

// PrintPacketPrettyHex writes the key and length of the packet at the start
// of b on the first line, then its payload as PrintPrettyHex does.
func PrintPacketPrettyHex(w io.Writer, prefix, indent string, b []byte) error {
	c := NewCursor(b)
	key, err := readKey(c)
	if err != nil {
		fmt.Fprint(w, prefix, hex.EncodeToString(b))
		return nil
	}
	lenStart := c.Pos()
	n, err := ReadBERLength(c)
	if err != nil || n > c.Remaining() {
		fmt.Fprint(w, prefix, hex.EncodeToString(b))
		return nil
	}
	fmt.Fprintf(w, "%s%x | %x", prefix, key[:], b[lenStart:c.Pos()])
	var reg *Registry
	if s, ok := LookupStandard(key); ok {
		reg = s.Registry
	}
	payload, _ := c.Sub(n)
	if payload.Remaining() > 0 {
		fmt.Fprint(w, "\n")
		printPrettyHex(w, prefix+indent, indent, payload, reg)
	}
	if c.Remaining() > 0 {
		fmt.Fprintf(w, "\n%s%x", prefix, b[c.Pos():])
	}
	return nil
}

func printPrettyHex(w io.Writer, prefix, indent string, c *Cursor, reg *Registry) {
	for c.Remaining() > 0 {
		if c.Pos() > 0 {
			fmt.Fprint(w, "\n")
		}
		start := c.Pos()
		rest, _ := c.Peek(c.Remaining())
		t, err := ReadBEROID(c)
		if err != nil {
			fmt.Fprintf(w, "%s%x", prefix, rest)
			return
		}
		tagEnd := c.Pos()
		n, err := ReadBERLength(c)
		if err != nil || n > c.Remaining() {
			fmt.Fprintf(w, "%s%x", prefix, rest)
			return
		}
		hdr := rest[:c.Pos()-start]
		value, _ := c.Sub(n)
		f := reg.Format(Tag(t))
		fmt.Fprintf(w, "%s%x | %x", prefix, hdr[:tagEnd-start], hdr[tagEnd-start:])
		switch {
		case n == 0:
		case f.Nested:
			fmt.Fprint(w, "\n")
			printPrettyHex(w, prefix+indent, indent, value, f.Registry)
		default:
			fmt.Fprintf(w, " | %x", value.buf)
		}
	}
}

// maxJSONInt is the largest integer JSON readers reliably hold in a double.
const maxJSONInt = 1 << 53

// MarshalJSON renders set as a JSON array of {"tag": name, "value": value}
// objects.  Records become objects keyed by field name, lists become arrays,
// enumerations become their names and blobs become hex strings.
func MarshalJSON(set LocalSet, reg *Registry) ([]byte, error) {
	var sb strings.Builder
	if err := writeSetJSON(&sb, set, reg); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// MarshalJSON renders the packet with the registry of its standard.
func (p Packet) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`{"key":"`)
	sb.WriteString(p.Key.String())
	sb.WriteString(`"`)
	var reg *Registry
	if s, ok := LookupStandard(p.Key); ok {
		reg = s.Registry
		sb.WriteString(`,"standard":`)
		writeJSONString(&sb, s.Name)
	}
	sb.WriteString(`,"set":`)
	if err := writeSetJSON(&sb, p.Set, reg); err != nil {
		return nil, err
	}
	sb.WriteString(`}`)
	return []byte(sb.String()), nil
}

func writeSetJSON(sb *strings.Builder, set LocalSet, reg *Registry) error {
	sb.WriteString("[")
	for i, e := range set {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"tag":"`)
		sb.WriteString(reg.TagName(e.Tag))
		sb.WriteString(`","value":`)
		if err := writeValueJSON(sb, e.Value, reg.Format(e.Tag).Registry); err != nil {
			return WithTag(err, e.Tag)
		}
		sb.WriteString("}")
	}
	sb.WriteString("]")
	return nil
}

func writeValueJSON(sb *strings.Builder, v Value, reg *Registry) error {
	switch t := v.(type) {
	case Uint:
		if t.Value >= maxJSONInt {
			sb.WriteString(`"` + strconv.FormatUint(t.Value, 10) + `"`)
		} else {
			sb.WriteString(strconv.FormatUint(t.Value, 10))
		}
	case Int:
		if t.Value <= -maxJSONInt || t.Value >= maxJSONInt {
			sb.WriteString(`"` + strconv.FormatInt(t.Value, 10) + `"`)
		} else {
			sb.WriteString(strconv.FormatInt(t.Value, 10))
		}
	case Float:
		switch {
		case t.Unavailable:
			sb.WriteString("null")
		case math.IsNaN(t.Value) || math.IsInf(t.Value, 0):
			writeJSONString(sb, t.String())
		default:
			sb.WriteString(strconv.FormatFloat(t.Value, 'g', -1, 64))
		}
	case String:
		writeJSONString(sb, string(t))
	case Blob:
		sb.WriteString(`"`)
		sb.WriteString(hex.EncodeToString(t))
		sb.WriteString(`"`)
	case Enum:
		writeJSONString(sb, t.String())
	case Record:
		sb.WriteString("{")
		for i, f := range t {
			if i > 0 {
				sb.WriteString(",")
			}
			writeJSONString(sb, f.Name)
			sb.WriteString(":")
			if err := writeValueJSON(sb, f.Value, nil); err != nil {
				return err
			}
		}
		sb.WriteString("}")
	case List:
		sb.WriteString("[")
		for i, e := range t {
			if i > 0 {
				sb.WriteString(",")
			}
			if err := writeValueJSON(sb, e, nil); err != nil {
				return err
			}
		}
		sb.WriteString("]")
	case LocalSet:
		return writeSetJSON(sb, t, reg)
	default:
		return merry.Errorf("cannot marshal %T to JSON", v)
	}
	return nil
}

func writeJSONString(sb *strings.Builder, s string) {
	b, _ := json.Marshal(s)
	sb.Write(b)
}
