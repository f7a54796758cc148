package klv

import (
	"encoding/hex"
	"strings"

	"github.com/ansel1/merry"
	"github.com/gemalto/klv-go/internal/klvutil"
)

// UniversalKeyLen is the length of a SMPTE universal key.
const UniversalKeyLen = 16

// UniversalKey is the 16 byte key which names the standard of a packet.
type UniversalKey [UniversalKeyLen]byte

// ParseUniversalKey parses 32 hex digits.  Separators and whitespace between
// digits are ignored, so the output of String parses.
func ParseUniversalKey(s string) (UniversalKey, error) {
	var k UniversalKey
	b, err := klvutil.ParseHex(s)
	if err != nil {
		return k, merry.Prependf(err, "invalid universal key %q", s)
	}
	if len(b) != UniversalKeyLen {
		return k, merry.Here(ErrInvalidLength).Appendf("universal key must be %d bytes, got %d", UniversalKeyLen, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// String formats the key as four dot separated groups of 8 hex digits, e.g.
// "060E2B34.020B0101.0E010301.01000000".
func (k UniversalKey) String() string {
	parts := make([]string, 4)
	for i := range parts {
		parts[i] = strings.ToUpper(hex.EncodeToString(k[4*i : 4*i+4]))
	}
	return strings.Join(parts, ".")
}

// Standard describes one local set standard: its key, its tags and whether
// its packets end with a checksum element.
type Standard struct {
	Name     string
	Key      UniversalKey
	Registry *Registry
	// ChecksumTag is the tag of the trailing checksum element.  It is only
	// used if HasChecksum is set.
	ChecksumTag Tag
	HasChecksum bool
}

var standards = map[UniversalKey]*Standard{}
var standardKeys []UniversalKey

// RegisterStandard makes a standard known to DecodePacket, EncodePacket and
// Scanner.  It must be called from package init functions only; the set of
// standards is read without locking afterwards.  Registering a key twice
// panics.
func RegisterStandard(s *Standard) {
	if _, ok := standards[s.Key]; ok {
		panic("klv: standard already registered for key " + s.Key.String())
	}
	standards[s.Key] = s
	standardKeys = append(standardKeys, s.Key)
}

// LookupStandard returns the standard registered for key.
func LookupStandard(key UniversalKey) (*Standard, bool) {
	s, ok := standards[key]
	return s, ok
}

// Packet is a decoded KLV packet.  The checksum element is not part of Set;
// it is checked on decode and recomputed on encode.
type Packet struct {
	Key UniversalKey
	Set LocalSet
}

// Checksum is the running 16 bit sum of ST 0601: the bytes of b taken as
// big-endian 16 bit words, so bytes at even offsets are high bytes.
func Checksum(b []byte) uint16 {
	var s uint16
	for i, x := range b {
		if i%2 == 0 {
			s += uint16(x) << 8
		} else {
			s += uint16(x)
		}
	}
	return s
}

func readKey(c *Cursor) (UniversalKey, error) {
	var k UniversalKey
	if c.Remaining() < UniversalKeyLen {
		return k, WithOffset(merry.Here(ErrTruncatedData).Appendf("packet key needs %d bytes, %d remaining", UniversalKeyLen, c.Remaining()), c.Offset())
	}
	b, _ := c.Read(UniversalKeyLen)
	copy(k[:], b)
	return k, nil
}

// DecodePacket decodes the packet at the start of b and returns it with the
// number of bytes it occupied.
//
// A missing or wrong checksum is reported as an error matching ErrChecksum
// together with the fully decoded packet and its length; callers decide
// whether to keep it.  Every other error means the packet could not be
// decoded.
func DecodePacket(b []byte) (Packet, int, error) {
	c := NewCursor(b)
	key, err := readKey(c)
	if err != nil {
		return Packet{}, 0, err
	}
	s, ok := LookupStandard(key)
	if !ok {
		return Packet{}, 0, WithOffset(merry.Here(ErrUnrecognizedPacketType).Appendf("no standard registered for key %v", key), 0)
	}
	set, err := s.readBody(c)
	if err != nil && !IsChecksumError(err) {
		return Packet{}, 0, err
	}
	return Packet{Key: key, Set: set}, c.Pos(), err
}

// EncodePacket encodes p with the standard registered for its key.
func EncodePacket(p Packet) ([]byte, error) {
	s, ok := LookupStandard(p.Key)
	if !ok {
		return nil, merry.Here(ErrUnrecognizedPacketType).Appendf("no standard registered for key %v", p.Key)
	}
	return s.Encode(p.Set)
}

// Decode is DecodePacket restricted to packets of this standard.
func (s *Standard) Decode(b []byte) (LocalSet, int, error) {
	c := NewCursor(b)
	key, err := readKey(c)
	if err != nil {
		return nil, 0, withStandard(err, s.Name)
	}
	if key != s.Key {
		return nil, 0, withStandard(WithOffset(merry.Here(ErrUnrecognizedPacketType).Appendf("key %v is not %s", key, s.Name), 0), s.Name)
	}
	set, err := s.readBody(c)
	if err != nil && !IsChecksumError(err) {
		return nil, 0, err
	}
	return set, c.Pos(), err
}

// readBody decodes the length and payload following the key.  The cursor must
// be positioned just after the key of a packet starting at offset 0.
func (s *Standard) readBody(c *Cursor) (LocalSet, error) {
	n, err := ReadBERLength(c)
	if err != nil {
		return nil, withStandard(err, s.Name)
	}
	if n > c.Remaining() {
		return nil, withStandard(WithOffset(merry.Here(ErrTruncatedData).Appendf("packet declares %d bytes, %d remaining", n, c.Remaining()), c.Offset()), s.Name)
	}
	payload, _ := c.Sub(n)
	set, err := ReadLocalSet(payload, s.Registry)
	if err != nil {
		return nil, withStandard(err, s.Name)
	}
	if !s.HasChecksum {
		return set, nil
	}

	last := len(set) - 1
	if last < 0 || set[last].Tag != s.ChecksumTag {
		return set, withStandard(merry.Here(ErrChecksum).Append("packet has no trailing checksum"), s.Name)
	}
	sum := set[last].Value
	set = set[:last]
	raw, ok := checksumValue(sum)
	if !ok {
		return set, withStandard(merry.Here(ErrChecksum).Appendf("malformed checksum value %v", sum), s.Name)
	}
	// the checksum value is the last 2 bytes of the packet
	if want := Checksum(c.buf[:c.Pos()-2]); raw != want {
		return set, withStandard(merry.Here(ErrChecksum).Appendf("packet checksum is %#04x, computed %#04x", raw, want), s.Name)
	}
	return set, nil
}

func checksumValue(v Value) (uint16, bool) {
	switch t := v.(type) {
	case Uint:
		if t.Width == 2 {
			return uint16(t.Value), true
		}
	case Blob:
		if len(t) == 2 {
			return uint16(t[0])<<8 | uint16(t[1]), true
		}
	}
	return 0, false
}

func (s *Standard) payloadLen(set LocalSet) (int, error) {
	n, err := set.Len(s.Registry)
	if err != nil {
		return 0, withStandard(err, s.Name)
	}
	if s.HasChecksum {
		n += s.ChecksumTag.Len() + 1 + 2
	}
	return n, nil
}

// PacketLen returns the encoded length of a packet holding set, key and
// checksum included.
func (s *Standard) PacketLen(set LocalSet) (int, error) {
	n, err := s.payloadLen(set)
	if err != nil {
		return 0, err
	}
	return UniversalKeyLen + BERLengthLen(n) + n, nil
}

// Encode returns the packet holding set.  The checksum element is appended
// and must not be part of set.
func (s *Standard) Encode(set LocalSet) ([]byte, error) {
	if s.HasChecksum {
		for _, e := range set {
			if e.Tag == s.ChecksumTag {
				return nil, withStandard(WithTag(merry.Here(ErrInvalidValue).Append("checksum element is added by the encoder"), e.Tag), s.Name)
			}
		}
	}
	n, err := s.payloadLen(set)
	if err != nil {
		return nil, err
	}
	b := make([]byte, UniversalKeyLen+BERLengthLen(n)+n)
	c := NewCursor(b)
	_ = c.Write(s.Key[:])
	_ = WriteBERLength(c, n)
	if err := WriteLocalSet(c, set, s.Registry); err != nil {
		return nil, withStandard(err, s.Name)
	}
	if s.HasChecksum {
		_ = WriteBEROID(c, uint64(s.ChecksumTag))
		_ = c.WriteByte(2)
		sum := Checksum(c.Bytes())
		_ = writeUint(c, uint64(sum), 2)
	}
	if c.Remaining() != 0 {
		return nil, withStandard(merry.Here(ErrDecoderLengthMismatch).Appendf("packet is %d bytes, reported %d", c.Pos(), len(b)), s.Name)
	}
	return b, nil
}
