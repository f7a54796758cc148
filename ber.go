package klv

import (
	"math"
	"math/bits"

	"github.com/ansel1/merry"
)

const berLongFormBit = 0x80

// maxBERLengthBytes is the largest long-form byte count accepted.  Values
// which do not fit in an int are rejected even if the count is smaller.
const maxBERLengthBytes = 8

// ReadBERLength decodes a BER length field.  Short form lengths (0-127) take
// one byte.  In long form the low 7 bits of the first byte give the number of
// big-endian length bytes which follow.
func ReadBERLength(c *Cursor) (int, error) {
	start := c.Offset()
	first, err := c.ReadByte()
	if err != nil {
		return 0, err
	}
	if first&berLongFormBit == 0 {
		return int(first), nil
	}

	count := int(first &^ berLongFormBit)
	if count == 0 || count > maxBERLengthBytes {
		return 0, WithOffset(merry.Here(ErrInvalidLength).Appendf("invalid long form byte count %d", count), start)
	}
	b, err := c.Read(count)
	if err != nil {
		return 0, err
	}
	var n uint64
	for _, v := range b {
		n = n<<8 | uint64(v)
	}
	if n > math.MaxInt {
		return 0, WithOffset(merry.Here(ErrInvalidLength).Appendf("length %d overflows int", n), start)
	}
	return int(n), nil
}

// BERLengthLen returns the number of bytes WriteBERLength uses for n.
func BERLengthLen(n int) int {
	if n < berLongFormBit {
		return 1
	}
	return 1 + uintLen(uint64(n))
}

// WriteBERLength encodes n in the shortest BER form.
func WriteBERLength(c *Cursor, n int) error {
	if n < 0 {
		return merry.Here(ErrInvalidLength).Appendf("negative length %d", n)
	}
	if c.Remaining() < BERLengthLen(n) {
		return c.outOfRange(BERLengthLen(n))
	}
	if n < berLongFormBit {
		return c.WriteByte(byte(n))
	}
	l := uintLen(uint64(n))
	_ = c.WriteByte(berLongFormBit | byte(l))
	return writeUint(c, uint64(n), l)
}

// AppendBERLength appends the BER form of n to dst.
func AppendBERLength(dst []byte, n int) []byte {
	b := make([]byte, BERLengthLen(n))
	_ = WriteBERLength(NewCursor(b), n)
	return append(dst, b...)
}

// ReadBEROID decodes a BER-OID integer: base-128 digits, most significant
// first, with the high bit set on every byte except the last.
func ReadBEROID(c *Cursor) (uint64, error) {
	start := c.Offset()
	var v uint64
	for {
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		if v > math.MaxUint64>>7 {
			return 0, WithOffset(merry.Here(ErrInvalidLength).Append("BER-OID value overflows 64 bits"), start)
		}
		v = v<<7 | uint64(b&0x7F)
		if b&0x80 == 0 {
			return v, nil
		}
	}
}

// BEROIDLen returns the number of bytes WriteBEROID uses for v.
func BEROIDLen(v uint64) int {
	n := 1
	for v >>= 7; v > 0; v >>= 7 {
		n++
	}
	return n
}

func WriteBEROID(c *Cursor, v uint64) error {
	n := BEROIDLen(v)
	if c.Remaining() < n {
		return c.outOfRange(n)
	}
	for i := n - 1; i >= 0; i-- {
		b := byte(v>>(7*uint(i))) & 0x7F
		if i > 0 {
			b |= 0x80
		}
		_ = c.WriteByte(b)
	}
	return nil
}

func AppendBEROID(dst []byte, v uint64) []byte {
	b := make([]byte, BEROIDLen(v))
	_ = WriteBEROID(NewCursor(b), v)
	return append(dst, b...)
}

// oidLen scans the self-delimiting BER-OID at the cursor without consuming it.
func oidLen(c *Cursor) (int, error) {
	rest, _ := c.Peek(c.Remaining())
	for i, b := range rest {
		if b&0x80 == 0 {
			return i + 1, nil
		}
	}
	return 0, WithOffset(merry.Here(ErrTruncatedData).Append("unterminated BER-OID"), c.Offset())
}

// uintLen returns the minimal number of bytes needed to hold v, at least 1.
func uintLen(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 7) / 8
}

func readUint(c *Cursor, n int) (uint64, error) {
	b, err := c.Read(n)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}

func writeUint(c *Cursor, v uint64, n int) error {
	if c.Remaining() < n {
		return c.outOfRange(n)
	}
	for i := n - 1; i >= 0; i-- {
		_ = c.WriteByte(byte(v >> (8 * uint(i))))
	}
	return nil
}
