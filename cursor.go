package klv

import (
	"github.com/ansel1/merry"
)

// Cursor is a bounded sequential reader/writer over a byte slice.  Reads
// consume the slice, writes overwrite it in place.  A Cursor never grows its
// slice: writers must be sized up front.
type Cursor struct {
	buf  []byte
	pos  int
	base int
}

func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Offset returns the absolute position of the cursor, including the offset of
// the parent cursor for cursors created with Sub.
func (c *Cursor) Offset() int {
	return c.base + c.pos
}

// Pos returns the position relative to the start of this cursor's slice.
func (c *Cursor) Pos() int {
	return c.pos
}

func (c *Cursor) Len() int {
	return len(c.buf)
}

func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Bytes returns the portion of the slice already read or written.
func (c *Cursor) Bytes() []byte {
	return c.buf[:c.pos]
}

func (c *Cursor) outOfRange(n int) error {
	return WithOffset(merry.Here(ErrOutOfRange).Appendf("need %d bytes, %d remaining", n, c.Remaining()), c.Offset())
}

// Read returns the next n bytes and advances past them.  The returned slice
// aliases the cursor's buffer.
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, c.outOfRange(n)
	}
	b := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) ReadByte() (byte, error) {
	if c.Remaining() < 1 {
		return 0, c.outOfRange(1)
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// Peek returns the next n bytes without advancing.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, c.outOfRange(n)
	}
	return c.buf[c.pos : c.pos+n : c.pos+n], nil
}

// Sub returns a cursor over the next n bytes and advances past them.  Offsets
// reported by the child are absolute.
func (c *Cursor) Sub(n int) (*Cursor, error) {
	start := c.Offset()
	b, err := c.Read(n)
	if err != nil {
		return nil, err
	}
	return &Cursor{buf: b, base: start}, nil
}

// Write copies b at the current position.  Nothing is written if b does not
// fit.
func (c *Cursor) Write(b []byte) error {
	if len(b) > c.Remaining() {
		return c.outOfRange(len(b))
	}
	c.pos += copy(c.buf[c.pos:], b)
	return nil
}

func (c *Cursor) WriteByte(b byte) error {
	if c.Remaining() < 1 {
		return c.outOfRange(1)
	}
	c.buf[c.pos] = b
	c.pos++
	return nil
}

// WriteString copies s at the current position.
func (c *Cursor) WriteString(s string) error {
	if len(s) > c.Remaining() {
		return c.outOfRange(len(s))
	}
	c.pos += copy(c.buf[c.pos:], s)
	return nil
}
