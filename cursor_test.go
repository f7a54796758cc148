package klv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_read(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})

	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.EqualValues(t, 1, b)

	p, err := c.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, p)
	assert.Equal(t, 1, c.Pos())

	r, err := c.Read(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, r)
	assert.Equal(t, 2, c.Remaining())

	_, err = c.Read(3)
	require.True(t, Is(err, ErrOutOfRange), Details(err))
	off, ok := ErrorOffset(err)
	require.True(t, ok)
	assert.Equal(t, 3, off)
	assert.Equal(t, 3, c.Pos(), "failed read must not move the cursor")

	_, err = c.Read(-1)
	require.True(t, Is(err, ErrOutOfRange), Details(err))
}

func TestCursor_sub(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5, 6})
	_, _ = c.Read(2)

	sub, err := c.Sub(3)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Offset())
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, 2, sub.Offset())

	_, _ = sub.Read(1)
	_, err = sub.Read(5)
	require.True(t, Is(err, ErrOutOfRange), Details(err))
	off, _ := ErrorOffset(err)
	assert.Equal(t, 3, off, "offsets of child cursors are absolute")

	_, err = c.Sub(2)
	require.True(t, Is(err, ErrOutOfRange), Details(err))
}

func TestCursor_write(t *testing.T) {
	b := make([]byte, 4)
	c := NewCursor(b)

	require.NoError(t, c.WriteByte(0xAA))
	require.NoError(t, c.WriteString("bc"))
	assert.Equal(t, []byte{0xAA, 'b', 'c'}, c.Bytes())

	err := c.Write([]byte{1, 2})
	require.True(t, Is(err, ErrOutOfRange), Details(err))
	assert.Equal(t, 3, c.Pos())
	assert.Equal(t, []byte{0xAA, 'b', 'c', 0}, b, "nothing written when the bytes do not fit")

	require.NoError(t, c.Write([]byte{1}))
	err = c.WriteByte(2)
	require.True(t, Is(err, ErrOutOfRange), Details(err))
}
