package klv

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBERLength(t *testing.T) {
	tests := []struct {
		n   int
		exp string
	}{
		{0, "00"},
		{1, "01"},
		{127, "7F"},
		{128, "81 80"},
		{255, "81 FF"},
		{256, "82 01 00"},
		{955, "82 03 BB"},
		{65535, "82 FF FF"},
		{65536, "83 01 00 00"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprint(test.n), func(t *testing.T) {
			exp := Hex2bytes(test.exp)
			assert.Equal(t, len(exp), BERLengthLen(test.n))

			b := make([]byte, len(exp))
			c := NewCursor(b)
			require.NoError(t, WriteBERLength(c, test.n))
			assert.Equal(t, exp, c.Bytes())
			assert.Equal(t, exp, AppendBERLength(nil, test.n))

			n, err := ReadBERLength(NewCursor(exp))
			require.NoError(t, err)
			assert.Equal(t, test.n, n)
		})
	}
}

func TestReadBERLength_nonMinimal(t *testing.T) {
	// long form is legal for short lengths
	n, err := ReadBERLength(NewCursor(Hex2bytes("82 00 05")))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestReadBERLength_errors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expErr error
	}{
		{"empty", "", ErrOutOfRange},
		{"zero count", "80", ErrInvalidLength},
		{"count too large", "89 01 01 01 01 01 01 01 01 01", ErrInvalidLength},
		{"truncated", "82 01", ErrOutOfRange},
		{"overflow", "88 FF FF FF FF FF FF FF FF", ErrInvalidLength},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadBERLength(NewCursor(Hex2bytes(test.in)))
			require.Error(t, err)
			require.True(t, Is(err, test.expErr), Details(err))
			_, ok := ErrorOffset(err)
			assert.True(t, ok)
		})
	}
}

func TestWriteBERLength_errors(t *testing.T) {
	err := WriteBERLength(NewCursor(make([]byte, 4)), -1)
	require.True(t, Is(err, ErrInvalidLength), Details(err))

	c := NewCursor(make([]byte, 1))
	err = WriteBERLength(c, 128)
	require.True(t, Is(err, ErrOutOfRange), Details(err))
	assert.Equal(t, 0, c.Pos())
}

func TestBEROID(t *testing.T) {
	tests := []struct {
		v   uint64
		exp string
	}{
		{0, "00"},
		{1, "01"},
		{127, "7F"},
		{128, "81 00"},
		{138, "81 0A"},
		{1001, "87 69"},
		{16383, "FF 7F"},
		{16384, "81 80 00"},
		{60000, "83 D4 60"},
		{math.MaxUint64, "81 FF FF FF FF FF FF FF FF 7F"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprint(test.v), func(t *testing.T) {
			exp := Hex2bytes(test.exp)
			assert.Equal(t, len(exp), BEROIDLen(test.v))
			assert.Equal(t, exp, AppendBEROID(nil, test.v))

			c := NewCursor(exp)
			v, err := ReadBEROID(c)
			require.NoError(t, err)
			assert.Equal(t, test.v, v)
			assert.Equal(t, 0, c.Remaining())
		})
	}
}

func TestReadBEROID_errors(t *testing.T) {
	_, err := ReadBEROID(NewCursor(Hex2bytes("81 82")))
	require.True(t, Is(err, ErrOutOfRange), Details(err))

	_, err = ReadBEROID(NewCursor(Hex2bytes("82 FF FF FF FF FF FF FF FF 7F")))
	require.True(t, Is(err, ErrInvalidLength), Details(err))
}

func TestBEROID_leadingPadding(t *testing.T) {
	// 0x80 padding bytes add nothing to the value
	c := NewCursor(Hex2bytes("80 80 05"))
	v, err := ReadBEROID(c)
	require.NoError(t, err)
	assert.EqualValues(t, 5, v)
	assert.Equal(t, 3, c.Pos())
}
