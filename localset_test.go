package klv

import (
	"testing"

	"github.com/gemalto/flume/flumetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// every format of testRegistry, plus an unknown tag, a repeated tag and a
// zero-length value
const richSet = `
	03 03 616263
	06 02 8000
	07 01 05
	08 02 FF38
	09 05 01 01 07 02 00
	0A 05 05 03 616263
	0B 03 01 8100
	0C 0C 02 03 01 01 61 06 02 02 6162 0010
	0D 02 3E90
	0E 02 8769
	04 02 ABCD
	8148 01 01
	8148 01 02
	05 00
`

func richSetValue() LocalSet {
	return LocalSet{
		{Tag: 3, Value: String("abc")},
		{Tag: 6, Value: Float{Width: 2, Unavailable: true, Raw: 0x8000}},
		{Tag: 7, Value: testModes.Value(5)},
		{Tag: 8, Value: Int{Value: -200, Width: 2}},
		{Tag: 9, Value: LocalSet{
			{Tag: 1, Value: Uint{Value: 7, Width: 1}},
			{Tag: 2, Value: String("")},
		}},
		{Tag: 10, Value: Record{
			{Name: "ID", Value: Uint{Value: 5, Width: 1}},
			{Name: "Label", Value: String("abc")},
		}},
		{Tag: 11, Value: List{Uint{Value: 1, Width: 1}, Uint{Value: 128, Width: 2}}},
		{Tag: 12, Value: List{
			Record{
				{Name: "ID", Value: Uint{Value: 1, Width: 1}},
				{Name: "Label", Value: String("a")},
			},
			Record{
				{Name: "ID", Value: Uint{Value: 2, Width: 1}},
				{Name: "Label", Value: String("ab")},
				{Name: "Stamp", Value: Uint{Value: 0x10, Width: 2}},
			},
		}},
		{Tag: 13, Value: Float{Value: 1, Width: 2}},
		{Tag: 14, Value: Uint{Value: 1001, Width: 2}},
		{Tag: 4, Value: Blob{0xAB, 0xCD}},
		{Tag: 200, Value: Uint{Value: 1, Width: 1}},
		{Tag: 200, Value: Uint{Value: 2, Width: 1}},
		{Tag: 5, Value: Blob{}},
	}
}

func TestDecodeLocalSet(t *testing.T) {
	defer flumetest.Start(t)()

	b := Hex2bytes("02 08 00 04 59 F4 A6 AA 4A A8 05 02 71 C2")
	set, err := DecodeLocalSet(b, testRegistry)
	require.NoError(t, err)
	require.Len(t, set, 2)

	assert.Equal(t, Element{Tag: 2, Value: Uint{Value: 0x000459F4A6AA4AA8, Width: 8}}, set[0])
	assert.EqualValues(t, 5, set[1].Tag)
	f, ok := set[1].Value.(Float)
	require.True(t, ok, "%T", set[1].Value)
	assert.InDelta(t, 159.97436484321355, f.Value, 1e-9)
	assert.Equal(t, 2, f.Width)

	out, err := EncodeLocalSet(set, testRegistry)
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

func TestLocalSet_roundtrip(t *testing.T) {
	defer flumetest.Start(t)()

	b := Hex2bytes(richSet)
	set, err := DecodeLocalSet(b, testRegistry)
	require.NoError(t, err, Details(err))

	exp := richSetValue()
	require.Len(t, set, len(exp))
	for i := range exp {
		assert.True(t, Equal(exp[i].Value, set[i].Value), "element %d: expected %v, got %v", i, exp[i], set[i])
		assert.Equal(t, exp[i].Tag, set[i].Tag)
	}

	n, err := set.Len(testRegistry)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)

	out, err := EncodeLocalSet(set, testRegistry)
	require.NoError(t, err)
	assert.Equal(t, b, out)

	// values built in code encode the same way
	out, err = EncodeLocalSet(exp, testRegistry)
	require.NoError(t, err, Details(err))
	assert.Equal(t, b, out)
}

func TestDecodeLocalSet_empty(t *testing.T) {
	set, err := DecodeLocalSet(nil, testRegistry)
	require.NoError(t, err)
	assert.NotNil(t, set)
	assert.Empty(t, set)

	out, err := EncodeLocalSet(set, testRegistry)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecodeLocalSet_nilRegistry(t *testing.T) {
	b := Hex2bytes("02 02 0102 05 01 FF")
	set, err := DecodeLocalSet(b, nil)
	require.NoError(t, err)
	assert.True(t, set.Equal(LocalSet{{Tag: 2, Value: Blob{1, 2}}, {Tag: 5, Value: Blob{0xFF}}}))

	out, err := EncodeLocalSet(set, nil)
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

var shortFormat = Format{
	Name: "short",
	Decode: func(c *Cursor, n int) (Value, error) {
		b, err := c.ReadByte()
		if err != nil {
			return nil, err
		}
		return Uint{Value: uint64(b), Width: 1}, nil
	},
	Len: func(v Value) (int, error) {
		return 2, nil
	},
	Encode: func(c *Cursor, v Value) error {
		return c.WriteByte(byte(v.(Uint).Value))
	},
}

var brokenRegistry = MustRegistry("broken", TagDef{Tag: 1, Name: "Short", Format: shortFormat})

func TestDecodeLocalSet_errors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		reg    *Registry
		expErr error
		expTag Tag
		expOff int
	}{
		{
			name:   "truncated value",
			in:     "05 02 71C2 02 08 00 04 59",
			expErr: ErrTruncatedData,
			expTag: 2,
			expOff: 6,
		},
		{
			name:   "truncated tag",
			in:     "05 02 71C2 81",
			expErr: ErrOutOfRange,
			expOff: 5,
		},
		{
			name:   "missing length",
			in:     "05",
			expErr: ErrOutOfRange,
			expTag: 5,
			expOff: 1,
		},
		{
			name:   "invalid length",
			in:     "05 80",
			expErr: ErrInvalidLength,
			expTag: 5,
			expOff: 1,
		},
		{
			name:   "integer too wide",
			in:     "02 09 000000000000000001",
			expErr: ErrInvalidLength,
			expTag: 2,
			expOff: 2,
		},
		{
			name:   "unknown enumeration value",
			in:     "07 01 02",
			expErr: ErrUnknownEnumValue,
			expTag: 7,
			expOff: 3,
		},
		{
			name:   "nested truncated",
			in:     "09 02 01 05",
			expErr: ErrTruncatedData,
			expTag: 1,
			expOff: 4,
		},
		{
			name:   "record partial field",
			in:     "0A 06 05 03 616263 FF",
			expErr: ErrTruncatedData,
			expTag: 10,
			expOff: 7,
		},
		{
			name:   "list trailing bytes",
			in:     "0C 06 01 03 01 01 61 FF",
			expErr: ErrInvalidLength,
			expTag: 12,
			expOff: 7,
		},
		{
			name:   "record missing field",
			in:     "0A 01 05",
			expErr: ErrTruncatedData,
			expTag: 10,
			expOff: 3,
		},
		{
			name:   "list short count",
			in:     "0C 05 03 03 01 01 61",
			expErr: ErrTruncatedData,
			expTag: 12,
			expOff: 7,
		},
		{
			name:   "decoder length mismatch",
			in:     "01 02 AABB",
			reg:    brokenRegistry,
			expErr: ErrDecoderLengthMismatch,
			expTag: 1,
			expOff: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reg := test.reg
			if reg == nil {
				reg = testRegistry
			}
			set, err := DecodeLocalSet(Hex2bytes(test.in), reg)
			require.Error(t, err)
			assert.Nil(t, set)
			require.True(t, Is(err, test.expErr), Details(err))

			tag, ok := ErrorTag(err)
			if test.expTag == 0 {
				assert.False(t, ok)
			} else {
				assert.True(t, ok)
				assert.Equal(t, test.expTag, tag)
			}
			off, ok := ErrorOffset(err)
			assert.True(t, ok)
			assert.Equal(t, test.expOff, off)
		})
	}
}

func TestEncodeLocalSet_errors(t *testing.T) {
	tests := []struct {
		name   string
		set    LocalSet
		reg    *Registry
		expErr error
		expTag Tag
	}{
		{
			name:   "wrong type",
			set:    LocalSet{{Tag: 3, Value: String("ok")}, {Tag: 5, Value: String("x")}},
			expErr: ErrInvalidValue,
			expTag: 5,
		},
		{
			name:   "too large for width",
			set:    LocalSet{{Tag: 2, Value: Uint{Value: 1 << 40, Width: 2}}},
			expErr: ErrInvalidValue,
			expTag: 2,
		},
		{
			name:   "enumeration from another set",
			set:    LocalSet{{Tag: 7, Value: Enum{Set: &EnumSet{SetName: "other"}, Code: 1}}},
			expErr: ErrInvalidValue,
			expTag: 7,
		},
		{
			name:   "unknown enumeration code",
			set:    LocalSet{{Tag: 7, Value: Uint{Value: 3}}},
			expErr: ErrUnknownEnumValue,
			expTag: 7,
		},
		{
			name: "record field order",
			set: LocalSet{{Tag: 10, Value: Record{
				{Name: "Label", Value: String("abc")},
				{Name: "ID", Value: Uint{Value: 5}},
			}}},
			expErr: ErrInvalidValue,
			expTag: 10,
		},
		{
			name:   "record missing field",
			set:    LocalSet{{Tag: 10, Value: Record{{Name: "ID", Value: Uint{Value: 5}}}}},
			expErr: ErrInvalidValue,
			expTag: 10,
		},
		{
			name:   "nested wrong type",
			set:    LocalSet{{Tag: 9, Value: LocalSet{{Tag: 1, Value: Int{Value: 1}}}}},
			expErr: ErrInvalidValue,
			expTag: 1,
		},
		{
			name:   "format writes less than reported",
			set:    LocalSet{{Tag: 1, Value: Uint{Value: 1}}},
			reg:    brokenRegistry,
			expErr: ErrDecoderLengthMismatch,
			expTag: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reg := test.reg
			if reg == nil {
				reg = testRegistry
			}
			_, err := EncodeLocalSet(test.set, reg)
			require.Error(t, err)
			require.True(t, Is(err, test.expErr), Details(err))
			tag, ok := ErrorTag(err)
			assert.True(t, ok)
			assert.Equal(t, test.expTag, tag)
		})
	}
}

func TestEncodeLocalSet_defaults(t *testing.T) {
	set := LocalSet{
		{Tag: 2, Value: Uint{Value: 1}},
		{Tag: 5, Value: Float{Value: 90}},
		{Tag: 8, Value: Int{Value: -1}},
		{Tag: 14, Value: Uint{Value: 200}},
		{Tag: 5, Value: Blob{1, 2, 3}},
	}
	out, err := EncodeLocalSet(set, testRegistry)
	require.NoError(t, err)
	assert.Equal(t, Hex2bytes("02 08 0000000000000001 05 02 4000 08 01 FF 0E 02 8148 05 03 010203"), out)
}

func TestWriteLocalSet_noRoom(t *testing.T) {
	set := LocalSet{{Tag: 3, Value: String("abc")}, {Tag: 3, Value: String("def")}}
	c := NewCursor(make([]byte, 7))
	err := WriteLocalSet(c, set, testRegistry)
	require.True(t, Is(err, ErrOutOfRange), Details(err))
	// the first element fits, nothing of the second is written
	assert.Equal(t, 5, c.Pos())
}

func TestLocalSet_access(t *testing.T) {
	set := richSetValue()

	v, ok := set.Get(200)
	require.True(t, ok)
	assert.Equal(t, Uint{Value: 1, Width: 1}, v)
	assert.Equal(t, []Value{Uint{Value: 1, Width: 1}, Uint{Value: 2, Width: 1}}, set.All(200))
	_, ok = set.Get(99)
	assert.False(t, ok)
	assert.Nil(t, set.All(99))

	assert.Equal(t, []Tag{3, 6, 7, 8, 9, 10, 11, 12, 13, 14, 4, 200, 200, 5}, set.Tags())

	assert.True(t, set.Equal(richSetValue()))
	other := richSetValue()
	other[0].Value = String("abd")
	assert.False(t, set.Equal(other))
	assert.False(t, set.Equal(other[1:]))
}
