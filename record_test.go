package klv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFormat_fixedWidth(t *testing.T) {
	tests := map[string]Value{
		"narrower": Uint{Value: 5, Width: 1},
		"wider":    Uint{Value: 5, Width: 4},
		"blob":     Blob{1, 2, 3},
	}
	for name, stamp := range tests {
		t.Run(name, func(t *testing.T) {
			set := LocalSet{{Tag: 10, Value: Record{
				{Name: "ID", Value: Uint{Value: 5}},
				{Name: "Label", Value: String("abc")},
				{Name: "Stamp", Value: stamp},
			}}}
			_, err := set.Len(testRegistry)
			require.True(t, Is(err, ErrInvalidValue), Details(err))

			_, err = EncodeLocalSet(set, testRegistry)
			require.True(t, Is(err, ErrInvalidValue), Details(err))
			tag, _ := ErrorTag(err)
			assert.EqualValues(t, 10, tag)
		})
	}

	// a fixed field at its format's length round trips
	set := LocalSet{{Tag: 10, Value: Record{
		{Name: "ID", Value: Uint{Value: 5}},
		{Name: "Label", Value: String("abc")},
		{Name: "Stamp", Value: Blob{0x00, 0x10}},
	}}}
	b, err := EncodeLocalSet(set, testRegistry)
	require.NoError(t, err)
	assert.Equal(t, Hex2bytes("0A 07 05 03 616263 0010"), b)

	out, err := DecodeLocalSet(b, testRegistry)
	require.NoError(t, err)
	stamp, ok := out[0].Value.(Record).Get("Stamp")
	require.True(t, ok)
	assert.Equal(t, Uint{Value: 0x10, Width: 2}, stamp)
}

func TestFixedFraming_variableFormat(t *testing.T) {
	assert.Panics(t, func() {
		RecordFormat("Bad", FieldFormat{Name: "Text", Format: StringFormat(), Framing: Fixed})
	})
	assert.Panics(t, func() {
		ListFormat("Bad List", OIDFormat(), Fixed, false)
	})
	assert.Panics(t, func() {
		// the zero Framing is Fixed
		RecordFormat("Bad", FieldFormat{Name: "Count", Format: UintFormat(0)})
	})
	assert.NotPanics(t, func() {
		ListFormat("Stamps", UintFormat(2), Fixed, true)
	})
}
