package klv

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	set := LocalSet{
		{Tag: 2, Value: Uint{Value: 0x000459F4A6AA4AA8, Width: 8}},
		{Tag: 5, Value: Float{Value: 159.97436484321355, Width: 2}},
		{Tag: 9, Value: LocalSet{{Tag: 1, Value: Uint{Value: 7, Width: 1}}}},
		{Tag: 10, Value: Record{
			{Name: "ID", Value: Uint{Value: 5, Width: 1}},
			{Name: "Label", Value: String("abc")},
		}},
		{Tag: 11, Value: List{Uint{Value: 1, Width: 1}, Uint{Value: 128, Width: 2}}},
		{Tag: 4, Value: Blob{0xAB, 0xCD}},
		{Tag: 7, Value: testModes.Value(5)},
	}

	exp := strings.Join([]string{
		`TimeStamp (0x02/8): 1224807209913000`,
		`Heading (0x05/2): 159.97436484321355`,
		`NestedSet (0x09/3):`,
		`  Level (0x01/1): 7`,
		`Pair (0x0a/5):`,
		`  ID: 5`,
		`  Label: "abc"`,
		`IDList (0x0b/3):`,
		`  [0]: 1`,
		`  [1]: 128`,
		`0x04 (0x04/2): 0xabcd`,
		`Mode (0x07/1): Auto - Holding Position`,
	}, "\n")

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, "", "  ", set, testRegistry))
	assert.Equal(t, exp, buf.String())
}

func TestPrint_error(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, "", "  ", LocalSet{{Tag: 5, Value: String("x")}}, testRegistry)
	require.True(t, Is(err, ErrInvalidValue), Details(err))
	tag, _ := ErrorTag(err)
	assert.EqualValues(t, 5, tag)
	assert.True(t, strings.HasPrefix(buf.String(), "Heading (0x05/0): ("), buf.String())
}

func TestPrintPacket(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintPacket(&buf, "", "  ", Packet{Key: testKey, Set: testPacketSet()}))
	assert.Equal(t, `test (060E2B34.01020304.05060708.090A0B0C):
  TimeStamp (0x02/8): 1224807209913000
  Heading (0x05/2): 159.97436484321355`, buf.String())

	buf.Reset()
	require.NoError(t, PrintPacket(&buf, "", "  ", Packet{Key: UniversalKey{1}, Set: LocalSet{{Tag: 2, Value: Blob{1}}}}))
	assert.Equal(t, `01000000.00000000.00000000.00000000 (unregistered):
  0x02 (0x02/1): 0x01`, buf.String())
}

func TestPrintPrettyHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		exp  string
	}{
		{
			name: "flat",
			in:   "02 08 000459F4A6AA4AA8 05 02 71C2",
			exp:  "02 | 08 | 000459f4a6aa4aa8\n05 | 02 | 71c2",
		},
		{
			name: "nested",
			in:   "09 03 01 01 07 05 02 71C2",
			exp:  "09 | 03\n  01 | 01 | 07\n05 | 02 | 71c2",
		},
		{
			name: "zero length",
			in:   "05 00 8148 01 01",
			exp:  "05 | 00\n8148 | 01 | 01",
		},
		{
			name: "malformed",
			in:   "05 02 71C2 05 05 01",
			exp:  "05 | 02 | 71c2\n050501",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, PrintPrettyHex(&buf, "", "  ", Hex2bytes(test.in), testRegistry))
			assert.Equal(t, test.exp, buf.String())
		})
	}
}

func TestPrintPacketPrettyHex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintPacketPrettyHex(&buf, "", "  ", Hex2bytes(testPacket)))
	assert.Equal(t, `060e2b340102030405060708090a0b0c | 12
  02 | 08 | 000459f4a6aa4aa8
  05 | 02 | 71c2
  01 | 02 | 812e`, buf.String())

	buf.Reset()
	require.NoError(t, PrintPacketPrettyHex(&buf, "", "  ", Hex2bytes("060E2B34 01")))
	assert.Equal(t, "060e2b3401", buf.String())
}

func TestMarshalJSON(t *testing.T) {
	set := LocalSet{
		{Tag: 2, Value: Uint{Value: 0x000459F4A6AA4AA8, Width: 8}},
		{Tag: 5, Value: Float{Value: 159.97436484321355, Width: 2}},
		{Tag: 6, Value: Float{Width: 2, Unavailable: true, Raw: 0x8000}},
		{Tag: 7, Value: testModes.Value(5)},
		{Tag: 9, Value: LocalSet{{Tag: 1, Value: Uint{Value: 7, Width: 1}}}},
		{Tag: 10, Value: Record{
			{Name: "ID", Value: Uint{Value: 5, Width: 1}},
			{Name: "Label", Value: String("abc")},
		}},
		{Tag: 11, Value: List{Uint{Value: 1, Width: 1}, Uint{Value: 128, Width: 2}}},
		{Tag: 4, Value: Blob{0xAB, 0xCD}},
		{Tag: 3, Value: String(`a"b`)},
		{Tag: 8, Value: Int{Value: -5}},
		{Tag: 2, Value: Uint{Value: 1 << 60}},
	}

	b, err := MarshalJSON(set, testRegistry)
	require.NoError(t, err)
	require.True(t, json.Valid(b), string(b))
	assert.Equal(t, `[`+
		`{"tag":"TimeStamp","value":1224807209913000},`+
		`{"tag":"Heading","value":159.97436484321355},`+
		`{"tag":"Pitch","value":null},`+
		`{"tag":"Mode","value":"Auto - Holding Position"},`+
		`{"tag":"NestedSet","value":[{"tag":"Level","value":7}]},`+
		`{"tag":"Pair","value":{"ID":5,"Label":"abc"}},`+
		`{"tag":"IDList","value":[1,128]},`+
		`{"tag":"0x04","value":"abcd"},`+
		`{"tag":"Label","value":"a\"b"},`+
		`{"tag":"Offset","value":-5},`+
		`{"tag":"TimeStamp","value":"1152921504606846976"}`+
		`]`, string(b))
}

func TestPacket_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Packet{Key: testKey, Set: testPacketSet()})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"key":      "060E2B34.01020304.05060708.090A0B0C",
		"standard": "test",
		"set":      [
			{"tag": "TimeStamp", "value": 1224807209913000},
			{"tag": "Heading", "value": 159.97436484321355}
		]
	}`, string(b))
}
