package klv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testModes = &EnumSet{
	SetName: "Mode",
	Values: map[uint64]string{
		0: "Off",
		1: "Home Position",
		5: "Auto - Holding Position",
	},
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		exp  bool
	}{
		{"uint", Uint{Value: 5, Width: 1}, Uint{Value: 5, Width: 1}, true},
		{"uint width", Uint{Value: 5, Width: 1}, Uint{Value: 5, Width: 2}, false},
		{"uint any width", Uint{Value: 5}, Uint{Value: 5, Width: 2}, true},
		{"uint int", Uint{Value: 5}, Int{Value: 5}, false},
		{"int", Int{Value: -5, Width: 1}, Int{Value: -5}, true},
		{"float", Float{Value: 1.5, Width: 2}, Float{Value: 1.5, Width: 2}, true},
		{"float nan", Float{Value: math.NaN()}, Float{Value: math.NaN()}, true},
		{"float unavailable", Float{Unavailable: true, Raw: 0x80}, Float{Unavailable: true, Raw: 0x80}, true},
		{"float unavailable raw", Float{Unavailable: true, Raw: 0x80}, Float{Unavailable: true, Raw: 0x81}, false},
		{"float unavailable value", Float{Unavailable: true, Raw: 0x80}, Float{Value: 0}, false},
		{"string", String("a"), String("a"), true},
		{"string blob", String("a"), Blob("a"), false},
		{"blob", Blob{1, 2}, Blob{1, 2}, true},
		{"blob empty", Blob{}, Blob(nil), true},
		{"enum", testModes.Value(1), Enum{Set: testModes, Code: 1}, true},
		{"enum set", testModes.Value(1), Enum{Code: 1}, false},
		{"enum width", Enum{Set: testModes, Code: 1, Width: 1}, Enum{Set: testModes, Code: 1, Width: 2}, false},
		{"enum any width", testModes.Value(1), Enum{Set: testModes, Code: 1, Width: 2}, true},
		{"record", Record{{"a", Uint{Value: 1}}}, Record{{"a", Uint{Value: 1}}}, true},
		{"record name", Record{{"a", Uint{Value: 1}}}, Record{{"b", Uint{Value: 1}}}, false},
		{"record len", Record{{"a", Uint{Value: 1}}}, Record{}, false},
		{"list", List{String("x"), Uint{Value: 1}}, List{String("x"), Uint{Value: 1}}, true},
		{"list order", List{String("x"), Uint{Value: 1}}, List{Uint{Value: 1}, String("x")}, false},
		{"local set", LocalSet{{Tag: 1, Value: Blob{1}}}, LocalSet{{Tag: 1, Value: Blob{1}}}, true},
		{"local set tag", LocalSet{{Tag: 1, Value: Blob{1}}}, LocalSet{{Tag: 2, Value: Blob{1}}}, false},
		{"nil", nil, nil, true},
		{"nil value", nil, Blob{}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, Equal(test.a, test.b))
			if test.a != nil && test.b != nil {
				assert.Equal(t, test.exp, Equal(test.b, test.a))
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		v   Value
		exp string
	}{
		{Uint{Value: 42}, "42"},
		{Int{Value: -3}, "-3"},
		{Float{Value: 0.25}, "0.25"},
		{String("abc"), "abc"},
		{Blob{0x0B, 0xFF}, "0x0bff"},
		{testModes.Value(5), "Auto - Holding Position"},
		{Enum{Set: testModes, Code: 9}, "0x9"},
		{Record{{"a", Uint{Value: 1}}, {"b", String("x")}}, "{a: 1, b: x}"},
		{List{Uint{Value: 3}, Uint{Value: 7}}, "[3, 7]"},
		{LocalSet{{Tag: 2, Value: Uint{Value: 1}}}, "{0x02: 1}"},
	}
	for _, test := range tests {
		t.Run(test.exp, func(t *testing.T) {
			assert.Equal(t, test.exp, test.v.String())
		})
	}
}

func TestEnumSet(t *testing.T) {
	assert.Equal(t, "Home Position", testModes.Name(1))
	assert.Equal(t, "", testModes.Name(2))
	assert.True(t, testModes.Has(0))
	assert.False(t, testModes.Has(2))

	code, ok := testModes.Parse("HomePosition")
	require.True(t, ok)
	assert.EqualValues(t, 1, code)

	code, ok = testModes.Parse("Auto - Holding Position")
	require.True(t, ok)
	assert.EqualValues(t, 5, code)

	_, ok = testModes.Parse("Manual")
	assert.False(t, ok)

	assert.Panics(t, func() { testModes.Value(2) })
}

func TestRecord_Get(t *testing.T) {
	r := Record{{"a", Uint{Value: 1}}, {"b", String("x")}}
	v, ok := r.Get("b")
	require.True(t, ok)
	assert.Equal(t, String("x"), v)
	_, ok = r.Get("c")
	assert.False(t, ok)
}
