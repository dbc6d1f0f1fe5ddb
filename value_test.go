package typst_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/bjaus/typst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type employee struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Active bool   `json:"active"`
}

func TestMarshalValue(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"nil":             {value: nil, want: "none"},
		"true":            {value: true, want: "true"},
		"false":           {value: false, want: "false"},
		"int":             {value: 42, want: "42"},
		"negative int":    {value: -7, want: "-7"},
		"int64 max":       {value: int64(math.MaxInt64), want: "9223372036854775807"},
		"uint":            {value: uint(3), want: "3"},
		"uint64 in range": {value: uint64(64), want: "64"},
		"float":           {value: 1.5, want: "1.5"},
		"negative float":  {value: -0.25, want: "-0.25"},
		"whole float":     {value: 3.0, want: "3.0"},
		"large float":     {value: 1e21, want: "1e21"},
		"small float":     {value: 1e-7, want: "1e-07"},
		"float32":         {value: float32(0.25), want: "0.25"},
		"integer number":  {value: json.Number("42"), want: "42"},
		"decimal number":  {value: json.Number("0.125"), want: "0.125"},
		"string":          {value: "hello", want: `"hello"`},
		"empty string":    {value: "", want: `""`},
		"string escapes":  {value: "a\"b\\c", want: `"a\"b\\c"`},
		"string newline":  {value: "line\nbreak", want: `"line\nbreak"`},
		"string tab cr":   {value: "a\tb\rc", want: `"a\tb\rc"`},
		"string control":  {value: "a\x01b", want: `"a\u{1}b"`},
		"time": {
			value: time.Date(2024, time.May, 17, 8, 45, 30, 0, time.UTC),
			want:  "datetime(year: 2024, month: 5, day: 17, hour: 8, minute: 45, second: 30)",
		},
		"duration":            {value: 90 * time.Second, want: "duration(seconds: 90)"},
		"sub-second duration": {value: 1500 * time.Millisecond, want: "duration(seconds: 1)"},
		"array":               {value: []any{1, "two", true}, want: `(1, "two", true)`},
		"single array":        {value: []any{1}, want: "(1,)"},
		"empty array":         {value: []any{}, want: "()"},
		"nested array":        {value: []any{[]any{1, 2}, nil}, want: "((1, 2), none)"},
		"dict sorts keys":     {value: map[string]any{"b": 2, "a": 1}, want: "(a: 1, b: 2)"},
		"empty dict":          {value: map[string]any{}, want: "(:)"},
		"dict quotes non-identifier key": {
			value: map[string]any{"my key": 1},
			want:  `("my key": 1)`,
		},
		"dict quotes keyword key": {
			value: map[string]any{"none": 1},
			want:  `("none": 1)`,
		},
		"dict kebab key stays bare": {
			value: map[string]any{"font-size": 12},
			want:  "(font-size: 12)",
		},
		"nested dict": {
			value: map[string]any{"xs": []any{1, 2}},
			want:  "(xs: (1, 2))",
		},
		"struct via json tags": {
			value: employee{Name: "Alice", Age: 30, Active: true},
			want:  `(active: true, age: 30, name: "Alice")`,
		},
		"pointer to struct": {
			value: &employee{Name: "Bob", Age: 25},
			want:  `(active: false, age: 25, name: "Bob")`,
		},
		"typed slice via json": {value: []int{1, 2, 3}, want: "(1, 2, 3)"},
		"typed map via json":   {value: map[string]string{"k": "v"}, want: `(k: "v")`},
		"nil pointer":          {value: (*employee)(nil), want: "none"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := typst.MarshalValue(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type cyclic struct {
	Next *cyclic `json:"next"`
}

func TestMarshalValueUnsupported(t *testing.T) {
	t.Parallel()
	loop := &cyclic{}
	loop.Next = loop
	tests := map[string]any{
		"NaN":               math.NaN(),
		"positive infinity": math.Inf(1),
		"negative infinity": math.Inf(-1),
		"infinite float32":  float32(math.Inf(1)),
		"uint64 overflow":   uint64(math.MaxUint64),
		"malformed number":  json.Number("bogus"),
		"channel":           make(chan int),
		"function":          func() {},
		"integer-keyed map": map[int]string{1: "x"},
		"cyclic pointer":    loop,
		"nan in array":      []any{math.NaN()},
		"nan in dict":       map[string]any{"x": math.NaN()},
	}
	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := typst.MarshalValue(value)
			require.ErrorIs(t, err, typst.ErrUnsupportedValue)
		})
	}
}

func TestMarshalValueBigIntegerKeepsDigits(t *testing.T) {
	t.Parallel()
	// Above 2^53: a float64 round trip would corrupt the last digits.
	got, err := typst.MarshalValue(json.Number("9007199254740993"))
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", got)
}

func TestMarshalValueNumberBeyondInt64(t *testing.T) {
	t.Parallel()
	// Too large for int64, still a valid float literal.
	got, err := typst.MarshalValue(json.Number("1e100"))
	require.NoError(t, err)
	assert.Equal(t, "1e100", got)
}
