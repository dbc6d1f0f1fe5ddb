package typst_test

import (
	"testing"

	"github.com/bjaus/typst"
	"github.com/stretchr/testify/assert"
)

func TestEscapeString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":     {in: "hello", want: "hello"},
		"empty":     {in: "", want: ""},
		"quote":     {in: `say "hi"`, want: `say \"hi\"`},
		"backslash": {in: `C:\Users`, want: `C:\\Users`},
		"escaped quote stays escaped": {
			in:   `\"`,
			want: `\\\"`,
		},
		"hash passes through": {in: "#1 pick", want: "#1 pick"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, typst.EscapeString(tt.in))
		})
	}
}

func TestEscapeContent(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":           {in: "hello world", want: "hello world"},
		"empty":           {in: "", want: ""},
		"closing bracket": {in: "A]B", want: `A\]B`},
		"opening bracket": {in: "A[B", want: `A\[B`},
		"bracket pair":    {in: "[x]", want: `\[x\]`},
		"hash":            {in: "#eval", want: `\#eval`},
		"backslash":       {in: `a\b`, want: `a\\b`},
		"raw backtick":    {in: "a`b", want: "a\\`b"},
		"math dollars":    {in: "$x$", want: `\$x\$`},
		"comment slashes": {in: "a//b", want: `a\/\/b`},
		"styling marks pass through": {
			in:   "a*b_c",
			want: "a*b_c",
		},
		"wide runes": {in: "你[好", want: `你\[好`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, typst.EscapeContent(tt.in))
		})
	}
}
