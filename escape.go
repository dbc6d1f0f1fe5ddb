package typst

import "strings"

// EscapeString neutralizes s for embedding inside a Typst string literal
// ("..."). Only backslashes and double quotes are special there; # starts
// code mode in markup, not in strings.
func EscapeString(s string) string {
	// Backslash first, so the escapes added below are not doubled.
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// contentSpecials are the markup characters that can change where a content
// block ends or start code: backslash, both brackets (markup counts bracket
// nesting, so a stray opening bracket swallows the real closing one), #,
// raw-text backticks, math dollars, and comment slashes.
const contentSpecials = "\\[]#`$/"

// EscapeContent neutralizes s for embedding inside a Typst content block
// ([...]). Styling marks like * or _ pass through: they can restyle the
// cell but not reach outside it.
func EscapeContent(s string) string {
	if !strings.ContainsAny(s, contentSpecials) {
		return s
	}
	var b strings.Builder
	b.Grow(2 * len(s))
	for _, r := range s {
		if strings.ContainsRune(contentSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
