package typst

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// MarshalValue renders v as a Typst code-mode value literal, the way Typst's
// own json and yaml loaders surface data inside a document.
//
// nil becomes none; bools, integers, floats, and strings become the matching
// Typst literals; [time.Time] becomes a datetime(...) constructor and
// [time.Duration] a duration(seconds: ...) one; []any becomes an array and
// map[string]any a dictionary with keys in sorted order. Structs, pointers,
// and other named types are round-tripped through [encoding/json], so struct
// tags are honored. Values with no Typst form (NaN and infinities, integers
// beyond 64-bit signed range, non-string map keys, and anything JSON cannot
// represent) are rejected with an error wrapping [ErrUnsupportedValue].
func MarshalValue(v any) (string, error) {
	var b strings.Builder
	if err := writeValue(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeValue(b *strings.Builder, v any) error {
	switch v := v.(type) {
	case nil:
		b.WriteString("none")
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case int:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int8:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int16:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int32:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case uint:
		return writeUint(b, uint64(v))
	case uint8:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint16:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint32:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return writeUint(b, v)
	case float32:
		return writeFloat(b, float64(v), 32)
	case float64:
		return writeFloat(b, v, 64)
	case json.Number:
		return writeNumber(b, v)
	case string:
		writeQuoted(b, v)
	case time.Time:
		fmt.Fprintf(b, "datetime(year: %d, month: %d, day: %d, hour: %d, minute: %d, second: %d)",
			v.Year(), int(v.Month()), v.Day(), v.Hour(), v.Minute(), v.Second())
	case time.Duration:
		fmt.Fprintf(b, "duration(seconds: %d)", int64(v/time.Second))
	case []any:
		return writeArray(b, v)
	case map[string]any:
		return writeDict(b, v)
	default:
		return writeJSONValue(b, v)
	}
	return nil
}

// Typst integers are 64-bit signed; larger values have no literal form.
func writeUint(b *strings.Builder, v uint64) error {
	if v > math.MaxInt64 {
		return fmt.Errorf("%w: %d overflows Typst's 64-bit integers", ErrUnsupportedValue, v)
	}
	b.WriteString(strconv.FormatUint(v, 10))
	return nil
}

func writeFloat(b *strings.Builder, f float64, bits int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v has no Typst literal form", ErrUnsupportedValue, f)
	}
	b.WriteString(floatLiteral(f, bits))
	return nil
}

// floatLiteral formats f as a Typst float literal: shortest round-trip
// decimal, lowercase exponent with no plus sign, and a forced ".0" when the
// digits would otherwise read as an integer literal.
func floatLiteral(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	s = strings.Replace(s, "e+", "e", 1)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// writeNumber emits a json.Number without losing integer digits to a float
// round trip.
func writeNumber(b *strings.Builder, n json.Number) error {
	if i, err := n.Int64(); err == nil {
		b.WriteString(strconv.FormatInt(i, 10))
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrUnsupportedValue, n.String())
	}
	return writeFloat(b, f, 64)
}

// writeQuoted emits a Typst string literal. Typst strings know the same
// short escapes as Go plus \u{...}, which covers the remaining control
// characters.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u{`)
				b.WriteString(strconv.FormatInt(int64(r), 16))
				b.WriteByte('}')
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

func writeArray(b *strings.Builder, elems []any) error {
	b.WriteByte('(')
	for i, elem := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := writeValue(b, elem); err != nil {
			return err
		}
	}
	// (x) is a parenthesized scalar in Typst; the trailing comma makes it an
	// array.
	if len(elems) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return nil
}

func writeDict(b *strings.Builder, m map[string]any) error {
	if len(m) == 0 {
		b.WriteString("(:)")
		return nil
	}
	b.WriteByte('(')
	for i, k := range slices.Sorted(maps.Keys(m)) {
		if i > 0 {
			b.WriteString(", ")
		}
		if isIdent(k) {
			b.WriteString(k)
		} else {
			writeQuoted(b, k)
		}
		b.WriteString(": ")
		if err := writeValue(b, m[k]); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}

// isIdent reports whether s can stand bare as a dictionary key. Typst also
// accepts Unicode identifiers; being ASCII-conservative here only means such
// keys are quoted, which is always valid.
func isIdent(s string) bool {
	switch s {
	case "", "none", "auto", "true", "false":
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return true
}

// writeJSONValue handles structs, pointers, and named container types by
// round-tripping through encoding/json, which honors struct tags. Decoding
// with UseNumber keeps integer digits exact.
func writeJSONValue(b *strings.Builder, v any) error {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Map && rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("%w: dictionary keys must be strings, got %s", ErrUnsupportedValue, rv.Type().Key())
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedValue, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedValue, err)
	}
	return writeValue(b, decoded)
}
