package typst

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyIndicator   = errors.New("empty break indicator")
	ErrUnsupportedValue = errors.New("unsupported value")
)

// DefaultBreakIndicator is the break indicator used by [TableContent]: a
// single literal backslash in a [Text] cell marks a forced line break.
const DefaultBreakIndicator = `\`

// Cell is a single table cell value. The implementations are [Int], [Text],
// and the fallback cell produced by [Of] for every other value. The set is
// closed, and rendering a cell never fails.
type Cell interface {
	// render returns the cell's markup. The indicator is never empty;
	// callers substitute DefaultBreakIndicator before rendering.
	render(indicator string) string
}

// Row is one ordered table row. Rows may be empty and may differ in length
// from one another; the formatter preserves both.
type Row []Cell

// Int is a whole-number cell. It renders as its decimal digits wrapped in
// double quotes: Int(10) renders as "10".
type Int int64

func (n Int) render(string) string {
	return `"` + strconv.FormatInt(int64(n), 10) + `"`
}

// Text is a text cell. If the text contains the break indicator, every
// occurrence is converted to a forced line break and the cell renders as a
// bracketed content block; otherwise the text renders unmodified inside
// double quotes. Quoting is verbatim; use [EscapeString] beforehand when
// the text itself needs neutralizing.
type Text string

func (s Text) render(indicator string) string {
	if !strings.Contains(string(s), indicator) {
		return `"` + string(s) + `"`
	}
	// A quoted string literal cannot hold a forced line break; only a
	// content block can.
	return "[" + strings.ReplaceAll(string(s), indicator, " \\\n") + "]"
}

// otherCell wraps values that are neither integers nor text. It renders the
// value's %v representation wrapped in double quotes, so unusual cell types
// degrade instead of failing.
type otherCell struct{ v any }

func (c otherCell) render(string) string {
	return `"` + fmt.Sprint(c.v) + `"`
}

// Of converts a value to a [Cell]. Cell values pass through unchanged,
// integer types become [Int], string and []byte become [Text], and anything
// else becomes a fallback cell rendered via its %v representation. Of is
// total: it accepts any value, including nil.
func Of(v any) Cell {
	switch v := v.(type) {
	case Cell:
		return v
	case int:
		return Int(v)
	case int8:
		return Int(v)
	case int16:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(v)
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return Int(v)
		}
		return otherCell{v}
	case uint8:
		return Int(v)
	case uint16:
		return Int(v)
	case uint32:
		return Int(v)
	case uint64:
		if v <= math.MaxInt64 {
			return Int(v)
		}
		return otherCell{v}
	case string:
		return Text(v)
	case []byte:
		return Text(v)
	default:
		return otherCell{v}
	}
}

// Cells builds a [Row] by converting each value with [Of].
func Cells(values ...any) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = Of(v)
	}
	return row
}
