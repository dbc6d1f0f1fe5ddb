package typst

import (
	"fmt"
	"strings"
)

// Separators used when joining formatted cells and rows. The row separator
// reproduces Typst's indentation convention for continued argument lists, so
// the output can be spliced directly into a #table(...) call.
const (
	cellSeparator = ", "
	rowSeparator  = ",\n  "
)

// TableContent renders rows as the comma-separated cell list of a Typst
// table, using [DefaultBreakIndicator] to mark forced line breaks.
//
// Rows are joined by ",\n  " and cells within a row by ", ", so splitting
// the output on the row separator yields exactly one segment per input row,
// in input order. Empty input yields "". Rendering never fails: see [Cell]
// for the per-cell rules.
func TableContent(rows []Row) string {
	return tableContent(rows, DefaultBreakIndicator)
}

// TableContentWithBreaks is [TableContent] with a caller-supplied break
// indicator, for text that legitimately contains backslashes. Every
// occurrence of indicator is consumed and replaced by a forced line break;
// an empty indicator is rejected with [ErrEmptyIndicator].
func TableContentWithBreaks(rows []Row, indicator string) (string, error) {
	if indicator == "" {
		return "", fmt.Errorf("%w: replacing it would break after every character", ErrEmptyIndicator)
	}
	return tableContent(rows, indicator), nil
}

func tableContent(rows []Row, indicator string) string {
	formatted := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			if cell == nil {
				cell = Of(nil)
			}
			cells[j] = cell.render(indicator)
		}
		formatted[i] = strings.Join(cells, cellSeparator)
	}
	return strings.Join(formatted, rowSeparator)
}
