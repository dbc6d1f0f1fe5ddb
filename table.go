package typst

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table builds a complete Typst #table(...) call around the cell rules of
// [TableContent]. The zero value is usable; [NewTable] adds column size
// specs. Configuration is exported fields, set before rendering.
//
// The builder is a formatting convenience, not a checker: column specs are
// emitted verbatim and ragged rows are emitted as given.
type Table struct {
	// BreakIndicator is the break indicator applied to appended text cells.
	// Empty means [DefaultBreakIndicator].
	BreakIndicator string

	// PadColumns pads rendered cells with spaces so the generated source
	// aligns column-wise. Widths are display widths, so wide characters
	// align correctly. Cells carrying a forced line break are left unpadded.
	PadColumns bool

	columns []string
	header  []string
	rows    []Row
}

// NewTable returns a table with the given column size specs ("auto", "1fr",
// "2cm", ...), emitted verbatim as the columns: argument. With no specs the
// column count is derived from the header and the widest appended row.
func NewTable(columns ...string) *Table {
	return &Table{columns: columns}
}

// SetHeader sets the header cells, rendered as bold content blocks with
// content escaping applied.
func (t *Table) SetHeader(cells ...string) {
	t.header = cells
}

// Append converts values with [Of] and appends them as one row.
func (t *Table) Append(values ...any) {
	t.rows = append(t.rows, Cells(values...))
}

// AppendRows appends prebuilt rows.
func (t *Table) AppendRows(rows ...Row) {
	t.rows = append(t.rows, rows...)
}

// AppendSeq appends every row yielded by seq.
func (t *Table) AppendSeq(seq iter.Seq[Row]) {
	for row := range seq {
		t.rows = append(t.rows, row)
	}
}

// String renders the full table call: the columns: argument when one is
// known, then one indented line per header and row, every line ending with
// a trailing comma, closed by ")". A table with no columns, header, or rows
// renders as "#table()". An empty row adds no line: a table call is a flat
// stream of cells, so an empty row would not affect layout anyway.
func (t *Table) String() string {
	var b strings.Builder
	_ = t.write(&b) // a strings.Builder never returns a write error
	return b.String()
}

// WriteTo writes the markup of [Table.String] to w incrementally,
// implementing [io.WriterTo].
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := t.write(cw)
	return cw.n, err
}

func (t *Table) write(w io.Writer) error {
	lines := t.renderLines()
	columns := t.columnsArg()
	if columns == "" && len(lines) == 0 {
		_, err := io.WriteString(w, "#table()")
		return err
	}
	if _, err := io.WriteString(w, "#table(\n"); err != nil {
		return err
	}
	if columns != "" {
		if _, err := fmt.Fprintf(w, "  columns: %s,\n", columns); err != nil {
			return err
		}
	}
	var widths []int
	if t.PadColumns {
		widths = cellWidths(lines)
	}
	for _, cells := range lines {
		if err := writeCells(w, cells, widths); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}

// renderLines renders the header and every non-empty row into per-line cell
// markup.
func (t *Table) renderLines() [][]string {
	indicator := t.BreakIndicator
	if indicator == "" {
		indicator = DefaultBreakIndicator
	}
	var lines [][]string
	if len(t.header) > 0 {
		cells := make([]string, len(t.header))
		for i, h := range t.header {
			cells[i] = headerCell(h)
		}
		lines = append(lines, cells)
	}
	for _, row := range t.rows {
		if len(row) == 0 {
			continue
		}
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell == nil {
				cell = Of(nil)
			}
			cells[i] = cell.render(indicator)
		}
		lines = append(lines, cells)
	}
	return lines
}

func (t *Table) columnsArg() string {
	if len(t.columns) > 0 {
		// (auto) would be a parenthesized scalar; the trailing comma makes a
		// single spec an array.
		if len(t.columns) == 1 {
			return "(" + t.columns[0] + ",)"
		}
		return "(" + strings.Join(t.columns, ", ") + ")"
	}
	n := len(t.header)
	for _, row := range t.rows {
		if len(row) > n {
			n = len(row)
		}
	}
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// headerCell renders a header as a bold content block. Typst has no empty
// strong element, so an empty header falls back to a bare block.
func headerCell(s string) string {
	if s == "" {
		return "[]"
	}
	return "[*" + EscapeContent(s) + "*]"
}

func cellWidths(lines [][]string) []int {
	n := 0
	for _, cells := range lines {
		if len(cells) > n {
			n = len(cells)
		}
	}
	widths := make([]int, n)
	for _, cells := range lines {
		for i, cell := range cells {
			if strings.Contains(cell, "\n") {
				continue
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeCells(w io.Writer, cells []string, widths []int) error {
	var b strings.Builder
	b.WriteString("  ")
	for i, cell := range cells {
		b.WriteString(cell)
		b.WriteByte(',')
		if i == len(cells)-1 {
			break
		}
		// Padding sits between the comma and the next cell, so commas stay
		// attached to their cells.
		if i < len(widths) && !strings.Contains(cell, "\n") {
			if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
