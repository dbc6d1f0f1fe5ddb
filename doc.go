// Package typst generates snippets of Typst markup from Go data, for
// splicing into a larger document template.
//
// The heart of the package is [TableContent], which turns rows of cells into
// the comma-separated cell list of a Typst #table(...) call:
//
//	rows := []typst.Row{
//		typst.Cells("John", 200, 10),
//		typst.Cells("Mary", 500, 100),
//	}
//	typst.TableContent(rows)
//	// "John", "200", "10",
//	//   "Mary", "500", "100"
//
// # Cells
//
// A [Cell] is one of three kinds: [Int] renders as quoted decimal digits,
// [Text] as a quoted string, and anything else falls back to its %v
// representation, quoted. [Of] and [Cells] pick the kind for arbitrary Go
// values. Rendering never fails, so one odd cell cannot abort document
// generation.
//
// # Line Breaks
//
// A Typst string literal cannot hold a forced line break; only a content
// block can. When a [Text] cell contains the break indicator (a backslash
// by default), every occurrence becomes " \" followed by a newline and the
// cell is emitted as a bracketed block instead of a quoted string:
//
//	typst.TableContent([]typst.Row{typst.Cells("Software\\Engineer")})
//	// [Software \
//	// Engineer]
//
// Use [TableContentWithBreaks] to pick a different indicator (commonly "|")
// when cell text legitimately contains backslashes.
//
// # Escaping
//
// [TableContent] quotes text verbatim. When cell data is untrusted or may
// itself contain markup-significant characters, neutralize it first with
// [EscapeString] (for string literals) or [EscapeContent] (for content
// blocks).
//
// # Values
//
// [MarshalValue] renders a Go value as a Typst code-mode value literal:
// none, booleans, numbers, strings, datetime(...) and duration(...)
// constructors, arrays, and dictionaries. [FromJSON] and [FromYAML] decode a
// document and hand it to [MarshalValue], mirroring Typst's own json() and
// yaml() loaders; [RowsFromCSV] reads CSV records into rows of [Text] cells.
//
// # Table Builder
//
// [Table] assembles the complete #table(...) call, with column size specs,
// a bold header row, and optional column-aligned padding of the generated
// source:
//
//	t := typst.NewTable("auto", "1fr")
//	t.SetHeader("User", "Salary")
//	t.Append("John", 200)
//	t.String()
//	// #table(
//	//   columns: (auto, 1fr),
//	//   [*User*], [*Salary*],
//	//   "John", "200",
//	// )
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrEmptyIndicator], returned for an empty break indicator
//   - [ErrUnsupportedValue], returned for a value with no Typst literal form
//
// The formatting core itself is total: [TableContent] and [Table.String]
// accept any input shape without failing.
package typst
