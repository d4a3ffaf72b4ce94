// SPDX-License-Identifier: MIT

// Package matrix - box-drawn table printer.
//
// Purpose:
//   - Render every element with a caller-chosen format, cap each cell at
//     MaxCellLen bytes, size each column to its widest cell and draw:
//
//	+-----------+
//	| 1 |    20 |
//	|---+-------|
//	| 3 | 4.125 |
//	+-----------+
//
//   - Count and return the bytes written. The writer is never flushed.
//
// Behavior highlights:
//   - Truncation is a deliberate bound, not an overflow: a longer render is cut
//     to at most MaxCellLen bytes on a grapheme-cluster boundary, so a
//     multibyte rune is never split. ASCII renders are cut at exactly 24.
//   - Column width is the display width of the widest cell (uniseg), which
//     equals the byte length for ASCII.
//   - A writer error stops printing; the writer may already hold a prefix.
//
// Complexity quicksheet:
//   - Time O(r*c) renders; Space O(r*c) cell strings + O(c) widths.
package matrix

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rivo/uniseg"
)

// MaxCellLen is the byte cap applied to each rendered element.
const MaxCellLen = 24

// fmtErrorMarker prefixes every fmt verb/argument error ("%!d(float64=1)").
// A literal "%%!" in the format renders the same two bytes.
const fmtErrorMarker = "%!"

// ---------- Box-drawing literals ----------
const (
	_boxCorner  = "+"
	_boxEdge    = "|"
	_boxFill    = "-"
	_cellOpen   = "| "
	_cellClose  = " "
	_lineEnd    = "\n"
	_cellMargin = 2 // spaces around each cell
)

var (
	_ fmt.Stringer = (*Matrix)(nil)
	_ io.WriterTo  = (*Matrix)(nil)
)

// Fprintf writes the table of m to w, formatting every element with format
// (a single-verb float64 format such as "%.2f").
//
// Returns:
//   - the number of bytes written, or -1 on failure.
//
// Errors (in priority order):
//   - ErrNilArgument when m is nil/released or w is nil.
//   - ErrZeroSize when format is empty.
//   - ErrAlloc when an element cannot be rendered with format (fmt reports a
//     bad verb or argument) or scratch space cannot be obtained.
//   - ErrStream when w fails; w may hold a prefix of the table.
//
// w is not flushed.
func Fprintf(w io.Writer, m *Matrix, format string) (int64, error) {
	if err := validatePrint(w, m, format, ctxFprintf); err != nil {
		return -1, err
	}
	n, err := m.writeTable(w, format)
	if err != nil {
		return -1, m.opts.fail(fmt.Errorf("%s: %w", ctxFprintf, err))
	}

	return n, nil
}

// Fprint is Fprintf with m's element format (DefaultElemFormat unless set via
// WithElemFormat).
func Fprint(w io.Writer, m *Matrix) (int64, error) {
	return Fprintf(w, m, m.options().elemFormat)
}

// Printf is Fprintf to os.Stdout.
func Printf(m *Matrix, format string) (int64, error) {
	return Fprintf(os.Stdout, m, format)
}

// Print is Fprint to os.Stdout.
func Print(m *Matrix) (int64, error) {
	return Fprint(os.Stdout, m)
}

// WriteTo implements io.WriterTo with m's element format. Unlike Fprintf it
// reports the bytes actually written, also on failure.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	if err := validatePrint(w, m, m.options().elemFormat, ctxWriteTo); err != nil {
		return 0, err
	}
	n, err := m.writeTable(w, m.opts.elemFormat)
	if err != nil {
		return n, m.opts.fail(fmt.Errorf("%s: %w", ctxWriteTo, err))
	}

	return n, nil
}

// String renders the table with m's element format. A nil or released
// matrix renders as "<nil>".
func (m *Matrix) String() string {
	if m.Released() {
		return "<nil>"
	}
	var b strings.Builder
	if _, err := m.writeTable(&b, m.opts.elemFormat); err != nil {
		return fmt.Sprintf("%%!s(%v)", err)
	}

	return b.String()
}

// validatePrint applies the printer argument checks and raises on failure.
func validatePrint(w io.Writer, m *Matrix, format, ctx string) error {
	o := m.options()
	if m.Released() || w == nil {
		o.debugf("nil argument(s): m=%p, w=%v", m, w)
		return o.fail(fmt.Errorf("%s: %w", ctx, ErrNilArgument))
	}
	if format == "" {
		o.debugf("empty element format")
		return o.fail(fmt.Errorf("%s: %w", ctx, ErrZeroSize))
	}

	return nil
}

// renderCells formats every element and computes the column widths.
func (m *Matrix) renderCells(format string) (cells [][]string, widths []int, err error) {
	err = catchAlloc("renderCells", m.rows*m.cols, func() {
		cells = make([][]string, m.rows)
		for i := range cells {
			cells[i] = make([]string, m.cols)
		}
		widths = make([]int, m.cols)
	})
	if err != nil {
		return nil, nil, err
	}

	var (
		i, j    int
		s       string
		cw      int
		literal = literalMarkers(format)
	)
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			s = fmt.Sprintf(format, m.data[i][j])
			if strings.Count(s, fmtErrorMarker) > literal {
				return nil, nil, fmt.Errorf("element (%d,%d): format %q gives %q: %w", i+1, j+1, format, s, ErrAlloc)
			}
			s = truncateCell(s)
			cells[i][j] = s
			if cw = uniseg.StringWidth(s); cw > widths[j] {
				widths[j] = cw
			}
		}
	}
	m.opts.debugf("formatted elements: [1,1]=%q, [%d,%d]=%q", cells[0][0], m.rows, m.cols, cells[m.rows-1][m.cols-1])

	return cells, widths, nil
}

// literalMarkers counts the "%%!" escapes in format, each of which renders as
// a literal fmtErrorMarker.
func literalMarkers(format string) int {
	n := 0
	for i := 0; i < len(format)-1; i++ {
		if format[i] != '%' {
			continue
		}
		if format[i+1] == '%' {
			if i+2 < len(format) && format[i+2] == '!' {
				n++
			}
			i++
		}
	}

	return n
}

// truncateCell cuts s to at most MaxCellLen bytes without splitting a
// grapheme cluster.
func truncateCell(s string) string {
	if len(s) <= MaxCellLen {
		return s
	}
	var (
		cut     int
		cluster string
		rest    = s
		state   = -1
	)
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cut+len(cluster) > MaxCellLen {
			break
		}
		cut += len(cluster)
	}

	return s[:cut]
}

// borders builds the outer bar ("+-----+") and the row separator ("|--+--|").
func borders(widths []int) (bar, sep string) {
	total := 0
	var b strings.Builder
	b.WriteString(_boxEdge)
	for j, w := range widths {
		total += w
		if j > 0 {
			b.WriteString(_boxCorner)
		}
		b.WriteString(strings.Repeat(_boxFill, w+_cellMargin))
	}
	b.WriteString(_boxEdge + _lineEnd)
	// Outer bar: one '+' at each end, dashes over every cell, margin and inner boundary.
	bar = _boxCorner + strings.Repeat(_boxFill, total+3*len(widths)-1) + _boxCorner + _lineEnd

	return bar, b.String()
}

// writeTable renders m into w and returns the byte count.
func (m *Matrix) writeTable(w io.Writer, format string) (int64, error) {
	m.opts.debugf("printing matrix @ %p; rows=%d, cols=%d", m, m.rows, m.cols)
	cells, widths, err := m.renderCells(format)
	if err != nil {
		return 0, err
	}
	bar, sep := borders(widths)

	var (
		n    int64
		line strings.Builder
	)
	emit := func(s string) error {
		k, werr := io.WriteString(w, s)
		n += int64(k)
		if werr != nil {
			return fmt.Errorf("%w: %w", ErrStream, werr)
		}
		return nil
	}

	if err = emit(bar); err != nil {
		return n, err
	}
	for i, row := range cells {
		line.Reset()
		for j, cell := range row {
			line.WriteString(_cellOpen)
			line.WriteString(strings.Repeat(" ", widths[j]-uniseg.StringWidth(cell)))
			line.WriteString(cell)
			line.WriteString(_cellClose)
		}
		line.WriteString(_boxEdge + _lineEnd)
		if err = emit(line.String()); err != nil {
			return n, err
		}
		if i < len(cells)-1 {
			if err = emit(sep); err != nil {
				return n, err
			}
		}
	}
	if err = emit(bar); err != nil {
		return n, err
	}

	return n, nil
}
