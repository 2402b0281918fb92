// SPDX-License-Identifier: MIT

// Package matrix - framed debug rendering.
//
// Format (one title line, then one line per row):
//
//	<title>
//	| 1 | | 2 |
//	| 3 | | 4 |
//
// Each cell is written as "| <v> | " with v in %v formatting, so every row
// line ends with a trailing space before the newline (not shown above).

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const (
	_descCellOpen  = "| "
	_descCellClose = " | "
	_descNewline   = "\n"
)

// Describe writes title followed by one framed line per row to w.
// The matrix is only read; it stays usable afterwards.
// Returns the first write error, if any.
// Complexity: O(r*c).
func (m *Dense) Describe(w io.Writer, title string) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(title + _descNewline); err != nil {
		return fmt.Errorf("Describe: %w", err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if _, err := fmt.Fprintf(bw, "%s%v%s", _descCellOpen, m.data[base+j], _descCellClose); err != nil {
				return fmt.Errorf("Describe: %w", err)
			}
		}
		if _, err := bw.WriteString(_descNewline); err != nil {
			return fmt.Errorf("Describe: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Describe: %w", err)
	}

	return nil
}

// Print is Describe on os.Stdout; write errors are dropped.
func (m *Dense) Print(title string) {
	_ = m.Describe(os.Stdout, title)
}
