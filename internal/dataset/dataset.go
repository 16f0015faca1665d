package dataset

import (
	"fmt"
	"slices"
	"strings"
)

// Dataset is the in-memory table built from a loaded CSV file. It is
// read-only for the remainder of the request that loaded it and is not
// persisted between invocations.
type Dataset struct {
	Path    string
	Columns []string
	Rows    [][]string
}

// Shape returns the row and column counts.
func (d *Dataset) Shape() (rows, cols int) {
	return len(d.Rows), len(d.Columns)
}

// HasColumn reports whether the dataset has a column with the given name.
func (d *Dataset) HasColumn(name string) bool {
	return slices.Contains(d.Columns, name)
}

// Summary renders a compact schema-plus-sample representation for prompt
// embedding: column list, row count, and up to maxRows sample rows. Raw
// dumps of the whole table would blow the model context on large files.
func (d *Dataset) Summary(maxRows int) string {
	var b strings.Builder

	rows, cols := d.Shape()
	fmt.Fprintf(&b, "Columns (%d): %s\n", cols, strings.Join(d.Columns, ", "))
	fmt.Fprintf(&b, "Rows: %d\n", rows)

	if maxRows > len(d.Rows) {
		maxRows = len(d.Rows)
	}
	if maxRows > 0 {
		b.WriteString("Sample rows:\n")
		b.WriteString(strings.Join(d.Columns, ","))
		b.WriteString("\n")
		for _, row := range d.Rows[:maxRows] {
			b.WriteString(strings.Join(row, ","))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
