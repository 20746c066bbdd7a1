// core/compose/table.go
package compose

import "github.com/kjemmett/TARGet/core/barcode"

// Table is the upper-triangular m×m array of best barcodes per
// segregating-site interval. Cells with i >= j are unused and stay empty.
// Exclusively owned by the composer while it runs; read-only afterwards.
type Table struct {
	m     int
	cells [][]barcode.Barcode
}

// NewTable allocates an empty m×m table.
func NewTable(m int) *Table {
	cells := make([][]barcode.Barcode, m)
	for i := range cells {
		cells[i] = make([]barcode.Barcode, m)
	}
	return &Table{m: m, cells: cells}
}

// Len returns the number of segregating sites the table is indexed by.
func (t *Table) Len() int { return t.m }

// At returns the barcode for interval [i, j]. Out-of-order or out-of-range
// indices yield the empty barcode.
func (t *Table) At(i, j int) barcode.Barcode {
	if i < 0 || j >= t.m || i >= j {
		return barcode.Barcode{}
	}
	return t.cells[i][j]
}

// Set stores the barcode for interval [i, j].
func (t *Table) Set(i, j int, b barcode.Barcode) { t.cells[i][j] = b }

// Merge folds a candidate into cell [i, j] via BestOf, used while seeding
// the raw table from out-of-order worker results.
func (t *Table) Merge(i, j int, b barcode.Barcode) {
	t.cells[i][j] = barcode.BestOf([]barcode.Barcode{t.cells[i][j], b})
}

// Final returns the genome-spanning cell [0, m-1].
func (t *Table) Final() barcode.Barcode { return t.At(0, t.m-1) }
