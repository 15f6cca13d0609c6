// Package matrix models the physical switch matrix and the electrical scan
// that samples it. The matrix is addressed as (column, row), column-major,
// matching the scan order.
package matrix

// Matrix geometry. These are compile-time constants shared by the scanner,
// the debounce filter and every layer mapping table; the array types below
// make a dimension mismatch a build failure rather than a runtime surprise.
const (
	Cols = 14
	Rows = 6
)

// Raw is one unfiltered sample of the full matrix, produced fresh every scan
// cycle and never retained. Raw samples must not be used for report
// generation; they exist only to feed the debounce filter (the one exception
// is the power-on bootloader check, which runs before the loop starts).
type Raw [Cols][Rows]bool

// Debounced is the stabilized matrix for one cycle: cell (c, r) is true when
// the switch at that intersection is currently considered closed. It is the
// only matrix representation report logic may act on.
type Debounced [Cols][Rows]bool

// Debouncer is the temporal filter collaborator. It receives one raw sample
// per cycle and returns the stabilized matrix, owning whatever per-key state
// it needs between cycles.
type Debouncer interface {
	Update(raw Raw) Debounced
}
