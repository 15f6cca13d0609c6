// Package keymap holds the layer mapping tables that give each matrix
// position its key identity, and resolves which layer is active for a cycle.
package keymap

import (
	"github.com/Alia5/KEYPER/keycode"
	"github.com/Alia5/KEYPER/matrix"
	"github.com/Alia5/KEYPER/report"
)

// Pos is a fixed (column, row) matrix coordinate.
type Pos struct {
	Col int
	Row int
}

// Compiled-in special positions. FnPos selects the FN layer while held;
// BootloaderPos held at power-on enters the bootloader. Neither is
// runtime-configurable, and both map to Empty in every layer table so the
// encoder never emits them as keys.
var (
	FnPos         = Pos{Col: 0, Row: 5}
	BootloaderPos = Pos{Col: 0, Row: 0}
)

// Layer is a matrix-shaped table of key identities. Layers are immutable
// once built and shared by every scan cycle.
type Layer [matrix.Cols][matrix.Rows]keycode.KeyCode

// Encode walks the debounced matrix under this layer and produces one input
// report. It is a pure function of its inputs: cells are visited
// column-major in scan order and folded into the report via Press.
func (l *Layer) Encode(m matrix.Debounced) report.Input {
	var rep report.Input
	for c := 0; c < matrix.Cols; c++ {
		for r := 0; r < matrix.Rows; r++ {
			if m[c][r] {
				rep.Press(l[c][r])
			}
		}
	}
	return rep
}

// Keymap is the pair of layers a keyboard carries: the normal table and the
// alternate table selected while the FN key is held.
type Keymap struct {
	Normal Layer
	FN     Layer
}

// Active returns the layer for this cycle. The decision is purely a
// function of the current FN cell: no latching, no toggle. Releasing FN
// while other keys remain held reverts them to their normal identities on
// the very next cycle.
func (km *Keymap) Active(m matrix.Debounced) *Layer {
	if m[FnPos.Col][FnPos.Row] {
		return &km.FN
	}
	return &km.Normal
}

// layerFromRows transposes a row-major literal (readable as a physical
// keyboard, top row first) into the column-major Layer the scan uses.
func layerFromRows(rows [matrix.Rows][matrix.Cols]keycode.KeyCode) Layer {
	var l Layer
	for r := 0; r < matrix.Rows; r++ {
		for c := 0; c < matrix.Cols; c++ {
			l[c][r] = rows[r][c]
		}
	}
	return l
}
