package circuit

import "qpusim/gate"

// CellOp classifies what occupies one grid cell.
type CellOp int

const (
	CellIdentity CellOp = iota // idle wire
	CellGate                   // single-qubit gate (possibly the target of controls)
	CellControl                // control dot of a controlled gate
	CellSwap                   // one end of a SWAP
	CellMeasure                // computational-basis measurement
	CellBarrier                // scheduling fence
)

// Cell is one entry of the compiled grid: the effective tag for a qubit at
// a circuit position, with angles for parameterized gates.
type Cell struct {
	Op     CellOp
	Kind   gate.Kind
	Angles gate.Angles
}

// Depth returns the maximum scheduled position across all wires.
func (c *Circuit) Depth() int {
	depth := 0
	for q := range c.qubits {
		w := &c.qubits[q]
		for _, g := range w.gates {
			if g.pos > depth {
				depth = g.pos
			}
		}
		for _, cn := range w.conns {
			if cn.pos > depth {
				depth = cn.pos
			}
		}
	}
	return depth
}

// Grid compiles the per-wire records into a position-major grid: one row
// per circuit position, one cell per qubit column, identity for idle cells.
// Recorded positions are 1-indexed; row indices are 0-indexed. The compile
// is pure: it reads the wire records and builds a fresh grid every call.
func (c *Circuit) Grid() [][]Cell {
	depth := c.Depth()
	grid := make([][]Cell, depth)
	for i := range grid {
		row := make([]Cell, c.numQubits)
		for q := range row {
			row[q] = Cell{Op: CellIdentity, Kind: gate.I}
		}
		grid[i] = row
	}

	for q := range c.qubits {
		w := &c.qubits[q]
		for _, g := range w.gates {
			cell := &grid[g.pos-1][q]
			switch g.tag {
			case tagGate:
				*cell = Cell{Op: CellGate, Kind: g.kind, Angles: g.angles}
			case tagSwap:
				cell.Op = CellSwap
			case tagMeasure:
				cell.Op = CellMeasure
			case tagBarrier:
				cell.Op = CellBarrier
			}
		}
		for _, cn := range w.conns {
			cell := &grid[cn.pos-1][q]
			switch cn.kind {
			case connControl:
				cell.Op = CellControl
			case connSwap:
				cell.Op = CellSwap
			case connBarrier:
				cell.Op = CellBarrier
			}
		}
	}
	return grid
}

// rowHas reports whether any cell in the row carries the given op.
func rowHas(row []Cell, op CellOp) bool {
	for _, cell := range row {
		if cell.Op == op {
			return true
		}
	}
	return false
}

// measureColumn returns the column measured in this row, or -1. The
// scheduler never places two measurements at one position: a measurement
// reserves every qubit wire from its target upward, so a second one lands
// on a later position.
func measureColumn(row []Cell) int {
	for q, cell := range row {
		if cell.Op == CellMeasure {
			return q
		}
	}
	return -1
}
