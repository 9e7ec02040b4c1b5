package circuit

import (
	"qpusim/gate"
	"qpusim/matrix"
)

// Operator synthesis for one grid row.
//
// The tensor order is fixed project-wide: iterating columns 0..n-1, each
// factor is composed on the left, so the row operator is
// M(n-1) ⊗ … ⊗ M(0) and qubit q addresses bit 1<<q of the basis index.

// rowOperator synthesizes the full 2^n operator for a grid row. ok is
// false for barrier rows, which have no operator. Measurement rows are not
// handled here; callers route them through measureQubit.
func rowOperator(row []Cell) (op matrix.Matrix, ok bool) {
	switch {
	case rowHas(row, CellBarrier):
		return matrix.Matrix{}, false
	case rowHas(row, CellControl):
		return controlledOperator(row), true
	case rowHas(row, CellSwap):
		return swapOperator(row), true
	default:
		return plainOperator(row), true
	}
}

// controlledOperator sums one tensor product per combination of control
// outcomes. Each control wire contributes the projector matching its bit
// in the combination; the target contributes its gate only in the
// all-ones combination, identity otherwise. The sum is exactly "apply the
// gate iff every control reads 1" because the projectors are orthogonal
// and idempotent. Any number of controls is handled by the same
// construction.
func controlledOperator(row []Cell) matrix.Matrix {
	numControls := 0
	for _, cell := range row {
		if cell.Op == CellControl {
			numControls++
		}
	}
	combos := 1 << numControls
	allOnes := combos - 1

	terms := make([]matrix.Matrix, combos)
	for i := range terms {
		terms[i] = matrix.Scalar(1)
	}

	id := matrix.Identity(2)
	p0, p1 := gate.Proj0(), gate.Proj1()
	controlNum := 0
	for _, cell := range row {
		switch cell.Op {
		case CellControl:
			for i := range terms {
				if (i>>controlNum)&1 == 0 {
					terms[i] = matrix.Kron(p0, terms[i])
				} else {
					terms[i] = matrix.Kron(p1, terms[i])
				}
			}
			controlNum++
		case CellGate:
			g := cell.Kind.Matrix(cell.Angles)
			for i := range terms {
				if i == allOnes {
					terms[i] = matrix.Kron(g, terms[i])
				} else {
					terms[i] = matrix.Kron(id, terms[i])
				}
			}
		default:
			for i := range terms {
				terms[i] = matrix.Kron(id, terms[i])
			}
		}
	}

	sum := terms[0]
	for _, term := range terms[1:] {
		sum = matrix.Add(sum, term)
	}
	return sum
}

// swapOperator builds the two-qubit SWAP via its Pauli decomposition
// ½(I + X⊗X + Y⊗Y + Z⊗Z), with identity on every uninvolved wire.
func swapOperator(row []Cell) matrix.Matrix {
	id := matrix.Identity(2)
	kx, ky, kz := matrix.Scalar(1), matrix.Scalar(1), matrix.Scalar(1)
	for _, cell := range row {
		if cell.Op == CellSwap {
			kx = matrix.Kron(gate.X.Matrix(gate.Angles{}), kx)
			ky = matrix.Kron(gate.Y.Matrix(gate.Angles{}), ky)
			kz = matrix.Kron(gate.Z.Matrix(gate.Angles{}), kz)
		} else {
			kx = matrix.Kron(id, kx)
			ky = matrix.Kron(id, ky)
			kz = matrix.Kron(id, kz)
		}
	}
	sum := matrix.Add(matrix.Identity(kx.Rows), matrix.Add(kx, matrix.Add(ky, kz)))
	return matrix.Scale(0.5, sum)
}

// plainOperator is the ordinary tensor product of a row with no controls
// or SWAPs: each cell contributes its gate matrix or identity.
func plainOperator(row []Cell) matrix.Matrix {
	id := matrix.Identity(2)
	acc := matrix.Scalar(1)
	for _, cell := range row {
		if cell.Op == CellGate {
			acc = matrix.Kron(cell.Kind.Matrix(cell.Angles), acc)
		} else {
			acc = matrix.Kron(id, acc)
		}
	}
	return acc
}
