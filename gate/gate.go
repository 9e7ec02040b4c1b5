// Package gate defines the closed set of single-qubit gate kinds and the
// 2x2 matrices they synthesize to, plus the computational-basis projectors
// used to build controlled gates and measurements.
package gate

import (
	"fmt"
	"math"
	"math/cmplx"

	"qpusim/matrix"
)

// Kind identifies a single-qubit gate. The set is closed: every consumer
// resolves a Kind with an exhaustive switch, never by string comparison.
type Kind int

const (
	I Kind = iota // identity
	X             // Pauli-X
	Y             // Pauli-Y
	Z             // Pauli-Z
	H             // Hadamard
	S             // phase
	T             // pi/8
	P             // parameterized phase, uses Theta
	RX            // X rotation, uses Theta
	RY            // Y rotation, uses Theta
	RZ            // Z rotation, uses Theta
	U             // general unitary, uses Theta, Phi, Lambda
)

// Angles is the rotation-angle payload for parameterized kinds. Slots not
// used by a kind are ignored.
type Angles struct {
	Theta, Phi, Lambda float64
}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case H:
		return "H"
	case S:
		return "S"
	case T:
		return "T"
	case P:
		return "P"
	case RX:
		return "RX"
	case RY:
		return "RY"
	case RZ:
		return "RZ"
	case U:
		return "U"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Parameterized reports whether the kind consumes angles.
func (k Kind) Parameterized() bool {
	switch k {
	case P, RX, RY, RZ, U:
		return true
	}
	return false
}

// Matrix returns the 2x2 unitary for the kind. Angles are read only for
// parameterized kinds.
func (k Kind) Matrix(a Angles) matrix.Matrix {
	switch k {
	case I:
		return matrix.Identity(2)
	case X:
		return matrix.FromRows([][]complex128{
			{0, 1},
			{1, 0},
		})
	case Y:
		return matrix.FromRows([][]complex128{
			{0, -1i},
			{1i, 0},
		})
	case Z:
		return matrix.FromRows([][]complex128{
			{1, 0},
			{0, -1},
		})
	case H:
		f := complex(1/math.Sqrt2, 0)
		return matrix.FromRows([][]complex128{
			{f, f},
			{f, -f},
		})
	case S:
		return matrix.FromRows([][]complex128{
			{1, 0},
			{0, 1i},
		})
	case T:
		return matrix.FromRows([][]complex128{
			{1, 0},
			{0, cmplx.Exp(complex(0, math.Pi/4))},
		})
	case P:
		return matrix.FromRows([][]complex128{
			{1, 0},
			{0, cmplx.Exp(complex(0, a.Theta))},
		})
	case RX:
		c := complex(math.Cos(a.Theta/2), 0)
		js := complex(0, -math.Sin(a.Theta/2))
		return matrix.FromRows([][]complex128{
			{c, js},
			{js, c},
		})
	case RY:
		c := complex(math.Cos(a.Theta/2), 0)
		s := complex(math.Sin(a.Theta/2), 0)
		return matrix.FromRows([][]complex128{
			{c, -s},
			{s, c},
		})
	case RZ:
		e := cmplx.Exp(complex(0, a.Theta/2))
		return matrix.FromRows([][]complex128{
			{cmplx.Conj(e), 0},
			{0, e},
		})
	case U:
		c := complex(math.Cos(a.Theta/2), 0)
		s := complex(math.Sin(a.Theta/2), 0)
		return matrix.FromRows([][]complex128{
			{c, -cmplx.Exp(complex(0, a.Lambda)) * s},
			{cmplx.Exp(complex(0, a.Phi)) * s, cmplx.Exp(complex(0, a.Phi+a.Lambda)) * c},
		})
	}
	panic(fmt.Sprintf("gate: unknown kind %d", int(k)))
}

// Proj0 returns the |0⟩⟨0| projector.
func Proj0() matrix.Matrix {
	return matrix.FromRows([][]complex128{
		{1, 0},
		{0, 0},
	})
}

// Proj1 returns the |1⟩⟨1| projector.
func Proj1() matrix.Matrix {
	return matrix.FromRows([][]complex128{
		{0, 0},
		{0, 1},
	})
}
