// Package algorithm provides preprogrammed quantum algorithms built
// entirely from the circuit package's public gate operations: Deutsch-Jozsa,
// the quantum Fourier transform and its inverse, quantum phase estimation,
// and Grover search. None of them add execution semantics of their own.
package algorithm

import (
	"math"

	"qpusim/circuit"
)

// Oracle appends an algorithm-specific marking function to a circuit.
type Oracle func(c *circuit.Circuit)

// ConstantOracle returns a Deutsch-Jozsa oracle whose output is the given
// constant for every input. With it, every input qubit measures 0.
func ConstantOracle(output int) Oracle {
	return func(c *circuit.Circuit) {
		if output == 1 {
			c.X(c.NumQubits() - 1)
		}
	}
}

// BalancedOracle returns a Deutsch-Jozsa oracle that outputs 0 for half of
// all inputs and 1 for the other half. inputFlips selects which input
// qubits are inverted before the controlled-X cascade, changing which half
// maps where. With it, every input qubit measures 1.
func BalancedOracle(inputFlips ...int) Oracle {
	return func(c *circuit.Circuit) {
		n := c.NumQubits()
		if len(inputFlips) > 0 {
			c.X(inputFlips...)
		}
		c.Barrier()
		for control := 0; control < n-1; control++ {
			c.CX([]int{control}, n-1)
		}
		c.Barrier()
		if len(inputFlips) > 0 {
			c.X(inputFlips...)
		}
	}
}

// DeutschJozsa decides whether the oracle is constant or balanced in a
// single evaluation. Qubits 0..n-2 are the oracle inputs and qubit n-1 its
// output. After the algorithm, measuring the input qubits yields all zeros
// for a constant oracle and all ones for a balanced one, deterministically.
func DeutschJozsa(c *circuit.Circuit, oracle Oracle) {
	n := c.NumQubits()
	c.Barrier()

	// Inputs to |+⟩, output to |−⟩.
	c.X(n - 1)
	c.H(qubitRange(n)...)

	oracle(c)

	// Back to the computational basis on the inputs.
	c.H(qubitRange(n - 1)...)
	c.Barrier()
}

// QFT applies the quantum Fourier transform to qubits 0..numQubits-1,
// least significant first. numQubits <= 0 selects every qubit in the
// circuit.
func QFT(c *circuit.Circuit, numQubits int) {
	m := span(c, numQubits)
	for qubit := m - 1; qubit >= 0; qubit-- {
		c.H(qubit)
		for control := 0; control < qubit; control++ {
			c.CP([]int{control}, qubit, math.Pi/math.Exp2(float64(qubit-control)))
		}
	}
	for qubit := 0; qubit < m/2; qubit++ {
		c.SWAP(qubit, m-qubit-1)
	}
}

// IQFT applies the inverse quantum Fourier transform to qubits
// 0..numQubits-1. It is the exact reversal of QFT: the swap network first,
// then the negated controlled phases and Hadamards in opposite order.
func IQFT(c *circuit.Circuit, numQubits int) {
	m := span(c, numQubits)
	for qubit := 0; qubit < m/2; qubit++ {
		c.SWAP(qubit, m-qubit-1)
	}
	for qubit := 0; qubit < m; qubit++ {
		for control := qubit - 1; control >= 0; control-- {
			c.CP([]int{control}, qubit, -math.Pi/math.Exp2(float64(qubit-control)))
		}
		c.H(qubit)
	}
}

// QPE estimates theta in U|psi⟩ = e^(i·lambda)|psi⟩ = e^(2πi·theta)|psi⟩
// for the phase operator P(lambda). Qubits 0..precisionQubits-1 form the
// precision register; the next qubit carries |psi⟩, prepared in |1⟩.
// After the inverse transform the precision register reads the best
// precisionQubits-bit approximation of theta·2^precisionQubits, qubit j
// holding bit j. precisionQubits <= 0 selects all but the last qubit.
func QPE(c *circuit.Circuit, lambda float64, precisionQubits int) {
	p := precisionQubits
	if p <= 0 {
		p = c.NumQubits() - 1
	}
	psi := p

	c.X(psi)
	c.H(qubitRange(p)...)
	for j := 0; j < p; j++ {
		// Qubit j controls 2^j applications of the phase, folded into one.
		c.CP([]int{j}, psi, lambda*math.Exp2(float64(j)))
	}
	IQFT(c, p)
}

// Grover amplifies the amplitude of the states marked by the oracle. The
// oracle must flip the phase of the marked states. iterations < 1 selects
// the usual round(π/4·√(2^n)) for a single marked state.
func Grover(c *circuit.Circuit, oracle Oracle, iterations int) {
	n := c.NumQubits()
	if iterations < 1 {
		iterations = int(math.Round(math.Pi / 4 * math.Sqrt(math.Exp2(float64(n)))))
		if iterations < 1 {
			iterations = 1
		}
	}

	c.H(qubitRange(n)...)
	for i := 0; i < iterations; i++ {
		c.Barrier()
		oracle(c)
		c.Barrier()
		diffuse(c)
	}
}

// diffuse reflects the state about the uniform superposition.
func diffuse(c *circuit.Circuit) {
	n := c.NumQubits()
	all := qubitRange(n)
	c.H(all...)
	c.X(all...)
	if n == 1 {
		c.Z(0)
	} else {
		c.CZ(qubitRange(n-1), n-1)
	}
	c.X(all...)
	c.H(all...)
}

func qubitRange(n int) []int {
	qubits := make([]int, n)
	for i := range qubits {
		qubits[i] = i
	}
	return qubits
}

func span(c *circuit.Circuit, numQubits int) int {
	if numQubits <= 0 {
		return c.NumQubits()
	}
	return numQubits
}
