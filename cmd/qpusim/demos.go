package main

import (
	"qpusim/algorithm"
	"qpusim/circuit"
)

// demo is one runnable preset. Builders take the phase angle from the
// phase input; demos that ignore it leave needsPhase unset.
type demo struct {
	name       string
	desc       string
	needsPhase bool
	build      func(phase float64) *circuit.Circuit
}

var demos = []demo{
	{
		name: "Bell pair",
		desc: "Entangle two qubits; outcomes are perfectly correlated",
		build: func(float64) *circuit.Circuit {
			c := circuit.New(2)
			c.H(0).CX([]int{0}, 1).Measure(0, 1)
			return c
		},
	},
	{
		name: "GHZ state",
		desc: "Three-qubit entanglement; all bits agree",
		build: func(float64) *circuit.Circuit {
			c := circuit.New(3)
			c.H(0).CX([]int{0}, 1).CX([]int{1}, 2).Measure(0, 1, 2)
			return c
		},
	},
	{
		name: "Deutsch-Jozsa (constant)",
		desc: "Constant oracle; inputs always measure 0",
		build: func(float64) *circuit.Circuit {
			c := circuit.New(4)
			algorithm.DeutschJozsa(c, algorithm.ConstantOracle(1))
			c.Measure(0, 1, 2)
			return c
		},
	},
	{
		name: "Deutsch-Jozsa (balanced)",
		desc: "Balanced oracle; inputs always measure 1",
		build: func(float64) *circuit.Circuit {
			c := circuit.New(4)
			algorithm.DeutschJozsa(c, algorithm.BalancedOracle(0))
			c.Measure(0, 1, 2)
			return c
		},
	},
	{
		name: "Fourier round trip",
		desc: "QFT then IQFT returns the prepared basis state",
		build: func(float64) *circuit.Circuit {
			c := circuit.New(3)
			c.X(0)
			algorithm.QFT(c, 0)
			algorithm.IQFT(c, 0)
			c.Measure(0, 1, 2)
			return c
		},
	},
	{
		name:       "Phase estimation",
		desc:       "Estimate the phase of P(λ) with three precision qubits",
		needsPhase: true,
		build: func(phase float64) *circuit.Circuit {
			c := circuit.New(4)
			algorithm.QPE(c, phase, 3)
			c.Measure(0, 1, 2)
			return c
		},
	},
	{
		name: "Grover search",
		desc: "Amplify the marked states |101⟩ and |110⟩",
		build: func(float64) *circuit.Circuit {
			c := circuit.New(3)
			algorithm.Grover(c, func(c *circuit.Circuit) {
				c.CZ([]int{0}, 2)
				c.CZ([]int{1}, 2)
			}, 1)
			c.Measure(0, 1, 2)
			return c
		},
	},
}
