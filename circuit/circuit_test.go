package circuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func wirePositions(w *qubitWire) []int {
	var ps []int
	for _, g := range w.gates {
		ps = append(ps, g.pos)
	}
	for _, cn := range w.conns {
		ps = append(ps, cn.pos)
	}
	return ps
}

func TestNewPanicsOnZeroQubits(t *testing.T) {
	require.Panics(t, func() { New(0) })
	require.Panics(t, func() { New(-3) })
}

func TestNewStartsInGroundState(t *testing.T) {
	c := New(3)
	state := c.State()
	require.Len(t, state, 8)
	require.Equal(t, complex128(1), state[0])
	for _, amp := range state[1:] {
		require.Equal(t, complex128(0), amp)
	}
}

func TestSingleQubitGatesScheduleIndependently(t *testing.T) {
	c := New(3)
	c.H(0).H(0).X(1)

	require.Equal(t, []int{1, 2}, wirePositions(&c.qubits[0]))
	require.Equal(t, []int{1}, wirePositions(&c.qubits[1]))
	require.Empty(t, wirePositions(&c.qubits[2]))
	require.Equal(t, 3, c.qubits[0].earliest)
	require.Equal(t, 2, c.qubits[1].earliest)
	require.Equal(t, 1, c.qubits[2].earliest)
}

func TestVariadicTargetsScheduleInOrder(t *testing.T) {
	c := New(2)
	c.H(0, 1, 0)

	require.Equal(t, []int{1, 2}, wirePositions(&c.qubits[0]))
	require.Equal(t, []int{1}, wirePositions(&c.qubits[1]))
}

func TestControlledGateTakesMaxOverSpan(t *testing.T) {
	c := New(3)
	c.H(2).H(2)     // qubit 2 busy through position 2
	c.CX([]int{0}, 2)

	require.Equal(t, []int{3}, wirePositions(&c.qubits[0]))
	require.Equal(t, []int{1, 2, 3}, wirePositions(&c.qubits[2]))
}

func TestControlledGateReservesIntermediateWires(t *testing.T) {
	c := New(3)
	c.CX([]int{0}, 2)
	// Qubit 1 hosts nothing yet, but the control line crosses it.
	c.X(1)

	require.Equal(t, []int{2}, wirePositions(&c.qubits[1]))
}

func TestControlledGatePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(c *Circuit)
	}{
		{"no controls", func(c *Circuit) { c.CX(nil, 1) }},
		{"duplicate controls", func(c *Circuit) { c.CX([]int{0, 0}, 1) }},
		{"control equals target", func(c *Circuit) { c.CX([]int{1}, 1) }},
		{"control out of range", func(c *Circuit) { c.CX([]int{5}, 1) }},
		{"target out of range", func(c *Circuit) { c.CX([]int{0}, 9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, func() { tt.fn(New(3)) })
		})
	}
}

func TestGatePanicsOnBadTarget(t *testing.T) {
	require.Panics(t, func() { New(2).X(2) })
	require.Panics(t, func() { New(2).H(-1) })
	require.Panics(t, func() { New(2).SWAP(1, 1) })
	require.Panics(t, func() { New(2).SWAP(0, 4) })
	require.Panics(t, func() { New(2).Measure(3) })
}

func TestBarrierFencesAllWires(t *testing.T) {
	c := New(3)
	c.H(0).H(0) // qubit 0 busy through position 2
	c.Barrier() // lands at position 3
	c.X(2)

	require.Equal(t, []int{4}, wirePositions(&c.qubits[2]))
	for q := range c.qubits {
		require.Equal(t, 4, c.qubits[q].earliest, "qubit %d", q)
	}
}

func TestSchedulingIsMonotonicPerWire(t *testing.T) {
	c := New(4)
	c.H(0, 1, 2, 3)
	c.CX([]int{0}, 3)
	c.SWAP(1, 2)
	c.Barrier()
	c.RZ(0.5, 0, 2)
	c.CP([]int{1, 2}, 3, 0.25)
	c.Measure(0, 1, 2, 3)

	for q := range c.qubits {
		w := &c.qubits[q]
		last := 0
		for _, g := range w.gates {
			require.Greater(t, g.pos, last, "qubit %d", q)
			last = g.pos
		}
		require.Greater(t, w.earliest, last, "qubit %d", q)
	}
}

func TestMeasureAdvancesOnlySpannedWires(t *testing.T) {
	c := New(3)
	c.Measure(2)

	require.Equal(t, 1, c.qubits[0].earliest)
	require.Equal(t, 1, c.qubits[1].earliest)
	require.Equal(t, 2, c.qubits[2].earliest)
	require.Equal(t, 2, c.clbits[2].earliest)
	require.Equal(t, 1, c.clbits[0].earliest)
}

func TestMeasureSpansDownToLastQubit(t *testing.T) {
	c := New(3)
	c.Measure(2) // reserves qubit 2 through position 1
	c.Measure(0) // spans qubits 0..2, so it must land at position 2

	require.Equal(t, []int{2}, wirePositions(&c.qubits[0]))
	require.Equal(t, 3, c.qubits[1].earliest)
	require.Equal(t, 3, c.qubits[2].earliest)
}

func TestSeedMakesRunsReproducible(t *testing.T) {
	build := func() *Circuit {
		c := New(2)
		c.H(0, 1).Measure(0, 1)
		c.Seed(99)
		return c
	}
	a := build().Run(200)
	b := build().Run(200)
	require.Equal(t, a, b)
}
