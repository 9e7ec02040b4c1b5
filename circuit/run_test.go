package circuit

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"qpusim/gate"
	"qpusim/matrix"
)

func TestExecuteRejectsBadShotCount(t *testing.T) {
	c := New(1)
	c.H(0).Measure(0)

	_, err := c.Execute(0)
	require.ErrorIs(t, err, ErrNoShots)
	_, err = c.ExecuteParallel(-1, 4)
	require.ErrorIs(t, err, ErrNoShots)
	require.Panics(t, func() { c.Run(0) })
}

func TestRunDeterministicCircuit(t *testing.T) {
	c := New(2)
	c.X(0).Measure(0, 1)

	for _, outcome := range c.Run(16) {
		require.Equal(t, "|01>", outcome)
	}
}

func TestOutcomeStringBitOrder(t *testing.T) {
	c := New(3)
	c.X(2).Measure(0, 1, 2)

	// Qubit 2 reads 1; it prints leftmost inside the ket.
	require.Equal(t, "|100>", c.Run(1)[0])
}

func TestUnmeasuredQubitsReadZero(t *testing.T) {
	c := New(3)
	c.X(0, 1, 2).Measure(1)

	require.Equal(t, "|010>", c.Run(1)[0])
}

func TestHadamardMeasurementIsFair(t *testing.T) {
	c := New(1)
	c.H(0).Measure(0)
	c.Seed(7)

	res, err := c.Execute(10000)
	require.NoError(t, err)
	require.InDelta(t, 5000, res.Counts["|0>"], 200)
	require.Equal(t, res.Shots, res.Counts["|0>"]+res.Counts["|1>"])
}

func TestBellPairCorrelations(t *testing.T) {
	c := New(2)
	c.H(0).CX([]int{0}, 1).Measure(0, 1)
	c.Seed(21)

	res, err := c.Execute(4096)
	require.NoError(t, err)
	require.Zero(t, res.Counts["|01>"])
	require.Zero(t, res.Counts["|10>"])
	require.Greater(t, res.Counts["|00>"], 1500)
	require.Greater(t, res.Counts["|11>"], 1500)
}

func TestResultBookkeeping(t *testing.T) {
	c := New(2)
	c.H(0, 1).Measure(0, 1)

	res, err := c.Execute(250)
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)
	require.Len(t, res.Outcomes, 250)

	total := 0
	for _, n := range res.Counts {
		total += n
	}
	require.Equal(t, 250, total)

	second, err := c.Execute(10)
	require.NoError(t, err)
	require.NotEqual(t, res.ID, second.ID)
}

func TestExecuteCollapsesRetainedState(t *testing.T) {
	c := New(1)
	c.H(0).Measure(0)

	_, err := c.Execute(1)
	require.NoError(t, err)

	state := c.State()
	require.InDelta(t, 1, matrix.Norm(state), 1e-9)
	nonzero := 0
	for _, amp := range state {
		if cmplx.Abs(amp) > 1e-9 {
			nonzero++
		}
	}
	require.Equal(t, 1, nonzero)
}

func TestShotsAreIndependent(t *testing.T) {
	c := New(1)
	c.H(0).Measure(0)
	c.Seed(3)

	res, err := c.Execute(2000)
	require.NoError(t, err)
	// A stuck state would repeat the first outcome forever.
	require.Greater(t, res.Counts["|0>"], 0)
	require.Greater(t, res.Counts["|1>"], 0)
}

func TestExecuteParallelDeterministicCircuit(t *testing.T) {
	c := New(2)
	c.X(1).Measure(0, 1)

	res, err := c.ExecuteParallel(64, 8)
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 64)
	for _, outcome := range res.Outcomes {
		require.Equal(t, "|10>", outcome)
	}
}

func TestExecuteParallelMatchesSequentialDistribution(t *testing.T) {
	build := func() *Circuit {
		c := New(2)
		c.H(0).CX([]int{0}, 1).Measure(0, 1)
		c.Seed(11)
		return c
	}

	seq, err := build().Execute(4096)
	require.NoError(t, err)
	par, err := build().ExecuteParallel(4096, 4)
	require.NoError(t, err)

	for _, key := range []string{"|00>", "|11>"} {
		require.InDelta(t, seq.Counts[key], par.Counts[key], 400, key)
	}
	require.Zero(t, par.Counts["|01>"])
	require.Zero(t, par.Counts["|10>"])
}

func TestExecuteParallelMoreWorkersThanShots(t *testing.T) {
	c := New(1)
	c.X(0).Measure(0)

	res, err := c.ExecuteParallel(3, 16)
	require.NoError(t, err)
	require.Equal(t, 3, res.Counts["|1>"])
}

func TestMeasureQubitBranchProbabilities(t *testing.T) {
	// |+⟩ on a single qubit: both branches carry probability one half.
	c := New(1)
	c.H(0)
	op, _ := rowOperator(rowAt(c, 1))
	plus := op.MulVec(basisState(1, 0))

	rng := rand.New(rand.NewPCG(5, 0))
	zeros := 0
	for i := 0; i < 1000; i++ {
		state := make([]complex128, len(plus))
		copy(state, plus)
		bit := measureQubit(state, 1, 0, rng)
		require.InDelta(t, 1, matrix.Norm(state), 1e-9)
		require.InDelta(t, 1, cmplx.Abs(state[bit]), 1e-9)
		if bit == 0 {
			zeros++
		}
	}
	require.InDelta(t, 500, zeros, 100)
}

func TestBranchProbabilitiesSumToOne(t *testing.T) {
	// Prepare (H⊗H)|00⟩ and check ⟨s0,s0⟩ + ⟨s1,s1⟩ = 1 for each qubit.
	c := New(2)
	c.H(0, 1)
	op, _ := rowOperator(rowAt(c, 1))
	state := op.MulVec(basisState(2, 0))

	id := matrix.Identity(2)
	for target := 0; target < 2; target++ {
		k0, k1 := matrix.Scalar(1), matrix.Scalar(1)
		for q := 0; q < 2; q++ {
			if q == target {
				k0 = matrix.Kron(gate.Proj0(), k0)
				k1 = matrix.Kron(gate.Proj1(), k1)
			} else {
				k0 = matrix.Kron(id, k0)
				k1 = matrix.Kron(id, k1)
			}
		}
		s0, s1 := k0.MulVec(state), k1.MulVec(state)
		p0 := real(matrix.Dot(s0, s0))
		p1 := real(matrix.Dot(s1, s1))
		require.InDelta(t, 1, p0+p1, 1e-12, "qubit %d", target)
	}
}

func TestMeasureQubitCertainOutcome(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	for i := 0; i < 50; i++ {
		state := basisState(2, 0b10)
		require.Equal(t, 1, measureQubit(state, 2, 1, rng))
		require.Equal(t, 0, measureQubit(state, 2, 0, rng))
	}
}
