package circuit

import (
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"qpusim/gate"
	"qpusim/matrix"
)

// Result is the record of one multi-shot execution.
type Result struct {
	ID       string         // run identifier
	Shots    int            // number of independent trials
	Outcomes []string       // per-shot classical readout, "|b(n-1)…b(0)>"
	Counts   map[string]int // outcome frequency table
}

// Execute runs the circuit for the given number of shots. Each shot resets
// the state vector to |0…0⟩, applies the compiled grid row by row, and
// reads the classical bits into an outcome string. The circuit retains the
// collapsed state and classical bits of the final shot.
func (c *Circuit) Execute(shots int) (*Result, error) {
	if shots < 1 {
		return nil, ErrNoShots
	}

	grid := c.Grid()
	clbits := make([]int, c.numQubits)
	outcomes := make([]string, shots)
	for shot := range outcomes {
		copy(c.state, c.initial)
		for i := range clbits {
			clbits[i] = 0
		}
		outcomes[shot] = runGrid(grid, c.state, clbits, c.rng)
	}
	for i, b := range clbits {
		c.clbits[i].state = b
	}

	return newResult(shots, outcomes), nil
}

// ExecuteParallel distributes the shot loop over the given number of
// workers. Shots are independent trials: every worker owns a private state
// vector, classical bits, and random stream, while the compiled grid is
// shared read-only. workers < 1 selects one worker per CPU. Unlike
// Execute, the circuit's own state vector is left untouched.
func (c *Circuit) ExecuteParallel(shots, workers int) (*Result, error) {
	if shots < 1 {
		return nil, ErrNoShots
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > shots {
		workers = shots
	}

	grid := c.Grid()
	outcomes := make([]string, shots)

	var g errgroup.Group
	per, rem := shots/workers, shots%workers
	start := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < rem {
			count++
		}
		lo, hi := start, start+count
		start = hi
		seed1, seed2 := c.rng.Uint64(), c.rng.Uint64()
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed1, seed2))
			state := make([]complex128, len(c.initial))
			clbits := make([]int, c.numQubits)
			for i := lo; i < hi; i++ {
				copy(state, c.initial)
				for j := range clbits {
					clbits[j] = 0
				}
				outcomes[i] = runGrid(grid, state, clbits, rng)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newResult(shots, outcomes), nil
}

// Run executes the circuit and returns the per-shot outcomes. It panics on
// an invalid shot count; use Execute to handle that as an error.
func (c *Circuit) Run(shots int) []string {
	res, err := c.Execute(shots)
	if err != nil {
		panic(err)
	}
	return res.Outcomes
}

func newResult(shots int, outcomes []string) *Result {
	counts := make(map[string]int, len(outcomes))
	for _, o := range outcomes {
		counts[o]++
	}
	return &Result{
		ID:       uuid.NewString(),
		Shots:    shots,
		Outcomes: outcomes,
		Counts:   counts,
	}
}

// runGrid executes one shot: rows in position order, barrier rows skipped,
// measurement rows sampled, all other rows applied as synthesized
// operators. Returns the classical readout with bit 0 rightmost.
func runGrid(grid [][]Cell, state []complex128, clbits []int, rng *rand.Rand) string {
	for _, row := range grid {
		if rowHas(row, CellBarrier) {
			continue
		}
		if q := measureColumn(row); q >= 0 {
			clbits[q] = measureQubit(state, len(row), q, rng)
			continue
		}
		op, ok := rowOperator(row)
		if !ok {
			continue
		}
		copy(state, op.MulVec(state))
	}

	var sb strings.Builder
	sb.WriteByte('|')
	for i := len(clbits) - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(clbits[i]))
	}
	sb.WriteByte('>')
	return sb.String()
}

// measureQubit projects the state onto the |0⟩ and |1⟩ branches of the
// target wire, samples an outcome by the Born rule, and collapses the
// state in place to the normalized branch. Sampling a branch with zero
// probability means the state lost normalization upstream, which is a
// fatal invariant violation.
func measureQubit(state []complex128, n, target int, rng *rand.Rand) int {
	id := matrix.Identity(2)
	k0, k1 := matrix.Scalar(1), matrix.Scalar(1)
	for q := 0; q < n; q++ {
		if q == target {
			k0 = matrix.Kron(gate.Proj0(), k0)
			k1 = matrix.Kron(gate.Proj1(), k1)
		} else {
			k0 = matrix.Kron(id, k0)
			k1 = matrix.Kron(id, k1)
		}
	}

	s0 := k0.MulVec(state)
	p0 := real(matrix.Dot(s0, s0))
	s1 := k1.MulVec(state)
	p1 := real(matrix.Dot(s1, s1))

	if rng.Float64() < p0 {
		if p0 <= 0 {
			panic(fmt.Sprintf("circuit: sampled zero-probability |0⟩ branch on qubit %d", target))
		}
		renormalize(state, s0, p0)
		return 0
	}
	if p1 <= 0 {
		panic(fmt.Sprintf("circuit: sampled zero-probability |1⟩ branch on qubit %d", target))
	}
	renormalize(state, s1, p1)
	return 1
}

func renormalize(dst, branch []complex128, prob float64) {
	norm := complex(math.Sqrt(prob), 0)
	for i := range branch {
		dst[i] = branch[i] / norm
	}
}
