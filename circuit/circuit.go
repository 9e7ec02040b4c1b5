// Package circuit builds and executes quantum circuits on a dense
// state-vector simulator. Gates are appended per wire and scheduled onto a
// shared timeline of positions; execution compiles the wire records into a
// position-major grid, synthesizes the full 2^n operator for each position,
// and samples classical outcomes over repeated shots.
package circuit

import (
	"fmt"
	"math/rand/v2"

	"qpusim/gate"
)

// opTag classifies a record hosted on a qubit wire.
type opTag int

const (
	tagGate opTag = iota
	tagSwap
	tagMeasure
	tagBarrier
)

// gateRecord is one operation hosted by a wire as its target.
type gateRecord struct {
	tag    opTag
	kind   gate.Kind
	angles gate.Angles
	pos    int
}

// connKind classifies a non-target role a wire plays in an operation.
type connKind int

const (
	connControl connKind = iota
	connSwap
	connBarrier
	connOutput // classical bit receiving a measurement
)

// connRecord is one non-target participation, pointing at the peer wire
// that hosts the operation.
type connRecord struct {
	kind connKind
	peer int
	pos  int
}

// qubitWire records every operation applied to one qubit, in append order.
// Positions start at 1 and strictly increase; earliest always exceeds the
// last recorded position.
type qubitWire struct {
	gates    []gateRecord
	conns    []connRecord
	earliest int
}

// clbitWire is a 1-bit storage cell receiving measurement outcomes. It is
// paired with the qubit of the same index.
type clbitWire struct {
	state    int
	conns    []connRecord
	earliest int
}

// Circuit owns a fixed set of qubit and classical-bit wires and the global
// state vector. Operations accumulate monotonically; the state vector is
// reset and evolved per shot during execution.
type Circuit struct {
	numQubits int
	qubits    []qubitWire
	clbits    []clbitWire
	initial   []complex128
	state     []complex128
	rng       *rand.Rand
}

// New creates a circuit with numQubits qubit wires, an equal number of
// classical-bit wires, and the state vector initialized to |0…0⟩.
func New(numQubits int) *Circuit {
	if numQubits < 1 {
		panic(fmt.Sprintf("circuit: need at least 1 qubit, got %d", numQubits))
	}
	dim := 1 << numQubits
	initial := make([]complex128, dim)
	initial[0] = 1
	c := &Circuit{
		numQubits: numQubits,
		qubits:    make([]qubitWire, numQubits),
		clbits:    make([]clbitWire, numQubits),
		initial:   initial,
		state:     make([]complex128, dim),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	copy(c.state, initial)
	for i := range c.qubits {
		c.qubits[i].earliest = 1
	}
	for i := range c.clbits {
		c.clbits[i].earliest = 1
	}
	return c
}

// NumQubits returns the number of qubit wires.
func (c *Circuit) NumQubits() int { return c.numQubits }

// Seed reseeds the measurement sampler for reproducible runs.
func (c *Circuit) Seed(seed uint64) {
	c.rng = rand.New(rand.NewPCG(seed, 0))
}

// State returns a copy of the current state vector. Between executions it
// holds the final collapsed state of the most recent shot.
func (c *Circuit) State() []complex128 {
	out := make([]complex128, len(c.state))
	copy(out, c.state)
	return out
}

func (c *Circuit) checkQubit(q int) {
	if q < 0 || q >= c.numQubits {
		panic(fmt.Sprintf("circuit: qubit index %d out of range [0,%d)", q, c.numQubits))
	}
}

// maxEarliest returns the earliest position at which an operation spanning
// qubits lo..hi (inclusive) can be scheduled.
func (c *Circuit) maxEarliest(lo, hi int) int {
	pos := 0
	for q := lo; q <= hi; q++ {
		if c.qubits[q].earliest > pos {
			pos = c.qubits[q].earliest
		}
	}
	return pos
}

// advance reserves positions up to and including pos on qubits lo..hi.
// Wires strictly between the participants are reserved too, so a later
// independent gate cannot be scheduled under a crossing control line.
func (c *Circuit) advance(lo, hi, pos int) {
	for q := lo; q <= hi; q++ {
		c.qubits[q].earliest = pos + 1
	}
}

// appendSingle schedules kind independently on each target wire.
func (c *Circuit) appendSingle(kind gate.Kind, angles gate.Angles, targets []int) {
	for _, t := range targets {
		c.checkQubit(t)
		w := &c.qubits[t]
		w.gates = append(w.gates, gateRecord{tag: tagGate, kind: kind, angles: angles, pos: w.earliest})
		w.earliest++
	}
}

// appendControlled schedules one controlled gate across the contiguous
// range spanned by the controls and the target.
func (c *Circuit) appendControlled(kind gate.Kind, angles gate.Angles, controls []int, target int) {
	if len(controls) == 0 {
		panic("circuit: controlled gate requires at least one control")
	}
	c.checkQubit(target)
	lo, hi := target, target
	seen := map[int]bool{target: true}
	for _, ctrl := range controls {
		c.checkQubit(ctrl)
		if seen[ctrl] {
			panic(fmt.Sprintf("circuit: wire %d used twice in controlled gate", ctrl))
		}
		seen[ctrl] = true
		if ctrl < lo {
			lo = ctrl
		}
		if ctrl > hi {
			hi = ctrl
		}
	}

	pos := c.maxEarliest(lo, hi)
	tw := &c.qubits[target]
	tw.gates = append(tw.gates, gateRecord{tag: tagGate, kind: kind, angles: angles, pos: pos})
	for _, ctrl := range controls {
		cw := &c.qubits[ctrl]
		cw.conns = append(cw.conns, connRecord{kind: connControl, peer: target, pos: pos})
	}
	c.advance(lo, hi, pos)
}

// X applies the Pauli-X gate to each target.
func (c *Circuit) X(targets ...int) *Circuit {
	c.appendSingle(gate.X, gate.Angles{}, targets)
	return c
}

// Y applies the Pauli-Y gate to each target.
func (c *Circuit) Y(targets ...int) *Circuit {
	c.appendSingle(gate.Y, gate.Angles{}, targets)
	return c
}

// Z applies the Pauli-Z gate to each target.
func (c *Circuit) Z(targets ...int) *Circuit {
	c.appendSingle(gate.Z, gate.Angles{}, targets)
	return c
}

// H applies the Hadamard gate to each target.
func (c *Circuit) H(targets ...int) *Circuit {
	c.appendSingle(gate.H, gate.Angles{}, targets)
	return c
}

// S applies the phase gate to each target.
func (c *Circuit) S(targets ...int) *Circuit {
	c.appendSingle(gate.S, gate.Angles{}, targets)
	return c
}

// T applies the pi/8 gate to each target.
func (c *Circuit) T(targets ...int) *Circuit {
	c.appendSingle(gate.T, gate.Angles{}, targets)
	return c
}

// P applies a phase rotation of theta to each target.
func (c *Circuit) P(theta float64, targets ...int) *Circuit {
	c.appendSingle(gate.P, gate.Angles{Theta: theta}, targets)
	return c
}

// RX applies an X rotation of theta to each target.
func (c *Circuit) RX(theta float64, targets ...int) *Circuit {
	c.appendSingle(gate.RX, gate.Angles{Theta: theta}, targets)
	return c
}

// RY applies a Y rotation of theta to each target.
func (c *Circuit) RY(theta float64, targets ...int) *Circuit {
	c.appendSingle(gate.RY, gate.Angles{Theta: theta}, targets)
	return c
}

// RZ applies a Z rotation of theta to each target.
func (c *Circuit) RZ(theta float64, targets ...int) *Circuit {
	c.appendSingle(gate.RZ, gate.Angles{Theta: theta}, targets)
	return c
}

// U applies the general single-qubit unitary U(theta, phi, lambda) to each
// target.
func (c *Circuit) U(theta, phi, lambda float64, targets ...int) *Circuit {
	c.appendSingle(gate.U, gate.Angles{Theta: theta, Phi: phi, Lambda: lambda}, targets)
	return c
}

// CX applies X to target when every control reads 1.
func (c *Circuit) CX(controls []int, target int) *Circuit {
	c.appendControlled(gate.X, gate.Angles{}, controls, target)
	return c
}

// CY applies Y to target when every control reads 1.
func (c *Circuit) CY(controls []int, target int) *Circuit {
	c.appendControlled(gate.Y, gate.Angles{}, controls, target)
	return c
}

// CZ applies Z to target when every control reads 1.
func (c *Circuit) CZ(controls []int, target int) *Circuit {
	c.appendControlled(gate.Z, gate.Angles{}, controls, target)
	return c
}

// CP applies a phase rotation of theta to target when every control reads 1.
func (c *Circuit) CP(controls []int, target int, theta float64) *Circuit {
	c.appendControlled(gate.P, gate.Angles{Theta: theta}, controls, target)
	return c
}

// CRX applies an X rotation of theta to target when every control reads 1.
func (c *Circuit) CRX(controls []int, target int, theta float64) *Circuit {
	c.appendControlled(gate.RX, gate.Angles{Theta: theta}, controls, target)
	return c
}

// CRY applies a Y rotation of theta to target when every control reads 1.
func (c *Circuit) CRY(controls []int, target int, theta float64) *Circuit {
	c.appendControlled(gate.RY, gate.Angles{Theta: theta}, controls, target)
	return c
}

// CRZ applies a Z rotation of theta to target when every control reads 1.
func (c *Circuit) CRZ(controls []int, target int, theta float64) *Circuit {
	c.appendControlled(gate.RZ, gate.Angles{Theta: theta}, controls, target)
	return c
}

// CU applies U(theta, phi, lambda) to target when every control reads 1.
func (c *Circuit) CU(controls []int, target int, theta, phi, lambda float64) *Circuit {
	c.appendControlled(gate.U, gate.Angles{Theta: theta, Phi: phi, Lambda: lambda}, controls, target)
	return c
}

// SWAP exchanges the states of wires a and b.
func (c *Circuit) SWAP(a, b int) *Circuit {
	c.checkQubit(a)
	c.checkQubit(b)
	if a == b {
		panic(fmt.Sprintf("circuit: SWAP needs two distinct wires, got %d twice", a))
	}
	lo, hi := min(a, b), max(a, b)
	pos := c.maxEarliest(lo, hi)
	c.qubits[b].gates = append(c.qubits[b].gates, gateRecord{tag: tagSwap, kind: gate.I, pos: pos})
	c.qubits[a].conns = append(c.qubits[a].conns, connRecord{kind: connSwap, peer: b, pos: pos})
	c.advance(lo, hi, pos)
	return c
}

// Barrier inserts a scheduling fence across every wire. It has no effect on
// the state vector: nothing appended afterwards can be scheduled at or
// before it.
func (c *Circuit) Barrier() *Circuit {
	pos := c.maxEarliest(0, c.numQubits-1)
	c.qubits[0].gates = append(c.qubits[0].gates, gateRecord{tag: tagBarrier, kind: gate.I, pos: pos})
	if c.numQubits > 1 {
		last := c.numQubits - 1
		c.qubits[last].conns = append(c.qubits[last].conns, connRecord{kind: connBarrier, peer: 0, pos: pos})
	}
	c.advance(0, c.numQubits-1, pos)
	return c
}

// Measure measures each target in the computational basis during execution
// and stores the outcome in the classical bit of the same index. The
// operation spans the target qubit down through the last qubit wire (the
// connection to the classical row crosses them) plus the destination bit;
// only those wires are scheduled and advanced.
func (c *Circuit) Measure(targets ...int) *Circuit {
	for _, t := range targets {
		c.checkQubit(t)
		pos := c.maxEarliest(t, c.numQubits-1)
		if c.clbits[t].earliest > pos {
			pos = c.clbits[t].earliest
		}
		c.qubits[t].gates = append(c.qubits[t].gates, gateRecord{tag: tagMeasure, kind: gate.I, pos: pos})
		c.clbits[t].conns = append(c.clbits[t].conns, connRecord{kind: connOutput, peer: t, pos: pos})
		c.advance(t, c.numQubits-1, pos)
		c.clbits[t].earliest = pos + 1
	}
	return c
}
