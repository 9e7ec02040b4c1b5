// Package matrix provides dense complex matrices and state vectors sized
// for small quantum systems, where the full 2^n-dimensional representation
// is tractable. Operators are built with Kronecker products and applied by
// plain matrix-vector multiplication.
package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Matrix is a dense row-major complex matrix.
type Matrix struct {
	Rows, Cols int
	Data       []complex128
}

// New returns a zero matrix with the given dimensions.
func New(rows, cols int) Matrix {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", rows, cols))
	}
	return Matrix{Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}
}

// FromRows builds a matrix from a slice of equal-length rows.
func FromRows(rows [][]complex128) Matrix {
	m := New(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.Cols {
			panic(fmt.Sprintf("matrix: row %d has %d columns, want %d", i, len(row), m.Cols))
		}
		copy(m.Data[i*m.Cols:], row)
	}
	return m
}

// Identity returns the n-by-n identity matrix.
func Identity(n int) Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.Data[i*n+i] = 1
	}
	return m
}

// Scalar returns the 1x1 matrix holding v. It is the neutral starting
// element for a chain of Kronecker products.
func Scalar(v complex128) Matrix {
	m := New(1, 1)
	m.Data[0] = v
	return m
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) complex128 {
	return m.Data[i*m.Cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v complex128) {
	m.Data[i*m.Cols+j] = v
}

// Kron returns the Kronecker product a ⊗ b.
func Kron(a, b Matrix) Matrix {
	out := New(a.Rows*b.Rows, a.Cols*b.Cols)
	for ai := 0; ai < a.Rows; ai++ {
		for aj := 0; aj < a.Cols; aj++ {
			f := a.At(ai, aj)
			if f == 0 {
				continue
			}
			for bi := 0; bi < b.Rows; bi++ {
				base := (ai*b.Rows+bi)*out.Cols + aj*b.Cols
				for bj := 0; bj < b.Cols; bj++ {
					out.Data[base+bj] = f * b.At(bi, bj)
				}
			}
		}
	}
	return out
}

// Mul returns the matrix product a·b.
func Mul(a, b Matrix) Matrix {
	if a.Cols != b.Rows {
		panic(fmt.Sprintf("matrix: cannot multiply %dx%d by %dx%d", a.Rows, a.Cols, b.Rows, b.Cols))
	}
	out := New(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for k := 0; k < a.Cols; k++ {
			f := a.At(i, k)
			if f == 0 {
				continue
			}
			row := b.Data[k*b.Cols : (k+1)*b.Cols]
			outRow := out.Data[i*out.Cols : (i+1)*out.Cols]
			for j, v := range row {
				outRow[j] += f * v
			}
		}
	}
	return out
}

// Add returns a + b.
func Add(a, b Matrix) Matrix {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic(fmt.Sprintf("matrix: cannot add %dx%d and %dx%d", a.Rows, a.Cols, b.Rows, b.Cols))
	}
	out := New(a.Rows, a.Cols)
	for i := range a.Data {
		out.Data[i] = a.Data[i] + b.Data[i]
	}
	return out
}

// Scale returns f·m.
func Scale(f complex128, m Matrix) Matrix {
	out := New(m.Rows, m.Cols)
	for i, v := range m.Data {
		out.Data[i] = f * v
	}
	return out
}

// Dagger returns the conjugate transpose of m.
func (m Matrix) Dagger() Matrix {
	out := New(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Set(j, i, cmplx.Conj(m.At(i, j)))
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v.
func (m Matrix) MulVec(v []complex128) []complex128 {
	if m.Cols != len(v) {
		panic(fmt.Sprintf("matrix: cannot apply %dx%d to vector of length %d", m.Rows, m.Cols, len(v)))
	}
	out := make([]complex128, m.Rows)
	for i := 0; i < m.Rows; i++ {
		row := m.Data[i*m.Cols : (i+1)*m.Cols]
		var sum complex128
		for j, f := range row {
			if f != 0 {
				sum += f * v[j]
			}
		}
		out[i] = sum
	}
	return out
}

// Equal reports whether a and b have the same shape and agree element-wise
// within tol.
func Equal(a, b Matrix, tol float64) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := range a.Data {
		if cmplx.Abs(a.Data[i]-b.Data[i]) > tol {
			return false
		}
	}
	return true
}

// IsUnitary reports whether m†·m is the identity within tol.
func (m Matrix) IsUnitary(tol float64) bool {
	if m.Rows != m.Cols {
		return false
	}
	return Equal(Mul(m.Dagger(), m), Identity(m.Rows), tol)
}

// Dot returns the inner product ⟨a,b⟩, conjugating a.
func Dot(a, b []complex128) complex128 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("matrix: dot of vectors with lengths %d and %d", len(a), len(b)))
	}
	var sum complex128
	for i := range a {
		sum += cmplx.Conj(a[i]) * b[i]
	}
	return sum
}

// Norm returns the Euclidean norm of v.
func Norm(v []complex128) float64 {
	return math.Sqrt(real(Dot(v, v)))
}
