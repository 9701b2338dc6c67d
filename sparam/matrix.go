package sparam

import (
	"fmt"
	"math/cmplx"
)

// Matrix is a frequency-indexed S-matrix: one n×n complex matrix per
// frequency sample, stored as a flat slice (slice-major, then row-major).
// The zero value is not usable; construct with New or FromSlices.
type Matrix struct {
	freqs int
	ports int
	data  []complex128
}

// New returns a zeroed Matrix with the given number of frequency slices and
// ports. Both must be positive.
func New(freqs, ports int) (*Matrix, error) {
	if freqs <= 0 || ports <= 0 {
		return nil, fmt.Errorf("sparam: %d freqs × %d ports: %w", freqs, ports, ErrEmptyMatrix)
	}
	return &Matrix{
		freqs: freqs,
		ports: ports,
		data:  make([]complex128, freqs*ports*ports),
	}, nil
}

// FromSlices builds a Matrix from nested slices indexed [freq][row][col].
// Every slice must be square with the same dimension; ragged input is
// ErrShapeMismatch.
func FromSlices(s [][][]complex128) (*Matrix, error) {
	if len(s) == 0 || len(s[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	n := len(s[0])
	m, err := New(len(s), n)
	if err != nil {
		return nil, err
	}
	for f, slice := range s {
		if len(slice) != n {
			return nil, fmt.Errorf("sparam: slice %d has %d rows, want %d: %w", f, len(slice), n, ErrShapeMismatch)
		}
		for i, row := range slice {
			if len(row) != n {
				return nil, fmt.Errorf("sparam: slice %d row %d has %d cols, want %d: %w", f, i, len(row), n, ErrShapeMismatch)
			}
			copy(m.data[(f*n+i)*n:(f*n+i+1)*n], row)
		}
	}
	return m, nil
}

// Freqs returns the number of frequency slices.
func (m *Matrix) Freqs() int { return m.freqs }

// Ports returns the number of ports n of each n×n slice.
func (m *Matrix) Ports() int { return m.ports }

// At returns entry (i,j) of frequency slice f.
// Indices are bounds-checked by the underlying slice access.
func (m *Matrix) At(f, i, j int) complex128 {
	return m.data[(f*m.ports+i)*m.ports+j]
}

// Set assigns entry (i,j) of frequency slice f.
func (m *Matrix) Set(f, i, j int, v complex128) {
	m.data[(f*m.ports+i)*m.ports+j] = v
}

// Slice returns frequency slice f as a freshly allocated [][]complex128.
func (m *Matrix) Slice(f int) [][]complex128 {
	out := make([][]complex128, m.ports)
	for i := range out {
		row := make([]complex128, m.ports)
		copy(row, m.data[(f*m.ports+i)*m.ports:(f*m.ports+i+1)*m.ports])
		out[i] = row
	}
	return out
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]complex128, len(m.data))
	copy(data, m.data)
	return &Matrix{freqs: m.freqs, ports: m.ports, data: data}
}

// Equal reports whether m and o have identical shape and entries that agree
// within the absolute tolerance tol.
func (m *Matrix) Equal(o *Matrix, tol float64) bool {
	if m.freqs != o.freqs || m.ports != o.ports {
		return false
	}
	for k := range m.data {
		if cmplx.Abs(m.data[k]-o.data[k]) > tol {
			return false
		}
	}
	return true
}

// broadcastFreqs resolves the common sweep length of two operands.
// A singleton sweep combines with any length; two non-singleton sweeps must
// match exactly.
func broadcastFreqs(fa, fb int) (int, error) {
	switch {
	case fa == fb:
		return fa, nil
	case fa == 1:
		return fb, nil
	case fb == 1:
		return fa, nil
	default:
		return 0, fmt.Errorf("sparam: sweeps of %d and %d slices: %w", fa, fb, ErrShapeMismatch)
	}
}

// sliceIndex clamps a broadcast frequency index onto an operand's own sweep.
func sliceIndex(f, freqs int) int {
	if freqs == 1 {
		return 0
	}
	return f
}

// BlockDiag composes a and b into one matrix with a's ports first and b's
// ports after, with no coupling between the two blocks. Singleton sweeps
// broadcast against the other operand's sweep.
func BlockDiag(a, b *Matrix) (*Matrix, error) {
	freqs, err := broadcastFreqs(a.freqs, b.freqs)
	if err != nil {
		return nil, err
	}
	n := a.ports + b.ports
	out, err := New(freqs, n)
	if err != nil {
		return nil, err
	}
	for f := 0; f < freqs; f++ {
		fa := sliceIndex(f, a.freqs)
		fb := sliceIndex(f, b.freqs)
		for i := 0; i < a.ports; i++ {
			for j := 0; j < a.ports; j++ {
				out.Set(f, i, j, a.At(fa, i, j))
			}
		}
		for i := 0; i < b.ports; i++ {
			for j := 0; j < b.ports; j++ {
				out.Set(f, a.ports+i, a.ports+j, b.At(fb, i, j))
			}
		}
	}
	return out, nil
}
