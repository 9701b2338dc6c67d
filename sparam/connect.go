package sparam

import (
	"fmt"
	"math/cmplx"
)

// degenerateTol is the magnitude below which a junction denominator is
// treated as zero. A vanishing denominator means both sides of the joined
// connection are fully reflective and the inter-reflection geometric series
// diverges.
const degenerateTol = 1e-12

// InnerconnectS short-circuits ports k and l of s to each other, returning
// the (n−2)-port matrix of the reduced network. The surviving ports keep
// their relative order with k and l removed.
//
// Each slice applies the closed-form signal-flow rule
//
//	S'pq = Spq + ( Skq·Spl·(1−Slk) + Slq·Spk·(1−Skl)
//	             + Skq·Sll·Spk + Slq·Skk·Spl ) / d
//	d    = (1−Skl)·(1−Slk) − Skk·Sll
//
// which sums every path through the new junction, including the infinite
// bounce series between the two joined ports. A slice where |d| falls below
// the degeneracy threshold fails with ErrDegenerate.
func InnerconnectS(s *Matrix, k, l int) (*Matrix, error) {
	n := s.ports
	if k < 0 || k >= n || l < 0 || l >= n {
		return nil, fmt.Errorf("sparam: innerconnect ports (%d,%d) on %d-port matrix: %w", k, l, n, ErrPortRange)
	}
	if k == l {
		return nil, fmt.Errorf("sparam: innerconnect port %d to itself: %w", k, ErrPortRange)
	}

	keep := make([]int, 0, n-2)
	for p := 0; p < n; p++ {
		if p != k && p != l {
			keep = append(keep, p)
		}
	}

	// n == 2 legitimately reduces to a 0-port network (every port consumed),
	// so the result is built directly rather than through New.
	out := &Matrix{
		freqs: s.freqs,
		ports: len(keep),
		data:  make([]complex128, s.freqs*len(keep)*len(keep)),
	}

	for f := 0; f < s.freqs; f++ {
		skk := s.At(f, k, k)
		sll := s.At(f, l, l)
		skl := s.At(f, k, l)
		slk := s.At(f, l, k)
		d := (1-skl)*(1-slk) - skk*sll
		if cmplx.Abs(d) < degenerateTol {
			return nil, fmt.Errorf("sparam: slice %d: %w", f, ErrDegenerate)
		}
		for pi, p := range keep {
			spk := s.At(f, p, k)
			spl := s.At(f, p, l)
			for qi, q := range keep {
				skq := s.At(f, k, q)
				slq := s.At(f, l, q)
				v := s.At(f, p, q) +
					(skq*spl*(1-slk)+slq*spk*(1-skl)+skq*sll*spk+slq*skk*spl)/d
				out.Set(f, pi, qi, v)
			}
		}
	}
	return out, nil
}

// ConnectS joins port i of a to port j of b, returning the S-matrix of the
// combined (nA+nB−2)-port network. The result's ports are a's surviving
// ports followed by b's, each group keeping its original order.
//
// The two matrices are composed block-diagonally and the junction is then
// closed with InnerconnectS; in that composite the cross terms vanish and
// the denominator collapses to 1 − A[i,i]·B[j,j], the closed form of the
// infinite reflection series bouncing between the two matrices. Singleton
// sweeps broadcast against the other operand.
func ConnectS(a *Matrix, i int, b *Matrix, j int) (*Matrix, error) {
	if i < 0 || i >= a.ports {
		return nil, fmt.Errorf("sparam: connect port %d on %d-port matrix: %w", i, a.ports, ErrPortRange)
	}
	if j < 0 || j >= b.ports {
		return nil, fmt.Errorf("sparam: connect port %d on %d-port matrix: %w", j, b.ports, ErrPortRange)
	}
	c, err := BlockDiag(a, b)
	if err != nil {
		return nil, err
	}
	return InnerconnectS(c, i, a.ports+j)
}
