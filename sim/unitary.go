package sim

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/lightpath-sim/lightpath/sparam"
)

// unitaryTol absorbs rounding in the column-power check: a column may
// exceed unit power by at most this much before the matrix is rejected as
// non-physical.
const unitaryTol = 1e-9

// ToUnitary lifts a possibly lossy n-port S-matrix to a 2n-port unitary by
// appending one vacuum/loss mode per physical port. The original ports keep
// their indices; vacuum port i sits at index n+i. The physical block is
// duplicated into the vacuum block, and each column i gains the coupling
// √(1 − Σ_r |S[r,i]|²) at (n+i, i) with its negation at (i, n+i), so every
// column of the result carries exactly unit power.
//
// A column whose power already exceeds 1 has no passive completion and
// fails with ErrNonPhysical.
func ToUnitary(s *sparam.Matrix) (*sparam.Matrix, error) {
	n := s.Ports()
	u, err := sparam.New(s.Freqs(), 2*n)
	if err != nil {
		return nil, err
	}
	for f := 0; f < s.Freqs(); f++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := s.At(f, i, j)
				u.Set(f, i, j, v)
				u.Set(f, n+i, n+j, v)
			}
		}
		for i := 0; i < n; i++ {
			power := 0.0
			for r := 0; r < n; r++ {
				a := cmplx.Abs(s.At(f, r, i))
				power += a * a
			}
			if power > 1+unitaryTol {
				return nil, fmt.Errorf("sim: slice %d column %d carries power %v: %w",
					f, i, power, ErrNonPhysical)
			}
			val := complex(math.Sqrt(math.Max(0, 1-power)), 0)
			u.Set(f, n+i, i, val)
			u.Set(f, i, n+i, -val)
		}
	}
	return u, nil
}
