package qstate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lightpath-sim/lightpath/circuit"
)

// Sentinel errors for Gaussian state construction and reshaping.
var (
	// ErrDuplicatePort indicates the same circuit port excited by two modes.
	ErrDuplicatePort = errors.New("qstate: duplicate port in state")

	// ErrEmptyState indicates a composition of zero states.
	ErrEmptyState = errors.New("qstate: no modes")

	// ErrBadPermutation indicates a Reorder target that is not a permutation
	// of the state's mode indices.
	ErrBadPermutation = errors.New("qstate: target is not a mode permutation")
)

// VacuumVariance is the quadrature variance of the vacuum in the ħ = 1/2
// convention used throughout this package.
const VacuumVariance = 0.25

// Ordering is the quadrature layout of a state's mean vector and covariance.
type Ordering int

const (
	// XPXP interleaves quadratures per mode: x1, p1, x2, p2, ...
	XPXP Ordering = iota
	// XXPP groups all positions before all momenta: x1..xN, p1..pN.
	XXPP
)

// String returns "xpxp" or "xxpp".
func (o Ordering) String() string {
	if o == XPXP {
		return "xpxp"
	}
	return "xxpp"
}

// State is a Gaussian state over a set of optical modes. Physical modes
// reference the circuit port they excite; vacuum padding modes (added by
// AddVacuum) reference none.
type State struct {
	ports []*circuit.Port // one entry per physical mode
	modes int             // total modes, physical + vacuum padding
	means *mat.VecDense   // length 2*modes
	cov   *mat.Dense      // 2*modes × 2*modes
	order Ordering
}

// newSingleMode builds a one-mode state in XPXP ordering.
func newSingleMode(port *circuit.Port, mx, mp, cxx, cxp, cpp float64) *State {
	return &State{
		ports: []*circuit.Port{port},
		modes: 1,
		means: mat.NewVecDense(2, []float64{mx, mp}),
		cov:   mat.NewDense(2, 2, []float64{cxx, cxp, cxp, cpp}),
		order: XPXP,
	}
}

// Ports returns the circuit ports excited by the state's physical modes, in
// mode order.
func (s *State) Ports() []*circuit.Port {
	out := make([]*circuit.Port, len(s.ports))
	copy(out, s.ports)
	return out
}

// NumModes returns the total mode count, vacuum padding included.
func (s *State) NumModes() int { return s.modes }

// Ordering returns the current quadrature layout.
func (s *State) Ordering() Ordering { return s.order }

// Means returns a copy of the mean vector in the current ordering.
func (s *State) Means() *mat.VecDense {
	out := mat.NewVecDense(s.means.Len(), nil)
	out.CopyVec(s.means)
	return out
}

// Cov returns a copy of the covariance matrix in the current ordering.
func (s *State) Cov() *mat.Dense {
	return mat.DenseCopyOf(s.cov)
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	return &State{
		ports: s.Ports(),
		modes: s.modes,
		means: s.Means(),
		cov:   s.Cov(),
		order: s.order,
	}
}

// applyRowPerm rewrites means and cov under the row map newRow[old] = new.
func (s *State) applyRowPerm(newRow []int) {
	n := s.means.Len()
	p := mat.NewDense(n, n, nil)
	for old, nw := range newRow {
		p.Set(nw, old, 1)
	}
	means := mat.NewVecDense(n, nil)
	means.MulVec(p, s.means)

	var tmp, cov mat.Dense
	tmp.Mul(p, s.cov)
	cov.Mul(&tmp, p.T())

	s.means = means
	s.cov = &cov
}

// ToXXPP converts the state to the grouped x1..xN,p1..pN layout in place.
// A state already in XXPP is untouched.
func (s *State) ToXXPP() {
	if s.order == XXPP {
		return
	}
	newRow := make([]int, 2*s.modes)
	for m := 0; m < s.modes; m++ {
		newRow[2*m] = m
		newRow[2*m+1] = s.modes + m
	}
	s.applyRowPerm(newRow)
	s.order = XXPP
}

// ToXPXP converts the state to the interleaved x1,p1,... layout in place.
// A state already in XPXP is untouched.
func (s *State) ToXPXP() {
	if s.order == XPXP {
		return
	}
	newRow := make([]int, 2*s.modes)
	for m := 0; m < s.modes; m++ {
		newRow[m] = 2 * m
		newRow[s.modes+m] = 2*m + 1
	}
	s.applyRowPerm(newRow)
	s.order = XPXP
}

// AddVacuum appends n vacuum modes (zero mean, variance 1/4, uncorrelated)
// after the existing modes, preserving the current ordering.
func (s *State) AddVacuum(n int) {
	if n <= 0 {
		return
	}
	prev := s.order
	s.ToXPXP()

	modes := s.modes + n
	means := mat.NewVecDense(2*modes, nil)
	cov := mat.NewDense(2*modes, 2*modes, nil)
	for i := 0; i < 2*s.modes; i++ {
		means.SetVec(i, s.means.AtVec(i))
		for j := 0; j < 2*s.modes; j++ {
			cov.Set(i, j, s.cov.At(i, j))
		}
	}
	for i := 2 * s.modes; i < 2*modes; i++ {
		cov.Set(i, i, VacuumVariance)
	}
	s.modes = modes
	s.means = means
	s.cov = cov

	if prev == XXPP {
		s.ToXXPP()
	}
}

// Reorder permutes the quadrature data so that current mode m becomes mode
// target[m]; target must be a permutation of 0..NumModes()-1. It is meant
// for mapping a state onto a simulator's mode order, after which modes are
// addressed by index — the physical port list keeps its original order.
func (s *State) Reorder(target []int) error {
	if len(target) != s.modes {
		return fmt.Errorf("qstate: %d targets for %d modes: %w", len(target), s.modes, ErrBadPermutation)
	}
	seen := make([]bool, s.modes)
	for _, t := range target {
		if t < 0 || t >= s.modes || seen[t] {
			return fmt.Errorf("qstate: target %v: %w", target, ErrBadPermutation)
		}
		seen[t] = true
	}

	newRow := make([]int, 2*s.modes)
	for m, t := range target {
		if s.order == XPXP {
			newRow[2*m] = 2 * t
			newRow[2*m+1] = 2*t + 1
		} else {
			newRow[m] = t
			newRow[s.modes+m] = s.modes + t
		}
	}
	s.applyRowPerm(newRow)
	return nil
}

// Compose builds the product state of independent Gaussian states: ports
// concatenated in argument order, means stacked, covariance block-diagonal.
// The result is in XPXP ordering regardless of the inputs' layouts.
func Compose(states ...*State) (*State, error) {
	if len(states) == 0 {
		return nil, ErrEmptyState
	}
	seen := make(map[*circuit.Port]bool)
	modes := 0
	for _, st := range states {
		for _, p := range st.ports {
			if seen[p] {
				return nil, fmt.Errorf("qstate: %s: %w", p, ErrDuplicatePort)
			}
			seen[p] = true
		}
		modes += st.modes
	}

	out := &State{
		modes: modes,
		means: mat.NewVecDense(2*modes, nil),
		cov:   mat.NewDense(2*modes, 2*modes, nil),
		order: XPXP,
	}
	row := 0
	for _, st := range states {
		c := st.Clone()
		c.ToXPXP()
		out.ports = append(out.ports, c.ports...)
		for i := 0; i < 2*c.modes; i++ {
			out.means.SetVec(row+i, c.means.AtVec(i))
			for j := 0; j < 2*c.modes; j++ {
				out.cov.Set(row+i, row+j, c.cov.At(i, j))
			}
		}
		row += 2 * c.modes
	}
	return out, nil
}
