package sim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lightpath-sim/lightpath/circuit"
	"github.com/lightpath-sim/lightpath/qstate"
	"github.com/lightpath-sim/lightpath/sparam"
)

// QuantumResult is the outcome of a quantum run.
type QuantumResult struct {
	// SParams is the reduced (pre-lifting) circuit S-matrix.
	SParams *sparam.Matrix

	// InputMeans and InputCov are the padded, reordered input state in xxpp
	// ordering, as fed to the transforms.
	InputMeans *mat.VecDense
	InputCov   *mat.Dense

	// Transforms holds the real symplectic transform per wavelength.
	Transforms []*mat.Dense

	// Means and Cov hold the propagated state per wavelength, xxpp ordering.
	Means []*mat.VecDense
	Cov   []*mat.Dense

	// WL is the simulated sweep and NPorts the external port count of the
	// reduced circuit (the lifted unitary spans 2·NPorts modes).
	WL     []float64
	NPorts int
}

// Quantum propagates a Gaussian input state through a circuit's lifted
// unitary, one symplectic transform per wavelength.
type Quantum struct {
	ckt   *circuit.Circuit
	wl    []float64
	input *qstate.State
}

// NewQuantum binds a quantum simulation to a circuit, a sweep, and an input
// state. Preconditions are rejected here, before any computation: an empty
// sweep, duplicate ports in the input state, and ports that are not free
// optical ports of the circuit.
func NewQuantum(ckt *circuit.Circuit, wl []float64, input *qstate.State) (*Quantum, error) {
	if len(wl) == 0 {
		return nil, ErrNoWavelengths
	}
	seen := make(map[*circuit.Port]bool)
	for _, p := range input.Ports() {
		if seen[p] {
			return nil, fmt.Errorf("sim: %s: %w", p, qstate.ErrDuplicatePort)
		}
		seen[p] = true
	}
	free := make(map[*circuit.Port]bool)
	for _, p := range ckt.FreePorts() {
		free[p] = true
	}
	for _, p := range input.Ports() {
		if !free[p] {
			return nil, fmt.Errorf("sim: %s: %w", p, circuit.ErrForeignPort)
		}
	}
	sweep := make([]float64, len(wl))
	copy(sweep, wl)
	return &Quantum{ckt: ckt, wl: sweep, input: input}, nil
}

// symplectic builds the real quadrature transform [[Re,−Im],[Im,Re]] of one
// unitary slice.
func symplectic(u *sparam.Matrix, f int) *mat.Dense {
	m := u.Ports()
	t := mat.NewDense(2*m, 2*m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			v := u.At(f, i, j)
			t.Set(i, j, real(v))
			t.Set(i, m+j, -imag(v))
			t.Set(m+i, j, imag(v))
			t.Set(m+i, m+j, real(v))
		}
	}
	return t
}

// Run reduces the circuit, lifts the result to a unitary, aligns the input
// state with the unitary's modes, and propagates mean and covariance
// through each wavelength's symplectic transform.
func (s *Quantum) Run() (*QuantumResult, error) {
	red, ports, err := s.ckt.SParams(s.wl)
	if err != nil {
		return nil, err
	}
	u, err := ToUnitary(red)
	if err != nil {
		return nil, err
	}

	// Target mode of each input-state mode: the index of its port in the
	// reduced matrix. Vacuum padding then fills the remaining modes in
	// ascending order.
	index := make(map[*circuit.Port]int, len(ports))
	for i, p := range ports {
		index[p] = i
	}
	statePorts := s.input.Ports()
	target := make([]int, 0, u.Ports())
	taken := make([]bool, u.Ports())
	for _, p := range statePorts {
		i, ok := index[p]
		if !ok {
			return nil, fmt.Errorf("sim: %s: %w", p, ErrUnknownPort)
		}
		target = append(target, i)
		taken[i] = true
	}
	for m := 0; m < u.Ports(); m++ {
		if !taken[m] {
			target = append(target, m)
		}
	}

	input := s.input.Clone()
	input.AddVacuum(u.Ports() - len(statePorts))
	if err := input.Reorder(target); err != nil {
		return nil, err
	}
	input.ToXXPP()
	inMeans := input.Means()
	inCov := input.Cov()

	result := &QuantumResult{
		SParams:    red,
		InputMeans: inMeans,
		InputCov:   inCov,
		WL:         s.wl,
		NPorts:     red.Ports(),
	}
	for f := range s.wl {
		fi := f
		if u.Freqs() == 1 {
			fi = 0
		}
		t := symplectic(u, fi)

		means := mat.NewVecDense(inMeans.Len(), nil)
		means.MulVec(t, inMeans)

		var tmp, cov mat.Dense
		tmp.Mul(t, inCov)
		cov.Mul(&tmp, t.T())

		result.Transforms = append(result.Transforms, t)
		result.Means = append(result.Means, means)
		result.Cov = append(result.Cov, &cov)
	}
	return result, nil
}
