package qstate

import (
	"fmt"
	"math"

	"github.com/lightpath-sim/lightpath/circuit"
)

// Vacuum returns the single-mode vacuum on port: zero mean, variance 1/4.
func Vacuum(port *circuit.Port) *State {
	return newSingleMode(port, 0, 0, VacuumVariance, 0, VacuumVariance)
}

// Coherent returns a coherent state of amplitude alpha on port: a displaced
// vacuum with mean (Re α, Im α) and vacuum covariance.
func Coherent(port *circuit.Port, alpha complex128) *State {
	return newSingleMode(port, real(alpha), imag(alpha), VacuumVariance, 0, VacuumVariance)
}

// Squeezed returns a squeezed vacuum on port with squeezing magnitude r and
// squeezing angle phi. r > 0 narrows one quadrature below the vacuum
// variance and widens the conjugate one, keeping the state pure.
func Squeezed(port *circuit.Port, r, phi float64) *State {
	ch := math.Cosh(2 * r)
	sh := math.Sinh(2 * r)
	cxx := VacuumVariance * (ch - sh*math.Cos(phi))
	cpp := VacuumVariance * (ch + sh*math.Cos(phi))
	cxp := -VacuumVariance * sh * math.Sin(phi)
	return newSingleMode(port, 0, 0, cxx, cxp, cpp)
}

// Thermal returns a thermal state on port with mean photon number nbar.
// Negative nbar is a programmer error and panics.
func Thermal(port *circuit.Port, nbar float64) *State {
	if nbar < 0 {
		panic(fmt.Sprintf("qstate: negative mean photon number %v", nbar))
	}
	v := VacuumVariance * (2*nbar + 1)
	return newSingleMode(port, 0, 0, v, 0, v)
}
