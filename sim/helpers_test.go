package sim_test

import (
	"testing"

	"github.com/lightpath-sim/lightpath/circuit"
	"github.com/lightpath-sim/lightpath/sparam"
)

// fixedS returns an SParamFunc producing the same single-slice matrix for
// any sweep.
func fixedS(slice [][]complex128) circuit.SParamFunc {
	return func(wl []float64) (*sparam.Matrix, error) {
		return sparam.FromSlices([][][]complex128{slice})
	}
}

// throughDevice builds a 2-port reflectionless device with transmission tr.
func throughDevice(t *testing.T, name string, tr complex128) *circuit.Device {
	t.Helper()
	d, err := circuit.NewDevice(name, circuit.DeviceSpec{
		OCount:  2,
		SParams: fixedS([][]complex128{{0, tr}, {tr, 0}}),
	})
	if err != nil {
		t.Fatalf("throughDevice %q: %v", name, err)
	}
	return d
}

// linkedPair connects two through devices a—b and returns the circuit with
// the external ports a.o0 and b.o1.
func linkedPair(t *testing.T, ta, tb complex128) (*circuit.Circuit, *circuit.Port, *circuit.Port) {
	t.Helper()
	c := circuit.New("link")
	a := throughDevice(t, "a", ta)
	b := throughDevice(t, "b", tb)
	if err := c.Connect(a.O(1), b.O(0)); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return c, a.O(0), b.O(1)
}
