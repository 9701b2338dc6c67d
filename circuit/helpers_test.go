package circuit_test

import (
	"testing"

	"github.com/lightpath-sim/lightpath/circuit"
	"github.com/lightpath-sim/lightpath/sparam"
)

// fixedS returns an SParamFunc producing the same single-slice matrix for
// any sweep; the singleton slice broadcasts across the sweep during
// reduction.
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

// tunableDevice builds a device with two optical and two electrical ports,
// the shape of a thermally tuned phase shifter.
func tunableDevice(t *testing.T, name string, tr complex128) *circuit.Device {
	t.Helper()
	d, err := circuit.NewDevice(name, circuit.DeviceSpec{
		OCount:  2,
		ECount:  2,
		SParams: fixedS([][]complex128{{0, tr}, {tr, 0}}),
	})
	if err != nil {
		t.Fatalf("tunableDevice %q: %v", name, err)
	}
	return d
}

// heaterDevice builds an electrical-only device (a bias pad).
func heaterDevice(t *testing.T, name string, ecount int) *circuit.Device {
	t.Helper()
	d, err := circuit.NewDevice(name, circuit.DeviceSpec{
		ECount: ecount,
		SParams: func(wl []float64) (*sparam.Matrix, error) {
			return sparam.New(1, 1)
		},
	})
	if err != nil {
		t.Fatalf("heaterDevice %q: %v", name, err)
	}
	return d
}
