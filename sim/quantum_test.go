package sim_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightpath-sim/lightpath/circuit"
	"github.com/lightpath-sim/lightpath/qstate"
	"github.com/lightpath-sim/lightpath/sim"
	"github.com/lightpath-sim/lightpath/sparam"
)

// columnPower sums |u[r,i]|² over rows r of one frequency slice.
func columnPower(u *sparam.Matrix, f, i int) float64 {
	power := 0.0
	for r := 0; r < u.Ports(); r++ {
		a := cmplx.Abs(u.At(f, r, i))
		power += a * a
	}
	return power
}

// TestToUnitary_LossyColumns lifts a lossy 2-port matrix and checks that
// every column of the 4-port result carries exactly unit power, with the
// loss made up by the vacuum coupling √(1 − |tr|²).
func TestToUnitary_LossyColumns(t *testing.T) {
	s, err := sparam.FromSlices([][][]complex128{{
		{0, 0.5},
		{0.5, 0},
	}})
	require.NoError(t, err)

	u, err := sim.ToUnitary(s)
	require.NoError(t, err)
	require.Equal(t, 4, u.Ports(), "lifting doubles the port count")

	for i := 0; i < 4; i++ {
		assert.InDelta(t, 1.0, columnPower(u, 0, i), 1e-12,
			"column %d must carry unit power", i)
	}

	coupling := math.Sqrt(1 - 0.25)
	assert.InDelta(t, coupling, real(u.At(0, 2, 0)), 1e-12,
		"vacuum coupling for port 0")
	assert.InDelta(t, -coupling, real(u.At(0, 0, 2)), 1e-12,
		"negated coupling keeps the matrix unitary")
	assert.Equal(t, complex(0.5, 0), u.At(0, 3, 2),
		"physical block is duplicated into the vacuum block")
}

// TestToUnitary_Lossless keeps a unitary input untouched in both blocks and
// leaves the vacuum couplings at zero.
func TestToUnitary_Lossless(t *testing.T) {
	s, err := sparam.FromSlices([][][]complex128{{
		{0, 1i},
		{1i, 0},
	}})
	require.NoError(t, err)

	u, err := sim.ToUnitary(s)
	require.NoError(t, err)
	assert.Equal(t, complex(0, 1), u.At(0, 0, 1), "physical block unchanged")
	assert.Equal(t, complex(0, 0), u.At(0, 2, 0), "no loss, no coupling")
}

// TestToUnitary_NonPhysical rejects a matrix whose column power exceeds
// unity: no passive completion exists for gain.
func TestToUnitary_NonPhysical(t *testing.T) {
	s, err := sparam.FromSlices([][][]complex128{{
		{0, 2},
		{2, 0},
	}})
	require.NoError(t, err)

	_, err = sim.ToUnitary(s)
	assert.ErrorIs(t, err, sim.ErrNonPhysical, "column power 4 has no completion")
}

// TestQuantum_CoherentThroughLink propagates a coherent state through a
// lossless two-device link. The displacement must move to the output mode
// while the covariance stays at vacuum: the transform is orthogonal.
func TestQuantum_CoherentThroughLink(t *testing.T) {
	c, in, _ := linkedPair(t, 1, 1)

	alpha := complex(1, 2)
	q, err := sim.NewQuantum(c, []float64{1.55}, qstate.Coherent(in, alpha))
	require.NoError(t, err)

	res, err := q.Run()
	require.NoError(t, err)

	require.Equal(t, 2, res.NPorts, "two external ports survive reduction")
	require.Len(t, res.Transforms, 1)
	require.Len(t, res.Means, 1)
	require.Len(t, res.Cov, 1)

	// Four modes after lifting: x0..x3 then p0..p3 in xxpp ordering. The
	// link swaps modes 0 and 1, so the displacement lands on mode 1.
	means := res.Means[0]
	require.Equal(t, 8, means.Len())
	assert.InDelta(t, real(alpha), means.AtVec(1), 1e-12, "x lands on the output mode")
	assert.InDelta(t, imag(alpha), means.AtVec(5), 1e-12, "p lands on the output mode")
	assert.InDelta(t, 0.0, means.AtVec(0), 1e-12, "input mode is emptied")

	cov := res.Cov[0]
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := 0.0
			if i == j {
				want = qstate.VacuumVariance
			}
			assert.InDelta(t, want, cov.At(i, j), 1e-12,
				"coherent covariance stays at vacuum (%d,%d)", i, j)
		}
	}
}

// TestQuantum_InputEcho checks that the result echoes the padded input
// state the transforms were applied to.
func TestQuantum_InputEcho(t *testing.T) {
	c, in, _ := linkedPair(t, 1, 1)

	q, err := sim.NewQuantum(c, []float64{1.55, 1.56}, qstate.Coherent(in, 3))
	require.NoError(t, err)
	res, err := q.Run()
	require.NoError(t, err)

	assert.Equal(t, []float64{1.55, 1.56}, res.WL)
	require.Equal(t, 8, res.InputMeans.Len(), "one physical mode plus padding")
	assert.InDelta(t, 3.0, res.InputMeans.AtVec(0), 1e-12,
		"input displacement sits on the state's own mode")
	assert.Len(t, res.Transforms, 2, "one transform per wavelength")
}

// TestQuantum_Preconditions covers the setup error surface.
func TestQuantum_Preconditions(t *testing.T) {
	c, in, _ := linkedPair(t, 1, 1)

	_, err := sim.NewQuantum(c, nil, qstate.Vacuum(in))
	assert.ErrorIs(t, err, sim.ErrNoWavelengths, "sweep is mandatory")

	stray, err := circuit.NewDevice("stray", circuit.DeviceSpec{
		OCount:  2,
		SParams: fixedS([][]complex128{{0, 1}, {1, 0}}),
	})
	require.NoError(t, err)
	_, err = sim.NewQuantum(c, []float64{1.55}, qstate.Vacuum(stray.O(0)))
	assert.ErrorIs(t, err, circuit.ErrForeignPort, "port not in the circuit")

	a := c.Components()[0]
	_, err = sim.NewQuantum(c, []float64{1.55}, qstate.Vacuum(a.O(1)))
	assert.ErrorIs(t, err, circuit.ErrForeignPort, "connected port is not free")
}

// TestQuantum_ElectricalPortRejected feeds a state on an electrical port.
// Only free optical ports carry modes of the reduced circuit.
func TestQuantum_ElectricalPortRejected(t *testing.T) {
	c := circuit.New("heated")
	h, err := circuit.NewDevice("h", circuit.DeviceSpec{
		OCount:  2,
		ECount:  1,
		SParams: fixedS([][]complex128{{0, 1}, {1, 0}}),
	})
	require.NoError(t, err)
	w, err := circuit.NewDevice("w", circuit.DeviceSpec{
		OCount:  2,
		SParams: fixedS([][]complex128{{0, 1}, {1, 0}}),
	})
	require.NoError(t, err)
	require.NoError(t, c.Connect(h.O(1), w.O(0)))

	_, err = sim.NewQuantum(c, []float64{1.55}, qstate.Vacuum(h.E(0)))
	assert.ErrorIs(t, err, circuit.ErrForeignPort,
		"electrical ports carry no optical mode")
}
