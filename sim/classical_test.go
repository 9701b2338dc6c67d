package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightpath-sim/lightpath/circuit"
	"github.com/lightpath-sim/lightpath/sim"
)

// TestClassical_LosslessThrough wires one laser of power P through a
// lossless link to a detector: detected power must equal responsivity·P at
// every wavelength, exactly.
func TestClassical_LosslessThrough(t *testing.T) {
	c, in, out := linkedPair(t, 1, 1)
	wl := []float64{1.53, 1.55, 1.57}

	s, err := sim.NewClassical(c, wl)
	require.NoError(t, err)
	s.AddLaser([]*circuit.Port{in}, sim.WithPower(2.0))
	dets := s.AddDetector([]*circuit.Port{out}, sim.WithResponsivity(0.8))

	res, err := s.Run()
	require.NoError(t, err)
	require.Len(t, dets, 1)
	require.Len(t, dets[0].Result.Power, len(wl))
	for f := range wl {
		assert.InDelta(t, 0.8*2.0, dets[0].Result.Power[f], 1e-12, "R·P at λ=%v", wl[f])
	}
	assert.Equal(t, res.Detectors[0], dets[0], "result lists the attached detector")
	assert.Contains(t, res.SDict, out.String())
}

// TestClassical_AttenuatedPhase checks amplitude algebra: power 2 through
// transmission 0.5i reads 0.8·|√2·0.5|² = 0.4.
func TestClassical_AttenuatedPhase(t *testing.T) {
	c, in, out := linkedPair(t, 0.5i, 1)

	s, err := sim.NewClassical(c, []float64{1.55})
	require.NoError(t, err)
	s.AddLaser([]*circuit.Port{in}, sim.WithPower(2.0))
	dets := s.AddDetector([]*circuit.Port{out}, sim.WithResponsivity(0.8))

	_, err = s.Run()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, dets[0].Result.Power[0], 1e-12)
}

// TestClassical_TwoLaserSum feeds both external ports of a lossless link;
// the detector sums contributions over every laser, weighted by the
// corresponding S-parameter.
func TestClassical_TwoLaserSum(t *testing.T) {
	c, in, out := linkedPair(t, 1, 1)

	s, err := sim.NewClassical(c, []float64{1.55})
	require.NoError(t, err)
	// Both lasers reach the detector port: one transmitted, one reflected
	// path is absent here, so the detector port's own laser contributes its
	// S[out,out]=0 term and only the transmitted field remains.
	s.AddLaser([]*circuit.Port{in})
	s.AddLaser([]*circuit.Port{out})
	dets := s.AddDetector([]*circuit.Port{out})

	_, err = s.Run()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dets[0].Result.Power[0], 1e-12,
		"only the transmitted unit-power field arrives")
}

// TestClassical_Preconditions covers the setup error surface.
func TestClassical_Preconditions(t *testing.T) {
	c, in, out := linkedPair(t, 1, 1)

	_, err := sim.NewClassical(c, nil)
	assert.ErrorIs(t, err, sim.ErrNoWavelengths, "sweep is mandatory")

	s, err := sim.NewClassical(c, []float64{1.55})
	require.NoError(t, err)
	s.AddLaser([]*circuit.Port{in})
	_, err = s.Run()
	assert.ErrorIs(t, err, sim.ErrNoDetectors, "nothing to measure")

	// A consumed (internal) port cannot host a detector.
	internal := out.Owner().O(0)
	s.AddDetector([]*circuit.Port{internal})
	_, err = s.Run()
	assert.ErrorIs(t, err, sim.ErrUnknownPort, "internal ports are not observable")
}

// TestClassical_OptionValidation rejects nonsensical option values loudly.
func TestClassical_OptionValidation(t *testing.T) {
	assert.Panics(t, func() { sim.WithPower(-1) }, "negative power")
	assert.Panics(t, func() { sim.WithResponsivity(-0.1) }, "negative responsivity")
}
