package phys_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightpath-sim/lightpath/phys"
	"github.com/lightpath-sim/lightpath/sparam"
)

// TestParseFloat covers the suffix table, plain and exponent forms, and the
// two failure kinds.
func TestParseFloat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"14.5c", 0.145},
		{"2.53", 2.53},
		{"15.2e-6", 1.52e-5},
		{"0.4E6", 400000.0},
		{"-3m", -0.003},
		{"7u", 7e-6},
		{"2T", 2e12},
	} {
		got, err := phys.ParseFloat(tc.in)
		require.NoError(t, err, "parse %q", tc.in)
		assert.InEpsilon(t, tc.want, got, 1e-12, "parse %q", tc.in)
	}

	_, err := phys.ParseFloat("17.3o")
	assert.ErrorIs(t, err, phys.ErrUnknownSuffix, "'o' is not an SI suffix")

	for _, bad := range []string{"", "1.2.3", "12 34", "u5"} {
		_, err := phys.ParseFloat(bad)
		assert.ErrorIs(t, err, phys.ErrMalformedNumber, "input %q", bad)
	}
}

// TestWavelengthFrequency round-trips conversions through c.
func TestWavelengthFrequency(t *testing.T) {
	wl := 1.55e-6
	assert.InEpsilon(t, wl, phys.FreqToWL(phys.WLToFreq(wl)), 1e-12)
	assert.InEpsilon(t, phys.WLToFreq(1.55e-6), phys.WLUmToFreq(1.55), 1e-12, "micron helper agrees")
}

// TestRectPolar_RoundTrip converts both ways.
func TestRectPolar_RoundTrip(t *testing.T) {
	z := phys.Rect(2, math.Pi/3)
	r, phi := phys.Polar(z)
	assert.InDelta(t, 2, r, 1e-12)
	assert.InDelta(t, math.Pi/3, phi, 1e-12)
}

// TestAddPolar_KeepsAccumulatedTurns adds a phasor carrying one full turn
// of steady-state phase; the turn must survive the addition.
func TestAddPolar_KeepsAccumulatedTurns(t *testing.T) {
	r, phi := phys.AddPolar(1, 2*math.Pi, 1, 0)
	assert.InDelta(t, 2, r, 1e-12, "aligned phasors add magnitudes")
	assert.InDelta(t, 2*math.Pi, phi, 1e-12, "whole turns are preserved")
}

// TestMulPolar multiplies magnitudes and adds phases without wrapping.
func TestMulPolar(t *testing.T) {
	r, phi := phys.MulPolar(2, 3*math.Pi, 0.5, math.Pi)
	assert.InDelta(t, 1, r, 1e-12)
	assert.InDelta(t, 4*math.Pi, phi, 1e-12, "phase is not wrapped")
}

// TestInterpolate_LinearData fits data linear in frequency; a cubic must
// reproduce it exactly at midpoints.
func TestInterpolate_LinearData(t *testing.T) {
	sampled := []float64{1, 2, 3, 4}
	s, err := sparam.New(4, 1)
	require.NoError(t, err)
	for f, x := range sampled {
		s.Set(f, 0, 0, complex(2*x, -x))
	}

	got, err := phys.Interpolate([]float64{1.5, 2.5, 3.5}, sampled, s)
	require.NoError(t, err)
	for f, x := range []float64{1.5, 2.5, 3.5} {
		assert.InDelta(t, 2*x, real(got.At(f, 0, 0)), 1e-9, "real part at %v", x)
		assert.InDelta(t, -x, imag(got.At(f, 0, 0)), 1e-9, "imag part at %v", x)
	}
}

// TestInterpolate_Validation covers grid and range errors.
func TestInterpolate_Validation(t *testing.T) {
	s, err := sparam.New(3, 1)
	require.NoError(t, err)

	_, err = phys.Interpolate([]float64{1.5}, []float64{1, 2}, s)
	assert.ErrorIs(t, err, sparam.ErrShapeMismatch, "grid/slice count disagreement")

	_, err = phys.Interpolate([]float64{1.5}, []float64{1, 3, 2}, s)
	assert.ErrorIs(t, err, phys.ErrUnsortedSamples)

	_, err = phys.Interpolate([]float64{5}, []float64{1, 2, 3}, s)
	assert.ErrorIs(t, err, phys.ErrInterpRange, "no extrapolation")
}
