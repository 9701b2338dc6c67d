package phys

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"regexp"
	"strconv"
)

// Sentinel errors for parsing and resampling.
var (
	// ErrMalformedNumber indicates input that is not a single numeral with an
	// optional suffix or exponent.
	ErrMalformedNumber = errors.New("phys: malformed number")

	// ErrUnknownSuffix indicates a suffix outside the SI table.
	ErrUnknownSuffix = errors.New("phys: unknown suffix")

	// ErrUnsortedSamples indicates a sample grid that is not strictly
	// ascending.
	ErrUnsortedSamples = errors.New("phys: sample grid must be strictly ascending")

	// ErrInterpRange indicates a resampling target outside the sampled span.
	ErrInterpRange = errors.New("phys: resample target outside sampled range")
)

// SpeedOfLight is c in SI units (m/s).
const SpeedOfLight = 299792458.0

// Rect converts polar coordinates (magnitude, phase) to a complex number.
func Rect(r, phi float64) complex128 {
	return cmplx.Rect(r, phi)
}

// Polar converts a complex number to (magnitude, phase).
func Polar(x complex128) (r, phi float64) {
	return cmplx.Polar(x)
}

// AddPolar adds two phasors given in polar form and returns the sum in
// polar form. The phase keeps the larger whole number of 2π turns carried
// by either input, so a steady-state accumulated phase survives the
// addition instead of collapsing into (−π, π].
func AddPolar(r1, phi1, r2, phi2 float64) (r, phi float64) {
	sum := Rect(r1, phi1) + Rect(r2, phi2)
	mag, ang := Polar(sum)

	wrapped1 := math.Floor(phi1/(2*math.Pi)) * 2 * math.Pi
	wrapped2 := math.Floor(phi2/(2*math.Pi)) * 2 * math.Pi
	return mag, ang + math.Max(wrapped1, wrapped2)
}

// MulPolar multiplies two phasors in polar form: magnitudes multiply,
// phases add without wrapping.
func MulPolar(r1, phi1, r2, phi2 float64) (r, phi float64) {
	return r1 * r2, phi1 + phi2
}

// suffixes maps SI/engineering suffixes to their multipliers.
var suffixes = map[string]float64{
	"f": 1e-15,
	"p": 1e-12,
	"n": 1e-9,
	"u": 1e-6,
	"m": 1e-3,
	"c": 1e-2,
	"k": 1e3,
	"M": 1e6,
	"G": 1e9,
	"T": 1e12,
}

var numeralRe = regexp.MustCompile(`^([-+]?[0-9]+(?:\.[0-9]+)?)((?:[eE][-+]?[0-9]+)|(?:[a-zA-Z]))?$`)

// ParseFloat converts a numeral with an optional SI suffix to a float:
// "14.5c" is 0.145, "2.53" is 2.53, "15.2e-6" is 1.52e-5. Exponent forms
// and suffixes are mutually exclusive by construction. Unrecognized
// suffixes are ErrUnknownSuffix; anything that is not one numeral is
// ErrMalformedNumber.
func ParseFloat(s string) (float64, error) {
	m := numeralRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("phys: %q: %w", s, ErrMalformedNumber)
	}
	num, suffix := m[1], m[2]
	if suffix == "" {
		return strconv.ParseFloat(num, 64)
	}
	if suffix[0] == 'e' || suffix[0] == 'E' {
		return strconv.ParseFloat(num+suffix, 64)
	}
	mult, ok := suffixes[suffix]
	if !ok {
		return 0, fmt.Errorf("phys: suffix %q in %q: %w", suffix, s, ErrUnknownSuffix)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("phys: %q: %w", s, ErrMalformedNumber)
	}
	return v * mult, nil
}

// FreqToWL converts a frequency in Hz to a wavelength in meters.
func FreqToWL(freq float64) float64 { return SpeedOfLight / freq }

// WLToFreq converts a wavelength in meters to a frequency in Hz.
func WLToFreq(wl float64) float64 { return SpeedOfLight / wl }

// WLUmToFreq converts a wavelength in microns to a frequency in Hz.
func WLUmToFreq(wlum float64) float64 { return WLToFreq(wlum * 1e-6) }
