package phys

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/lightpath-sim/lightpath/sparam"
)

// Interpolate resamples S-parameter data measured on the sampled grid onto
// the resampled grid, fitting a natural cubic through the real and
// imaginary parts of every matrix entry independently. The sampled grid
// must be strictly ascending and match the matrix's slice count; every
// resample target must lie inside the sampled span. This is interpolation,
// not extrapolation.
func Interpolate(resampled, sampled []float64, s *sparam.Matrix) (*sparam.Matrix, error) {
	if len(sampled) != s.Freqs() {
		return nil, fmt.Errorf("phys: %d samples for %d slices: %w",
			len(sampled), s.Freqs(), sparam.ErrShapeMismatch)
	}
	for i := 1; i < len(sampled); i++ {
		if sampled[i] <= sampled[i-1] {
			return nil, fmt.Errorf("phys: sample %d: %w", i, ErrUnsortedSamples)
		}
	}
	lo, hi := sampled[0], sampled[len(sampled)-1]
	for _, x := range resampled {
		if x < lo || x > hi {
			return nil, fmt.Errorf("phys: target %v outside [%v, %v]: %w", x, lo, hi, ErrInterpRange)
		}
	}

	out, err := sparam.New(len(resampled), s.Ports())
	if err != nil {
		return nil, err
	}
	re := make([]float64, s.Freqs())
	im := make([]float64, s.Freqs())
	for i := 0; i < s.Ports(); i++ {
		for j := 0; j < s.Ports(); j++ {
			for f := 0; f < s.Freqs(); f++ {
				v := s.At(f, i, j)
				re[f] = real(v)
				im[f] = imag(v)
			}
			var cre, cim interp.NaturalCubic
			if err := cre.Fit(sampled, re); err != nil {
				return nil, fmt.Errorf("phys: fit entry (%d,%d): %w", i, j, err)
			}
			if err := cim.Fit(sampled, im); err != nil {
				return nil, fmt.Errorf("phys: fit entry (%d,%d): %w", i, j, err)
			}
			for f, x := range resampled {
				out.Set(f, i, j, complex(cre.Predict(x), cim.Predict(x)))
			}
		}
	}
	return out, nil
}
