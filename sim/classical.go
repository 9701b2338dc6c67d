package sim

import (
	"fmt"
	"math/cmplx"

	"github.com/lightpath-sim/lightpath/circuit"
)

// ClassicalResult is the outcome of a classical run.
type ClassicalResult struct {
	// WL is the simulated wavelength sweep.
	WL []float64

	// SDict maps each detector port (by its "device.port" name) to the
	// summed complex amplitude arriving there, per wavelength.
	SDict map[string][]complex128

	// Detectors are the attached detectors with their Result populated, in
	// attachment order.
	Detectors []*Detector
}

// Classical evaluates steady-state transmitted amplitudes and detected
// power on a circuit. Attach lasers and detectors, then Run.
type Classical struct {
	ckt       *circuit.Circuit
	wl        []float64
	lasers    []*Laser
	detectors []*Detector
}

// NewClassical binds a simulation to a circuit and a wavelength sweep.
// An empty sweep is rejected up front: there is nothing to evaluate over.
func NewClassical(ckt *circuit.Circuit, wl []float64) (*Classical, error) {
	if len(wl) == 0 {
		return nil, ErrNoWavelengths
	}
	sweep := make([]float64, len(wl))
	copy(sweep, wl)
	return &Classical{ckt: ckt, wl: sweep}, nil
}

// AddLaser attaches one ideal laser to the given external ports. Every
// listed port is fed coherently by the same source.
func (s *Classical) AddLaser(ports []*circuit.Port, opts ...LaserOption) *Laser {
	l := &Laser{
		Ports: ports,
		Power: DefaultLaserPower,
		Phase: DefaultLaserPhase,
	}
	for _, opt := range opts {
		opt(l)
	}
	s.lasers = append(s.lasers, l)
	return l
}

// AddDetector attaches one ideal detector per given port and returns them
// in port order.
func (s *Classical) AddDetector(ports []*circuit.Port, opts ...DetectorOption) []*Detector {
	out := make([]*Detector, 0, len(ports))
	for _, p := range ports {
		d := &Detector{Port: p, Responsivity: DefaultResponsivity}
		for _, opt := range opts {
			opt(d)
		}
		s.detectors = append(s.detectors, d)
		out = append(out, d)
	}
	return out
}

// Run reduces the circuit over the sweep and evaluates every detector.
// It fails before computing when no detector is attached, and fails without
// partial results when any bound port is not external to the reduced
// circuit.
func (s *Classical) Run() (*ClassicalResult, error) {
	if len(s.detectors) == 0 {
		return nil, ErrNoDetectors
	}

	red, ports, err := s.ckt.SParams(s.wl)
	if err != nil {
		return nil, err
	}
	index := make(map[*circuit.Port]int, len(ports))
	for i, p := range ports {
		index[p] = i
	}
	lookup := func(p *circuit.Port) (int, error) {
		i, ok := index[p]
		if !ok {
			return 0, fmt.Errorf("sim: %s: %w", p, ErrUnknownPort)
		}
		return i, nil
	}
	// Validate every binding before touching any result state.
	for _, l := range s.lasers {
		for _, p := range l.Ports {
			if _, err := lookup(p); err != nil {
				return nil, err
			}
		}
	}
	for _, d := range s.detectors {
		if _, err := lookup(d.Port); err != nil {
			return nil, err
		}
	}

	// A circuit of purely dispersionless devices reduces to a single slice;
	// it is broadcast across the sweep here.
	slice := func(f int) int {
		if red.Freqs() == 1 {
			return 0
		}
		return f
	}
	sdict := make(map[string][]complex128, len(s.detectors))
	result := &ClassicalResult{WL: s.wl, SDict: sdict, Detectors: s.detectors}

	for _, d := range s.detectors {
		out, _ := lookup(d.Port)
		sum := make([]complex128, len(s.wl))
		for _, l := range s.lasers {
			amp := l.Amplitude()
			for _, lp := range l.Ports {
				in, _ := lookup(lp)
				for f := range s.wl {
					sum[f] += red.At(slice(f), out, in) * amp
				}
			}
		}
		sdict[d.Port.String()] = sum

		power := make([]float64, len(s.wl))
		for f := range sum {
			a := cmplx.Abs(sum[f])
			power[f] = d.Responsivity * a * a
		}
		d.Result = &DetectorResult{WL: s.wl, Power: power}
	}
	return result, nil
}
