package sim

import (
	"fmt"
	"math"

	"github.com/lightpath-sim/lightpath/circuit"
	"github.com/lightpath-sim/lightpath/phys"
)

// Defaults for simulation sources and detectors.
const (
	// DefaultLaserPower is the laser power in mW when no option overrides it.
	DefaultLaserPower = 1.0

	// DefaultLaserPhase is the laser phase in radians.
	DefaultLaserPhase = 0.0

	// DefaultResponsivity is the detector responsivity in A/W.
	DefaultResponsivity = 1.0
)

// Laser is an ideal monochromatic source bound to one or more external
// optical ports. The same laser feeds every listed port coherently.
type Laser struct {
	Ports []*circuit.Port
	Power float64 // mW
	Phase float64 // radians
}

// Amplitude returns the complex field amplitude √P·e^{iφ}.
func (l *Laser) Amplitude() complex128 {
	return phys.Rect(math.Sqrt(l.Power), l.Phase)
}

// LaserOption configures a laser at attachment time.
type LaserOption func(*Laser)

// WithPower sets the laser power in mW. Negative power is a programmer
// error and panics.
func WithPower(mw float64) LaserOption {
	if mw < 0 {
		panic(fmt.Sprintf("sim: negative laser power %v", mw))
	}
	return func(l *Laser) { l.Power = mw }
}

// WithPhase sets the laser phase in radians.
func WithPhase(rad float64) LaserOption {
	return func(l *Laser) { l.Phase = rad }
}

// DetectorResult holds one detector's readings after a run.
type DetectorResult struct {
	WL    []float64 // the simulated sweep
	Power []float64 // detected power per wavelength
}

// Detector is an ideal square-law photodetector bound to one external
// optical port. Result is populated by Run.
type Detector struct {
	Port         *circuit.Port
	Responsivity float64 // A/W
	Result       *DetectorResult
}

// DetectorOption configures detectors at attachment time.
type DetectorOption func(*Detector)

// WithResponsivity sets the detector responsivity in A/W. Negative
// responsivity is a programmer error and panics.
func WithResponsivity(aw float64) DetectorOption {
	if aw < 0 {
		panic(fmt.Sprintf("sim: negative responsivity %v", aw))
	}
	return func(d *Detector) { d.Responsivity = aw }
}
