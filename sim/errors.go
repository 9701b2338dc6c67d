package sim

import "errors"

// Sentinel errors for simulation setup and execution. Precondition errors
// from the circuit and state packages (circuit.ErrForeignPort,
// qstate.ErrDuplicatePort, ...) pass through unwrapped in meaning and are
// matched the same way, with errors.Is.
var (
	// ErrNoWavelengths indicates a simulation constructed without a sweep.
	ErrNoWavelengths = errors.New("sim: no wavelength sweep configured")

	// ErrNoDetectors indicates a classical run with no detectors attached.
	ErrNoDetectors = errors.New("sim: no detectors attached")

	// ErrUnknownPort indicates a laser or detector bound to a port that is
	// not an external port of the reduced circuit.
	ErrUnknownPort = errors.New("sim: port is not an external circuit port")

	// ErrNonPhysical indicates an S-matrix column carrying more than unit
	// power; no passive vacuum coupling can lift it to a unitary.
	ErrNonPhysical = errors.New("sim: s-matrix column exceeds unit power")
)
