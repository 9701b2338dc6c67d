package circuit

import "errors"

// Sentinel errors for device construction and netlist operations.
// Callers match with errors.Is; wrapped context carries the offending port
// or device name.
var (
	// ErrModelValidation indicates a malformed device declaration: port count
	// and name list disagree, no ports at all, or a missing S-parameter
	// function. Detected at construction, never retried.
	ErrModelValidation = errors.New("circuit: invalid device declaration")

	// ErrInvalidEndpoint indicates a Connect endpoint that is neither a *Port
	// nor a *Device.
	ErrInvalidEndpoint = errors.New("circuit: endpoint must be a *Port or *Device")

	// ErrDomainMismatch indicates an optical↔electrical connection attempt.
	ErrDomainMismatch = errors.New("circuit: port domains do not match")

	// ErrNoFreePort indicates a device with no unconnected port of the
	// required domain left to infer.
	ErrNoFreePort = errors.New("circuit: no unconnected port available")

	// ErrPortBusy indicates an optical port that already hosts its one
	// physical connection.
	ErrPortBusy = errors.New("circuit: optical port already connected")

	// ErrSelfConnection indicates an attempt to connect a port to itself.
	ErrSelfConnection = errors.New("circuit: cannot connect a port to itself")

	// ErrNotConnected indicates a Disconnect on a port with no node.
	ErrNotConnected = errors.New("circuit: port is not connected")

	// ErrForeignPort indicates a port that does not resolve to a component of
	// the circuit being operated on.
	ErrForeignPort = errors.New("circuit: port does not belong to this circuit")

	// ErrEmptyCircuit indicates a reduction over a circuit with no connected
	// optical components.
	ErrEmptyCircuit = errors.New("circuit: no components to reduce")

	// ErrEmptySweep indicates an empty wavelength sweep.
	ErrEmptySweep = errors.New("circuit: wavelength sweep is empty")
)
