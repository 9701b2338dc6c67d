// Package circuit models a photonic circuit as a netlist of typed ports and
// reduces it to a single circuit-level S-matrix.
//
// A Device is a named component instance with ordered optical and electrical
// ports and a pure function mapping a wavelength sweep to its S-matrix. The
// package owns no component physics: anything that can declare its ports and
// produce S-parameters plugs in through DeviceSpec.
//
// A Circuit tracks connections in two arenas of integer-keyed nodes:
//
//   - optical nodes hold exactly two ports — physical waveguide joints are
//     point-to-point, and multi-way optical junctions are modeled as explicit
//     junction devices, never as wider nodes;
//   - electrical nodes hold any number of ports (a net/bus) and merge
//     whenever a connection overlaps existing nodes, so membership is
//     transitive: every member sees every other member as connected.
//
// Ports store only the id of their node; peer lookups go through the
// circuit's node table, so there are no port-to-port back-references to keep
// consistent. Node ids are monotonically increasing per domain and are never
// reused within a circuit's lifetime, even after Disconnect, so a stale id
// can never resolve to a different, later node.
//
// Connect accepts explicit ports or bare devices; for a bare device the next
// unconnected port is inferred, optical preferred over electrical. Connect
// and Disconnect are atomic: on failure the node tables are untouched.
//
// SParams folds every optical connection, in node-id (insertion) order,
// through the sparam reduction engine, carrying the port→index bookkeeping
// across reductions, and returns the reduced matrix together with the
// ordered surviving (external) ports. The cascade formula is associative, so
// the result is order-independent; the deterministic fold order exists to
// make runs reproducible bit-for-bit.
//
// Circuits are not safe for concurrent mutation; callers that build circuits
// from several goroutines must serialize access externally.
//
// Errors:
//
//	ErrModelValidation - malformed device declaration.
//	ErrInvalidEndpoint - endpoint is neither a *Port nor a *Device.
//	ErrDomainMismatch  - optical port connected to electrical, or vice versa.
//	ErrNoFreePort      - device has no unconnected port of the needed domain.
//	ErrPortBusy        - optical port already hosts a connection.
//	ErrSelfConnection  - port connected to itself.
//	ErrNotConnected    - disconnect of an unconnected port.
//	ErrForeignPort     - port does not belong to this circuit.
//	ErrEmptyCircuit    - no connected components to reduce.
//	ErrEmptySweep      - empty wavelength sweep.
package circuit
