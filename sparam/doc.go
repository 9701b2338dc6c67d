// Package sparam provides frequency-indexed scattering matrices and the
// network-reduction algebra that cascades them.
//
// A scattering (S-) matrix describes a linear n-port device: entry (i,j) is
// the complex amplitude ratio of the wave leaving port i to the wave
// entering port j, at one frequency. Matrix stacks one such n×n matrix per
// frequency sample, so a whole wavelength sweep is reduced in a single call.
//
// Two operations fold networks together:
//
//   - ConnectS joins port i of matrix A to port j of matrix B, producing the
//     (nA+nB−2)-port matrix of the combined network.
//   - InnerconnectS short-circuits two ports of the same matrix to each
//     other, producing the (n−2)-port matrix. ConnectS is implemented as a
//     block-diagonal composition followed by InnerconnectS, which closes the
//     infinite inter-reflection series at the junction in closed form.
//
// After a reduction the surviving ports are renumbered with their relative
// order preserved; callers that fold many connections must carry their own
// port→index mapping across calls (circuit.Circuit does exactly that).
//
// Frequency broadcasting: a matrix with a single frequency slice combines
// with a matrix of any sweep length, the singleton side being reused for
// every slice. Any other mismatch is ErrShapeMismatch.
//
// Errors:
//
//	ErrShapeMismatch - incompatible dimensions between operands.
//	ErrPortRange     - a port index is outside the matrix.
//	ErrDegenerate    - the junction denominator vanished (fully reflective
//	                   ports on both sides); the network has no steady state.
//	ErrEmptyMatrix   - a matrix with zero frequencies or zero ports.
package sparam
