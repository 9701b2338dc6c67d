// Package qstate represents Gaussian quantum states of optical modes.
//
// A Gaussian state is fully described by the mean vector and covariance
// matrix of its quadrature operators (x, p). For N modes the mean vector
// has length 2N and the covariance matrix is 2N×2N, in one of two layouts:
//
//	XPXP - quadratures interleaved per mode: x1, p1, x2, p2, ...
//	XXPP - all positions first, then all momenta: x1..xN, p1..pN
//
// States are built per mode (Vacuum, Coherent, Squeezed, Thermal), composed
// into multi-mode products with Compose, and reshaped for simulation with
// AddVacuum (vacuum padding), Reorder (mode permutation) and the ordering
// conversions. The vacuum quadrature variance convention is ħ = 1/2, i.e.
// Var(x) = Var(p) = 1/4 for the vacuum.
//
// Each mode carries the circuit port it excites; vacuum padding modes carry
// no port. Port references must be unique within a state — the simulators
// reject anything else before computing.
//
// Errors:
//
//	ErrDuplicatePort   - the same port excited by two modes.
//	ErrEmptyState      - composing zero states.
//	ErrBadPermutation  - Reorder target is not a permutation of the modes.
package qstate
