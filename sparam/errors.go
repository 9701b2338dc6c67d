package sparam

import "errors"

// Sentinel errors for S-matrix construction and reduction.
// Context is added by wrapping with fmt.Errorf("...: %w", ErrX); callers
// match with errors.Is.
var (
	// ErrShapeMismatch indicates incompatible dimensions between operands:
	// ragged input data, or two sweeps of different non-singleton lengths.
	ErrShapeMismatch = errors.New("sparam: shape mismatch")

	// ErrPortRange indicates a port index outside the matrix, or a reduction
	// that names the same port twice.
	ErrPortRange = errors.New("sparam: port index out of range")

	// ErrDegenerate indicates a vanishing junction denominator: both sides of
	// the joined connection are fully reflective and the inter-reflection
	// series does not converge. Reductions fail rather than emit Inf/NaN.
	ErrDegenerate = errors.New("sparam: degenerate junction (non-convergent reflection)")

	// ErrEmptyMatrix indicates a matrix with zero frequency slices or zero ports.
	ErrEmptyMatrix = errors.New("sparam: empty matrix")
)
