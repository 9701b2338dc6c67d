// Package sim drives reduced circuits through classical and quantum
// simulations.
//
// Classical evaluates steady-state transmission: ideal monochromatic lasers
// and square-law detectors are bound to the circuit's external optical
// ports; Run reduces the circuit S-matrix over the wavelength sweep, sums
// each detector's laser contributions √P·e^{iφ}·S[out,in], and reports
// detected power responsivity·|sum|² per wavelength.
//
// Quantum propagates a Gaussian state through the same reduced matrix. A
// lossy S-matrix is first lifted to a unitary over doubled modes
// (ToUnitary): one vacuum/loss port per physical port restores power
// conservation column by column. The input state is padded with vacuum for
// every unexcited mode, converted to xxpp quadrature ordering, and pushed
// through the real symplectic transform [[Re,−Im],[Im,Re]] of each
// wavelength's unitary: mean′ = T·mean, cov′ = T·cov·Tᵀ.
//
// Both drivers fail before any computation when their preconditions do not
// hold; a Run either completes or returns an error, never partial results.
//
// Errors:
//
//	ErrNoWavelengths - simulation constructed without a sweep.
//	ErrNoDetectors   - classical run with nothing to measure.
//	ErrUnknownPort   - laser/detector port is not an external port of the
//	                   reduced circuit.
//	ErrNonPhysical   - an S-matrix column carries more than unit power, so
//	                   no passive vacuum coupling can complete it.
package sim
