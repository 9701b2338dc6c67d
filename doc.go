// Package lightpath is your in-memory workbench for wiring, reducing, and
// simulating photonic circuits — from scattering-matrix primitives to
// classical sweeps and Gaussian quantum states.
//
// 🚀 What is lightpath?
//
//	A small, explicit library that brings together:
//		• S-parameter algebra: block composition, port cascading, feedback folding
//		• Netlists: optical & electrical connections, port inference, free-port views
//		• Circuit reduction: fold every internal link down to the external response
//		• Classical simulation: lasers in, detected optical power out
//		• Quantum simulation: Gaussian states through lifted unitaries
//		• Numeric helpers: SI-suffix parsing, wavelength↔frequency, cubic resampling
//
// ✨ Why choose lightpath?
//
//   - Explicit units – sweeps are used as given, conversions are yours to call
//   - Honest errors – every failure is a wrapped sentinel you can errors.Is
//   - Deterministic – node ids and reduction order never depend on map iteration
//
// Everything is organized under five subpackages:
//
//	sparam/  — frequency-resolved scattering matrices & network reduction
//	circuit/ — devices, ports, netlist connectivity & circuit-level reduction
//	qstate/  — Gaussian states: vacuum, coherent, squeezed, thermal
//	sim/     — classical and quantum simulation drivers
//	phys/    — numerals, unit conversion, interpolation
//
// Quick ASCII example:
//
//	laser ──▶ wg1.o0 [wg1] wg1.o1 ── wg2.o0 [wg2] wg2.o1 ──▶ detector
//
//	two waveguides cascaded into one link; the reduction multiplies their
//	transmissions and the detector squares the surviving field.
//
//	go get github.com/lightpath-sim/lightpath
package lightpath
