// Package phys collects small numeric helpers shared across the library:
// polar/rectangular conversions, SI-suffix numeral parsing,
// wavelength↔frequency conversion, and cubic resampling of sampled
// S-parameter data onto a new frequency grid.
//
// Unit policy: conversions are explicit. Nothing in this module converts
// units implicitly: a sweep handed to a circuit is used as given, and
// these helpers exist for callers that need to normalize beforehand.
package phys
