// Package generate orchestrates one aurgen run: transcript selection,
// package extraction, script rendering, and file emission.
//
// A run holds a flock over the output directory so two concurrent runs cannot
// interleave whole-file writes. Processing is strictly sequential with
// strict-failure semantics: the first error aborts the run. The only
// tolerated per-file condition is skipping a transcript whose output already
// exists when forcing is off.
package generate
