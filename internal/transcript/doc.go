// Package transcript extracts package names from saved AUR helper output.
//
// Two line shapes are recognized: indented optional-dependency lines of the
// form "  name: description" and grouped summary lines of the form
// "AUR Explicit (3): foo, bar, baz". Extraction is a single pass per shape;
// candidates are then normalized (trailing punctuation stripped, repository
// prefixes such as "extra/" dropped), filtered through a conservative
// package-name pattern, and deduplicated preserving first appearance.
//
// Everything in this package is a pure function over the transcript text, so
// callers own all file I/O.
package transcript
