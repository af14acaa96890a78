// Package selector discovers transcript files awaiting script generation.
//
// Transcripts are named output_<N>.txt (mapping to output_<N>.sh) with a
// fallback output.txt (mapping to result.sh). Selection runs in one of two
// modes: latest picks the single highest-numbered unprocessed transcript,
// all returns every unprocessed transcript. A transcript counts as processed
// when its derived script already exists in the output directory; forcing
// ignores that check.
package selector
