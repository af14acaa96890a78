package selector

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Mode selects how many transcripts one run processes.
type Mode string

const (
	// ModeLatest processes the single newest unprocessed transcript.
	ModeLatest Mode = "latest"
	// ModeAll processes every unprocessed transcript.
	ModeAll Mode = "all"
)

// ParseMode validates a mode value from flags or config.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.TrimSpace(value)) {
	case ModeLatest:
		return ModeLatest, nil
	case ModeAll:
		return ModeAll, nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected %q or %q)", value, ModeLatest, ModeAll)
	}
}

// Candidate pairs a transcript with its derived output script path.
type Candidate struct {
	Input      string
	Output     string
	OutputGone bool
}

// Processed reports whether the candidate's output script already exists.
func (c Candidate) Processed() bool { return !c.OutputGone }

var numberedPattern = regexp.MustCompile(`^output_(\d+)\.txt$`)

const (
	fallbackTranscript = "output.txt"
	fallbackScript     = "result.sh"
)

// OutputName maps a transcript filename to its script filename. The second
// return is false when the name matches neither recognized shape.
func OutputName(name string) (string, bool) {
	if numberedPattern.MatchString(name) {
		return strings.TrimSuffix(name, ".txt") + ".sh", true
	}
	if name == fallbackTranscript {
		return fallbackScript, true
	}
	return "", false
}

// Discover enumerates dir and returns the transcripts the given mode selects,
// deriving each output path under outDir. Without force, transcripts whose
// output already exists are excluded. The returned slice is empty when
// nothing qualifies; callers decide whether that is fatal.
func Discover(dir, outDir string, mode Mode, force bool) ([]Candidate, error) {
	candidates, err := Enumerate(dir, outDir)
	if err != nil {
		return nil, err
	}

	eligible := candidates[:0]
	for _, cand := range candidates {
		if force || cand.OutputGone {
			eligible = append(eligible, cand)
		}
	}

	if mode == ModeLatest {
		return latestOnly(eligible), nil
	}
	return eligible, nil
}

// Enumerate returns every recognized transcript in dir regardless of mode or
// processed state, numbered files in directory enumeration order followed by
// the output.txt fallback. Used directly by read-only listings.
func Enumerate(dir, outDir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read transcript directory %q: %w", dir, err)
	}

	var candidates []Candidate
	var fallback *Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		outName, ok := OutputName(name)
		if !ok {
			continue
		}
		cand := Candidate{
			Input:  filepath.Join(dir, name),
			Output: filepath.Join(outDir, outName),
		}
		if _, err := os.Stat(cand.Output); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("inspect output %q: %w", cand.Output, err)
			}
			cand.OutputGone = true
		}
		if name == fallbackTranscript {
			fallback = &cand
			continue
		}
		candidates = append(candidates, cand)
	}
	if fallback != nil {
		candidates = append(candidates, *fallback)
	}
	return candidates, nil
}

// latestOnly keeps the highest-numbered transcript, falling back to
// output.txt only when no numbered transcript qualifies.
func latestOnly(candidates []Candidate) []Candidate {
	best := -1
	var pick *Candidate
	var fallback *Candidate
	for i := range candidates {
		cand := &candidates[i]
		name := filepath.Base(cand.Input)
		if name == fallbackTranscript {
			fallback = cand
			continue
		}
		m := numberedPattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > best {
			best = n
			pick = cand
		}
	}
	if pick != nil {
		return []Candidate{*pick}
	}
	if fallback != nil {
		return []Candidate{*fallback}
	}
	return nil
}
