package transcript

import (
	"bufio"
	"regexp"
	"strings"
)

var (
	// optionalDepPattern matches indented "name: description" lines emitted
	// when a helper lists optional dependencies.
	optionalDepPattern = regexp.MustCompile(`^\s+(\S+):\s`)

	// summaryPattern matches grouped summary lines such as
	// "AUR Explicit (3): foo, bar, baz". The category and count anchor the
	// match; only the comma-separated tail is used.
	summaryPattern = regexp.MustCompile(`^(AUR|Sync) (Explicit|Dependency|Make Dependency|Check Dependency) \(\d+\):\s*(.+)$`)
)

// OptionalDeps returns the candidate tokens from optional-dependency lines in
// file order. Candidates are raw captures: not validated, not deduplicated.
func OptionalDeps(text string) []string {
	var candidates []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		if m := optionalDepPattern.FindStringSubmatch(scanner.Text()); m != nil {
			candidates = append(candidates, m[1])
		}
	}
	return candidates
}

// SummaryLists returns the candidate tokens from grouped summary lines in
// file order, splitting each matched tail on commas and trimming whitespace.
func SummaryLists(text string) []string {
	var candidates []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		m := summaryPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		for _, field := range strings.Split(m[3], ",") {
			field = strings.TrimSpace(field)
			if field != "" {
				candidates = append(candidates, field)
			}
		}
	}
	return candidates
}

// Packages runs both extractors over text (optional-dependency lines first,
// summary lines second), normalizes every candidate, and returns the unique
// surviving tokens ordered by first appearance.
func Packages(text string) []string {
	candidates := OptionalDeps(text)
	candidates = append(candidates, SummaryLists(text)...)

	seen := make(map[string]struct{}, len(candidates))
	packages := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		token := Normalize(candidate)
		if !ValidToken(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		packages = append(packages, token)
	}
	return packages
}

// Normalize strips one trailing punctuation character (colon, comma,
// semicolon, or period) and drops any repository-qualifier prefix, keeping
// only the segment after the last slash ("extra/foo" becomes "foo").
func Normalize(candidate string) string {
	if n := len(candidate); n > 0 {
		switch candidate[n-1] {
		case ':', ',', ';', '.':
			candidate = candidate[:n-1]
		}
	}
	if idx := strings.LastIndexByte(candidate, '/'); idx >= 0 {
		candidate = candidate[idx+1:]
	}
	return candidate
}
