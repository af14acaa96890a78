package transcript

import "regexp"

// tokenPattern is the conservative shape of a plausible package name: a
// lowercase alphanumeric start followed by lowercase alphanumerics plus
// the characters + _ . @ and -.
var tokenPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9+_.@-]*$`)

// ValidToken reports whether value is a plausible package name. Candidates
// failing this check are dropped silently rather than surfaced as errors.
func ValidToken(value string) bool {
	return tokenPattern.MatchString(value)
}
