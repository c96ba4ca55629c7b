package importers

import "strings"

// splitFullName splits a display name on whitespace into first, middle
// and last parts: one token is a first name only, two are first/last,
// three or more become first, middle = second token, last = the rest
// rejoined with spaces.
//
// This is best-effort with known failure modes: surnames with internal
// spaces and family-name-first orderings come out wrong. Kept as-is
// deliberately; see DESIGN.md.
func splitFullName(fullName string) (first, middle, last string) {
	tokens := strings.Fields(fullName)
	switch len(tokens) {
	case 0:
		return "", "", ""
	case 1:
		return tokens[0], "", ""
	case 2:
		return tokens[0], "", tokens[1]
	default:
		return tokens[0], tokens[1], strings.Join(tokens[2:], " ")
	}
}
