package domain

import (
	"strings"
)

// NormalizeTeamName prepares a team name for storage and lookup:
//   - trims leading/trailing whitespace
//   - compresses runs of spaces into one
//
// Case is preserved; team names are displayed as entered.
func NormalizeTeamName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
