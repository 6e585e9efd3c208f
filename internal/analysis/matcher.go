package analysis

import (
	"math"
	"strings"
)

// GapMatch is the result of reconciling current skills against required skills.
type GapMatch struct {
	Matched    []string
	Missing    []string
	Percentage int
}

// skillsEquivalent reports whether two skill names refer to the same skill.
// After lowercasing and trimming, either string containing the other counts
// as a match, so "React" pairs with "React Native" in both directions. The
// rule is deliberately permissive; very short skill names can over-match.
func skillsEquivalent(a, b string) bool {
	na := normalizeSkill(a)
	nb := normalizeSkill(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// Match computes matched and missing required skills plus an integer match
// percentage in [0, 100]. A required skill is matched when at least one
// current skill is substring-equivalent to it. Zero required skills yields
// zero percent by policy. Never fails, even on empty inputs.
func Match(currentSkills, requiredSkills []string) GapMatch {
	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0, len(requiredSkills))

	for _, required := range requiredSkills {
		found := false
		for _, current := range currentSkills {
			if skillsEquivalent(current, required) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, required)
		} else {
			missing = append(missing, required)
		}
	}

	percentage := 0
	if len(requiredSkills) > 0 {
		percentage = int(math.Round(float64(len(matched)) / float64(len(requiredSkills)) * 100))
	}

	return GapMatch{Matched: matched, Missing: missing, Percentage: percentage}
}
