// Package analysis implements the skill-gap pipeline: text normalization,
// keyword skill extraction, required-skill resolution, gap matching and
// recommendations. All functions here are deterministic and offline; remote
// variants live behind the RemoteProvider interface.
package analysis

import (
	"regexp"
	"strings"
)

var (
	// disallowedChars matches everything except alphanumerics, whitespace and
	// the symbols that carry meaning in technical resumes (C++, C#, .NET,
	// CI/CD, email addresses, parenthesized acronyms).
	disallowedChars = regexp.MustCompile(`[^\w\s.,@+#\-/()&]`)
	spaceRuns       = regexp.MustCompile(`[ \t]+`)
	newlineRuns     = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans raw text extracted from a document so downstream keyword
// matching is stable. It strips non-whitelisted symbols, collapses space runs
// to one space and runs of 3+ newlines to 2. Idempotent; always returns a
// string, possibly empty.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	cleaned := disallowedChars.ReplaceAllString(text, " ")
	cleaned = spaceRuns.ReplaceAllString(cleaned, " ")
	cleaned = newlineRuns.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
