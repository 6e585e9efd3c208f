package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsDisallowedSymbols(t *testing.T) {
	got := Normalize("Python* | Docker! {5 years}")
	assert.Equal(t, "Python Docker 5 years", got)
}

func TestNormalize_KeepsTechnicalSymbols(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"c++ and c#", "C++ / C#", "C++ / C#"},
		{"email", "dev@example.com", "dev@example.com"},
		{"ci/cd", "CI/CD pipelines", "CI/CD pipelines"},
		{"parens and ampersand", "R&D (2019)", "R&D (2019)"},
		{"dotted name", "Node.js, Vue.js", "Node.js, Vue.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("a   b\t\t c"))
}

func TestNormalize_CollapsesNewlineRuns(t *testing.T) {
	got := Normalize("Experience\n\n\n\n\nEducation")
	assert.Equal(t, "Experience\n\nEducation", got)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \t  "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Python*   Docker\n\n\n\nSQL!!",
		"plain text",
		"a\nb\n\nc",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalization must be idempotent for %q", input)
	}
}
