package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractSkillsPrompt_TruncatesResumeText(t *testing.T) {
	long := strings.Repeat("x", promptTextLimit+500)

	prompt := buildExtractSkillsPrompt(long)

	assert.Contains(t, prompt, strings.Repeat("x", promptTextLimit))
	assert.NotContains(t, prompt, strings.Repeat("x", promptTextLimit+1))
}

func TestBuildAnalyzeGapPrompt(t *testing.T) {
	prompt := buildAnalyzeGapPrompt("my resume", "Backend Developer", []string{"Python", "Docker"})

	assert.Contains(t, prompt, "Backend Developer")
	assert.Contains(t, prompt, "Python, Docker")
	assert.Contains(t, prompt, "my resume")
}

func TestBuildAnalyzeGapPrompt_NoRequiredSkills(t *testing.T) {
	prompt := buildAnalyzeGapPrompt("my resume", "Backend Developer", nil)

	assert.Contains(t, prompt, "analyze from context")
}
