package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/venkateshgajul/SkillmapAI/internal/types"
)

// Provider runs remote skill extraction, required-skill resolution and full
// gap analysis over an inference client. It implements
// analysis.RemoteProvider. Every error it returns is recoverable: callers
// substitute the deterministic local path and never surface it to users.
type Provider struct {
	client Client
}

// NewProvider wraps a client in a Provider.
func NewProvider(client Client) *Provider {
	return &Provider{client: client}
}

// ExtractSkills asks the model for the skills present in resume text. The
// response must be a JSON object with a current_skills string array.
func (p *Provider) ExtractSkills(ctx context.Context, resumeText string) ([]string, error) {
	raw, err := p.client.GenerateJSON(ctx, buildExtractSkillsPrompt(resumeText))
	if err != nil {
		return nil, fmt.Errorf("skill extraction call failed: %w", err)
	}

	raw = CleanJSONBlock(raw)
	if err := validateResponse(currentSkillsSchema, raw); err != nil {
		return nil, fmt.Errorf("skill extraction: %w", err)
	}

	var parsed struct {
		CurrentSkills []string `json:"current_skills"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("skill extraction: failed to decode response: %w", err)
	}
	return parsed.CurrentSkills, nil
}

// RequiredSkills asks the model for 8-12 essential skills for a job title.
// The response must be a JSON object with a required_skills string array.
func (p *Provider) RequiredSkills(ctx context.Context, jobTitle string) ([]string, error) {
	raw, err := p.client.GenerateJSON(ctx, buildRequiredSkillsPrompt(jobTitle))
	if err != nil {
		return nil, fmt.Errorf("required skills call failed: %w", err)
	}

	raw = CleanJSONBlock(raw)
	if err := validateResponse(requiredSkillsSchema, raw); err != nil {
		return nil, fmt.Errorf("required skills: %w", err)
	}

	var parsed struct {
		RequiredSkills []string `json:"required_skills"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("required skills: failed to decode response: %w", err)
	}
	return parsed.RequiredSkills, nil
}

// AnalyzeGap asks the model for a complete gap analysis document. All six
// keys must be present with the documented types.
func (p *Provider) AnalyzeGap(ctx context.Context, resumeText, jobTitle string, requiredSkills []string) (*types.SkillGapResult, error) {
	raw, err := p.client.GenerateJSON(ctx, buildAnalyzeGapPrompt(resumeText, jobTitle, requiredSkills))
	if err != nil {
		return nil, fmt.Errorf("gap analysis call failed: %w", err)
	}

	raw = CleanJSONBlock(raw)
	if err := validateResponse(gapAnalysisSchema, raw); err != nil {
		return nil, fmt.Errorf("gap analysis: %w", err)
	}

	var result types.SkillGapResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("gap analysis: failed to decode response: %w", err)
	}
	return &result, nil
}
