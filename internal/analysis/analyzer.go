package analysis

import (
	"context"

	"github.com/venkateshgajul/SkillmapAI/internal/types"
)

// RemoteProvider is the contract for an external inference service that can
// extract skills, resolve required skills for a free-text job title, and run
// a full skill-gap analysis. Every method may fail; failures are always
// recoverable and answered by the deterministic local pipeline.
type RemoteProvider interface {
	ExtractSkills(ctx context.Context, resumeText string) ([]string, error)
	RequiredSkills(ctx context.Context, jobTitle string) ([]string, error)
	AnalyzeGap(ctx context.Context, resumeText, jobTitle string, requiredSkills []string) (*types.SkillGapResult, error)
}

// Analyzer runs the skill-gap pipeline: extraction, required-skill
// resolution, matching and recommendation. It is stateless; concurrent
// analyses need no locking. A nil remote provider disables the remote paths
// and every operation runs fully offline.
type Analyzer struct {
	remote RemoteProvider
}

// New creates an Analyzer. remote may be nil.
func New(remote RemoteProvider) *Analyzer {
	return &Analyzer{remote: remote}
}

// RemoteEnabled reports whether a remote provider is configured.
func (a *Analyzer) RemoteEnabled() bool {
	return a.remote != nil
}

// ExtractSkills returns the current skills found in resume text. The remote
// extractor is tried first when configured; the keyword extractor answers on
// any remote failure, so this never fails and never returns nil.
func (a *Analyzer) ExtractSkills(ctx context.Context, resumeText string) []string {
	var primary func(context.Context) ([]string, error)
	if a.remote != nil {
		primary = func(ctx context.Context) ([]string, error) {
			skills, err := a.remote.ExtractSkills(ctx, resumeText)
			if err != nil {
				return nil, err
			}
			return sortedSet(skills), nil
		}
	}
	skills := resolveWithFallback(ctx, "extract_skills", primary, func() []string {
		return ExtractSkills(resumeText)
	})
	if len(skills) == 0 {
		// A remote extractor may legitimately return an empty array; the
		// keyword extractor is still the last word in that case.
		skills = ExtractSkills(resumeText)
	}
	return skills
}

// RequiredSkills resolves the required skill set for a job title. Exact
// preset lookup wins outright; unrecognized titles go through the remote
// resolver when configured, then the substring-keyed default table, then the
// generic skill list. The result is never empty.
func (a *Analyzer) RequiredSkills(ctx context.Context, jobTitle string) []string {
	if skills, ok := LookupPresetSkills(jobTitle); ok {
		return skills
	}

	var primary func(context.Context) ([]string, error)
	if a.remote != nil {
		primary = func(ctx context.Context) ([]string, error) {
			return a.remote.RequiredSkills(ctx, jobTitle)
		}
	}
	skills := resolveWithFallback(ctx, "required_skills", primary, func() []string {
		return DefaultSkillsForTitle(jobTitle)
	})
	if len(skills) == 0 {
		skills = DefaultSkillsForTitle(jobTitle)
	}
	return skills
}

// Analyze produces a complete SkillGapResult for a resume against a job
// title. When a remote provider is configured the full remote analysis is
// tried first; any failure degrades to the local pipeline built from
// currentSkills (or keyword extraction over resumeText when currentSkills is
// empty), the gap matcher and the recommendation engine.
func (a *Analyzer) Analyze(ctx context.Context, resumeText string, currentSkills []string, jobTitle string) *types.SkillGapResult {
	requiredSkills := a.RequiredSkills(ctx, jobTitle)

	var primary func(context.Context) (*types.SkillGapResult, error)
	if a.remote != nil {
		primary = func(ctx context.Context) (*types.SkillGapResult, error) {
			return a.remote.AnalyzeGap(ctx, resumeText, jobTitle, requiredSkills)
		}
	}
	return resolveWithFallback(ctx, "analyze_gap", primary, func() *types.SkillGapResult {
		return a.localResult(resumeText, currentSkills, jobTitle, requiredSkills)
	})
}

// localResult runs the deterministic pipeline: extraction (if needed),
// matching, recommendation.
func (a *Analyzer) localResult(resumeText string, currentSkills []string, jobTitle string, requiredSkills []string) *types.SkillGapResult {
	if len(currentSkills) == 0 {
		currentSkills = ExtractSkills(resumeText)
	}

	match := Match(currentSkills, requiredSkills)
	recs := Recommend(match.Missing)

	return &types.SkillGapResult{
		JobTitle:             jobTitle,
		CurrentSkills:        currentSkills,
		MissingSkills:        match.Missing,
		SkillMatchPercentage: match.Percentage,
		RecommendedCourses:   recs.Courses,
		RecommendedProjects:  recs.Projects,
	}
}
