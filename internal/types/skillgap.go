// Package types provides type definitions for structured data used throughout the skill-gap analyzer.
package types

import (
	"time"

	"github.com/google/uuid"
)

// SkillGapResult is the output of one skill-gap analysis. It is immutable
// once produced; persistence and identity assignment belong to the caller.
type SkillGapResult struct {
	JobTitle             string   `json:"job_title"`
	CurrentSkills        []string `json:"current_skills"`
	MissingSkills        []string `json:"missing_skills"`
	SkillMatchPercentage int      `json:"skill_match_percentage"`
	RecommendedCourses   []string `json:"recommended_courses"`
	RecommendedProjects  []string `json:"recommended_projects"`

	// ResultID is set only when the result was persisted for a user.
	ResultID uuid.UUID `json:"result_id,omitempty"`
}

// ProgressSample is a (job title, match percentage, timestamp) point derived
// from a persisted SkillGapResult, used for trend charting. Append-only.
type ProgressSample struct {
	JobTitle             string    `json:"job_title"`
	SkillMatchPercentage int       `json:"skill_match_percentage"`
	SkillResultID        uuid.UUID `json:"skill_result_id"`
	LoggedAt             time.Time `json:"logged_at"`
}

// AnalyzeRequest is the request body for a skill-gap analysis.
type AnalyzeRequest struct {
	ResumeID string `json:"resume_id" validate:"required"`
	JobTitle string `json:"job_title" validate:"required,min=1"`
}

// CourseRequest names a recommended course to mark complete or remove.
type CourseRequest struct {
	Course string `json:"course" validate:"required,min=1"`
}
