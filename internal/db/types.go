package db

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin marks a user allowed to read the analytics surface. Roles are
// assigned directly in the database; registration always creates RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered user record.
type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Role             string    `json:"role"`
	CompletedCourses []string  `json:"completed_courses"`
	CreatedAt        time.Time `json:"created_at"`
}

// Resume is a stored resume with its extracted text and skills.
type Resume struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	FileName        string    `json:"file_name"`
	ExtractedText   string    `json:"extracted_text,omitempty"`
	ExtractedSkills []string  `json:"extracted_skills"`
	UploadedAt      time.Time `json:"uploaded_at"`
}

// SkillResult is a persisted skill-gap analysis result.
type SkillResult struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	ResumeID             uuid.UUID `json:"resume_id,omitempty"`
	JobTitle             string    `json:"job_title"`
	CurrentSkills        []string  `json:"current_skills"`
	MissingSkills        []string  `json:"missing_skills"`
	SkillMatchPercentage int       `json:"skill_match_percentage"`
	RecommendedCourses   []string  `json:"recommended_courses"`
	RecommendedProjects  []string  `json:"recommended_projects"`
	AnalyzedAt           time.Time `json:"analyzed_at"`
}

// ProgressLog is one appended progress sample for an identified owner.
type ProgressLog struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	JobTitle             string    `json:"job_title"`
	SkillMatchPercentage int       `json:"skill_match_percentage"`
	SkillResultID        uuid.UUID `json:"skill_result_id,omitempty"`
	LoggedAt             time.Time `json:"logged_at"`
}
