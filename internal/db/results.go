package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/venkateshgajul/SkillmapAI/internal/types"
)

// SaveSkillResult persists a completed analysis for a user and returns the
// new record's ID. A nil resumeID records the result without a resume link.
func (db *DB) SaveSkillResult(ctx context.Context, userID uuid.UUID, resumeID *uuid.UUID, result *types.SkillGapResult) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skill_results
			(user_id, resume_id, job_title, current_skills, missing_skills,
			 skill_match_percentage, recommended_courses, recommended_projects)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		userID, resumeID, result.JobTitle, result.CurrentSkills, result.MissingSkills,
		result.SkillMatchPercentage, result.RecommendedCourses, result.RecommendedProjects,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save skill result: %w", err)
	}
	return id, nil
}

// ListSkillResults returns a user's most recent analysis results, newest first.
func (db *DB) ListSkillResults(ctx context.Context, userID uuid.UUID, limit int) ([]SkillResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, COALESCE(resume_id, '00000000-0000-0000-0000-000000000000'),
			job_title, current_skills, missing_skills, skill_match_percentage,
			recommended_courses, recommended_projects, analyzed_at
		 FROM skill_results WHERE user_id = $1
		 ORDER BY analyzed_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill results: %w", err)
	}
	defer rows.Close()

	results := make([]SkillResult, 0)
	for rows.Next() {
		var r SkillResult
		if err := rows.Scan(&r.ID, &r.UserID, &r.ResumeID, &r.JobTitle, &r.CurrentSkills,
			&r.MissingSkills, &r.SkillMatchPercentage, &r.RecommendedCourses,
			&r.RecommendedProjects, &r.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill results: %w", err)
	}
	return results, nil
}
