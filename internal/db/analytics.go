package db

import (
	"context"
	"fmt"
)

// JobTitleCount is one row of the most-analyzed job titles aggregate.
type JobTitleCount struct {
	JobTitle string `json:"job_title"`
	Count    int    `json:"count"`
}

// CountUsers returns the total number of registered users.
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountSkillResults returns the total number of persisted analyses.
func (db *DB) CountSkillResults(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM skill_results`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count skill results: %w", err)
	}
	return count, nil
}

// TopJobTitles returns the most-analyzed job titles, highest count first.
func (db *DB) TopJobTitles(ctx context.Context, limit int) ([]JobTitleCount, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT job_title, COUNT(*) AS analyses
		 FROM skill_results
		 GROUP BY job_title
		 ORDER BY analyses DESC, job_title ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate job titles: %w", err)
	}
	defer rows.Close()

	counts := make([]JobTitleCount, 0, limit)
	for rows.Next() {
		var c JobTitleCount
		if err := rows.Scan(&c.JobTitle, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan job title count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job title counts: %w", err)
	}
	return counts, nil
}
