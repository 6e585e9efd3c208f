package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SaveProgressLog appends one progress sample for a user.
func (db *DB) SaveProgressLog(ctx context.Context, userID uuid.UUID, jobTitle string, percentage int, skillResultID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO progress_logs (user_id, job_title, skill_match_percentage, skill_result_id)
		 VALUES ($1, $2, $3, $4)`,
		userID, jobTitle, percentage, skillResultID,
	)
	if err != nil {
		return fmt.Errorf("failed to save progress log: %w", err)
	}
	return nil
}

// ListProgressLogs returns a user's progress samples in chronological order
// for trend charting.
func (db *DB) ListProgressLogs(ctx context.Context, userID uuid.UUID, limit int) ([]ProgressLog, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_title, skill_match_percentage,
			COALESCE(skill_result_id, '00000000-0000-0000-0000-000000000000'), logged_at
		 FROM progress_logs WHERE user_id = $1
		 ORDER BY logged_at ASC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress logs: %w", err)
	}
	defer rows.Close()

	logs := make([]ProgressLog, 0)
	for rows.Next() {
		var l ProgressLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.JobTitle, &l.SkillMatchPercentage, &l.SkillResultID, &l.LoggedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read progress logs: %w", err)
	}
	return logs, nil
}
