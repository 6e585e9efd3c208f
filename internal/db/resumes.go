package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveResume stores an uploaded resume for a user and returns its ID.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, fileName, extractedText string, extractedSkills []string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, file_name, extracted_text, extracted_skills)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, fileName, extractedText, extractedSkills,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume owned by userID. Returns nil when not found.
func (db *DB) GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, file_name, extracted_text, extracted_skills, uploaded_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	).Scan(&r.ID, &r.UserID, &r.FileName, &r.ExtractedText, &r.ExtractedSkills, &r.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// ListResumes returns a user's most recent resumes, newest first, without
// the extracted text body.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID, limit int) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, file_name, extracted_skills, uploaded_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY uploaded_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := make([]Resume, 0)
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.UserID, &r.FileName, &r.ExtractedSkills, &r.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resumes: %w", err)
	}
	return resumes, nil
}
