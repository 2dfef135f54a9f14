package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// CreateEvaluation inserts a panelist's assessment of an application.
func (db *DB) CreateEvaluation(ctx context.Context, e Evaluation) (Evaluation, error) {
	e.ID = uuid.New()
	scores, err := json.Marshal(e.Scores)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to marshal scores: %w", err)
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO evaluations (id, application_id, panelist_name, scores, comments)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		e.ID, e.ApplicationID, e.PanelistName, scores, e.Comments,
	).Scan(&e.CreatedAt)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to create evaluation: %w", err)
	}
	return e, nil
}

// ListEvaluations returns all evaluations for an application, oldest first.
func (db *DB) ListEvaluations(ctx context.Context, applicationID uuid.UUID) ([]Evaluation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, application_id, panelist_name, scores, comments, created_at
		 FROM evaluations WHERE application_id = $1 ORDER BY created_at ASC`, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var evals []Evaluation
	for rows.Next() {
		var e Evaluation
		var scores []byte
		if err := rows.Scan(&e.ID, &e.ApplicationID, &e.PanelistName, &scores, &e.Comments, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		if len(scores) > 0 {
			if err := json.Unmarshal(scores, &e.Scores); err != nil {
				return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
			}
		}
		evals = append(evals, e)
	}
	return evals, rows.Err()
}

// InsertReport records a generated report file for a job.
func (db *DB) InsertReport(ctx context.Context, jobID uuid.UUID, filePath string) (Report, error) {
	r := Report{ID: uuid.New(), JobID: jobID, FilePath: filePath}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO reports (id, job_id, file_path) VALUES ($1, $2, $3) RETURNING created_at`,
		r.ID, r.JobID, r.FilePath,
	).Scan(&r.CreatedAt)
	if err != nil {
		return Report{}, fmt.Errorf("failed to insert report: %w", err)
	}
	return r, nil
}
