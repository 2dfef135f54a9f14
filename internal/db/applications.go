package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, job_id, candidate_name, email, phone, resume_text,
	parsed, match_info, reasons, score, eligible, status, created_at`

// CreateApplication inserts a submission together with its screening outputs.
func (db *DB) CreateApplication(ctx context.Context, a Application) (Application, error) {
	a.ID = uuid.New()
	parsed, matchInfo, reasons, err := marshalScreening(a)
	if err != nil {
		return Application{}, err
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO applications (id, job_id, candidate_name, email, phone, resume_text,
			parsed, match_info, reasons, score, eligible, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING created_at`,
		a.ID, a.JobID, a.CandidateName, a.Email, a.Phone, a.ResumeText,
		parsed, matchInfo, reasons, a.Score, a.Eligible, a.Status,
	).Scan(&a.CreatedAt)
	if err != nil {
		return Application{}, fmt.Errorf("failed to create application: %w", err)
	}
	return a, nil
}

// UpdateScreening stores a recomputed verdict and score for an application.
func (db *DB) UpdateScreening(ctx context.Context, a Application) error {
	parsed, matchInfo, reasons, err := marshalScreening(a)
	if err != nil {
		return err
	}
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET parsed = $1, match_info = $2, reasons = $3, score = $4, eligible = $5
		 WHERE id = $6`,
		parsed, matchInfo, reasons, a.Score, a.Eligible, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update screening: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateApplicationStatus moves an application through the workflow
// (received, shortlisted, rejected).
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetApplication fetches one application by id.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (Application, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	a, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Application{}, ErrNotFound
	}
	return a, err
}

// ListApplicationsByJob returns a job's applications ranked by score, highest
// first.
func (db *DB) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications
		 WHERE job_id = $1 ORDER BY score DESC, created_at ASC`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (Application, error) {
	var a Application
	var parsed, matchInfo, reasons []byte
	err := row.Scan(&a.ID, &a.JobID, &a.CandidateName, &a.Email, &a.Phone, &a.ResumeText,
		&parsed, &matchInfo, &reasons, &a.Score, &a.Eligible, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Application{}, pgx.ErrNoRows
		}
		return Application{}, fmt.Errorf("failed to scan application: %w", err)
	}
	if len(parsed) > 0 {
		if err := json.Unmarshal(parsed, &a.Parsed); err != nil {
			return Application{}, fmt.Errorf("failed to unmarshal parsed resume: %w", err)
		}
	}
	if len(matchInfo) > 0 {
		if err := json.Unmarshal(matchInfo, &a.MatchInfo); err != nil {
			return Application{}, fmt.Errorf("failed to unmarshal match info: %w", err)
		}
	}
	if len(reasons) > 0 {
		if err := json.Unmarshal(reasons, &a.Reasons); err != nil {
			return Application{}, fmt.Errorf("failed to unmarshal reasons: %w", err)
		}
	}
	return a, nil
}

func marshalScreening(a Application) (parsed, matchInfo, reasons []byte, err error) {
	if parsed, err = json.Marshal(a.Parsed); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal parsed resume: %w", err)
	}
	if matchInfo, err = json.Marshal(a.MatchInfo); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal match info: %w", err)
	}
	if reasons, err = json.Marshal(a.Reasons); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal reasons: %w", err)
	}
	return parsed, matchInfo, reasons, nil
}
