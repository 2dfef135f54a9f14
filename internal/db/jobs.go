package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

// CreateJob inserts a new job posting.
func (db *DB) CreateJob(ctx context.Context, j Job) (Job, error) {
	j.ID = uuid.New()
	criteria, err := json.Marshal(j.Criteria)
	if err != nil {
		return Job{}, fmt.Errorf("failed to marshal criteria: %w", err)
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (id, title, department, criteria, status, max_applicants)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		j.ID, j.Title, j.Department, criteria, j.Status, j.MaxApplicants,
	).Scan(&j.CreatedAt)
	if err != nil {
		return Job{}, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

// UpdateJobCriteria replaces a job's criteria document.
func (db *DB) UpdateJobCriteria(ctx context.Context, id uuid.UUID, c types.Criteria) error {
	criteria, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal criteria: %w", err)
	}
	tag, err := db.pool.Exec(ctx, `UPDATE jobs SET criteria = $1 WHERE id = $2`, criteria, id)
	if err != nil {
		return fmt.Errorf("failed to update job criteria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateJobStatus sets a job's status (e.g. active, closed).
func (db *DB) UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := db.pool.Exec(ctx, `UPDATE jobs SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetJob fetches one job by id.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (Job, error) {
	var j Job
	var criteria []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, department, criteria, status, max_applicants, created_at
		 FROM jobs WHERE id = $1`, id,
	).Scan(&j.ID, &j.Title, &j.Department, &criteria, &j.Status, &j.MaxApplicants, &j.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Job{}, ErrNotFound
	}
	if err != nil {
		return Job{}, fmt.Errorf("failed to get job: %w", err)
	}
	if err := json.Unmarshal(criteria, &j.Criteria); err != nil {
		return Job{}, fmt.Errorf("failed to unmarshal criteria: %w", err)
	}
	return j, nil
}

// ListJobs returns jobs, newest first.
func (db *DB) ListJobs(ctx context.Context, limit, offset int) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, department, criteria, status, max_applicants, created_at
		 FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		var criteria []byte
		if err := rows.Scan(&j.ID, &j.Title, &j.Department, &criteria, &j.Status, &j.MaxApplicants, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if err := json.Unmarshal(criteria, &j.Criteria); err != nil {
			return nil, fmt.Errorf("failed to unmarshal criteria: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// CountApplications returns how many applications a job has received.
func (db *DB) CountApplications(ctx context.Context, jobID uuid.UUID) (int, error) {
	var n int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return n, nil
}
