package screening

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Sayak1321/faculty-recruitment-system/internal/db"
)

// rescoreConcurrency bounds how many applications are re-evaluated in
// parallel during a criteria change.
const rescoreConcurrency = 4

// Service couples the engine with the document store: it screens incoming
// applications and re-scores stored ones when criteria change.
type Service struct {
	store  *db.DB
	engine *Engine
}

// NewService creates a screening service over the given store.
func NewService(store *db.DB, engine *Engine) *Service {
	return &Service{store: store, engine: engine}
}

// Engine exposes the underlying pipeline for callers that screen text without
// persistence.
func (s *Service) Engine() *Engine {
	return s.engine
}

// SubmitApplication screens a resume against the job's criteria and persists
// the application with its verdict and score. It enforces the job's
// max-applicants cap when one is set.
func (s *Service) SubmitApplication(ctx context.Context, jobID uuid.UUID, candidateName, resumeText string) (db.Application, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return db.Application{}, fmt.Errorf("failed to load job: %w", err)
	}

	if job.MaxApplicants > 0 {
		n, err := s.store.CountApplications(ctx, jobID)
		if err != nil {
			return db.Application{}, err
		}
		if n >= job.MaxApplicants {
			return db.Application{}, ErrJobFull{JobID: jobID}
		}
	}

	result := s.engine.Screen(resumeText, job.Criteria)

	app := db.Application{
		JobID:         jobID,
		CandidateName: candidateName,
		Email:         result.Parsed.Email,
		Phone:         result.Parsed.Phone,
		ResumeText:    resumeText,
		Parsed:        result.Parsed,
		MatchInfo:     result.MatchInfo,
		Reasons:       result.Reasons,
		Score:         result.Score,
		Eligible:      result.Eligible,
		Status:        db.StatusReceived,
	}
	return s.store.CreateApplication(ctx, app)
}

// RescoreJob re-evaluates every application of a job against its current
// criteria. Each evaluation is independent, so they run concurrently; the
// first storage error cancels the rest.
func (s *Service) RescoreJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to load job: %w", err)
	}
	apps, err := s.store.ListApplicationsByJob(ctx, jobID)
	if err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rescoreConcurrency)
	for _, app := range apps {
		g.Go(func() error {
			result := s.engine.Evaluate(app.Parsed, job.Criteria)
			app.MatchInfo = result.MatchInfo
			app.Reasons = result.Reasons
			app.Score = result.Score
			app.Eligible = result.Eligible
			return s.store.UpdateScreening(ctx, app)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("failed to rescore job: %w", err)
	}
	return len(apps), nil
}

// ErrJobFull indicates a job has reached its max-applicants cap.
type ErrJobFull struct {
	JobID uuid.UUID
}

func (e ErrJobFull) Error() string {
	return fmt.Sprintf("job %s is not accepting more applications", e.JobID)
}
