package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

// User roles.
const (
	RoleAdmin     = "admin"
	RoleCandidate = "candidate"
	RolePanel     = "panel"
)

// Application statuses.
const (
	StatusReceived    = "received"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
)

// User is a registered account (admin, candidate or panelist).
type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Department   string    `json:"department,omitempty"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Job is a posting with its screening criteria.
type Job struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Department    string         `json:"department,omitempty"`
	Criteria      types.Criteria `json:"criteria"`
	Status        string         `json:"status"`
	MaxApplicants int            `json:"max_applicants"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Application is one candidate's submission to a job, together with the
// screening outputs computed for it.
type Application struct {
	ID            uuid.UUID          `json:"id"`
	JobID         uuid.UUID          `json:"job_id"`
	CandidateName string             `json:"candidate_name"`
	Email         string             `json:"email,omitempty"`
	Phone         string             `json:"phone,omitempty"`
	ResumeText    string             `json:"-"`
	Parsed        types.ParsedResume `json:"parsed"`
	MatchInfo     types.MatchInfo    `json:"match_info"`
	Reasons       []string           `json:"reasons"`
	Score         float64            `json:"score"`
	Eligible      bool               `json:"eligible"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Evaluation is a panelist's manual assessment of an application.
type Evaluation struct {
	ID            uuid.UUID          `json:"id"`
	ApplicationID uuid.UUID          `json:"application_id"`
	PanelistName  string             `json:"panelist_name"`
	Scores        map[string]float64 `json:"scores"`
	Comments      string             `json:"comments,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Report records a generated ranking workbook for a job.
type Report struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	FilePath  string    `json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}
