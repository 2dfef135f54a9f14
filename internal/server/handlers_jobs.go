package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sayak1321/faculty-recruitment-system/internal/db"
	"github.com/Sayak1321/faculty-recruitment-system/internal/schemas"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

// CreateJobRequest represents the request body for POST /jobs. Criteria is
// kept raw so it can be schema-validated before decoding.
type CreateJobRequest struct {
	Title         string          `json:"title" validate:"required,min=1,max=300"`
	Department    string          `json:"department,omitempty" validate:"max=200"`
	MaxApplicants int             `json:"max_applicants,omitempty" validate:"min=0"`
	Criteria      json.RawMessage `json:"criteria" validate:"required"`
}

// UpdateCriteriaResponse reports the criteria change and how many stored
// applications were re-scored against it.
type UpdateCriteriaResponse struct {
	Job      db.Job `json:"job"`
	Rescored int    `json:"rescored"`
}

// UpdateStatusRequest represents a status change for a job or application
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// handleCreateJob creates a job posting with validated screening criteria
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, db.RoleAdmin) {
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	criteria, err := s.decodeCriteria(req.Criteria)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	job, err := s.db.CreateJob(r.Context(), db.Job{
		Title:         req.Title,
		Department:    req.Department,
		Criteria:      criteria,
		Status:        "active",
		MaxApplicants: req.MaxApplicants,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleListJobs returns job postings, newest first
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r, 50)
	jobs, err := s.db.ListJobs(r.Context(), limit, offset)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if jobs == nil {
		jobs = []db.Job{}
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleGetJob returns one job by id
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateCriteria replaces a job's criteria and re-scores every stored
// application against the new document
func (s *Server) handleUpdateCriteria(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, db.RoleAdmin) {
		return
	}
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	criteria, err := s.decodeCriteria(raw)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	if err := s.db.UpdateJobCriteria(r.Context(), id, criteria); err != nil {
		s.serviceError(w, err)
		return
	}

	rescored, err := s.screener.RescoreJob(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, UpdateCriteriaResponse{Job: job, Rescored: rescored})
}

// handleUpdateJobStatus opens or closes a job for applications
func (s *Server) handleUpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, db.RoleAdmin) {
		return
	}
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Status != "active" && req.Status != "closed" {
		s.errorResponse(w, http.StatusBadRequest, "status must be active or closed")
		return
	}

	if err := s.db.UpdateJobStatus(r.Context(), id, req.Status); err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": req.Status})
}

// decodeCriteria schema-validates a raw criteria document and decodes it
func (s *Server) decodeCriteria(raw json.RawMessage) (types.Criteria, error) {
	if err := schemas.ValidateCriteria(raw); err != nil {
		return types.Criteria{}, err
	}
	var c types.Criteria
	if err := json.Unmarshal(raw, &c); err != nil {
		return types.Criteria{}, &ErrValidation{Field: "criteria", Message: err.Error()}
	}
	return c, nil
}

// pathUUID parses a UUID path segment, writing a 400 on failure
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid "+name+": must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
