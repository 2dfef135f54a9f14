package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/Sayak1321/faculty-recruitment-system/internal/db"
	"github.com/Sayak1321/faculty-recruitment-system/internal/ingestion"
)

// maxResumeUpload caps resume uploads at 10 MiB.
const maxResumeUpload = 10 << 20

// SubmitApplicationRequest is the JSON form of an application submission.
// Multipart submissions carry the same fields plus a resume file.
type SubmitApplicationRequest struct {
	CandidateName string `json:"candidate_name" validate:"required,min=1,max=200"`
	ResumeText    string `json:"resume_text" validate:"required,min=1"`
}

// handleSubmitApplication accepts a resume as JSON text or as a multipart
// file upload, screens it against the job's criteria and stores the result
func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if job.Status == "closed" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "job is closed to applications")
		return
	}

	candidateName, resumeText, ok := s.readSubmission(w, r)
	if !ok {
		return
	}

	app, err := s.screener.SubmitApplication(r.Context(), jobID, candidateName, resumeText)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, app)
}

// readSubmission decodes a submission from either a multipart form with a
// resume file or a JSON body with raw text. Returns ok=false when an error
// response has already been written.
func (s *Server) readSubmission(w http.ResponseWriter, r *http.Request) (name, text string, ok bool) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req SubmitApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return "", "", false
		}
		if err := s.validator.Struct(req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
			return "", "", false
		}
		return req.CandidateName, req.ResumeText, true
	}

	if err := r.ParseMultipartForm(maxResumeUpload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return "", "", false
	}
	name = strings.TrimSpace(r.FormValue("candidate_name"))
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "candidate_name is required")
		return "", "", false
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return "", "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeUpload))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume file: "+err.Error())
		return "", "", false
	}

	text, err = ingestion.ExtractText(header.Filename, data)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to extract resume text: "+err.Error())
		return "", "", false
	}
	if strings.TrimSpace(text) == "" || ingestion.IsBinaryData(text) {
		s.errorResponse(w, http.StatusUnprocessableEntity, "resume file contains no readable text")
		return "", "", false
	}
	return name, text, true
}

// handleListApplications returns a job's applications ranked by score
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, db.RoleAdmin, db.RolePanel) {
		return
	}
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	// 404 for unknown jobs rather than an empty list
	if _, err := s.db.GetJob(r.Context(), jobID); err != nil {
		s.serviceError(w, err)
		return
	}

	apps, err := s.db.ListApplicationsByJob(r.Context(), jobID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if apps == nil {
		apps = []db.Application{}
	}

	if v := r.URL.Query().Get("eligible"); v == "true" {
		filtered := make([]db.Application, 0, len(apps))
		for _, a := range apps {
			if a.Eligible {
				filtered = append(filtered, a)
			}
		}
		apps = filtered
	}

	s.jsonResponse(w, http.StatusOK, apps)
}

// handleGetApplication returns one application with its screening record
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, db.RoleAdmin, db.RolePanel) {
		return
	}
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	app, err := s.db.GetApplication(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

// handleUpdateApplicationStatus moves an application through the workflow
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
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
	switch req.Status {
	case db.StatusReceived, db.StatusShortlisted, db.StatusRejected:
	default:
		s.errorResponse(w, http.StatusBadRequest, "status must be received, shortlisted or rejected")
		return
	}

	if err := s.db.UpdateApplicationStatus(r.Context(), id, req.Status); err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": req.Status})
}
