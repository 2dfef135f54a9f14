package server

import (
	"encoding/json"
	"net/http"

	"github.com/Sayak1321/faculty-recruitment-system/internal/db"
)

// CreateEvaluationRequest is a panelist's assessment of one application
type CreateEvaluationRequest struct {
	PanelistName string             `json:"panelist_name" validate:"required,min=1,max=200"`
	Scores       map[string]float64 `json:"scores" validate:"required,min=1,dive,min=0,max=100"`
	Comments     string             `json:"comments,omitempty" validate:"max=5000"`
}

// handleCreateEvaluation records a panelist's assessment
func (s *Server) handleCreateEvaluation(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, db.RoleAdmin, db.RolePanel) {
		return
	}
	appID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req CreateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if _, err := s.db.GetApplication(r.Context(), appID); err != nil {
		s.serviceError(w, err)
		return
	}

	eval, err := s.db.CreateEvaluation(r.Context(), db.Evaluation{
		ApplicationID: appID,
		PanelistName:  req.PanelistName,
		Scores:        req.Scores,
		Comments:      req.Comments,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, eval)
}

// handleListEvaluations returns an application's evaluations, oldest first
func (s *Server) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, db.RoleAdmin, db.RolePanel) {
		return
	}
	appID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if _, err := s.db.GetApplication(r.Context(), appID); err != nil {
		s.serviceError(w, err)
		return
	}

	evals, err := s.db.ListEvaluations(r.Context(), appID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if evals == nil {
		evals = []db.Evaluation{}
	}
	s.jsonResponse(w, http.StatusOK, evals)
}
