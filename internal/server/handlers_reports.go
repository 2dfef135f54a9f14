package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Sayak1321/faculty-recruitment-system/internal/db"
	"github.com/Sayak1321/faculty-recruitment-system/internal/export"
)

// handleExportReport writes the job's ranking workbook to the reports
// directory and records it
func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, db.RoleAdmin) {
		return
	}
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	apps, err := s.db.ListApplicationsByJob(r.Context(), jobID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	if err := os.MkdirAll(s.config.ReportsDir, 0o755); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create reports directory: "+err.Error())
		return
	}

	outputPath := filepath.Join(s.config.ReportsDir,
		fmt.Sprintf("job_%s_%s", jobID, time.Now().Format("20060102_150405")))
	written, err := export.WriteJobReport(job, apps, outputPath)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to write report: "+err.Error())
		return
	}

	report, err := s.db.InsertReport(r.Context(), jobID, written)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, report)
}
