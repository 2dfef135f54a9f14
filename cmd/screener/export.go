package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Sayak1321/faculty-recruitment-system/internal/db"
	"github.com/Sayak1321/faculty-recruitment-system/internal/export"
)

var exportJobID string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a job's ranking workbook",
	Long:  `Write an Excel workbook ranking a job's applications by score, with summary, candidate and detail sheets.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportJobID, "job", "", "Job ID to export")
	_ = exportCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	jobID, err := uuid.Parse(exportJobID)
	if err != nil {
		return fmt.Errorf("invalid job ID: %w", err)
	}

	database, err := db.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	job, err := database.GetJob(cmd.Context(), jobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}
	apps, err := database.ListApplicationsByJob(cmd.Context(), jobID)
	if err != nil {
		return fmt.Errorf("failed to load applications: %w", err)
	}

	if err := os.MkdirAll(cfg.ReportsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}
	outputPath := filepath.Join(cfg.ReportsDir,
		fmt.Sprintf("job_%s_%s", jobID, time.Now().Format("20060102_150405")))

	written, err := export.WriteJobReport(job, apps, outputPath)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if _, err := database.InsertReport(cmd.Context(), jobID, written); err != nil {
		return fmt.Errorf("failed to record report: %w", err)
	}

	fmt.Printf("Report written to %s (%d applications)\n", written, len(apps))
	return nil
}
