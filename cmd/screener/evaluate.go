package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sayak1321/faculty-recruitment-system/internal/ingestion"
	"github.com/Sayak1321/faculty-recruitment-system/internal/observability"
	"github.com/Sayak1321/faculty-recruitment-system/internal/schemas"
	"github.com/Sayak1321/faculty-recruitment-system/internal/screening"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

var (
	evaluateResume   string
	evaluateCriteria string
	evaluateVerbose  bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Screen one resume against a criteria file",
	Long:  `Run the screening pipeline offline: extract facts from a resume file, decide eligibility against a criteria JSON document and print the verdict with its ranking score.`,
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateResume, "resume", "", "Path to resume file (pdf, docx, html or plain text)")
	evaluateCmd.Flags().StringVar(&evaluateCriteria, "criteria", "", "Path to criteria JSON file")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print per-stage breakdown")
	_ = evaluateCmd.MarkFlagRequired("resume")
	_ = evaluateCmd.MarkFlagRequired("criteria")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(evaluateResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	text, err := ingestion.ExtractText(filepath.Base(evaluateResume), data)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}
	if strings.TrimSpace(text) == "" || ingestion.IsBinaryData(text) {
		return fmt.Errorf("resume file contains no readable text")
	}

	criteriaDoc, err := os.ReadFile(evaluateCriteria)
	if err != nil {
		return fmt.Errorf("failed to read criteria: %w", err)
	}
	if err := schemas.ValidateCriteria(criteriaDoc); err != nil {
		return err
	}
	var criteria types.Criteria
	if err := json.Unmarshal(criteriaDoc, &criteria); err != nil {
		return fmt.Errorf("failed to parse criteria: %w", err)
	}

	result := screening.NewEngine().Screen(text, criteria)

	if evaluateVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintParsedResume(result.Parsed)
		printer.PrintVerdict(result)
		printer.PrintScore(result.Score)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
