// Package export generates ranking report workbooks from screening results.
// It consumes only the engine's output fields.
package export

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Sayak1321/faculty-recruitment-system/internal/db"
)

// Sheet names in the generated workbook.
const (
	summarySheet    = "Summary"
	candidatesSheet = "Ranked Candidates"
	detailsSheet    = "Detailed Analysis"
)

// WriteJobReport generates an Excel workbook for a job's applications at
// outputPath (the .xlsx extension is added when missing) and returns the
// final path.
func WriteJobReport(job db.Job, apps []db.Application, outputPath string) (string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	// Rank by score, highest first.
	ranked := make([]db.Application, len(apps))
	copy(ranked, apps)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(candidatesSheet); err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(detailsSheet); err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeSummarySheet(f, job, ranked); err != nil {
		return "", fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeCandidatesSheet(f, ranked); err != nil {
		return "", fmt.Errorf("failed to create ranked candidates sheet: %w", err)
	}
	if err := writeDetailsSheet(f, ranked); err != nil {
		return "", fmt.Errorf("failed to create detailed analysis sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return outputPath, nil
}

func writeSummarySheet(f *excelize.File, job db.Job, ranked []db.Application) error {
	_ = f.SetColWidth(summarySheet, "A", "A", 25)
	_ = f.SetColWidth(summarySheet, "B", "B", 50)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	row := 1
	setCell := func(col string, v any) {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("%s%d", col, row), v)
	}

	setCell("A", "Recruitment Report: "+job.Title)
	_ = f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	_ = f.MergeCell(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	label := func(name string, v any) {
		setCell("A", name)
		_ = f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		setCell("B", v)
		row++
	}
	label("Department:", job.Department)
	label("Generated:", time.Now().Format("2006-01-02 15:04:05"))
	label("Total Applications:", len(ranked))

	eligible := 0
	var total float64
	for _, a := range ranked {
		if a.Eligible {
			eligible++
		}
		total += a.Score
	}
	label("Eligible:", eligible)
	if len(ranked) > 0 {
		label("Average Score:", fmt.Sprintf("%.2f", total/float64(len(ranked))))
	}
	return nil
}

func writeCandidatesSheet(f *excelize.File, ranked []db.Application) error {
	headers := []string{"Rank", "Candidate", "Email", "Score", "Eligible", "Status"}
	widths := []float64{8, 28, 30, 10, 10, 14}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(candidatesSheet, col, col, widths[i])
		_ = f.SetCellValue(candidatesSheet, fmt.Sprintf("%s1", col), h)
	}

	for i, a := range ranked {
		row := i + 2
		eligible := "No"
		if a.Eligible {
			eligible = "Yes"
		}
		values := []any{i + 1, a.CandidateName, a.Email, a.Score, eligible, a.Status}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			_ = f.SetCellValue(candidatesSheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}
	return nil
}

func writeDetailsSheet(f *excelize.File, ranked []db.Application) error {
	headers := []string{"Candidate", "Experience (yrs)", "Publications", "Degrees", "Skills", "Missing Required", "Reasons"}
	widths := []float64{28, 16, 14, 30, 40, 30, 50}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(detailsSheet, col, col, widths[i])
		_ = f.SetCellValue(detailsSheet, fmt.Sprintf("%s1", col), h)
	}

	for i, a := range ranked {
		row := i + 2
		values := []any{
			a.CandidateName,
			a.Parsed.ExperienceYears,
			a.Parsed.Publications,
			strings.Join(a.Parsed.Degrees, "; "),
			strings.Join(a.Parsed.Skills, ", "),
			strings.Join(a.MatchInfo.MissingRequired, ", "),
			strings.Join(a.Reasons, "; "),
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}
	return nil
}
