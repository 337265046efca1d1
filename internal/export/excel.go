package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"career-match/internal/domain/matching"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Summary"
	SheetSkills    = "Skills"
	SheetResources = "Resources"
)

var statusFill = map[matching.Status]string{
	matching.StatusMatched: "C6EFCE",
	matching.StatusPartial: "FFEB9C",
	matching.StatusMissing: "FFC7CE",
}

// WriteAnalysisWorkbook renders an analysis as an xlsx workbook with summary,
// per-skill and resource sheets.
func WriteAnalysisWorkbook(w io.Writer, res matching.AnalysisResult, generatedAt time.Time) error {
	f, err := buildWorkbook(res, generatedAt)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveAnalysisWorkbook writes the workbook to path, adding the .xlsx extension
// when missing.
func SaveAnalysisWorkbook(path string, res matching.AnalysisResult, generatedAt time.Time) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	f, err := buildWorkbook(res, generatedAt)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func buildWorkbook(res matching.AnalysisResult, generatedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetSkills, SheetResources} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	steps := []func(*excelize.File, int) error{
		func(f *excelize.File, h int) error { return writeSummary(f, h, res, generatedAt) },
		func(f *excelize.File, h int) error { return writeSkills(f, h, res.Assessments) },
		func(f *excelize.File, h int) error { return writeResources(f, h, res) },
	}
	for _, step := range steps {
		if err := step(f, header); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSummary(f *excelize.File, header int, res matching.AnalysisResult, generatedAt time.Time) error {
	sh := SheetSummary
	if err := f.SetColWidth(sh, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(sh, "B", "B", 70); err != nil {
		return err
	}

	rows := [][]any{
		{"Skill Gap Analysis", ""},
		{"Job Title", res.JobInfo.Title},
		{"Company", res.JobInfo.Company},
		{"Location", res.JobInfo.Location},
		{"Match Score", res.Score},
		{"Rating", matching.ScoreLabel(res.Score)},
		{"Summary", res.Summary},
		{"Matched", strings.Join(res.MatchedSkills, ", ")},
		{"Partial", strings.Join(res.PartialSkills, ", ")},
		{"Missing", strings.Join(res.MissingSkills, ", ")},
		{"Generated", generatedAt.UTC().Format(time.RFC3339)},
	}
	for i, suggestion := range res.Suggestions {
		label := ""
		if i == 0 {
			label = "Suggestions"
		}
		rows = append(rows, []any{label, suggestion})
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sh, cell, &row); err != nil {
			return err
		}
	}
	if err := f.MergeCell(sh, "A1", "B1"); err != nil {
		return err
	}
	return f.SetCellStyle(sh, "A1", "B1", header)
}

func writeSkills(f *excelize.File, header int, assessments []matching.SkillAssessment) error {
	sh := SheetSkills
	headers := []any{"Skill", "Category", "Your Level", "Required Level", "Gap", "Status"}
	if err := f.SetSheetRow(sh, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(sh, "A1", "F1", header); err != nil {
		return err
	}
	if err := f.SetColWidth(sh, "A", "B", 18); err != nil {
		return err
	}

	styles := make(map[matching.Status]int, len(statusFill))
	for st, color := range statusFill {
		id, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}})
		if err != nil {
			return err
		}
		styles[st] = id
	}

	for i, a := range assessments {
		r := i + 2
		row := []any{a.Name, string(a.Category), a.UserProficiency, a.RequiredLevel, a.Gap, string(a.Status)}
		if err := f.SetSheetRow(sh, fmt.Sprintf("A%d", r), &row); err != nil {
			return err
		}
		if style, ok := styles[a.Status]; ok {
			if err := f.SetCellStyle(sh, fmt.Sprintf("F%d", r), fmt.Sprintf("F%d", r), style); err != nil {
				return err
			}
		}
	}

	return f.SetPanes(sh, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func writeResources(f *excelize.File, header int, res matching.AnalysisResult) error {
	sh := SheetResources
	headers := []any{"Title", "Provider", "Duration", "Level", "Rating", "Skills", "URL"}
	if err := f.SetSheetRow(sh, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(sh, "A1", "G1", header); err != nil {
		return err
	}
	if err := f.SetColWidth(sh, "A", "A", 40); err != nil {
		return err
	}

	if res.ResourcesUnavailable {
		return f.SetCellValue(sh, "A2", "Course catalog unavailable")
	}
	for i, c := range res.RecommendedResources {
		r := i + 2
		row := []any{c.Title, c.Provider, c.DurationLabel, c.LevelLabel, c.Rating, strings.Join(c.AddressedSkills, ", "), c.URL}
		if err := f.SetSheetRow(sh, fmt.Sprintf("A%d", r), &row); err != nil {
			return err
		}
		if c.URL != "" {
			if err := f.SetCellHyperLink(sh, fmt.Sprintf("G%d", r), c.URL, "External"); err != nil {
				return err
			}
		}
	}
	return nil
}
