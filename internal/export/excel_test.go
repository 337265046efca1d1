package export

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"career-match/internal/domain/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResult() matching.AnalysisResult {
	profile := matching.NewProfile([]matching.CandidateSkill{
		{Name: "React", Proficiency: 85},
		{Name: "TypeScript", Proficiency: 80},
		{Name: "AWS", Proficiency: 45},
		{Name: "CI/CD", Proficiency: 55},
	})
	res, err := matching.AnalyzeJobDescription(
		"Cloud Engineer\nReact TypeScript AWS required for this cloud devops role",
		matching.DefaultVocabulary(), profile, matching.DefaultCourses,
	)
	if err != nil {
		panic(err)
	}
	return res
}

func TestWriteAnalysisWorkbook(t *testing.T) {
	res := sampleResult()
	var buf bytes.Buffer
	require.NoError(t, WriteAnalysisWorkbook(&buf, res, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetSkills, SheetResources}, f.GetSheetList())

	score, err := f.GetCellValue(SheetSummary, "B5")
	require.NoError(t, err)
	assert.Equal(t, "50", score)

	label, err := f.GetCellValue(SheetSummary, "B6")
	require.NoError(t, err)
	assert.Equal(t, "Needs Improvement", label)

	rows, err := f.GetRows(SheetSkills)
	require.NoError(t, err)
	require.Len(t, rows, len(res.Assessments)+1)
	assert.Equal(t, "Skill", rows[0][0])
	assert.Equal(t, res.Assessments[0].Name, rows[1][0])

	resources, err := f.GetRows(SheetResources)
	require.NoError(t, err)
	assert.Len(t, resources, len(res.RecommendedResources)+1)
}

func TestWriteAnalysisWorkbook_ResourcesUnavailable(t *testing.T) {
	res := sampleResult()
	res.RecommendedResources = nil
	res.ResourcesUnavailable = true

	var buf bytes.Buffer
	require.NoError(t, WriteAnalysisWorkbook(&buf, res, time.Now()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(SheetResources, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Course catalog unavailable", v)
}

func TestSaveAnalysisWorkbook_AddsExtension(t *testing.T) {
	path, err := SaveAnalysisWorkbook(filepath.Join(t.TempDir(), "report"), sampleResult(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", filepath.Ext(path))
	assert.FileExists(t, path)
}
