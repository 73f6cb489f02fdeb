package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"skillsage/internal/models"
)

func sampleReport() models.AnalysisReport {
	return models.AnalysisReport{
		Analyses: []models.ResumeAnalysis{
			{
				ResumeFile:     "alice.pdf",
				TargetRole:     "Data Analyst",
				DetectedSkills: []string{"Excel", "Python"},
				MissingSkills:  []string{"SQL"},
				FitPercent:     40,
			},
			{
				ResumeFile:     "bob.pdf",
				TargetRole:     "Web Developer",
				DetectedSkills: []string{"HTML"},
				MissingSkills:  []string{"CSS", "JavaScript"},
				FitPercent:     20,
			},
		},
		GapTracker: models.ComparisonMatrix{
			Skills: []string{"CSS", "JavaScript", "SQL"},
			Rows: []models.ComparisonRow{
				{Resume: "alice.pdf", Skills: map[string]bool{"CSS": false, "JavaScript": false, "SQL": true}},
				{Resume: "bob.pdf", Skills: map[string]bool{"CSS": true, "JavaScript": true, "SQL": false}},
			},
		},
		OverallSkills: []string{"Excel", "HTML", "Python"},
		GeneratedAt:   "2025-01-02T15:04:05Z",
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(sampleReport(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Resume File", "Target Role", "Detected Skills", "Missing Skills", "Job Fit (%)"}, records[0])
	assert.Equal(t, []string{"alice.pdf", "Data Analyst", "Excel, Python", "SQL", "40"}, records[1])
	assert.Equal(t, []string{"bob.pdf", "Web Developer", "HTML", "CSS, JavaScript", "20"}, records[2])
}

func TestWriteCSVEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(models.AnalysisReport{}, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(sampleReport(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Skill Report", "Gap Tracker"}, f.GetSheetList())

	// Skill report table
	header, err := f.GetCellValue("Skill Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Resume File", header)

	file, err := f.GetCellValue("Skill Report", "A2")
	require.NoError(t, err)
	assert.Equal(t, "alice.pdf", file)

	fit, err := f.GetCellValue("Skill Report", "E2")
	require.NoError(t, err)
	assert.Equal(t, "40", fit)

	detected, err := f.GetCellValue("Skill Report", "C3")
	require.NoError(t, err)
	assert.Equal(t, "HTML", detected)

	// Gap tracker marks
	mark, err := f.GetCellValue("Gap Tracker", "D2") // alice x SQL
	require.NoError(t, err)
	assert.Equal(t, "Missing", mark)

	mark, err = f.GetCellValue("Gap Tracker", "B2") // alice x CSS
	require.NoError(t, err)
	assert.Equal(t, "OK", mark)
}
