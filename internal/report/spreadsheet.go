// Package report renders analysis results as downloadable artifacts:
// CSV and Excel skill reports and HTML charts.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"skillsage/internal/models"
)

// reportColumns is the column set of the skill report, in order.
var reportColumns = []string{"Resume File", "Target Role", "Detected Skills", "Missing Skills", "Job Fit (%)"}

// WriteCSV writes the skill report as CSV.
func WriteCSV(rep models.AnalysisReport, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(reportColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, a := range rep.Analyses {
		record := []string{
			a.ResumeFile,
			a.TargetRole,
			strings.Join(a.DetectedSkills, ", "),
			strings.Join(a.MissingSkills, ", "),
			strconv.Itoa(a.FitPercent),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the skill report as an Excel workbook.
func WriteXLSX(rep models.AnalysisReport, w io.Writer) error {
	f, err := buildWorkbook(rep)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// buildWorkbook assembles the workbook: a summary sheet, the skill report
// and the gap tracker matrix.
func buildWorkbook(rep models.AnalysisReport) (*excelize.File, error) {
	f := excelize.NewFile()

	summarySheet := "Summary"
	reportSheet := "Skill Report"
	gapSheet := "Gap Tracker"

	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(reportSheet)
	f.NewSheet(gapSheet)

	if err := createSummarySheet(f, summarySheet, rep); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := createReportSheet(f, reportSheet, rep); err != nil {
		return nil, fmt.Errorf("failed to create skill report sheet: %w", err)
	}
	if err := createGapSheet(f, gapSheet, rep.GapTracker); err != nil {
		return nil, fmt.Errorf("failed to create gap tracker sheet: %w", err)
	}

	return f, nil
}

// createSummarySheet creates the summary sheet with batch statistics.
func createSummarySheet(f *excelize.File, sheetName string, rep models.AnalysisReport) error {
	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 60)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	row := 1

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Skill Report")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Generated:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rep.GeneratedAt)
	row++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Resumes Analyzed:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), len(rep.Analyses))
	row++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Failed Files:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), len(rep.Failures))
	row++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Skills Detected:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), strings.Join(rep.OverallSkills, ", "))

	return nil
}

// createReportSheet creates the per-resume skill report table.
func createReportSheet(f *excelize.File, sheetName string, rep models.AnalysisReport) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	f.SetColWidth(sheetName, "A", "B", 25)
	f.SetColWidth(sheetName, "C", "D", 45)
	f.SetColWidth(sheetName, "E", "E", 12)

	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, a := range rep.Analyses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), a.ResumeFile)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), a.TargetRole)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), strings.Join(a.DetectedSkills, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), strings.Join(a.MissingSkills, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), a.FitPercent)
	}

	return nil
}

// createGapSheet writes the gap tracker matrix: one column per missing skill,
// one row per resume.
func createGapSheet(f *excelize.File, sheetName string, gap models.ComparisonMatrix) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", "Resume")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)
	for i, skill := range gap.Skills {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, skill)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for r, row := range gap.Rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r+2), row.Resume)
		for i, skill := range gap.Skills {
			cell, err := excelize.CoordinatesToCellName(i+2, r+2)
			if err != nil {
				return err
			}
			mark := "OK"
			if row.Skills[skill] {
				mark = "Missing"
			}
			f.SetCellValue(sheetName, cell, mark)
		}
	}

	return nil
}
