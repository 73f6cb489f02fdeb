// Package agent orchestrates resume analysis batches: ingesting documents,
// running the skill extractor and holding the most recent results.
package agent

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"skillsage/internal/analysis"
	"skillsage/internal/catalog"
	"skillsage/internal/ingestion"
	"skillsage/internal/models"
)

// Upload is one resume received for analysis.
type Upload struct {
	Name       string
	TargetRole string
	Data       []byte
}

// AnalysisAgent processes resume uploads sequentially and keeps the results
// of the most recent batch. There is no persistence: results live in memory
// until the next batch or a reset.
type AnalysisAgent struct {
	Catalog     *catalog.Catalog
	FileHandler *ingestion.FileHandler

	// ExtractText converts a PDF byte stream to plain text. Tests swap it out.
	ExtractText func(data []byte) (string, error)

	gmailCredentials string
	gmailToken       string
	uploadsDir       string

	mu       sync.RWMutex
	results  []models.ResumeAnalysis
	failures []models.FileError
}

// New creates an analysis agent over the given catalog and uploads directory.
func New(cat *catalog.Catalog, uploadsDir string) *AnalysisAgent {
	return &AnalysisAgent{
		Catalog:     cat,
		FileHandler: ingestion.NewFileHandler(uploadsDir),
		ExtractText: ingestion.ExtractText,
		uploadsDir:  uploadsDir,
	}
}

// SetGmailAuth configures the OAuth file paths for Gmail ingestion.
func (a *AnalysisAgent) SetGmailAuth(credentialsPath, tokenPath string) {
	a.gmailCredentials = credentialsPath
	a.gmailToken = tokenPath
}

// AnalyzeUploads analyzes a batch of uploaded resumes. Each file is processed
// independently: an unreadable PDF records a failure for that file and the
// batch continues. The batch replaces any previous results.
func (a *AnalysisAgent) AnalyzeUploads(ctx context.Context, uploads []Upload) (models.AnalysisReport, error) {
	return a.analyzeBatch(ctx, uploads, true)
}

// analyzeBatch runs the extractor over a batch. save controls whether the raw
// bytes are kept in the uploads directory (Gmail fetches are already on disk).
func (a *AnalysisAgent) analyzeBatch(ctx context.Context, uploads []Upload, save bool) (models.AnalysisReport, error) {
	if len(uploads) == 0 {
		return models.AnalysisReport{}, fmt.Errorf("no files uploaded")
	}

	results := make([]models.ResumeAnalysis, 0, len(uploads))
	var failures []models.FileError

	for i, up := range uploads {
		select {
		case <-ctx.Done():
			return models.AnalysisReport{}, ctx.Err()
		default:
		}

		log.Printf("Analyzing resume %d/%d: %s", i+1, len(uploads), up.Name)

		if save {
			if _, err := a.FileHandler.SaveUpload(up.Name, bytes.NewReader(up.Data)); err != nil {
				log.Printf("Failed to save upload %s: %v", up.Name, err)
			}
		}

		text, err := a.ExtractText(up.Data)
		if err != nil {
			log.Printf("Failed to extract text from %s: %v", up.Name, err)
			failures = append(failures, models.FileError{File: up.Name, Error: err.Error()})
			continue
		}

		results = append(results, analysis.Analyze(up.Name, text, up.TargetRole, a.Catalog))
	}

	a.mu.Lock()
	a.results = results
	a.failures = failures
	a.mu.Unlock()

	return a.buildReport(results, failures), nil
}

// AnalyzeGmail fetches PDF resumes from Gmail by subject filter and analyzes
// them against the target role.
func (a *AnalysisAgent) AnalyzeGmail(ctx context.Context, subject, targetRole string) (models.AnalysisReport, error) {
	if a.gmailCredentials == "" {
		return models.AnalysisReport{}, fmt.Errorf("gmail ingestion is not configured")
	}

	handler, err := ingestion.NewGmailHandler(ctx, a.gmailCredentials, a.gmailToken, a.uploadsDir)
	if err != nil {
		return models.AnalysisReport{}, fmt.Errorf("failed to initialize Gmail handler: %w", err)
	}

	paths, err := handler.FetchResumes(ctx, subject)
	if err != nil {
		return models.AnalysisReport{}, fmt.Errorf("failed to fetch Gmail resumes: %w", err)
	}

	uploads := make([]Upload, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return models.AnalysisReport{}, fmt.Errorf("failed to read fetched resume %s: %w", p, err)
		}
		uploads = append(uploads, Upload{Name: filepath.Base(p), TargetRole: targetRole, Data: data})
	}

	return a.analyzeBatch(ctx, uploads, false)
}

// Compare extracts skills from two or more resumes and builds the presence
// matrix over the union of detected skills. Results are not retained.
func (a *AnalysisAgent) Compare(ctx context.Context, uploads []Upload) (models.ComparisonMatrix, []models.FileError, error) {
	if len(uploads) < 2 {
		return models.ComparisonMatrix{}, nil, fmt.Errorf("upload at least 2 resumes to compare")
	}

	analyses := make([]models.ResumeAnalysis, 0, len(uploads))
	var failures []models.FileError

	for _, up := range uploads {
		select {
		case <-ctx.Done():
			return models.ComparisonMatrix{}, nil, ctx.Err()
		default:
		}

		text, err := a.ExtractText(up.Data)
		if err != nil {
			failures = append(failures, models.FileError{File: up.Name, Error: err.Error()})
			continue
		}
		analyses = append(analyses, models.ResumeAnalysis{
			ResumeFile:     up.Name,
			DetectedSkills: analysis.ExtractSkills(text, a.Catalog),
		})
	}

	if len(analyses) < 2 {
		return models.ComparisonMatrix{}, failures, fmt.Errorf("fewer than 2 resumes could be read")
	}

	return analysis.Compare(analyses), failures, nil
}

// DetectSkills extracts the skill set of a single resume byte stream.
func (a *AnalysisAgent) DetectSkills(data []byte) ([]string, error) {
	text, err := a.ExtractText(data)
	if err != nil {
		return nil, err
	}
	return analysis.ExtractSkills(text, a.Catalog), nil
}

// Report returns the report of the most recent batch.
func (a *AnalysisAgent) Report() (models.AnalysisReport, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if len(a.results) == 0 && len(a.failures) == 0 {
		return models.AnalysisReport{}, fmt.Errorf("no results available, run an analysis first")
	}

	return a.buildReport(a.results, a.failures), nil
}

// SkillCounts returns per-skill resume counts for the most recent batch.
func (a *AnalysisAgent) SkillCounts() map[string]int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return analysis.SkillCounts(a.results)
}

// Reset clears the stored results and the uploads directory.
func (a *AnalysisAgent) Reset() error {
	a.mu.Lock()
	a.results = nil
	a.failures = nil
	a.mu.Unlock()

	return a.FileHandler.Clear()
}

// buildReport derives the full report view from a batch of analyses.
func (a *AnalysisAgent) buildReport(results []models.ResumeAnalysis, failures []models.FileError) models.AnalysisReport {
	overall := analysis.OverallSkills(results)
	return models.AnalysisReport{
		Analyses:        results,
		Failures:        failures,
		GapTracker:      analysis.GapTracker(results),
		OverallSkills:   overall,
		Recommendations: analysis.Recommendations(overall, a.Catalog),
		GeneratedAt:     time.Now().Format(time.RFC3339),
	}
}
