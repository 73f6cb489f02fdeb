// Package api exposes the resume-analysis operations over HTTP. Each user
// action maps to a discrete handler; there is no state beyond the agent's
// most recent batch.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"skillsage/internal/agent"
	"skillsage/internal/analysis"
	"skillsage/internal/models"
	"skillsage/internal/report"
	"skillsage/internal/resume"
)

const maxUploadBytes = 32 << 20 // 32 MB

// Server handles HTTP requests.
type Server struct {
	agent   *agent.AnalysisAgent
	builder *resume.Builder
}

// NewServer creates a new API server.
func NewServer(agent *agent.AnalysisAgent, builder *resume.Builder) *Server {
	return &Server{
		agent:   agent,
		builder: builder,
	}
}

// Router returns the HTTP router.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /roles", s.handleRoles)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /report", s.handleReport)
	mux.HandleFunc("GET /report/csv", s.handleReportCSV)
	mux.HandleFunc("GET /report/xlsx", s.handleReportXLSX)
	mux.HandleFunc("GET /charts/wordcloud", s.handleWordCloud)
	mux.HandleFunc("GET /charts/skills", s.handleSkillBar)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("GET /learning", s.handleLearning)
	mux.HandleFunc("GET /interview", s.handleInterview)
	mux.HandleFunc("POST /tips", s.handleTips)
	mux.HandleFunc("POST /resume", s.handleResume)
	mux.HandleFunc("POST /reset", s.handleReset)
	mux.HandleFunc("GET /", s.handleRoot)

	return s.loggingMiddleware(mux)
}

// handleRoot provides API information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"service": "SkillSage",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"POST /analyze":         "Upload resume PDFs (or fetch from Gmail) for skill analysis",
			"GET /report":           "Latest analysis report",
			"GET /report/csv":       "Download the skill report as CSV",
			"GET /report/xlsx":      "Download the skill report as Excel",
			"GET /charts/wordcloud": "Overall skills word cloud",
			"GET /charts/skills":    "Skill frequency bar chart",
			"POST /compare":         "Compare two or more resumes",
			"GET /learning":         "Learning resources for selected skills",
			"GET /interview":        "Interview questions for a role",
			"POST /tips":            "Detected skills plus optimization tips for one resume",
			"POST /resume":          "Generate a resume PDF from form fields",
			"GET /roles":            "Role catalog",
			"POST /reset":           "Clear results and uploads",
			"GET /health":           "Health check",
		},
	})
}

// handleHealth provides a health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// handleRoles lists the role catalog with required skills.
func (s *Server) handleRoles(w http.ResponseWriter, r *http.Request) {
	roles := s.agent.Catalog.Roles()
	infos := make([]models.RoleInfo, 0, len(roles))
	for _, role := range roles {
		infos = append(infos, models.RoleInfo{Name: role, Skills: s.agent.Catalog.RoleSkills(role)})
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"roles": infos})
}

// handleAnalyze runs skill analysis over uploaded resumes or Gmail attachments.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse form: %v", err))
		return
	}

	targetRole := r.FormValue("target_role")
	if targetRole == "" {
		s.respondError(w, http.StatusBadRequest, "target_role is required")
		return
	}

	method := r.FormValue("method")
	if method == "" {
		method = "upload"
	}

	var (
		rep models.AnalysisReport
		err error
	)
	switch method {
	case "upload":
		uploads, uerr := readUploads(r.MultipartForm.File["files"], targetRole)
		if uerr != nil {
			s.respondError(w, http.StatusBadRequest, uerr.Error())
			return
		}
		rep, err = s.agent.AnalyzeUploads(r.Context(), uploads)
	case "gmail":
		subject := r.FormValue("gmail_subject")
		if subject == "" {
			s.respondError(w, http.StatusBadRequest, "gmail_subject is required for gmail method")
			return
		}
		rep, err = s.agent.AnalyzeGmail(r.Context(), subject, targetRole)
	default:
		s.respondError(w, http.StatusBadRequest, "method must be 'upload' or 'gmail'")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, rep)
}

// handleReport returns the latest analysis report.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.agent.Report()
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, rep)
}

// handleReportCSV downloads the skill report as CSV.
func (s *Server) handleReportCSV(w http.ResponseWriter, r *http.Request) {
	rep, err := s.agent.Report()
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="skill_report.csv"`)
	if err := report.WriteCSV(rep, w); err != nil {
		log.Printf("Failed to write CSV report: %v", err)
	}
}

// handleReportXLSX downloads the skill report as an Excel workbook.
func (s *Server) handleReportXLSX(w http.ResponseWriter, r *http.Request) {
	rep, err := s.agent.Report()
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="skill_report.xlsx"`)
	if err := report.WriteXLSX(rep, w); err != nil {
		log.Printf("Failed to write Excel report: %v", err)
	}
}

// handleWordCloud renders the overall skills word cloud as HTML.
func (s *Server) handleWordCloud(w http.ResponseWriter, r *http.Request) {
	s.renderChart(w, report.WriteWordCloud)
}

// handleSkillBar renders the skill frequency bar chart as HTML.
func (s *Server) handleSkillBar(w http.ResponseWriter, r *http.Request) {
	s.renderChart(w, report.WriteSkillBar)
}

func (s *Server) renderChart(w http.ResponseWriter, render func(map[string]int, io.Writer) error) {
	counts := s.agent.SkillCounts()
	if len(counts) == 0 {
		s.respondError(w, http.StatusNotFound, "no skills detected yet, run an analysis first")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render(counts, w); err != nil {
		log.Printf("Failed to render chart: %v", err)
	}
}

// handleCompare builds the skill presence matrix across uploaded resumes.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse form: %v", err))
		return
	}

	uploads, err := readUploads(r.MultipartForm.File["files"], "")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(uploads) < 2 {
		s.respondError(w, http.StatusBadRequest, "upload at least 2 resumes to compare")
		return
	}

	matrix, failures, err := s.agent.Compare(r.Context(), uploads)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if failures == nil {
		failures = []models.FileError{}
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"comparison": matrix,
		"failures":   failures,
	})
}

// handleLearning returns learning resources for the requested skills.
// Skill names are matched case-insensitively against the catalog.
func (s *Server) handleLearning(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("skills")
	if raw == "" {
		s.respondError(w, http.StatusBadRequest, "skills query parameter is required (comma-separated)")
		return
	}

	canonical := make(map[string]string)
	for _, skill := range s.agent.Catalog.Skills() {
		canonical[strings.ToLower(skill)] = skill
	}

	var selected []string
	for _, part := range strings.Split(raw, ",") {
		if skill, ok := canonical[strings.ToLower(strings.TrimSpace(part))]; ok {
			selected = append(selected, skill)
		}
	}

	recs := analysis.Recommendations(selected, s.agent.Catalog)
	if recs == nil {
		recs = []models.LearningResource{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"recommendations": recs})
}

// handleInterview returns interview questions for a role. Unknown roles yield
// an empty list, not an error.
func (s *Server) handleInterview(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role == "" {
		s.respondError(w, http.StatusBadRequest, "role query parameter is required")
		return
	}

	questions := s.agent.Catalog.Questions(role)
	if questions == nil {
		questions = []string{}
	}
	s.respondJSON(w, http.StatusOK, models.InterviewPrep{Role: role, Questions: questions})
}

// handleTips returns detected skills plus optimization tips for one resume.
func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse form: %v", err))
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		s.respondError(w, http.StatusBadRequest, "a resume PDF is required in the 'file' field")
		return
	}

	uploads, err := readUploads(files[:1], "")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	skills, err := s.agent.DetectSkills(uploads[0].Data)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if skills == nil {
		skills = []string{}
	}

	s.respondJSON(w, http.StatusOK, models.TipsResponse{
		ResumeFile:     uploads[0].Name,
		DetectedSkills: skills,
		Tips:           s.agent.Catalog.Tips(),
	})
}

// handleResume generates a resume PDF from the submitted form. Validation
// failures are reported per field and no document is produced.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	var form models.ResumeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON body: %v", err))
		return
	}

	pdf, err := s.builder.Build(r.Context(), form)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			s.respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "please fill all fields to generate the resume",
				"fields": fields,
			})
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_resume.pdf"`, form.Name))
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Failed to write resume PDF: %v", err)
	}
}

// handleReset clears stored results and uploaded files.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.agent.Reset(); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// readUploads reads multipart files into memory.
func readUploads(files []*multipart.FileHeader, targetRole string) ([]agent.Upload, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files uploaded")
	}

	uploads := make([]agent.Upload, 0, len(files))
	for _, fh := range files {
		file, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file %s: %w", fh.Filename, err)
		}
		uploads = append(uploads, agent.Upload{
			Name:       fh.Filename,
			TargetRole: targetRole,
			Data:       data,
		})
	}

	return uploads, nil
}

// respondJSON sends a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

// respondError sends an error response.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// loggingMiddleware logs HTTP requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
