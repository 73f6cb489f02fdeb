package models

// ResumeAnalysis is the result of analyzing one resume against a target role.
// It is created fresh per uploaded document and never mutated afterwards.
type ResumeAnalysis struct {
	ID             string   `json:"id"`
	ResumeFile     string   `json:"resume_file"`
	TargetRole     string   `json:"target_role"`
	DetectedSkills []string `json:"detected_skills"` // sorted
	MissingSkills  []string `json:"missing_skills"`  // in the role's defined order
	FitPercent     int      `json:"job_fit_percent"` // 0-100
}

// FileError records a per-file failure that did not abort the batch.
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// ComparisonRow marks, for one resume, which skills of the matrix are present.
type ComparisonRow struct {
	Resume string          `json:"resume"`
	Skills map[string]bool `json:"skills"`
}

// ComparisonMatrix is a skill-presence table across several resumes.
// Skills is the sorted union; each row maps every skill in Skills to a flag.
type ComparisonMatrix struct {
	Skills []string        `json:"skills"`
	Rows   []ComparisonRow `json:"rows"`
}

// LearningResource pairs a skill with a learning URL.
type LearningResource struct {
	Skill    string `json:"skill"`
	Resource string `json:"resource"`
}

// AnalysisReport is the full view of the most recent analysis batch.
type AnalysisReport struct {
	Analyses        []ResumeAnalysis   `json:"analyses"`
	Failures        []FileError        `json:"failures,omitempty"`
	GapTracker      ComparisonMatrix   `json:"gap_tracker"`
	OverallSkills   []string           `json:"overall_skills"`
	Recommendations []LearningResource `json:"recommendations"`
	GeneratedAt     string             `json:"generated_at"`
}

// ResumeForm carries the fields for the resume PDF builder.
// All fields are required; validation failures mean no document is produced.
type ResumeForm struct {
	Name      string   `json:"name" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	TargetJob string   `json:"target_job" validate:"required"`
	Summary   string   `json:"summary" validate:"required"`
	Skills    []string `json:"skills" validate:"required,min=1,dive,required"`
}

// TipsResponse holds detected skills plus general optimization advice for one resume.
type TipsResponse struct {
	ResumeFile     string   `json:"resume_file"`
	DetectedSkills []string `json:"detected_skills"`
	Tips           []string `json:"tips"`
}

// InterviewPrep lists common interview questions for a role.
type InterviewPrep struct {
	Role      string   `json:"role"`
	Questions []string `json:"questions"`
}

// RoleInfo describes one role of the catalog.
type RoleInfo struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}
