// Package analysis implements skill extraction, skill-gap computation and
// job-fit scoring against the immutable catalogs. All functions are pure.
package analysis

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"skillsage/internal/catalog"
	"skillsage/internal/models"
)

// ExtractSkills returns the sorted set of catalog skills whose lowercased
// form appears as a contiguous substring of the lowercased text. There is no
// word-boundary check, so "Java" matches inside "JavaScript". Empty text
// yields an empty result.
func ExtractSkills(text string, cat *catalog.Catalog) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var found []string
	for _, skill := range cat.Skills() {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}

// MissingSkills returns the target role's required skills, in the role's
// defined order, filtered to those not present in detected. An unknown role
// yields an empty list.
func MissingSkills(detected []string, role string, cat *catalog.Catalog) []string {
	have := make(map[string]struct{}, len(detected))
	for _, s := range detected {
		have[s] = struct{}{}
	}

	var missing []string
	for _, s := range cat.RoleSkills(role) {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

// FitPercent scores how well detected skills cover the role's requirements:
// floor(100 * |detected ∩ required| / |required|). Only detected skills that
// the role actually lists count towards the numerator, so the result stays
// within 0-100. A role with no required skills scores 0.
func FitPercent(detected []string, role string, cat *catalog.Catalog) int {
	required := cat.RoleSkills(role)
	if len(required) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(detected))
	for _, s := range detected {
		have[s] = struct{}{}
	}

	matched := 0
	for _, s := range required {
		if _, ok := have[s]; ok {
			matched++
		}
	}
	return 100 * matched / len(required)
}

// Analyze runs the full extraction for one resume text against a target role.
func Analyze(source, text, role string, cat *catalog.Catalog) models.ResumeAnalysis {
	detected := ExtractSkills(text, cat)
	return models.ResumeAnalysis{
		ID:             uuid.NewString(),
		ResumeFile:     source,
		TargetRole:     role,
		DetectedSkills: detected,
		MissingSkills:  MissingSkills(detected, role, cat),
		FitPercent:     FitPercent(detected, role, cat),
	}
}

// Recommendations maps skills to their learning resources, keeping the input
// order and skipping skills without a known resource.
func Recommendations(skills []string, cat *catalog.Catalog) []models.LearningResource {
	var recs []models.LearningResource
	for _, skill := range skills {
		if url, ok := cat.LearningLink(skill); ok {
			recs = append(recs, models.LearningResource{Skill: skill, Resource: url})
		}
	}
	return recs
}
