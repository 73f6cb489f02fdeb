package analysis

import (
	"sort"

	"skillsage/internal/models"
)

// Compare builds the comparison table across analyses: one column per skill
// in the union of detected skills, one row per resume marking presence.
func Compare(analyses []models.ResumeAnalysis) models.ComparisonMatrix {
	return matrix(analyses, func(a models.ResumeAnalysis) []string { return a.DetectedSkills })
}

// GapTracker builds the same matrix shape over missing skills: a true flag
// means the resume lacks that skill for its target role.
func GapTracker(analyses []models.ResumeAnalysis) models.ComparisonMatrix {
	return matrix(analyses, func(a models.ResumeAnalysis) []string { return a.MissingSkills })
}

// OverallSkills returns the sorted union of detected skills across analyses.
func OverallSkills(analyses []models.ResumeAnalysis) []string {
	set := make(map[string]struct{})
	for _, a := range analyses {
		for _, s := range a.DetectedSkills {
			set[s] = struct{}{}
		}
	}

	union := make([]string, 0, len(set))
	for s := range set {
		union = append(union, s)
	}
	sort.Strings(union)
	return union
}

// SkillCounts returns, per detected skill, the number of analyses containing it.
func SkillCounts(analyses []models.ResumeAnalysis) map[string]int {
	counts := make(map[string]int)
	for _, a := range analyses {
		for _, s := range a.DetectedSkills {
			counts[s]++
		}
	}
	return counts
}

func matrix(analyses []models.ResumeAnalysis, pick func(models.ResumeAnalysis) []string) models.ComparisonMatrix {
	set := make(map[string]struct{})
	for _, a := range analyses {
		for _, s := range pick(a) {
			set[s] = struct{}{}
		}
	}

	skills := make([]string, 0, len(set))
	for s := range set {
		skills = append(skills, s)
	}
	sort.Strings(skills)

	rows := make([]models.ComparisonRow, 0, len(analyses))
	for _, a := range analyses {
		row := models.ComparisonRow{
			Resume: a.ResumeFile,
			Skills: make(map[string]bool, len(skills)),
		}
		marked := make(map[string]struct{}, len(pick(a)))
		for _, s := range pick(a) {
			marked[s] = struct{}{}
		}
		for _, s := range skills {
			_, ok := marked[s]
			row.Skills[s] = ok
		}
		rows = append(rows, row)
	}

	return models.ComparisonMatrix{Skills: skills, Rows: rows}
}
