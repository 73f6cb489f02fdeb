package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillsage/internal/models"
)

func TestCompareDisjointSkillSets(t *testing.T) {
	analyses := []models.ResumeAnalysis{
		{ResumeFile: "a.pdf", DetectedSkills: []string{"Python", "SQL"}},
		{ResumeFile: "b.pdf", DetectedSkills: []string{"HTML", "React"}},
	}

	m := Compare(analyses)

	assert.Equal(t, []string{"HTML", "Python", "React", "SQL"}, m.Skills)
	require.Len(t, m.Rows, 2)

	// Every skill is present in exactly one resume's column.
	for _, skill := range m.Skills {
		count := 0
		for _, row := range m.Rows {
			if row.Skills[skill] {
				count++
			}
		}
		assert.Equal(t, 1, count, "skill %s", skill)
	}
}

func TestCompareSharedSkill(t *testing.T) {
	analyses := []models.ResumeAnalysis{
		{ResumeFile: "a.pdf", DetectedSkills: []string{"Python"}},
		{ResumeFile: "b.pdf", DetectedSkills: []string{"Python", "SQL"}},
	}

	m := Compare(analyses)

	assert.True(t, m.Rows[0].Skills["Python"])
	assert.True(t, m.Rows[1].Skills["Python"])
	assert.False(t, m.Rows[0].Skills["SQL"])
	assert.True(t, m.Rows[1].Skills["SQL"])
}

func TestGapTracker(t *testing.T) {
	analyses := []models.ResumeAnalysis{
		{ResumeFile: "a.pdf", MissingSkills: []string{"SQL"}},
		{ResumeFile: "b.pdf", MissingSkills: []string{"Excel", "SQL"}},
	}

	m := GapTracker(analyses)

	assert.Equal(t, []string{"Excel", "SQL"}, m.Skills)
	assert.False(t, m.Rows[0].Skills["Excel"])
	assert.True(t, m.Rows[0].Skills["SQL"])
	assert.True(t, m.Rows[1].Skills["Excel"])
	assert.True(t, m.Rows[1].Skills["SQL"])
}

func TestGapTrackerEmpty(t *testing.T) {
	m := GapTracker(nil)
	assert.Empty(t, m.Skills)
	assert.Empty(t, m.Rows)
}

func TestOverallSkills(t *testing.T) {
	analyses := []models.ResumeAnalysis{
		{DetectedSkills: []string{"SQL", "Python"}},
		{DetectedSkills: []string{"Python", "Excel"}},
	}

	assert.Equal(t, []string{"Excel", "Python", "SQL"}, OverallSkills(analyses))
}

func TestSkillCounts(t *testing.T) {
	analyses := []models.ResumeAnalysis{
		{DetectedSkills: []string{"SQL", "Python"}},
		{DetectedSkills: []string{"Python"}},
	}

	counts := SkillCounts(analyses)
	assert.Equal(t, 2, counts["Python"])
	assert.Equal(t, 1, counts["SQL"])
}
