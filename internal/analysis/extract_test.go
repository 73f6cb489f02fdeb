package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillsage/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(
		map[string][]string{
			"Data Analyst": {"Python", "SQL", "Excel"},
		},
		map[string]string{
			"Python": "https://example.com/python",
			"SQL":    "https://example.com/sql",
		},
		nil,
		nil,
	)
}

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "case-insensitive matches",
			text: "Experienced in python and Excel reporting",
			want: []string{"Excel", "Python"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "no matches",
			text: "I herd sheep in the highlands",
			want: nil,
		},
		{
			name: "all matches sorted",
			text: "SQL, excel and PYTHON",
			want: []string{"Excel", "Python", "SQL"},
		},
	}

	cat := testCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSkills(tt.text, cat))
		})
	}
}

// A skill name inside a larger token still matches: there is no word-boundary
// check, so "Java" is detected inside "JavaScript".
func TestExtractSkillsSubstringFalsePositive(t *testing.T) {
	cat := catalog.Default()

	skills := ExtractSkills("Built frontends in JavaScript", cat)
	assert.Contains(t, skills, "JavaScript")
	assert.Contains(t, skills, "Java")
}

func TestExtractSkillsIdempotent(t *testing.T) {
	cat := testCatalog()
	text := "Python and SQL, plus some Excel"

	first := ExtractSkills(text, cat)
	second := ExtractSkills(text, cat)
	assert.Equal(t, first, second)
}

func TestMissingSkills(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name     string
		detected []string
		role     string
		want     []string
	}{
		{
			name:     "one gap",
			detected: []string{"Excel", "Python"},
			role:     "Data Analyst",
			want:     []string{"SQL"},
		},
		{
			name:     "nothing detected keeps role order",
			detected: nil,
			role:     "Data Analyst",
			want:     []string{"Python", "SQL", "Excel"},
		},
		{
			name:     "everything detected",
			detected: []string{"Excel", "Python", "SQL"},
			role:     "Data Analyst",
			want:     nil,
		},
		{
			name:     "unknown role",
			detected: []string{"Python"},
			role:     "Astronaut",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing := MissingSkills(tt.detected, tt.role, cat)
			assert.Equal(t, tt.want, missing)
			for _, s := range tt.detected {
				assert.NotContains(t, missing, s)
			}
		})
	}
}

func TestFitPercent(t *testing.T) {
	cat := catalog.Default() // Data Analyst requires 5 skills

	tests := []struct {
		name     string
		detected []string
		role     string
		want     int
	}{
		{
			name:     "two of five",
			detected: []string{"Python", "SQL"},
			role:     "Data Analyst",
			want:     40,
		},
		{
			name:     "all five",
			detected: []string{"Python", "SQL", "Excel", "Power BI", "Statistics"},
			role:     "Data Analyst",
			want:     100,
		},
		{
			name:     "unrelated skills do not count",
			detected: []string{"Python", "SQL", "React", "HTML", "CSS", "Java", "C++"},
			role:     "Data Analyst",
			want:     40,
		},
		{
			name:     "unknown role",
			detected: []string{"Python", "SQL"},
			role:     "Astronaut",
			want:     0,
		},
		{
			name:     "nothing detected",
			detected: nil,
			role:     "Data Analyst",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitPercent(tt.detected, tt.role, cat)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestAnalyze(t *testing.T) {
	cat := testCatalog()

	a := Analyze("resume.pdf", "Experienced in python and Excel reporting", "Data Analyst", cat)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "resume.pdf", a.ResumeFile)
	assert.Equal(t, "Data Analyst", a.TargetRole)
	assert.Equal(t, []string{"Excel", "Python"}, a.DetectedSkills)
	assert.Equal(t, []string{"SQL"}, a.MissingSkills)
	assert.Equal(t, 66, a.FitPercent)
}

func TestRecommendations(t *testing.T) {
	cat := testCatalog()

	recs := Recommendations([]string{"Python", "Excel", "SQL"}, cat)
	require.Len(t, recs, 2) // Excel has no learning link in the test catalog
	assert.Equal(t, "Python", recs[0].Skill)
	assert.Equal(t, "https://example.com/python", recs[0].Resource)
	assert.Equal(t, "SQL", recs[1].Skill)
}
