package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	assert.Equal(t, []string{"AI/ML Engineer", "Data Analyst", "Software Engineer", "Web Developer"}, cat.Roles())

	// Role skill lists keep their defined order.
	assert.Equal(t, []string{"Python", "SQL", "Excel", "Power BI", "Statistics"}, cat.RoleSkills("Data Analyst"))

	// The skill universe is the sorted union of all role skill lists.
	skills := cat.Skills()
	assert.True(t, sort.StringsAreSorted(skills))
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "C++")
	assert.NotContains(t, skills, "Fortran")
}

func TestUnknownRole(t *testing.T) {
	cat := Default()

	assert.Empty(t, cat.RoleSkills("Astronaut"))
	assert.Empty(t, cat.Questions("Astronaut"))
	assert.False(t, cat.HasRole("Astronaut"))
}

func TestLearningLink(t *testing.T) {
	cat := Default()

	url, ok := cat.LearningLink("Python")
	require.True(t, ok)
	assert.Equal(t, "https://www.coursera.org/learn/python", url)

	_, ok = cat.LearningLink("Fortran")
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	cat := Default()

	skills := cat.RoleSkills("Data Analyst")
	skills[0] = "Basket Weaving"
	assert.Equal(t, "Python", cat.RoleSkills("Data Analyst")[0])

	roles := cat.Roles()
	roles[0] = "Pilot"
	assert.NotContains(t, cat.Roles(), "Pilot")

	tips := cat.Tips()
	require.NotEmpty(t, tips)
	tips[0] = "changed"
	assert.NotEqual(t, "changed", cat.Tips()[0])
}

func TestLoadFromMissingFile(t *testing.T) {
	cat, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	// Falls back to the defaults.
	assert.True(t, cat.HasRole("Data Analyst"))
}

func TestLoadFromOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{"roles": {"Go Developer": ["Go", "SQL"]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go Developer"}, cat.Roles())
	assert.Equal(t, []string{"Go", "SQL"}, cat.RoleSkills("Go Developer"))
	assert.False(t, cat.HasRole("Data Analyst"))

	// Sections absent from the file keep the defaults.
	_, ok := cat.LearningLink("SQL")
	assert.True(t, ok)
	assert.NotEmpty(t, cat.Tips())
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
