// Package catalog holds the immutable skill, role and learning-resource
// catalogs the analysis functions run against. Catalogs are built once at
// startup and passed explicitly to callers; accessors return copies.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Catalog is the fixed universe of roles, skills and related reference data.
type Catalog struct {
	roles     map[string][]string
	links     map[string]string
	questions map[string][]string
	tips      []string
	roleNames []string
	skills    []string
}

// fileFormat is the JSON shape accepted by LoadFrom. Any section left empty
// falls back to the built-in defaults.
type fileFormat struct {
	Roles              map[string][]string `json:"roles"`
	LearningLinks      map[string]string   `json:"learning_links"`
	InterviewQuestions map[string][]string `json:"interview_questions"`
	OptimizationTips   []string            `json:"optimization_tips"`
}

// New builds a catalog from explicit mappings. The skill universe is derived
// as the sorted union of all role skill lists.
func New(roles map[string][]string, links map[string]string, questions map[string][]string, tips []string) *Catalog {
	c := &Catalog{
		roles:     make(map[string][]string, len(roles)),
		links:     make(map[string]string, len(links)),
		questions: make(map[string][]string, len(questions)),
		tips:      append([]string(nil), tips...),
	}

	skillSet := make(map[string]struct{})
	for role, skills := range roles {
		c.roles[role] = append([]string(nil), skills...)
		c.roleNames = append(c.roleNames, role)
		for _, s := range skills {
			skillSet[s] = struct{}{}
		}
	}
	sort.Strings(c.roleNames)

	for s := range skillSet {
		c.skills = append(c.skills, s)
	}
	sort.Strings(c.skills)

	for skill, url := range links {
		c.links[skill] = url
	}
	for role, qs := range questions {
		c.questions[role] = append([]string(nil), qs...)
	}

	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	roles := map[string][]string{
		"Data Analyst":      {"Python", "SQL", "Excel", "Power BI", "Statistics"},
		"AI/ML Engineer":    {"Python", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch"},
		"Web Developer":     {"HTML", "CSS", "JavaScript", "React", "SQL"},
		"Software Engineer": {"Java", "C++", "Data Structures", "Algorithms"},
	}

	links := map[string]string{
		"Python":           "https://www.coursera.org/learn/python",
		"SQL":              "https://www.w3schools.com/sql/",
		"Excel":            "https://www.microsoft.com/en-us/learning/excel-training.aspx",
		"Power BI":         "https://learn.microsoft.com/en-us/power-bi/",
		"Statistics":       "https://www.khanacademy.org/math/statistics-probability",
		"Machine Learning": "https://www.coursera.org/learn/machine-learning",
		"Deep Learning":    "https://www.deeplearning.ai/",
		"TensorFlow":       "https://www.tensorflow.org/learn",
		"PyTorch":          "https://pytorch.org/tutorials/",
		"HTML":             "https://www.w3schools.com/html/",
		"CSS":              "https://www.w3schools.com/css/",
		"JavaScript":       "https://www.w3schools.com/js/",
		"React":            "https://reactjs.org/tutorial/tutorial.html",
		"Java":             "https://www.w3schools.com/java/",
		"C++":              "https://www.learncpp.com/",
		"Data Structures":  "https://www.geeksforgeeks.org/data-structures/",
		"Algorithms":       "https://www.geeksforgeeks.org/fundamentals-of-algorithms/",
	}

	questions := map[string][]string{
		"Data Analyst": {
			"Explain a project where you analyzed data.",
			"How do you handle missing data?",
			"Explain SQL joins.",
		},
		"AI/ML Engineer": {
			"Describe a machine learning project you built.",
			"Explain overfitting and how to prevent it.",
			"Difference between supervised and unsupervised learning.",
		},
		"Web Developer": {
			"Explain a project using React.",
			"How do you optimize website performance?",
			"Difference between REST and GraphQL.",
		},
		"Software Engineer": {
			"Explain a complex algorithm you implemented.",
			"What is OOP and its principles?",
			"How do you debug code efficiently?",
		},
	}

	tips := []string{
		"Include missing keywords relevant to your target role.",
		"Use clear headings and bullet points.",
		"Keep professional summary concise and impactful.",
		"Highlight top skills at the top.",
		"Ensure formatting is ATS-friendly (avoid images for text).",
	}

	return New(roles, links, questions, tips)
}

// LoadFrom reads a catalog override file. A missing file yields the default
// catalog; a malformed file is an error.
func LoadFrom(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var ff fileFormat
	if err := json.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	def := Default()
	if ff.Roles == nil {
		ff.Roles = def.roles
	}
	if ff.LearningLinks == nil {
		ff.LearningLinks = def.links
	}
	if ff.InterviewQuestions == nil {
		ff.InterviewQuestions = def.questions
	}
	if ff.OptimizationTips == nil {
		ff.OptimizationTips = def.tips
	}

	return New(ff.Roles, ff.LearningLinks, ff.InterviewQuestions, ff.OptimizationTips), nil
}

// Roles returns the role names, sorted.
func (c *Catalog) Roles() []string {
	return append([]string(nil), c.roleNames...)
}

// RoleSkills returns the required skills of a role in their defined order.
// Unknown roles yield an empty list, not an error.
func (c *Catalog) RoleSkills(role string) []string {
	return append([]string(nil), c.roles[role]...)
}

// HasRole reports whether the role exists in the catalog.
func (c *Catalog) HasRole(role string) bool {
	_, ok := c.roles[role]
	return ok
}

// Skills returns the sorted skill universe.
func (c *Catalog) Skills() []string {
	return append([]string(nil), c.skills...)
}

// LearningLink returns the learning resource URL for a skill, if one exists.
func (c *Catalog) LearningLink(skill string) (string, bool) {
	url, ok := c.links[skill]
	return url, ok
}

// Questions returns the interview questions for a role. Unknown roles yield
// an empty list.
func (c *Catalog) Questions(role string) []string {
	return append([]string(nil), c.questions[role]...)
}

// Tips returns the resume optimization tips.
func (c *Catalog) Tips() []string {
	return append([]string(nil), c.tips...)
}
