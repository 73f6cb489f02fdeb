package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteWordCloud renders the detected-skill word cloud as a self-contained
// HTML page. Counts weight each skill by the number of resumes containing it.
func WriteWordCloud(counts map[string]int, w io.Writer) error {
	if len(counts) == 0 {
		return fmt.Errorf("no skills to chart")
	}

	data := make([]opts.WordCloudData, 0, len(counts))
	for _, skill := range sortedKeys(counts) {
		data = append(data, opts.WordCloudData{Name: skill, Value: counts[skill]})
	}

	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Overall Skills Word Cloud"}),
	)
	wc.AddSeries("skills", data).
		SetSeriesOptions(charts.WithWorldCloudChartOpts(opts.WordCloudChart{
			SizeRange: []float32{14, 60},
		}))

	return wc.Render(w)
}

// WriteSkillBar renders the skill-frequency bar chart as HTML.
func WriteSkillBar(counts map[string]int, w io.Writer) error {
	if len(counts) == 0 {
		return fmt.Errorf("no skills to chart")
	}

	skills := sortedKeys(counts)
	values := make([]opts.BarData, 0, len(skills))
	for _, skill := range skills {
		values = append(values, opts.BarData{Value: counts[skill]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Skill Count"}),
	)
	bar.SetXAxis(skills).AddSeries("Count", values)

	return bar.Render(w)
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
