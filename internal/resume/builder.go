// Package resume generates a basic resume PDF from validated form input.
package resume

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/go-playground/validator/v10"

	"skillsage/internal/models"
)

const renderTimeout = 60 * time.Second

var resumeTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, Helvetica, sans-serif; margin: 48px; color: #222; }
  h1 { text-align: center; margin-bottom: 0; }
  .email { text-align: center; margin-top: 4px; color: #555; }
  h2 { border-bottom: 1px solid #999; padding-bottom: 4px; margin-top: 28px; }
  .target { font-weight: bold; }
</style>
</head>
<body>
  <h1>{{.Name}}</h1>
  <p class="email">Email: {{.Email}}</p>
  <p class="target">Target Job: {{.TargetJob}}</p>
  <h2>Professional Summary</h2>
  <p>{{.Summary}}</p>
  <h2>Skills</h2>
  <p>{{.SkillList}}</p>
</body>
</html>`))

// Builder validates resume forms and renders them to PDF via headless Chrome.
type Builder struct {
	chromePath string
	validate   *validator.Validate
}

// NewBuilder creates a resume builder. chromePath may be empty, in which case
// chromedp locates the browser itself.
func NewBuilder(chromePath string) *Builder {
	return &Builder{
		chromePath: chromePath,
		validate:   validator.New(),
	}
}

// Validate checks the form's required fields. The returned error is a
// validator.ValidationErrors when fields are missing or malformed.
func (b *Builder) Validate(form models.ResumeForm) error {
	return b.validate.Struct(form)
}

// Build validates the form and produces the resume PDF. No document is
// produced when validation fails.
func (b *Builder) Build(ctx context.Context, form models.ResumeForm) ([]byte, error) {
	if err := b.Validate(form); err != nil {
		return nil, err
	}

	html, err := renderHTML(form)
	if err != nil {
		return nil, fmt.Errorf("failed to render resume HTML: %w", err)
	}

	pdf, err := b.printToPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("failed to render resume PDF: %w", err)
	}
	return pdf, nil
}

func renderHTML(form models.ResumeForm) (string, error) {
	data := struct {
		models.ResumeForm
		SkillList string
	}{
		ResumeForm: form,
		SkillList:  strings.Join(form.Skills, ", "),
	}

	var sb strings.Builder
	if err := resumeTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// printToPDF loads the HTML in headless Chrome and prints it to an A4 PDF.
func (b *Builder) printToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if b.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(b.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	rctx, cancelRender := context.WithTimeout(cctx, renderTimeout)
	defer cancelRender()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(rctx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
