/*
Copyright 2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmltemplate "html/template"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// FileTimestampFormat is embedded in artifact file names.
	FileTimestampFormat = "20060102_150405"

	// errorTruncateLength bounds error text in the plain text summary.
	errorTruncateLength = 100
)

//go:embed templates
var templates embed.FS

//nolint:gochecknoglobals
var funcs = map[string]any{
	"upper": func(s Status) string {
		return strings.ToUpper(string(s))
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}

		return *s
	},
	"truncate": func(s string) string {
		runes := []rune(s)
		if len(runes) <= errorTruncateLength {
			return s
		}

		return string(runes[:errorTruncateLength]) + "..."
	},
}

//nolint:gochecknoglobals
var (
	htmlTemplate = htmltemplate.Must(htmltemplate.New("report.html.tmpl").Funcs(funcs).ParseFS(templates, "templates/report.html.tmpl"))
	textTemplate = texttemplate.Must(texttemplate.New("summary.txt.tmpl").Funcs(funcs).ParseFS(templates, "templates/summary.txt.tmpl"))
)

// Artifacts are the paths of the files written by WriteAll.
type Artifacts struct {
	HTML    string
	JSON    string
	Summary string
}

// Generator writes run summaries to a report directory.  All files written
// by one generator share the timestamp taken when it was created.
type Generator struct {
	dir       string
	generated time.Time
}

type Option func(*Generator)

// WithTime overrides the generation time.
func WithTime(t time.Time) Option {
	return func(g *Generator) {
		g.generated = t
	}
}

// NewGenerator creates the report directory if it doesn't exist.
func NewGenerator(dir string, opts ...Option) (*Generator, error) {
	g := &Generator{
		dir:       dir,
		generated: time.Now(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	return g, nil
}

func (g *Generator) path(prefix, extension string) string {
	return filepath.Join(g.dir, fmt.Sprintf("%s_%s.%s", prefix, g.generated.Format(FileTimestampFormat), extension))
}

type templateData struct {
	Generated string
	Summary   *Summary
	Passed    []Result
	Failed    []Result
}

func (g *Generator) data(summary *Summary) *templateData {
	return &templateData{
		Generated: g.generated.Format(TimestampFormat),
		Summary:   summary,
		Passed:    summary.Results(StatusPassed),
		Failed:    summary.Results(StatusFailed),
	}
}

func (g *Generator) write(path string, data []byte) (string, error) {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}

	return path, nil
}

// WriteJSON writes the summary as indented JSON.
func (g *Generator) WriteJSON(summary *Summary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling summary: %w", err)
	}

	return g.write(g.path("report", "json"), data)
}

// WriteHTML writes a styled HTML page with a card per test.
func (g *Generator) WriteHTML(summary *Summary) (string, error) {
	var buf bytes.Buffer

	if err := htmlTemplate.Execute(&buf, g.data(summary)); err != nil {
		return "", fmt.Errorf("rendering html report: %w", err)
	}

	return g.write(g.path("report", "html"), buf.Bytes())
}

// WriteSummary writes the plain text overview.
func (g *Generator) WriteSummary(summary *Summary) (string, error) {
	var buf bytes.Buffer

	if err := textTemplate.Execute(&buf, g.data(summary)); err != nil {
		return "", fmt.Errorf("rendering summary report: %w", err)
	}

	return g.write(g.path("summary", "txt"), buf.Bytes())
}

// WriteAll writes every artifact.
func (g *Generator) WriteAll(summary *Summary) (*Artifacts, error) {
	log := log.Log.WithName("report")

	var (
		artifacts Artifacts
		err       error
	)

	if artifacts.JSON, err = g.WriteJSON(summary); err != nil {
		return nil, err
	}

	if artifacts.HTML, err = g.WriteHTML(summary); err != nil {
		return nil, err
	}

	if artifacts.Summary, err = g.WriteSummary(summary); err != nil {
		return nil, err
	}

	log.Info("reports written", "directory", g.dir, "total", summary.Total, "passed", summary.Passed, "failed", summary.Failed, "skipped", summary.Skipped)

	return &artifacts, nil
}
