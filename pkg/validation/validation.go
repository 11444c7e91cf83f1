package validation

import (
	"encoding/json"
	"fmt"
)

// Stage tells which part of the pipeline produced a finding: spec parsing,
// the geometry checks on boundary and islands, or the course generation
// itself (an implausible decomposition).
type Stage string

const (
	StageSpec     Stage = "spec"
	StageGeometry Stage = "geometry"
	StageCourse   Stage = "course"
)

// Severity of a finding. Only errors block course generation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Finding is one problem with, or remark about, a field project.
// Path points into the field spec document ("center.rows_per_land");
// Got and Want describe the offending value, Hint how to fix it.
type Finding struct {
	Stage    Stage    `json:"stage"`
	Severity Severity `json:"severity"`
	Path     string   `json:"path,omitempty"`
	Message  string   `json:"message"`
	Got      any      `json:"got,omitempty"`
	Want     string   `json:"want,omitempty"`
	Hint     string   `json:"hint,omitempty"`
}

// Report accumulates findings across the pipeline stages.
type Report struct {
	Findings []Finding
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// Error records a blocking finding.
func (r *Report) Error(f Finding) {
	f.Severity = SeverityError
	r.Findings = append(r.Findings, f)
}

// Warning records a non-blocking finding.
func (r *Report) Warning(f Finding) {
	f.Severity = SeverityWarning
	r.Findings = append(r.Findings, f)
}

// Note records an informational finding.
func (r *Report) Note(f Finding) {
	f.Severity = SeverityNote
	r.Findings = append(r.Findings, f)
}

// Merge appends another report's findings to this one.
func (r *Report) Merge(other *Report) {
	r.Findings = append(r.Findings, other.Findings...)
}

// Valid reports whether the project can proceed to course generation:
// no error findings.
func (r *Report) Valid() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

// BySeverity returns the findings of the given severity, in order.
func (r *Report) BySeverity(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// Summary is a one-line count of the report's findings.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d errors, %d warnings, %d notes",
		len(r.BySeverity(SeverityError)),
		len(r.BySeverity(SeverityWarning)),
		len(r.BySeverity(SeverityNote)))
}

// MarshalJSON serializes the report with its derived validity and summary,
// the shape the CLI and the dev server emit.
func (r *Report) MarshalJSON() ([]byte, error) {
	findings := r.Findings
	if findings == nil {
		findings = []Finding{}
	}
	return json.Marshal(struct {
		Valid    bool      `json:"valid"`
		Summary  string    `json:"summary"`
		Findings []Finding `json:"findings"`
	}{r.Valid(), r.Summary(), findings})
}
