// Package errors implements the process-wide diagnostic sink (spec.md
// §4.4): a reporter that collects fatal and warning diagnostics tagged
// with source coordinates, in emission order, and exposes a "had-error"
// flag. It is modeled as an injected collaborator (spec.md §9) rather than
// global state so tests can capture diagnostics deterministically.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/cmm/internal/token"
)

// Severity distinguishes a fatal diagnostic (raises HadError) from a
// non-fatal hint.
type Severity int

const (
	Fatal Severity = iota
	Warn
)

// Diagnostic is a single reported message with its source position.
type Diagnostic struct {
	Severity Severity
	Pos      token.Position
	Message  string
}

// String renders the diagnostic in the project's conventional format:
// "<line>:<col> ***ERROR*** <message>" for fatals, "***WARNING***" for
// warnings (spec.md §6).
func (d Diagnostic) String() string {
	tag := "***ERROR***"
	if d.Severity == Warn {
		tag = "***WARNING***"
	}
	return fmt.Sprintf("%s %s %s", d.Pos.String(), tag, d.Message)
}

// Reporter accumulates diagnostics during analysis. Reporting never
// unwinds control flow; callers keep analyzing after a Fatal() call so that
// as many independent errors as possible surface in one run (spec.md §7).
type Reporter struct {
	diags    []Diagnostic
	hadError bool
	source   string
	file     string
}

// NewReporter creates an empty Reporter. source and file are optional and
// only used to render source-line context; pass "" for either when
// unavailable.
func NewReporter(source, file string) *Reporter {
	return &Reporter{source: source, file: file}
}

// Fatal reports a fatal diagnostic and raises HadError.
func (r *Reporter) Fatal(pos token.Position, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{Severity: Fatal, Pos: pos, Message: fmt.Sprintf(format, args...)})
	r.hadError = true
}

// Warn reports a non-fatal diagnostic; it does not raise HadError.
func (r *Reporter) Warn(pos token.Position, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{Severity: Warn, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// HadError reports whether any Fatal diagnostic has been recorded.
func (r *Reporter) HadError() bool {
	return r.hadError
}

// Diagnostics returns the diagnostics in emission order (spec.md §5's
// ordering guarantee: pre-order within a declaration, left-to-right within
// an expression).
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diags
}

// Messages returns each diagnostic's String() form, in emission order — the
// shape used for golden-output comparisons in tests.
func (r *Reporter) Messages() []string {
	out := make([]string, len(r.diags))
	for i, d := range r.diags {
		out[i] = d.String()
	}
	return out
}

// Format renders every diagnostic on its own line, with one line of source
// context per diagnostic when the Reporter was built with source text
// (teacher pattern: internal/errors.CompilerError.Format in the reference
// compiler this core's error sink is modeled on).
func (r *Reporter) Format() string {
	var sb strings.Builder
	for i, d := range r.diags {
		if r.file != "" {
			sb.WriteString(fmt.Sprintf("%s: ", r.file))
		}
		sb.WriteString(d.String())
		sb.WriteString("\n")
		if line := r.sourceLine(d.Pos.Line); line != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", line))
			sb.WriteString(strings.Repeat(" ", 4+max(d.Pos.Column-1, 0)))
			sb.WriteString("^\n")
		}
		if i < len(r.diags)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (r *Reporter) sourceLine(line int) string {
	if r.source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(r.source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
