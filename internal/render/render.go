// Package render formats a self-test summary for a diagnostics console.
//
// Three renderers cover the output surfaces: Terminal (styled, for an
// interactive console), Plain (the raw diagnostic stream, for logs and
// piped capture), and JSON (for automation).
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/bootcheck/internal/selftest"
)

// Renderer formats one run summary.
type Renderer interface {
	Render(sum selftest.Summary) string
}

// Plain renders the bare diagnostic stream: one "not ok" line per failure
// and a final summary line.
type Plain struct{}

// NewPlain creates a plain renderer.
func NewPlain() *Plain { return &Plain{} }

// Render implements Renderer.
func (p *Plain) Render(sum selftest.Summary) string {
	var sb strings.Builder
	for _, f := range sum.Failures {
		sb.WriteString(failureLine(f))
		sb.WriteString("\n")
	}
	sb.WriteString(summaryLine(sum))
	sb.WriteString("\n")
	return sb.String()
}

// Terminal renders a styled per-unit table plus the diagnostic stream.
type Terminal struct {
	theme Theme
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme) *Terminal {
	return &Terminal{theme: theme}
}

// Render implements Renderer.
func (t *Terminal) Render(sum selftest.Summary) string {
	var sb strings.Builder

	nameWidth := 0
	for _, u := range sum.Units {
		if w := runewidth.StringWidth(u.Name); w > nameWidth {
			nameWidth = w
		}
	}

	for _, u := range sum.Units {
		icon := t.theme.Success.Render(t.theme.Icons.Pass)
		if u.Tally.Failed > 0 {
			icon = t.theme.Error.Render(t.theme.Icons.Fail)
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s\n",
			icon,
			runewidth.FillRight(u.Name, nameWidth),
			t.theme.Muted.Render(fmt.Sprintf("%d assertions, %d failures",
				u.Tally.Total, u.Tally.Failed))))
	}

	for _, f := range sum.Failures {
		sb.WriteString(t.theme.Error.Render(failureLine(f)))
		sb.WriteString("\n")
	}

	line := summaryLine(sum)
	if sum.OK() {
		sb.WriteString(t.theme.Success.Render(line))
	} else {
		sb.WriteString(t.theme.Bold.Render(t.theme.Error.Render(line)))
	}
	sb.WriteString("\n")
	return sb.String()
}

// JSON renders the summary as a single JSON document.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON { return &JSON{} }

// Render implements Renderer.
func (j *JSON) Render(sum selftest.Summary) string {
	out, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		// Summary contains nothing unmarshalable; keep the signature simple.
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(out) + "\n"
}

func failureLine(f selftest.Failure) string {
	line := fmt.Sprintf("not ok — %s:%d", f.File, f.Line)
	if f.Desc != "" {
		line += fmt.Sprintf(" (%s)", f.Desc)
	}
	if f.Unit != "" {
		line += fmt.Sprintf(" [%s]", f.Unit)
	}
	return line
}

func summaryLine(sum selftest.Summary) string {
	status := "ok"
	if !sum.OK() {
		status = "not ok"
	}
	return fmt.Sprintf("%s, %d assertions, %d failures",
		status, sum.Tally.Total, sum.Tally.Failed)
}
