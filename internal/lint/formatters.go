package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Helper functions to suppress errcheck warnings for formatting output.
// These are used for writing to output streams where errors are non-fatal.
func fprintf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

// Formatter defines the interface for output formatters.
type Formatter interface {
	Format(result *Result, w io.Writer) error
}

// NewFormatter creates a formatter for the given format type.
func NewFormatter(format string) Formatter {
	switch format {
	case "json":
		return &JSONFormatter{}
	case "github":
		return &GitHubFormatter{}
	case "text-no-color":
		return &TextFormatter{Color: false}
	default:
		return &TextFormatter{Color: true}
	}
}

// =============================================================================
// Text Formatter (Human Readable)
// =============================================================================

// TextFormatter outputs a human-readable report grouped by file.
type TextFormatter struct {
	Color bool
}

type textStyles struct {
	title, file, rule, hint, line lipgloss.Style

	severity map[Severity]lipgloss.Style
}

func (f *TextFormatter) styles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	if f.Color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return textStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		file:  r.NewStyle().Bold(true),
		rule:  r.NewStyle().Faint(true),
		hint:  r.NewStyle().Faint(true),
		line:  r.NewStyle().Faint(true),
		severity: map[Severity]lipgloss.Style{
			SeverityError:   r.NewStyle().Foreground(lipgloss.Color("1")),
			SeverityWarning: r.NewStyle().Foreground(lipgloss.Color("3")),
			SeverityInfo:    r.NewStyle().Foreground(lipgloss.Color("4")),
		},
	}
}

var severityIcons = map[Severity]string{
	SeverityError:   "✖",
	SeverityWarning: "⚠",
	SeverityInfo:    "ℹ",
}

func (f *TextFormatter) Format(result *Result, w io.Writer) error {
	st := f.styles(w)

	fprintf(w, "\n%s\n", st.title.Render("mdbook-sidebar check"))
	fprintf(w, "%s\n\n", st.line.Render(strings.Repeat("═", 66)))

	if len(result.Issues) == 0 {
		fprintf(w, "%s\n\n", st.file.Render(fmt.Sprintf("✓ No issues found in %d page(s)", result.TotalPages)))
		return nil
	}

	for _, group := range groupByFile(result.Issues) {
		fprintln(w, st.file.Render(group.file))
		for _, issue := range group.issues {
			fprintf(w, "  %s %s %s\n",
				st.severity[issue.Severity].Render(severityIcons[issue.Severity]),
				st.rule.Render(issue.RuleID),
				issue.Message)
			if issue.Suggestion != "" {
				fprintf(w, "     %s\n", st.hint.Render("→ "+issue.Suggestion))
			}
		}
		fprintln(w)
	}

	fprintln(w, st.line.Render(strings.Repeat("─", 66)))
	var counts []string
	for _, c := range []struct {
		severity Severity
		n        int
		label    string
	}{
		{SeverityError, result.ErrorCount, "error(s)"},
		{SeverityWarning, result.WarnCount, "warning(s)"},
		{SeverityInfo, result.InfoCount, "info"},
	} {
		if c.n > 0 {
			counts = append(counts, st.severity[c.severity].Render(fmt.Sprintf("%d %s", c.n, c.label)))
		}
	}
	fprintf(w, " %s in %d page(s)\n\n", strings.Join(counts, ", "), result.TotalPages)

	return nil
}

type fileGroup struct {
	file   string
	issues []Issue
}

// groupByFile groups issues by file in order of first appearance.
func groupByFile(issues []Issue) []fileGroup {
	var groups []fileGroup
	index := make(map[string]int)
	for _, issue := range issues {
		i, ok := index[issue.FilePath]
		if !ok {
			i = len(groups)
			index[issue.FilePath] = i
			groups = append(groups, fileGroup{file: issue.FilePath})
		}
		groups[i].issues = append(groups[i].issues, issue)
	}
	return groups
}

// =============================================================================
// JSON Formatter
// =============================================================================

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// JSONOutput is the structure for JSON output.
type JSONOutput struct {
	Version    string  `json:"version"`
	Timestamp  string  `json:"timestamp"`
	TotalPages int     `json:"totalPages"`
	Summary    Summary `json:"summary"`
	Issues     []Issue `json:"issues"`
	ExitCode   int     `json:"exitCode"`
}

type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
	Total    int `json:"total"`
}

func (f *JSONFormatter) Format(result *Result, w io.Writer) error {
	output := JSONOutput{
		Version:    "1.0",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		TotalPages: result.TotalPages,
		Summary: Summary{
			Errors:   result.ErrorCount,
			Warnings: result.WarnCount,
			Info:     result.InfoCount,
			Total:    len(result.Issues),
		},
		Issues:   result.Issues,
		ExitCode: result.ExitCode,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// =============================================================================
// GitHub Actions Formatter
// =============================================================================

// GitHubFormatter outputs GitHub Actions workflow commands.
type GitHubFormatter struct{}

func (f *GitHubFormatter) Format(result *Result, w io.Writer) error {
	// The description is included once per rule.
	explainedRules := make(map[string]bool)

	for _, issue := range result.Issues {
		level := "notice"
		switch issue.Severity {
		case SeverityError:
			level = "error"
		case SeverityWarning:
			level = "warning"
		}

		// ::error file={name},title={title}::{message}
		params := []string{}
		if issue.FilePath != "" {
			params = append(params, fmt.Sprintf("file=%s", escapeProperty(issue.FilePath)))
		}
		params = append(params, fmt.Sprintf("title=%s", escapeProperty(fmt.Sprintf("%s (%s)", issue.RuleName, issue.RuleID))))

		message := issue.Message
		if !explainedRules[issue.RuleID] && issue.Description != "" {
			message += " Why: " + issue.Description
			explainedRules[issue.RuleID] = true
		}
		if issue.Suggestion != "" {
			message += " Suggestion: " + issue.Suggestion
		}

		fprintf(w, "::%s %s::%s\n", level, strings.Join(params, ","), escapeData(message))
	}

	if result.ErrorCount > 0 || result.WarnCount > 0 {
		fprintf(w, "::group::Navigation check summary\n")
		fprintf(w, "Errors: %d, Warnings: %d, Info: %d, Pages: %d\n",
			result.ErrorCount, result.WarnCount, result.InfoCount, result.TotalPages)
		fprintf(w, "::endgroup::\n")
	}

	return nil
}

// escapeData escapes a workflow command message.
func escapeData(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	return r.Replace(s)
}

// escapeProperty escapes a workflow command property value.
func escapeProperty(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")
	return r.Replace(s)
}
