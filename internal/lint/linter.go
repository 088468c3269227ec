package lint

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// Config holds linter configuration.
type Config struct {
	// MinSeverity is the minimum severity level to report
	MinSeverity Severity
	// EnabledRules contains the IDs of rules to enable (empty means all)
	EnabledRules []string
	// DisabledRules contains the IDs of rules to disable
	DisabledRules []string
	// FailOnWarning treats warnings as failures for CI
	FailOnWarning bool
	// MaxIssues is the maximum number of issues to report (0 = unlimited)
	MaxIssues int
	// BookDir prefixes page paths to form FilePath.
	BookDir string
}

// DefaultConfig returns a default linter configuration.
func DefaultConfig() *Config {
	return &Config{
		MinSeverity:   SeverityInfo,
		EnabledRules:  nil, // All rules enabled
		DisabledRules: nil,
		FailOnWarning: false,
		MaxIssues:     0, // Unlimited
	}
}

// StrictConfig returns a strict configuration for CI.
func StrictConfig() *Config {
	cfg := DefaultConfig()
	cfg.FailOnWarning = true
	cfg.MinSeverity = SeverityWarning
	return cfg
}

// Result holds the results of a lint run.
type Result struct {
	Issues     []Issue `json:"issues"`
	ErrorCount int     `json:"errorCount"`
	WarnCount  int     `json:"warningCount"`
	InfoCount  int     `json:"infoCount"`
	TotalPages int     `json:"totalPages"`
	ExitCode   int     `json:"exitCode"`
}

// Passed returns true if the lint run passed (no errors, and no warnings if strict).
func (r *Result) Passed(strict bool) bool {
	if r.ErrorCount > 0 {
		return false
	}
	if strict && r.WarnCount > 0 {
		return false
	}
	return true
}

// Linter orchestrates lint rule execution.
type Linter struct {
	config *Config
	rules  []Rule
}

// NewLinter creates a new linter with the given configuration.
func NewLinter(cfg *Config) *Linter {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	l := &Linter{
		config: cfg,
		rules:  make([]Rule, 0),
	}
	l.registerRules()

	return l
}

// registerRules registers all available lint rules.
func (l *Linter) registerRules() {
	// Structure Rules (NAV001-NAV002)
	l.rules = append(l.rules, &RowBeforeHeaderRule{}, &MultipleActiveRule{})

	// Extraction Rules (NAV003-NAV005)
	l.rules = append(l.rules, &ForeignRowRule{}, &EmptyCategoryRule{}, &NoActiveEntryRule{})

	// Layout Rules (NAV006-NAV007)
	l.rules = append(l.rules, &MissingScrollRegionRule{}, &MissingResizeElementsRule{})
}

// isRuleEnabled checks if a rule should be executed.
func (l *Linter) isRuleEnabled(ruleID string) bool {
	for _, disabled := range l.config.DisabledRules {
		if strings.EqualFold(disabled, ruleID) {
			return false
		}
	}

	if len(l.config.EnabledRules) > 0 {
		for _, enabled := range l.config.EnabledRules {
			if strings.EqualFold(enabled, ruleID) {
				return true
			}
		}
		return false
	}

	return true
}

// shouldReport checks if an issue meets the minimum severity threshold.
func (l *Linter) shouldReport(issue Issue) bool {
	return issue.Severity.Level() >= l.config.MinSeverity.Level()
}

// Run executes all enabled rules against every page. Issues are ordered
// most severe first, then by page, keeping rule order within a page; the
// counts describe the issues kept after MaxIssues.
func (l *Linter) Run(ctx context.Context, pages []*sidebar.Snapshot) *Result {
	result := &Result{
		Issues:     make([]Issue, 0),
		TotalPages: len(pages),
	}

	rules := l.enabledRules()
	var found []Issue
	for _, snap := range pages {
		if snap == nil {
			continue
		}
		if ctx.Err() != nil {
			return result
		}
		for _, rule := range rules {
			for _, issue := range rule.Check(ctx, snap) {
				if l.shouldReport(issue) {
					issue.FilePath = l.filePath(issue.Page)
					found = append(found, issue)
				}
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		a, b := found[i], found[j]
		if a.Severity.Level() != b.Severity.Level() {
			return a.Severity.Level() > b.Severity.Level()
		}
		return a.Page < b.Page
	})
	if n := l.config.MaxIssues; n > 0 && len(found) > n {
		found = found[:n]
	}

	result.Issues = append(result.Issues, found...)
	result.tally(l.config.FailOnWarning)
	return result
}

func (r *Result) tally(failOnWarning bool) {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			r.ErrorCount++
		case SeverityWarning:
			r.WarnCount++
		case SeverityInfo:
			r.InfoCount++
		}
	}
	if !r.Passed(failOnWarning) {
		r.ExitCode = 1
	}
}

func (l *Linter) enabledRules() []Rule {
	rules := make([]Rule, 0, len(l.rules))
	for _, rule := range l.rules {
		if l.isRuleEnabled(rule.ID()) {
			rules = append(rules, rule)
		}
	}
	return rules
}

func (l *Linter) filePath(page string) string {
	if l.config.BookDir == "" {
		return strings.TrimPrefix(page, "/")
	}
	return path.Join(l.config.BookDir, strings.TrimPrefix(page, "/"))
}

// ListRules returns all available rules.
func (l *Linter) ListRules() []RuleInfo {
	info := make([]RuleInfo, 0, len(l.rules))
	for _, rule := range l.rules {
		info = append(info, RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Category:    rule.Category(),
			Severity:    rule.Severity(),
			Description: rule.Description(),
			Enabled:     l.isRuleEnabled(rule.ID()),
		})
	}
	return info
}

// RuleInfo provides information about a lint rule.
type RuleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
}
