// Package lint reports structural problems in the navigation markup of
// built pages. It is designed for CI use, with configurable rules and
// several output formats. Diagnostics never change what extraction does.
package lint

import (
	"context"
	"fmt"
	"strings"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// Severity represents the severity level of a lint issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Level returns the numeric level (higher = more severe).
func (s Severity) Level() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// Category represents the category of a lint rule.
type Category string

const (
	CategoryStructure  Category = "structure"
	CategoryExtraction Category = "extraction"
	CategoryLayout     Category = "layout"
)

// Issue represents a lint issue found on a page.
type Issue struct {
	RuleID      string   `json:"ruleId"`
	RuleName    string   `json:"ruleName"`
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
	Message     string   `json:"message"`
	Description string   `json:"description,omitempty"`
	Suggestion  string   `json:"suggestion,omitempty"`
	FilePath    string   `json:"filePath,omitempty"`
	Page        string   `json:"page"`
	Entry       string   `json:"entry,omitempty"`
}

// Rule defines a lint rule interface.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "NAV001")
	ID() string
	// Name returns the human-readable name of the rule
	Name() string
	// Category returns the category of this rule
	Category() Category
	// Severity returns the default severity of this rule
	Severity() Severity
	// Description returns a detailed description of what this rule checks
	Description() string
	// Check executes the rule against one page and returns any issues found
	Check(ctx context.Context, snap *sidebar.Snapshot) []Issue
}

func newIssue(r Rule, snap *sidebar.Snapshot, message, suggestion string) Issue {
	return Issue{
		RuleID:      r.ID(),
		RuleName:    r.Name(),
		Severity:    r.Severity(),
		Category:    r.Category(),
		Message:     message,
		Description: r.Description(),
		Suggestion:  suggestion,
		Page:        snap.Path,
	}
}

func hasRegion(snap *sidebar.Snapshot) bool {
	return snap.Page == nil || snap.Page.HasScrollRegion
}

// =============================================================================
// Extraction trace
// =============================================================================

// walk is what extraction decided for one page, including what it
// discarded.
type walk struct {
	orphans    []sidebar.NavItem
	categories []categoryTrace
}

type categoryTrace struct {
	name    string
	kept    int
	foreign []sidebar.NavItem
}

// traceExtraction runs extraction with a tracer attached and collects its
// decisions.
func traceExtraction(items []sidebar.NavItem, pc sidebar.PageContext) walk {
	var w walk
	sidebar.Extract(items, pc, func(ev sidebar.TraceEvent) {
		switch ev.Kind {
		case sidebar.TraceOrphan:
			w.orphans = append(w.orphans, ev.Item)
		case sidebar.TraceCategory:
			w.categories = append(w.categories, categoryTrace{name: ev.Category})
		case sidebar.TraceKept:
			w.categories[len(w.categories)-1].kept++
		case sidebar.TraceForeign:
			current := &w.categories[len(w.categories)-1]
			current.foreign = append(current.foreign, ev.Item)
		}
	})
	return w
}

// =============================================================================
// Structure Rules
// =============================================================================

// RowBeforeHeaderRule reports provider rows that precede every category
// header and are therefore dropped.
type RowBeforeHeaderRule struct{}

func (r *RowBeforeHeaderRule) ID() string         { return "NAV001" }
func (r *RowBeforeHeaderRule) Name() string       { return "row-before-header" }
func (r *RowBeforeHeaderRule) Category() Category { return CategoryStructure }
func (r *RowBeforeHeaderRule) Severity() Severity { return SeverityInfo }
func (r *RowBeforeHeaderRule) Description() string {
	return "Resource links that appear before the first category header have no category to join and are left out of the resource index."
}

func (r *RowBeforeHeaderRule) Check(ctx context.Context, snap *sidebar.Snapshot) []Issue {
	if !snap.Context.IsProvider || !hasRegion(snap) {
		return nil
	}
	var issues []Issue
	for _, item := range traceExtraction(snap.Items, snap.Context).orphans {
		issue := newIssue(r, snap,
			fmt.Sprintf("Resource '%s' appears before any category header and is dropped", item.Label),
			"Move the entry below a category header in SUMMARY.md")
		issue.Entry = item.Label
		issues = append(issues, issue)
	}
	return issues
}

// MultipleActiveRule reports pages with more than one current entry.
type MultipleActiveRule struct{}

func (r *MultipleActiveRule) ID() string         { return "NAV002" }
func (r *MultipleActiveRule) Name() string       { return "multiple-active" }
func (r *MultipleActiveRule) Category() Category { return CategoryStructure }
func (r *MultipleActiveRule) Severity() Severity { return SeverityWarning }
func (r *MultipleActiveRule) Description() string {
	return "Several entries are marked as the current page. The panel scrolls to the first one and highlights all of them."
}

func (r *MultipleActiveRule) Check(ctx context.Context, snap *sidebar.Snapshot) []Issue {
	var labels []string
	for _, item := range snap.Items {
		if item.Kind == sidebar.ItemRow && item.Active {
			labels = append(labels, item.Label)
		}
	}
	if len(labels) < 2 {
		return nil
	}
	issue := newIssue(r, snap,
		fmt.Sprintf("%d entries are marked active: %s", len(labels), strings.Join(labels, ", ")),
		"Link each page from exactly one navigation entry")
	issue.Entry = labels[1]
	return []Issue{issue}
}

// =============================================================================
// Extraction Rules
// =============================================================================

// ForeignRowRule reports categories that mix the provider's resources with
// links outside its section.
type ForeignRowRule struct{}

func (r *ForeignRowRule) ID() string         { return "NAV003" }
func (r *ForeignRowRule) Name() string       { return "foreign-provider-row" }
func (r *ForeignRowRule) Category() Category { return CategoryExtraction }
func (r *ForeignRowRule) Severity() Severity { return SeverityInfo }
func (r *ForeignRowRule) Description() string {
	return "Links outside the provider's section are skipped even when they sit under one of its category headers."
}

func (r *ForeignRowRule) Check(ctx context.Context, snap *sidebar.Snapshot) []Issue {
	if !snap.Context.IsProvider || !hasRegion(snap) {
		return nil
	}
	var issues []Issue
	for _, c := range traceExtraction(snap.Items, snap.Context).categories {
		if c.kept == 0 || len(c.foreign) == 0 {
			continue
		}
		issue := newIssue(r, snap,
			fmt.Sprintf("Category '%s' skips %d link(s) outside providers/%s/, first '%s'",
				c.name, len(c.foreign), snap.Context.ProviderID, c.foreign[0].Label),
			"")
		issue.Entry = c.name
		issues = append(issues, issue)
	}
	return issues
}

// EmptyCategoryRule reports headers whose categories end up with no
// resources and are pruned.
type EmptyCategoryRule struct{}

// maxListed bounds the names spelled out in one message.
const maxListed = 5

func (r *EmptyCategoryRule) ID() string         { return "NAV004" }
func (r *EmptyCategoryRule) Name() string       { return "empty-category" }
func (r *EmptyCategoryRule) Category() Category { return CategoryExtraction }
func (r *EmptyCategoryRule) Severity() Severity { return SeverityInfo }
func (r *EmptyCategoryRule) Description() string {
	return "Category headers that collect no resource of the provider are removed from the resource index."
}

func (r *EmptyCategoryRule) Check(ctx context.Context, snap *sidebar.Snapshot) []Issue {
	if !snap.Context.IsProvider || !hasRegion(snap) {
		return nil
	}
	var empty []string
	for _, c := range traceExtraction(snap.Items, snap.Context).categories {
		if c.kept == 0 {
			empty = append(empty, c.name)
		}
	}
	if len(empty) == 0 {
		return nil
	}
	listed := empty
	if len(listed) > maxListed {
		listed = listed[:maxListed]
	}
	msg := fmt.Sprintf("%d category header(s) pruned as empty: %s", len(empty), strings.Join(listed, ", "))
	if len(empty) > maxListed {
		msg += fmt.Sprintf(" and %d more", len(empty)-maxListed)
	}
	issue := newIssue(r, snap, msg, "")
	issue.Entry = empty[0]
	return []Issue{issue}
}

// NoActiveEntryRule reports provider pages whose own entry is missing from
// the resource index.
type NoActiveEntryRule struct{}

func (r *NoActiveEntryRule) ID() string         { return "NAV005" }
func (r *NoActiveEntryRule) Name() string       { return "no-active-entry" }
func (r *NoActiveEntryRule) Category() Category { return CategoryExtraction }
func (r *NoActiveEntryRule) Severity() Severity { return SeverityInfo }
func (r *NoActiveEntryRule) Description() string {
	return "No resource in the index is marked as the current page, so the panel cannot scroll to it."
}

func (r *NoActiveEntryRule) Check(ctx context.Context, snap *sidebar.Snapshot) []Issue {
	if !snap.Context.IsProvider || !hasRegion(snap) {
		return nil
	}
	for _, c := range snap.Model.Categories {
		for _, res := range c.Resources {
			if res.IsActive {
				return nil
			}
		}
	}
	return []Issue{newIssue(r, snap,
		fmt.Sprintf("Page is not listed in the %s resource index", snap.Context.DisplayName),
		"Add the page to SUMMARY.md under a category of its provider")}
}

// =============================================================================
// Layout Rules
// =============================================================================

// MissingScrollRegionRule reports pages without a navigation scroll region.
type MissingScrollRegionRule struct{}

func (r *MissingScrollRegionRule) ID() string         { return "NAV006" }
func (r *MissingScrollRegionRule) Name() string       { return "missing-scroll-region" }
func (r *MissingScrollRegionRule) Category() Category { return CategoryLayout }
func (r *MissingScrollRegionRule) Severity() Severity { return SeverityError }
func (r *MissingScrollRegionRule) Description() string {
	return "The page has no navigation scroll region, so there is no panel to adapt."
}

func (r *MissingScrollRegionRule) Check(ctx context.Context, snap *sidebar.Snapshot) []Issue {
	if hasRegion(snap) {
		return nil
	}
	return []Issue{newIssue(r, snap,
		fmt.Sprintf("No %s element found", sidebar.SelScrollRegion),
		"Rebuild the book with a theme that renders the sidebar")}
}

// MissingResizeElementsRule reports pages where drag-to-resize cannot be
// wired.
type MissingResizeElementsRule struct{}

func (r *MissingResizeElementsRule) ID() string         { return "NAV007" }
func (r *MissingResizeElementsRule) Name() string       { return "missing-resize-elements" }
func (r *MissingResizeElementsRule) Category() Category { return CategoryLayout }
func (r *MissingResizeElementsRule) Severity() Severity { return SeverityWarning }
func (r *MissingResizeElementsRule) Description() string {
	return "The resize handle or the sidebar element is missing, so the panel cannot be resized."
}

func (r *MissingResizeElementsRule) Check(ctx context.Context, snap *sidebar.Snapshot) []Issue {
	if snap.Page == nil || snap.Page.HasResizeHandle {
		return nil
	}
	return []Issue{newIssue(r, snap,
		fmt.Sprintf("%s or %s not found", sidebar.SelResizeHandle, sidebar.SelSidebar),
		"")}
}
