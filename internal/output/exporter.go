package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// Exporter renders snapshots as text documents.
type Exporter struct{}

// NewExporter creates a new Exporter instance.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportMarkdown exports the snapshot as a Markdown document: the resource
// index on provider pages, the outline elsewhere.
func (e *Exporter) ExportMarkdown(snap *sidebar.Snapshot) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", e.title(snap)))
	buf.WriteString(fmt.Sprintf("- **Page:** `%s`\n", snap.Path))

	switch {
	case snap.Page != nil && !snap.Page.HasScrollRegion:
		buf.WriteString("- **Navigation:** none\n")
		return buf.String(), nil

	case snap.Context.IsProvider:
		buf.WriteString(fmt.Sprintf("- **Provider:** %s (`%s`)\n", snap.Context.DisplayName, snap.Context.ProviderID))
		buf.WriteString(fmt.Sprintf("- **Resources:** %d\n\n", snap.Model.ResourceCount()))

		for _, c := range snap.Model.Categories {
			buf.WriteString(fmt.Sprintf("## %s\n\n", c.Name))
			for _, r := range c.Resources {
				buf.WriteString(e.markdownLink(r.DisplayText, r.TargetHref, r.IsActive))
			}
			buf.WriteString("\n")
		}

	default:
		buf.WriteString("- **Provider:** none\n\n")
		buf.WriteString("## Outline\n\n")
		for _, o := range snap.Outline {
			if o.Href == "" {
				buf.WriteString(fmt.Sprintf("- **%s**\n", e.escapeMarkdown(o.Label)))
				continue
			}
			buf.WriteString(e.markdownLink(o.Label, o.Href, o.Active))
		}
	}

	return buf.String(), nil
}

// ExportTree exports the snapshot as an indented tree.
func (e *Exporter) ExportTree(snap *sidebar.Snapshot) (string, error) {
	var buf bytes.Buffer

	switch {
	case snap.Page != nil && !snap.Page.HasScrollRegion:
		buf.WriteString(fmt.Sprintf("%s\n(no navigation region)\n", snap.Path))

	case snap.Context.IsProvider:
		buf.WriteString(fmt.Sprintf("%s [%s]\n", snap.Context.DisplayName, snap.Path))
		for i, c := range snap.Model.Categories {
			lastCat := i == len(snap.Model.Categories)-1
			buf.WriteString(e.branch(lastCat) + c.Name + "\n")

			indent := "│   "
			if lastCat {
				indent = "    "
			}
			for j, r := range c.Resources {
				buf.WriteString(indent + e.branch(j == len(c.Resources)-1) + e.marked(r.DisplayText, r.IsActive) + "\n")
			}
		}

	default:
		buf.WriteString(snap.Path + "\n")
		for i, o := range snap.Outline {
			buf.WriteString(e.branch(i == len(snap.Outline)-1) + e.marked(o.Label, o.Active) + "\n")
		}
	}

	return buf.String(), nil
}

// Helper functions

func (e *Exporter) title(snap *sidebar.Snapshot) string {
	if snap.Page != nil && snap.Page.Title != "" {
		return e.escapeMarkdown(snap.Page.Title)
	}
	return snap.Path
}

func (e *Exporter) markdownLink(text, href string, active bool) string {
	line := fmt.Sprintf("- [%s](%s)", e.escapeMarkdown(text), href)
	if active {
		line += " *(current)*"
	}
	return line + "\n"
}

func (e *Exporter) escapeMarkdown(s string) string {
	r := strings.NewReplacer("[", "\\[", "]", "\\]", "*", "\\*", "_", "\\_")
	return r.Replace(s)
}

func (e *Exporter) branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func (e *Exporter) marked(text string, active bool) string {
	if active {
		return text + " ◀"
	}
	return text
}
