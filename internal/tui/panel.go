package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/tui/theme"
)

type rowKind int

const (
	rowCategory rowKind = iota
	rowResource
	rowOutline
	rowLabel
)

// panelRow is one line of the scroll region.
type panelRow struct {
	kind   rowKind
	text   string
	href   string
	active bool
}

func (r panelRow) selectable() bool {
	return r.href != "" && (r.kind == rowResource || r.kind == rowOutline)
}

// Panel is the terminal rendering of the navigation panel: an optional
// header (provider title and filter input) stacked above a scroll region.
// It renders blank until Finalize has positioned the region.
type Panel struct {
	styles   *theme.Styles
	filter   FilterManager
	snapshot *sidebar.Snapshot
	list     *sidebar.ResourceList

	rows   []panelRow
	cursor int

	region       viewport.Model
	width        int
	height       int
	headerHeight int
	ready        bool
}

// NewPanel builds the panel for snap. Provider pages get the resource list
// and an available filter input; other pages show the simplified outline.
func NewPanel(snap *sidebar.Snapshot, filter FilterManager, styles *theme.Styles) *Panel {
	p := &Panel{
		styles:   styles,
		filter:   filter,
		snapshot: snap,
		cursor:   -1,
		region:   viewport.New(0, 0),
	}
	if p.hasRegion() && snap.Context.IsProvider {
		p.list = sidebar.NewResourceList(snap.Model)
	}
	filter.SetAvailable(p.list != nil)
	p.rebuild()
	return p
}

func (p *Panel) hasRegion() bool {
	return p.snapshot != nil && p.snapshot.Page != nil && p.snapshot.Page.HasScrollRegion
}

// SetSize lays the panel out. The header is rendered first and its measured
// height decides where the scroll region starts.
func (p *Panel) SetSize(width, height int) {
	p.width, p.height = width, height
	p.filter.SetWidth(width - 5)

	p.headerHeight = 0
	if header := p.headerView(); header != "" {
		p.headerHeight = lipgloss.Height(header)
	}
	p.region.Width = width
	p.region.Height = max(height-p.headerHeight, 0)
	p.refresh()
}

// ApplyFilter runs the filter engine for raw and rebuilds the visible rows.
func (p *Panel) ApplyFilter(raw string) {
	if p.list == nil {
		return
	}
	p.list.ApplyFilter(raw)
	p.rebuild()
	p.cursor = p.nextSelectable(-1, 1)
	p.ensureVisible()
	p.refresh()
}

// Finalize centers the first active entry in the region, then marks the
// panel ready on target. Pages without a scroll region stay blank.
func (p *Panel) Finalize(target sidebar.StyleTarget) {
	if !p.hasRegion() {
		return
	}
	if line := p.firstActive(); line >= 0 {
		relative := line - p.region.YOffset
		p.region.SetYOffset(relative + p.region.YOffset - p.region.Height/2)
		p.cursor = line
		p.refresh()
	}
	p.ready = true
	if target != nil {
		target.SetMarker(sidebar.ClassReady, true)
	}
}

// MoveCursor moves the selection by delta selectable rows.
func (p *Panel) MoveCursor(delta int) {
	if delta == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	for i := 0; i < abs(delta); i++ {
		next := p.nextSelectable(p.cursor, step)
		if next < 0 {
			break
		}
		p.cursor = next
	}
	p.ensureVisible()
	p.refresh()
}

// Scroll moves the region's scroll offset by delta lines.
func (p *Panel) Scroll(delta int) {
	p.region.SetYOffset(p.region.YOffset + delta)
}

// Selected returns the entry under the cursor.
func (p *Panel) Selected() (href, text string, ok bool) {
	if p.cursor < 0 || p.cursor >= len(p.rows) || !p.rows[p.cursor].selectable() {
		return "", "", false
	}
	r := p.rows[p.cursor]
	return r.href, r.text, true
}

// Ready reports whether Finalize has run.
func (p *Panel) Ready() bool { return p.ready }

// HeaderHeight returns the measured header height.
func (p *Panel) HeaderHeight() int { return p.headerHeight }

// YOffset returns the region's scroll offset.
func (p *Panel) YOffset() int { return p.region.YOffset }

// RegionHeight returns the visible height of the scroll region.
func (p *Panel) RegionHeight() int { return p.region.Height }

// List returns the rendered resource list, nil outside provider pages.
func (p *Panel) List() *sidebar.ResourceList { return p.list }

// View renders the panel at its size.
func (p *Panel) View() string {
	box := lipgloss.NewStyle().Width(p.width).Height(p.height).MaxHeight(p.height)
	if !p.ready {
		return box.Render("")
	}
	header := p.headerView()
	if header == "" {
		return box.Render(p.region.View())
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, header, p.region.View()))
}

func (p *Panel) headerView() string {
	if p.list == nil {
		return ""
	}
	inner := max(p.width-2, 1)
	title := p.styles.ProviderTitle.Render(
		ansi.Truncate(theme.Icons.Provider+" "+p.snapshot.Context.DisplayName, inner, "…"))

	box := p.styles.FilterBox
	if p.filter.IsActive() {
		box = p.styles.FilterBoxFocus
	}
	input := box.Width(inner).Render(p.filter.View())
	return lipgloss.JoinVertical(lipgloss.Left, title, input)
}

// rebuild recomputes the visible rows from the list or the outline.
func (p *Panel) rebuild() {
	p.rows = p.rows[:0]
	switch {
	case p.list != nil:
		for _, c := range p.list.Categories {
			if c.Hidden {
				continue
			}
			p.rows = append(p.rows, panelRow{kind: rowCategory, text: c.Name})
			for _, it := range c.Items {
				if it.Hidden {
					continue
				}
				p.rows = append(p.rows, panelRow{
					kind:   rowResource,
					text:   it.Entry.DisplayText,
					href:   it.Entry.TargetHref,
					active: it.Entry.IsActive,
				})
			}
		}
	case p.hasRegion():
		for _, e := range p.snapshot.Outline {
			kind := rowOutline
			if e.Href == "" {
				kind = rowLabel
			}
			p.rows = append(p.rows, panelRow{kind: kind, text: e.Label, href: e.Href, active: e.Active})
		}
	}
	if p.cursor >= len(p.rows) || (p.cursor >= 0 && !p.rows[p.cursor].selectable()) {
		p.cursor = p.nextSelectable(-1, 1)
	}
	p.refresh()
}

func (p *Panel) refresh() {
	lines := make([]string, len(p.rows))
	for i, r := range p.rows {
		lines[i] = p.renderRow(i, r)
	}
	p.region.SetContent(strings.Join(lines, "\n"))
}

func (p *Panel) renderRow(i int, r panelRow) string {
	width := max(p.width, 1)
	switch r.kind {
	case rowCategory:
		return p.styles.CategoryTitle.Render(ansi.Truncate(theme.Icons.Category+" "+r.text, width-2, "…"))
	case rowLabel:
		return p.styles.OutlineLabel.Render(ansi.Truncate(r.text, width-1, "…"))
	}

	marker := "  "
	if r.active {
		marker = theme.Icons.Current + " "
	}
	indent := 1
	if r.kind == rowResource {
		indent = 3
	}
	text := ansi.Truncate(marker+r.text, max(width-indent, 1), "…")

	if i == p.cursor {
		return strings.Repeat(" ", indent) + p.styles.Selected.Render(text)
	}
	if r.kind == rowOutline {
		return p.styles.Outline.Render(text)
	}
	style := p.styles.Resource
	if r.active {
		style = p.styles.ResourceActive
	}
	if p.list != nil {
		text = HighlightMatches(text, p.list.Query(), func(s string) string { return p.styles.Match.Render(s) })
	}
	return style.Render(text)
}

// firstActive returns the line of the first active entry in document order.
func (p *Panel) firstActive() int {
	for i, r := range p.rows {
		if r.active {
			return i
		}
	}
	return -1
}

func (p *Panel) nextSelectable(from, step int) int {
	for i := from + step; i >= 0 && i < len(p.rows); i += step {
		if p.rows[i].selectable() {
			return i
		}
	}
	return -1
}

func (p *Panel) ensureVisible() {
	if p.cursor < 0 || p.region.Height <= 0 {
		return
	}
	if p.cursor < p.region.YOffset {
		p.region.SetYOffset(p.cursor)
	} else if p.cursor >= p.region.YOffset+p.region.Height {
		p.region.SetYOffset(p.cursor - p.region.Height + 1)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
