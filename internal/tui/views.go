package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/tui/theme"
)

// pageView shows the navigation panel beside the page body.
type pageView struct {
	styles StyleManager
}

// NewPageView creates a new page view.
func NewPageView(styles StyleManager) View {
	return &pageView{styles: styles}
}

// Name returns the view's name.
func (pv *pageView) Name() string {
	return ViewPage
}

// Render renders the title bar, the panel, the divider, the body and the
// footer.
func (pv *pageView) Render(state *State) string {
	width := state.WindowWidth
	if width <= 0 {
		width = 80
	}
	height := state.BodyHeight()

	header := pv.styles.Header(pv.title(state), width)

	var panel string
	if state.Panel != nil {
		panel = state.Panel.View()
	} else {
		panel = lipgloss.NewStyle().Width(state.SidebarWidth()).Height(height).Render("")
	}
	divider := pv.styles.Divider(height, state.Markers[sidebar.ClassResizing])

	var content string
	switch {
	case state.Loading:
		content = pv.styles.DimText(fmt.Sprintf("Loading %s…", state.Page))
	case state.Snapshot == nil:
		content = pv.styles.DimText("No page loaded")
	default:
		content = state.Content.View()
	}
	body := lipgloss.NewStyle().
		Width(state.ContentWidth()).
		Height(height).
		MaxHeight(height).
		Render(content)

	main := lipgloss.JoinHorizontal(lipgloss.Top, panel, divider, body)
	return lipgloss.JoinVertical(lipgloss.Left, header, main, pv.renderFooter(state, width))
}

func (pv *pageView) title(state *State) string {
	title := state.Page
	if state.Snapshot != nil && state.Snapshot.Page != nil && state.Snapshot.Page.Title != "" {
		title = state.Snapshot.Page.Title
	}
	if path := state.Navigator.RenderPath(); path != "" {
		title = path + " › " + title
	}
	return title
}

func (pv *pageView) renderFooter(state *State, width int) string {
	keys := state.Keys
	keys.Back.SetEnabled(state.Navigator.GetDepth() > 0)
	line := state.Help.ShortHelpView(keys.ShortHelp())
	if state.StatusMessage != "" {
		line = pv.styles.Status(state.StatusMessage, state.StatusType)
	} else if state.Panel != nil {
		if list := state.Panel.List(); list != nil && list.Query() != "" {
			line = pv.styles.DimText(fmt.Sprintf("%d/%d resources", list.VisibleCount(), list.Total())) + "  " + line
		}
	}
	return pv.styles.GetStyles().Footer.Width(width).MaxHeight(1).Render(line)
}

// Update handles scrolling of the panel and the page body.
func (pv *pageView) Update(msg tea.Msg, state *State) (*State, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, state.Keys.PageUp):
			state.Content.HalfViewUp()
		case key.Matches(msg, state.Keys.PageDown):
			state.Content.HalfViewDown()
		}
	case tea.MouseMsg:
		delta := 3
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -delta
		}
		if msg.X < state.SidebarWidth() {
			if state.Panel != nil {
				state.Panel.Scroll(delta)
			}
		} else {
			state.Content.SetYOffset(state.Content.YOffset + delta)
		}
	}
	return state, nil
}

// CanHandle returns true for body scroll keys and wheel events.
func (pv *pageView) CanHandle(msg tea.Msg, state *State) bool {
	if state.CurrentView != ViewPage {
		return false
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return key.Matches(msg, state.Keys.PageUp, state.Keys.PageDown)
	case tea.MouseMsg:
		return msg.Action == tea.MouseActionPress &&
			(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown)
	}
	return false
}

// helpView is the keyboard shortcut overlay.
type helpView struct {
	styles StyleManager
}

// NewHelpView creates a new help view.
func NewHelpView(styles StyleManager) View {
	return &helpView{
		styles: styles,
	}
}

// Name returns the view's name.
func (hv *helpView) Name() string {
	return ViewHelp
}

var helpSections = []string{"Navigation", "Filter & Scroll", "Other"}

// Render renders the help overlay.
func (hv *helpView) Render(state *State) string {
	width := state.WindowWidth
	if width < 40 {
		width = 80
	}
	if width > 100 {
		width = 100
	}

	t := hv.styles.GetTheme()
	header := hv.styles.Header("KEYBOARD SHORTCUTS", width)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Current).
		Width(16)
	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	var content strings.Builder
	for i, group := range state.Keys.FullHelp() {
		if i < len(helpSections) {
			content.WriteString("\n" + hv.styles.Title(helpSections[i]) + "\n")
		}
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			content.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}
	content.WriteString("\n" + hv.styles.DimText("Drag the panel border with the mouse to resize it."))

	box := hv.styles.Box(content.String(), width-4)
	footer := hv.styles.GetStyles().Footer.Width(width).Render("Press ? or Esc to close help")

	return header + "\n" + box + "\n" + footer
}

// Update closes the overlay on ?, esc or q.
func (hv *helpView) Update(msg tea.Msg, state *State) (*State, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "?", "esc", "q":
			state.CurrentView = state.PreviousView
			if state.CurrentView == "" {
				state.CurrentView = ViewPage
			}
		}
	}
	return state, nil
}

// CanHandle returns true if this view can handle the given message.
func (hv *helpView) CanHandle(msg tea.Msg, state *State) bool {
	_, isKey := msg.(tea.KeyMsg)
	return isKey && state.CurrentView == ViewHelp
}

// renderBody lays out the page body blocks for the content pane.
func renderBody(page *sidebar.Page, width int, styles *theme.Styles) string {
	if page == nil {
		return ""
	}
	width = max(width-4, 10)
	text := styles.Value.Width(width)

	blocks := make([]string, 0, len(page.Body)+1)
	if page.Title != "" {
		blocks = append(blocks, styles.Title.Render(page.Title))
	}
	for _, b := range page.Body {
		switch {
		case strings.HasPrefix(b, "# "):
			blocks = append(blocks, styles.ContentHeading.Width(width).Render(strings.TrimPrefix(b, "# ")))
		case strings.Contains(b, "\n"):
			blocks = append(blocks, styles.CodeBlock.Render(b))
		default:
			blocks = append(blocks, text.Render(b))
		}
	}
	return styles.Content.Render(strings.Join(blocks, "\n\n"))
}
