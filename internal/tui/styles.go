package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/tui/theme"
)

// styleManager implements the StyleManager interface.
type styleManager struct {
	theme  *theme.Theme
	styles *theme.Styles

	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
	dimStyle     lipgloss.Style
	titleStyle   lipgloss.Style
}

// NewStyleManager creates a new StyleManager for t. A nil theme selects the
// default one.
func NewStyleManager(t *theme.Theme) StyleManager {
	if t == nil {
		t = theme.DefaultTheme()
	}
	s := theme.NewStyles(t)

	return &styleManager{
		theme:  t,
		styles: s,

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Error).
			Bold(true).
			Padding(0, 1),

		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Success).
			Bold(true).
			Padding(0, 1),

		dimStyle: lipgloss.NewStyle().
			Foreground(t.Muted),

		titleStyle: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),
	}
}

// Header renders the one-line title bar, truncated to width.
func (s *styleManager) Header(text string, width int) string {
	if width <= 0 {
		width = 80
	}
	line := fmt.Sprintf("%s %s", theme.Icons.Page, text)
	return s.styles.Header.
		Width(width).
		MaxHeight(1).
		Render(ansi.Truncate(line, width-2, "…"))
}

// Status renders a status message of the given type.
func (s *styleManager) Status(text, statusType string) string {
	switch statusType {
	case StatusError:
		return s.Error(text)
	case StatusSuccess:
		return s.Success(text)
	default:
		return s.styles.Info.Render(text)
	}
}

// Error renders error text.
func (s *styleManager) Error(text string) string {
	return s.errorStyle.Render(text)
}

// Success renders success text.
func (s *styleManager) Success(text string) string {
	return s.successStyle.Render(text)
}

// DimText renders text with dimmed/grayed out styling.
func (s *styleManager) DimText(text string) string {
	return s.dimStyle.Render(text)
}

// Box renders text in a rounded box. A positive width fixes the box width.
func (s *styleManager) Box(text string, width int) string {
	style := s.styles.Box
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(text)
}

// Title renders a title.
func (s *styleManager) Title(text string) string {
	return s.titleStyle.Render(text)
}

// Divider renders the panel border. A drag in progress highlights it.
func (s *styleManager) Divider(height int, dragging bool) string {
	if height <= 0 {
		return ""
	}
	style, glyph := s.styles.Divider, theme.Icons.Divider
	if dragging {
		style, glyph = s.styles.DividerActive, theme.Icons.Dragging
	}
	return style.Render(strings.TrimSuffix(strings.Repeat(glyph+"\n", height), "\n"))
}

// GetStyles returns the underlying theme styles.
func (s *styleManager) GetStyles() *theme.Styles {
	return s.styles
}

// GetTheme returns the underlying theme.
func (s *styleManager) GetTheme() *theme.Theme {
	return s.theme
}
