// Package theme provides the color palettes and pre-built styles of the
// documentation browser.
package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents the complete visual theme for the application.
type Theme struct {
	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color
	Text    lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Tertiary  lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Navigation colors
	Provider lipgloss.Color
	Category lipgloss.Color
	Resource lipgloss.Color
	Current  lipgloss.Color
	Match    lipgloss.Color

	// UI element colors
	Border    lipgloss.Color
	Selection lipgloss.Color
	Highlight lipgloss.Color
}

// DefaultTheme returns the default dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Base:    lipgloss.Color("#0d1117"),
		Surface: lipgloss.Color("#161b22"),
		Overlay: lipgloss.Color("#21262d"),
		Muted:   lipgloss.Color("#484f58"),
		Subtle:  lipgloss.Color("#6e7681"),
		Text:    lipgloss.Color("#e6edf3"),

		Primary:   lipgloss.Color("#58a6ff"), // Electric blue
		Secondary: lipgloss.Color("#bc8cff"), // Soft purple
		Tertiary:  lipgloss.Color("#79c0ff"), // Sky blue

		Success: lipgloss.Color("#3fb950"),
		Warning: lipgloss.Color("#d29922"),
		Error:   lipgloss.Color("#f85149"),
		Info:    lipgloss.Color("#58a6ff"),

		Provider: lipgloss.Color("#ffa657"), // AWS orange
		Category: lipgloss.Color("#a371f7"),
		Resource: lipgloss.Color("#c9d1d9"),
		Current:  lipgloss.Color("#7ee787"),
		Match:    lipgloss.Color("#f2cc60"),

		Border:    lipgloss.Color("#30363d"),
		Selection: lipgloss.Color("#388bfd"),
		Highlight: lipgloss.Color("#1f6feb"),
	}
}

// NeonTheme returns a vibrant neon theme.
func NeonTheme() *Theme {
	return &Theme{
		Base:    lipgloss.Color("#0a0a0f"),
		Surface: lipgloss.Color("#12121a"),
		Overlay: lipgloss.Color("#1a1a24"),
		Muted:   lipgloss.Color("#3a3a4a"),
		Subtle:  lipgloss.Color("#5a5a6a"),
		Text:    lipgloss.Color("#f0f0f5"),

		Primary:   lipgloss.Color("#00ffff"), // Cyan
		Secondary: lipgloss.Color("#ff00ff"), // Magenta
		Tertiary:  lipgloss.Color("#00ff88"), // Mint

		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0055"),
		Info:    lipgloss.Color("#00ffff"),

		Provider: lipgloss.Color("#ffff00"),
		Category: lipgloss.Color("#ff00ff"),
		Resource: lipgloss.Color("#f0f0f5"),
		Current:  lipgloss.Color("#00ff88"),
		Match:    lipgloss.Color("#ff88ff"),

		Border:    lipgloss.Color("#2a2a3a"),
		Selection: lipgloss.Color("#00ffff"),
		Highlight: lipgloss.Color("#0088aa"),
	}
}

var themes = map[string]func() *Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
}

// ByName returns the named theme.
func ByName(name string) (*Theme, error) {
	build, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %v)", name, Names())
	}
	return build(), nil
}

// Names lists the available theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Styles holds all pre-configured styles for the UI.
type Styles struct {
	theme *Theme

	// Layout styles
	App     lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style
	Sidebar lipgloss.Style

	// Component styles
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style

	// Navigation panel styles
	ProviderTitle  lipgloss.Style
	FilterBox      lipgloss.Style
	FilterBoxFocus lipgloss.Style
	CategoryTitle  lipgloss.Style
	Resource       lipgloss.Style
	ResourceActive lipgloss.Style
	Selected       lipgloss.Style
	Outline        lipgloss.Style
	OutlineLabel   lipgloss.Style
	Match          lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style

	// Special styles
	Breadcrumb     lipgloss.Style
	KeyBinding     lipgloss.Style
	KeyLabel       lipgloss.Style
	Divider        lipgloss.Style
	DividerActive  lipgloss.Style
	Box            lipgloss.Style
	CodeBlock      lipgloss.Style
	ContentHeading lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	s := &Styles{theme: theme}

	s.App = lipgloss.NewStyle().
		Background(theme.Base)

	s.Header = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Surface).
		Bold(true).
		Padding(0, 1)

	s.Footer = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Background(theme.Surface).
		Padding(0, 1)

	s.Content = lipgloss.NewStyle().
		Padding(0, 2)

	s.Sidebar = lipgloss.NewStyle().
		Background(theme.Surface)

	s.Title = lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true)

	s.Label = lipgloss.NewStyle().
		Foreground(theme.Muted)

	s.Value = lipgloss.NewStyle().
		Foreground(theme.Text)

	s.ProviderTitle = lipgloss.NewStyle().
		Foreground(theme.Provider).
		Bold(true).
		Padding(0, 1)

	s.FilterBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	s.FilterBoxFocus = s.FilterBox.
		BorderForeground(theme.Primary)

	s.CategoryTitle = lipgloss.NewStyle().
		Foreground(theme.Category).
		Bold(true).
		Padding(0, 1)

	s.Resource = lipgloss.NewStyle().
		Foreground(theme.Resource).
		PaddingLeft(3)

	s.ResourceActive = s.Resource.
		Foreground(theme.Current).
		Bold(true)

	s.Selected = lipgloss.NewStyle().
		Foreground(theme.Base).
		Background(theme.Selection).
		Bold(true)

	s.Outline = lipgloss.NewStyle().
		Foreground(theme.Text).
		PaddingLeft(1)

	s.OutlineLabel = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Italic(true).
		PaddingLeft(1)

	s.Match = lipgloss.NewStyle().
		Foreground(theme.Match).
		Underline(true)

	s.Success = lipgloss.NewStyle().
		Foreground(theme.Success)

	s.Warning = lipgloss.NewStyle().
		Foreground(theme.Warning)

	s.Error = lipgloss.NewStyle().
		Foreground(theme.Error)

	s.Info = lipgloss.NewStyle().
		Foreground(theme.Info)

	s.Muted = lipgloss.NewStyle().
		Foreground(theme.Muted)

	s.Breadcrumb = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Background(theme.Overlay).
		Padding(0, 1)

	s.KeyBinding = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Background(theme.Overlay).
		Padding(0, 1).
		Bold(true)

	s.KeyLabel = lipgloss.NewStyle().
		Foreground(theme.Subtle)

	s.Divider = lipgloss.NewStyle().
		Foreground(theme.Border)

	s.DividerActive = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	s.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2)

	s.CodeBlock = lipgloss.NewStyle().
		Background(theme.Overlay).
		Foreground(theme.Text)

	s.ContentHeading = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	return s
}

// GetTheme returns the underlying theme.
func (s *Styles) GetTheme() *Theme {
	return s.theme
}

// Icons are the glyphs used by the navigation panel.
var Icons = struct {
	Provider string
	Category string
	Resource string
	Current  string
	Page     string
	Section  string
	Search   string
	Back     string
	Divider  string
	Dragging string
}{
	Provider: "▣",
	Category: "▾",
	Resource: "·",
	Current:  "●",
	Page:     "▸",
	Section:  "§",
	Search:   "⌕",
	Back:     "←",
	Divider:  "│",
	Dragging: "┃",
}
