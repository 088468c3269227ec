package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// filterManager implements the FilterManager interface.
type filterManager struct {
	input     textinput.Model
	active    bool
	available bool

	// selected mirrors a select-all: the next edit replaces the whole value.
	selected bool
}

// NewFilterManager creates a new FilterManager instance.
func NewFilterManager() FilterManager {
	input := textinput.New()
	input.Placeholder = sidebar.FilterPlaceholder
	input.CharLimit = 100
	input.Width = 30
	input.Prompt = ""

	return &filterManager{input: input}
}

// SetAvailable records whether the current page has a filter input.
func (fm *filterManager) SetAvailable(available bool) {
	fm.available = available
	if !available {
		fm.ClearFilter()
	}
}

// Available reports whether the current page has a filter input.
func (fm *filterManager) Available() bool {
	return fm.available
}

// Focus focuses the input and selects its text.
func (fm *filterManager) Focus() bool {
	if !fm.available {
		return false
	}
	fm.active = true
	fm.input.Focus()
	fm.input.CursorEnd()
	fm.selected = fm.input.Value() != ""
	return true
}

// IsActive returns true if filtering is currently active.
func (fm *filterManager) IsActive() bool {
	return fm.active
}

// SetActive sets the filter active state.
func (fm *filterManager) SetActive(active bool) {
	if active {
		fm.Focus()
		return
	}
	fm.active = false
	fm.selected = false
	fm.input.Blur()
}

// UpdateInput updates the filter input model and reports whether the value
// changed. A pending selection is replaced by typed text and removed by
// backspace or delete; any other key just drops it.
func (fm *filterManager) UpdateInput(msg tea.Msg) (tea.Cmd, bool) {
	before := fm.input.Value()

	if km, ok := msg.(tea.KeyMsg); ok && fm.selected {
		fm.selected = false
		switch km.Type {
		case tea.KeyRunes, tea.KeySpace:
			fm.input.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			fm.input.SetValue("")
			return nil, before != ""
		}
	}

	var cmd tea.Cmd
	fm.input, cmd = fm.input.Update(msg)
	return cmd, fm.input.Value() != before
}

// ClearFilter clears the current filter.
func (fm *filterManager) ClearFilter() {
	fm.input.SetValue("")
	fm.active = false
	fm.selected = false
	fm.input.Blur()
}

// GetFilterText returns the current filter text.
func (fm *filterManager) GetFilterText() string {
	return fm.input.Value()
}

// SetWidth sets the visible width of the input.
func (fm *filterManager) SetWidth(width int) {
	fm.input.Width = max(width, 1)
}

// View renders the input, showing a selection in reverse video.
func (fm *filterManager) View() string {
	if fm.selected {
		return lipgloss.NewStyle().Reverse(true).Render(fm.input.Value())
	}
	return fm.input.View()
}

// HighlightMatches wraps the first case-insensitive occurrence of pattern
// in text with highlightFn.
func HighlightMatches(text, pattern string, highlightFn func(string) string) string {
	if pattern == "" {
		return text
	}

	lowerText := strings.ToLower(text)
	lowerPattern := strings.ToLower(pattern)

	idx := strings.Index(lowerText, lowerPattern)
	if idx == -1 || len(lowerText) != len(text) {
		return text
	}

	before := text[:idx]
	match := text[idx : idx+len(pattern)]
	after := text[idx+len(pattern):]

	return before + highlightFn(match) + after
}
