// Package tui provides the terminal documentation browser: the adapted
// navigation panel on the left, the page body on the right.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/tui/theme"
)

// TUI provides the main terminal user interface.
type TUI interface {
	// Run opens page and blocks until the user exits.
	Run(ctx context.Context, page string) error
}

// ViewManager manages different views in the TUI.
type ViewManager interface {
	// GetCurrentView returns the currently active view.
	GetCurrentView(state *State) View

	// SwitchView switches to the specified view.
	SwitchView(viewName string) error

	// RegisterView registers a new view.
	RegisterView(view View)
}

// View represents a single view in the TUI.
type View interface {
	// Name returns the view's name.
	Name() string

	// Render renders the view with the given model state.
	Render(state *State) string

	// Update handles view-specific updates.
	Update(msg tea.Msg, state *State) (*State, tea.Cmd)

	// CanHandle returns true if this view can handle the given message.
	CanHandle(msg tea.Msg, state *State) bool
}

// Navigator keeps the page history for back navigation.
type Navigator interface {
	// PushState saves the current page to the history stack.
	PushState(state ViewState)

	// PopState returns the previous page from the history stack.
	PopState() (ViewState, bool)

	// AddToPath adds a visited page to the breadcrumb path.
	AddToPath(page, title string)

	// RenderPath renders the breadcrumb path as a string.
	RenderPath() string

	// GetDepth returns the history depth.
	GetDepth() int
}

// StyleManager provides consistent styling across the TUI.
type StyleManager interface {
	// Header renders the title bar at the given width.
	Header(text string, width int) string

	// Status renders a status message of the given type.
	Status(text, statusType string) string

	// Error renders error text.
	Error(text string) string

	// Success renders success text.
	Success(text string) string

	// DimText renders text with dimmed styling.
	DimText(text string) string

	// Box renders text in a box, width columns wide when width is positive.
	Box(text string, width int) string

	// Title renders a section title.
	Title(text string) string

	// Divider renders the vertical panel border of the given height.
	Divider(height int, dragging bool) string

	// GetStyles returns the underlying theme styles.
	GetStyles() *theme.Styles

	// GetTheme returns the underlying theme.
	GetTheme() *theme.Theme
}

// FilterManager owns the panel's filter input.
type FilterManager interface {
	// SetAvailable records whether the current page has a filter input.
	// Making it unavailable clears it.
	SetAvailable(available bool)

	// Available reports whether the current page has a filter input.
	Available() bool

	// Focus focuses the input and selects its text. It reports false, and
	// does nothing, when no input is available.
	Focus() bool

	// IsActive returns true if the input has focus.
	IsActive() bool

	// SetActive sets the focus state.
	SetActive(active bool)

	// UpdateInput forwards msg to the input. It reports whether the value
	// changed.
	UpdateInput(msg tea.Msg) (tea.Cmd, bool)

	// ClearFilter empties and blurs the input.
	ClearFilter()

	// GetFilterText returns the raw input value.
	GetFilterText() string

	// SetWidth sets the visible width of the input.
	SetWidth(width int)

	// View renders the input.
	View() string
}
