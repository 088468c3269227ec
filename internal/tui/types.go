package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// View names.
const (
	ViewPage = "page"
	ViewHelp = "help"
)

// Layout constants, in terminal cells.
const (
	headerHeight     = 1
	footerHeight     = 1
	dividerWidth     = 1
	minContentWidth  = 10
	MaxNavPathLength = 8
)

// Status types.
const (
	StatusInfo    = "info"
	StatusSuccess = "success"
	StatusError   = "error"
)

// State represents the complete application state.
type State struct {
	// Current page
	Page     string
	Snapshot *sidebar.Snapshot
	Loading  bool

	// UI components
	Panel   *Panel
	Content viewport.Model
	Keys    KeyMap
	Help    help.Model

	// Current view state
	CurrentView  string
	PreviousView string

	// Window dimensions
	WindowWidth  int
	WindowHeight int

	// Shared presentation state written by the resize controller and the
	// finalizer, reset on every page load.
	Markers map[string]bool
	Vars    map[string]int

	// DefaultSidebarWidth applies until a drag publishes a width.
	DefaultSidebarWidth int

	// Navigation
	Navigator Navigator

	// Status
	StatusMessage string
	StatusType    string
}

// NewState creates the initial state for page.
func NewState(page string, sidebarWidth int, nav Navigator) *State {
	return &State{
		Page:                page,
		Loading:             true,
		Panel:               nil,
		Content:             viewport.New(0, 0),
		Keys:                DefaultKeyMap(),
		Help:                help.New(),
		CurrentView:         ViewPage,
		Markers:             make(map[string]bool),
		Vars:                make(map[string]int),
		DefaultSidebarWidth: sidebarWidth,
		Navigator:           nav,
	}
}

// SidebarWidth returns the panel width: the published drag width when there
// is one, the default otherwise, always leaving room for the divider.
func (s *State) SidebarWidth() int {
	width := s.DefaultSidebarWidth
	if w, ok := s.Vars[sidebar.VarTargetWidth]; ok {
		width = w
	}
	if s.WindowWidth > 0 {
		width = min(width, s.WindowWidth-dividerWidth-1)
	}
	return max(width, 1)
}

// BodyHeight returns the height between the title bar and the footer.
func (s *State) BodyHeight() int {
	return max(s.WindowHeight-headerHeight-footerHeight, 0)
}

// ContentWidth returns the width of the page body pane.
func (s *State) ContentWidth() int {
	return max(s.WindowWidth-s.SidebarWidth()-dividerWidth, 0)
}

// ResetPresentation clears markers and style variables for a page load.
func (s *State) ResetPresentation() {
	s.Markers = make(map[string]bool)
	s.Vars = make(map[string]int)
}

// SetStatus sets the status bar message.
func (s *State) SetStatus(text, statusType string) {
	s.StatusMessage = text
	s.StatusType = statusType
}

// ViewState is a saved history entry.
type ViewState struct {
	View  string
	Page  string
	Title string
}

// PathItem represents a single step in the breadcrumb path.
type PathItem struct {
	Page        string
	DisplayName string
}

// pageLoadedMsg is the page-ready signal: the page has been loaded and its
// navigation tree is in its final shape.
type pageLoadedMsg struct {
	page     string
	snapshot *sidebar.Snapshot
	err      error
}

// clipboardMsg reports the result of a copy.
type clipboardMsg struct {
	text string
	err  error
}
