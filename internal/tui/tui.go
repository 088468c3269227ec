package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/tui/theme"
)

// Options configures the browser.
type Options struct {
	Theme        *theme.Theme
	SidebarWidth int
	Bounds       sidebar.ResizeBounds
	Mouse        bool
}

// tui implements the TUI interface.
type tui struct {
	logger  *slog.Logger
	service sidebar.Service
	opts    Options
}

// NewTUI creates a new TUI instance that reads pages through service.
func NewTUI(logger *slog.Logger, service sidebar.Service, opts Options) TUI {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &tui{
		logger:  logger,
		service: service,
		opts:    opts,
	}
}

// Run starts the browser on page and blocks until the user exits.
func (t *tui) Run(ctx context.Context, page string) error {
	m := newModel(ctx, t.logger, t.service, page, t.opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if t.opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, progOpts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// model is the root bubbletea model. It also serves as the resize
// controller's style target and geometry.
type model struct {
	ctx         context.Context
	logger      *slog.Logger
	service     sidebar.Service
	opts        Options
	state       *State
	viewManager ViewManager
	styles      StyleManager
	filter      FilterManager
	resize      *sidebar.ResizeController

	// finalizePending defers the reveal until the window size is known.
	finalizePending bool
}

// newModel creates the root model for page.
func newModel(ctx context.Context, logger *slog.Logger, service sidebar.Service, page string, opts Options) *model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.SidebarWidth <= 0 {
		opts.SidebarWidth = 36
	}
	if opts.Bounds == (sidebar.ResizeBounds{}) {
		opts.Bounds = sidebar.DefaultResizeBounds()
	}
	styles := NewStyleManager(opts.Theme)
	nav := NewNavigator()

	return &model{
		ctx:         ctx,
		logger:      logger,
		service:     service,
		opts:        opts,
		state:       NewState(sidebar.CleanPagePath(page), opts.SidebarWidth, nav),
		viewManager: NewViewManager(styles),
		styles:      styles,
		filter:      NewFilterManager(),
	}
}

// Init starts loading the first page.
func (m *model) Init() tea.Cmd {
	return m.loadPage(m.state.Page)
}

// Update handles messages and updates the model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.WindowWidth = msg.Width
		m.state.WindowHeight = msg.Height
		m.layout()
		if m.finalizePending {
			m.finalize()
		}
		return m, nil

	case pageLoadedMsg:
		m.handlePageLoaded(msg)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.state.SetStatus(fmt.Sprintf("Copy failed: %v", msg.err), StatusError)
		} else {
			m.state.SetStatus("Copied "+msg.text, StatusSuccess)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.handleMouse(msg) {
			return m, nil
		}
	}

	if m.filter.IsActive() {
		cmd, changed := m.filter.UpdateInput(msg)
		if changed {
			m.applyFilter()
		}
		return m, cmd
	}

	return m.delegate(msg)
}

// View renders the current view.
func (m *model) View() string {
	currentView := m.viewManager.GetCurrentView(m.state)
	if currentView == nil {
		return "Error: No view available"
	}
	return currentView.Render(m.state)
}

func (m *model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	currentView := m.viewManager.GetCurrentView(m.state)
	if currentView != nil && currentView.CanHandle(msg, m.state) {
		newState, cmd := currentView.Update(msg, m.state)
		m.state = newState
		return m, cmd
	}
	return m, nil
}

// loadPage returns the command whose completion message is the page-ready
// signal.
func (m *model) loadPage(page string) tea.Cmd {
	m.state.Loading = true
	svc, ctx := m.service, m.ctx
	return func() tea.Msg {
		snap, err := svc.Inspect(ctx, page)
		return pageLoadedMsg{page: page, snapshot: snap, err: err}
	}
}

// handlePageLoaded performs a whole-page reload: context, model, filter,
// width and resize state all start over.
func (m *model) handlePageLoaded(msg pageLoadedMsg) {
	m.state.Loading = false
	if msg.err != nil {
		m.logger.Error("Failed to load page", "page", msg.page, "error", msg.err)
		m.state.SetStatus(fmt.Sprintf("Failed to load %s: %v", msg.page, msg.err), StatusError)
		return
	}

	m.state.Page = msg.snapshot.Path
	m.state.Snapshot = msg.snapshot
	m.state.ResetPresentation()
	m.state.SetStatus("", "")

	m.filter.ClearFilter()
	m.state.Panel = NewPanel(msg.snapshot, m.filter, m.styles.GetStyles())
	m.state.Keys.Filter.SetEnabled(m.filter.Available())

	m.resize = nil
	if m.opts.Mouse && msg.snapshot.Page.HasResizeHandle {
		m.resize = sidebar.NewResizeController(m, m, m.opts.Bounds, m.logger)
	}

	m.logger.Debug("Page ready",
		"page", m.state.Page,
		"provider", msg.snapshot.Context.ProviderID,
		"resize", m.resize != nil)

	m.layout()
	m.state.Content.GotoTop()
	m.finalizePending = true
	if m.state.WindowWidth > 0 {
		m.finalize()
	}
}

func (m *model) finalize() {
	m.finalizePending = false
	if m.state.Panel != nil {
		m.state.Panel.Finalize(m)
	}
}

// layout sizes the panel and the content pane for the current window and
// sidebar width.
func (m *model) layout() {
	height := m.state.BodyHeight()
	if m.state.Panel != nil {
		m.state.Panel.SetSize(m.state.SidebarWidth(), height)
	}
	m.state.Content.Width = m.state.ContentWidth()
	m.state.Content.Height = height
	if m.state.Snapshot != nil {
		m.state.Content.SetContent(renderBody(m.state.Snapshot.Page, m.state.ContentWidth(), m.styles.GetStyles()))
	}
}

// handleKeyPress handles key press messages.
func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The filter shortcut is global; without a filter input it does nothing.
	// The binding is disabled on such pages, so match its keys directly.
	if slices.Contains(m.state.Keys.Filter.Keys(), msg.String()) {
		if m.state.CurrentView == ViewPage && m.filter.Focus() {
			m.refreshPanelHeader()
		}
		return m, nil
	}

	if m.state.CurrentView == ViewHelp {
		return m.delegate(msg)
	}

	if m.filter.IsActive() {
		switch msg.String() {
		case "esc":
			m.filter.ClearFilter()
			m.applyFilter()
			return m, nil
		case "enter", "tab":
			m.filter.SetActive(false)
			m.refreshPanelHeader()
			return m, nil
		case "up", "down":
			m.filter.SetActive(false)
			m.refreshPanelHeader()
		default:
			cmd, changed := m.filter.UpdateInput(msg)
			if changed {
				m.applyFilter()
			} else {
				m.refreshPanelHeader()
			}
			return m, cmd
		}
	}

	m.state.SetStatus("", "")
	keys := m.state.Keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.state.PreviousView = m.state.CurrentView
		m.state.CurrentView = ViewHelp
		_ = m.viewManager.SwitchView(ViewHelp)
		return m, nil

	case key.Matches(msg, keys.Up):
		if m.state.Panel != nil {
			m.state.Panel.MoveCursor(-1)
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.state.Panel != nil {
			m.state.Panel.MoveCursor(1)
		}
		return m, nil

	case key.Matches(msg, keys.Open):
		return m.openSelected()

	case key.Matches(msg, keys.Back):
		return m.handleBackNavigation()

	case key.Matches(msg, keys.Copy):
		return m.copySelected()

	case key.Matches(msg, keys.Reload):
		if m.state.Loading {
			return m, nil
		}
		return m, m.loadPage(m.state.Page)
	}

	return m.delegate(msg)
}

// openSelected navigates to the entry under the cursor.
func (m *model) openSelected() (tea.Model, tea.Cmd) {
	if m.state.Panel == nil || m.state.Loading {
		return m, nil
	}
	href, _, ok := m.state.Panel.Selected()
	if !ok {
		return m, nil
	}
	target, ok := sidebar.ResolveHref(m.state.Page, href)
	if !ok {
		m.state.SetStatus("External link: "+href, StatusInfo)
		return m, nil
	}

	title := m.state.Page
	if m.state.Snapshot != nil && m.state.Snapshot.Page.Title != "" {
		title = m.state.Snapshot.Page.Title
	}
	m.state.Navigator.PushState(ViewState{View: m.state.CurrentView, Page: m.state.Page, Title: title})
	m.state.Navigator.AddToPath(m.state.Page, title)
	return m, m.loadPage(target)
}

// handleBackNavigation reloads the previous page, if any.
func (m *model) handleBackNavigation() (tea.Model, tea.Cmd) {
	if m.state.Loading {
		return m, nil
	}
	prev, ok := m.state.Navigator.PopState()
	if !ok {
		m.state.SetStatus("No previous page", StatusInfo)
		return m, nil
	}
	m.state.CurrentView = prev.View
	return m, m.loadPage(prev.Page)
}

// copySelected copies the resolved target of the entry under the cursor.
func (m *model) copySelected() (tea.Model, tea.Cmd) {
	if m.state.Panel == nil {
		return m, nil
	}
	href, _, ok := m.state.Panel.Selected()
	if !ok {
		return m, nil
	}
	if target, local := sidebar.ResolveHref(m.state.Page, href); local {
		href = target
	}
	return m, func() tea.Msg {
		return clipboardMsg{text: href, err: clipboard.WriteAll(href)}
	}
}

func (m *model) applyFilter() {
	if m.state.Panel == nil {
		return
	}
	m.state.Panel.ApplyFilter(m.filter.GetFilterText())
}

// refreshPanelHeader re-lays out the panel after a focus change restyled
// the filter box.
func (m *model) refreshPanelHeader() {
	if m.state.Panel != nil {
		m.state.Panel.SetSize(m.state.SidebarWidth(), m.state.BodyHeight())
	}
}

// handleMouse drives the resize controller. The panel border is the drag
// handle. It reports whether the event was consumed.
func (m *model) handleMouse(msg tea.MouseMsg) bool {
	if m.resize == nil || m.state.CurrentView != ViewPage {
		return false
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.onDivider(msg.X, msg.Y) {
			return false
		}
		m.resize.Press()
		return true

	case tea.MouseActionMotion:
		if !m.resize.Move(msg.X) {
			return false
		}
		m.layout()
		return true

	case tea.MouseActionRelease:
		if !m.resize.Resizing() {
			return false
		}
		m.resize.Release()
		return true
	}
	return false
}

func (m *model) onDivider(x, y int) bool {
	col := m.state.SidebarWidth()
	return x >= col-1 && x <= col+1 && y >= headerHeight && y < headerHeight+m.state.BodyHeight()
}

// SetMarker implements sidebar.StyleTarget.
func (m *model) SetMarker(name string, on bool) {
	if on {
		m.state.Markers[name] = true
		return
	}
	delete(m.state.Markers, name)
}

// SetVar implements sidebar.StyleTarget.
func (m *model) SetVar(name string, value int) {
	m.state.Vars[name] = value
}

// SidebarLeft implements sidebar.Geometry. The panel starts at the first
// column.
func (m *model) SidebarLeft() int {
	return 0
}

// ViewportWidth implements sidebar.Geometry.
func (m *model) ViewportWidth() int {
	return m.state.WindowWidth
}
