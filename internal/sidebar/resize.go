package sidebar

import "log/slog"

// Default resize bounds: the panel never gets narrower than MinWidth and
// always leaves Margin units of the viewport free.
const (
	DefaultMinWidth = 20
	DefaultMargin   = 100
)

// StyleTarget is the shared presentation state read by layout rules: a set
// of markers plus numeric style variables.
type StyleTarget interface {
	SetMarker(name string, on bool)
	SetVar(name string, value int)
}

// Geometry reports the measurements a drag needs.
type Geometry interface {
	// SidebarLeft is the panel's left edge.
	SidebarLeft() int
	// ViewportWidth is the full viewport width.
	ViewportWidth() int
}

// ResizeBounds limits the published width.
type ResizeBounds struct {
	Min    int
	Margin int
}

// DefaultResizeBounds returns the bounds of the page's own stylesheet.
func DefaultResizeBounds() ResizeBounds {
	return ResizeBounds{Min: DefaultMinWidth, Margin: DefaultMargin}
}

// ResizeState is the drag state owned by a ResizeController.
type ResizeState struct {
	Active       bool
	CurrentWidth int
}

// ResizeController is the idle/resizing state machine behind the panel's
// drag handle. It is driven only through Press, Move and Release.
type ResizeController struct {
	state    ResizeState
	bounds   ResizeBounds
	target   StyleTarget
	geometry Geometry
	logger   *slog.Logger
}

// NewResizeController returns a controller in the idle state. It returns nil
// when target or geometry is missing; every method is safe on a nil
// controller.
func NewResizeController(target StyleTarget, geometry Geometry, bounds ResizeBounds, logger *slog.Logger) *ResizeController {
	if target == nil || geometry == nil {
		return nil
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ResizeController{
		bounds:   bounds,
		target:   target,
		geometry: geometry,
		logger:   logger,
	}
}

// Press starts a drag: idle -> resizing.
func (c *ResizeController) Press() {
	if c == nil {
		return
	}
	c.state.Active = true
	c.target.SetMarker(ClassResizing, true)
}

// Move publishes the clamped width for cursorX while resizing. It returns
// false when no drag is in progress.
func (c *ResizeController) Move(cursorX int) bool {
	if c == nil || !c.state.Active {
		return false
	}
	width := ClampWidth(cursorX-c.geometry.SidebarLeft(), c.geometry.ViewportWidth(), c.bounds)
	c.state.CurrentWidth = width
	c.target.SetVar(VarTargetWidth, width)
	return true
}

// Release ends a drag: resizing -> idle. Releasing while idle does nothing.
func (c *ResizeController) Release() {
	if c == nil || !c.state.Active {
		return
	}
	c.state.Active = false
	c.target.SetMarker(ClassResizing, false)
	c.logger.Debug("Sidebar resized", "width", c.state.CurrentWidth)
}

// Resizing reports whether a drag is in progress.
func (c *ResizeController) Resizing() bool {
	return c != nil && c.state.Active
}

// State returns a copy of the current state.
func (c *ResizeController) State() ResizeState {
	if c == nil {
		return ResizeState{}
	}
	return c.state
}

// ClampWidth applies the lower bound first and the viewport bound last, so
// a viewport narrower than Min+Margin yields the viewport bound.
func ClampWidth(width, viewportWidth int, bounds ResizeBounds) int {
	if width < bounds.Min {
		width = bounds.Min
	}
	return min(width, viewportWidth-bounds.Margin)
}
