package tui

import (
	"fmt"
	"sync"
)

// viewManager implements the ViewManager interface.
type viewManager struct {
	views       map[string]View
	currentView string
	mu          sync.RWMutex
}

// NewViewManager creates a new ViewManager with the page and help views.
func NewViewManager(styles StyleManager) ViewManager {
	vm := &viewManager{
		views:       make(map[string]View),
		currentView: ViewPage,
	}

	vm.RegisterView(NewPageView(styles))
	vm.RegisterView(NewHelpView(styles))

	return vm
}

// GetCurrentView returns the currently active view.
func (vm *viewManager) GetCurrentView(state *State) View {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	if state == nil {
		return vm.views[vm.currentView]
	}

	viewName := state.CurrentView
	if viewName == "" {
		viewName = vm.currentView
	}

	if view, ok := vm.views[viewName]; ok {
		return view
	}

	return vm.views[ViewPage]
}

// SwitchView switches to the specified view.
func (vm *viewManager) SwitchView(viewName string) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if _, ok := vm.views[viewName]; !ok {
		return fmt.Errorf("view '%s' not found", viewName)
	}

	vm.currentView = viewName
	return nil
}

// RegisterView registers a new view.
func (vm *viewManager) RegisterView(view View) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if view != nil {
		vm.views[view.Name()] = view
	}
}
