package output

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// aliases maps alternative format names onto registered ones.
var aliases = map[string]string{
	"md": "markdown",
}

// manager implements the Manager interface.
type manager struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

// NewManager creates a Manager with the json, markdown, tree and html
// formatters registered.
func NewManager() Manager {
	m := &manager{formatters: make(map[string]Formatter)}
	exporter := NewExporter()
	m.RegisterFormatter(NewJSONFormatter())
	m.RegisterFormatter(&textFormatter{
		name:        "markdown",
		description: "Markdown document of the derived navigation",
		render:      exporter.ExportMarkdown,
	})
	m.RegisterFormatter(&textFormatter{
		name:        "tree",
		description: "Indented tree for the terminal",
		render:      exporter.ExportTree,
	})
	m.RegisterFormatter(NewHTMLFormatter(""))
	return m
}

// RegisterFormatter registers a formatter under its name.
func (m *manager) RegisterFormatter(formatter Formatter) {
	if formatter == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.formatters[formatter.Name()] = formatter
}

// GetFormatter returns a formatter by name or alias.
func (m *manager) GetFormatter(name string) (Formatter, error) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.formatters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return f, nil
}

// ListFormatters returns the registered names in sorted order.
func (m *manager) ListFormatters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.formatters))
	for name := range m.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format formats the snapshot with the named formatter.
func (m *manager) Format(ctx context.Context, formatName string, snap *sidebar.Snapshot, w io.Writer) error {
	f, err := m.GetFormatter(formatName)
	if err != nil {
		return err
	}
	if snap == nil {
		return fmt.Errorf("no snapshot to format")
	}
	return f.Format(ctx, snap, w)
}

// textFormatter adapts an Exporter method to the Formatter interface.
type textFormatter struct {
	name        string
	description string
	render      func(*sidebar.Snapshot) (string, error)
}

func (f *textFormatter) Format(ctx context.Context, snap *sidebar.Snapshot, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out, err := f.render(snap)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", f.name, err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func (f *textFormatter) Name() string        { return f.name }
func (f *textFormatter) Description() string { return f.description }
