// Package output renders the navigation derived for a page in the export
// formats.
package output

import (
	"context"
	"io"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// Formatter writes a page snapshot in one output format.
type Formatter interface {
	// Format formats the given snapshot and writes it to the writer.
	Format(ctx context.Context, snap *sidebar.Snapshot, w io.Writer) error

	// Name returns the name of the formatter.
	Name() string

	// Description returns a description of the output format.
	Description() string
}

// Manager manages multiple output formatters.
type Manager interface {
	// RegisterFormatter registers a new formatter, replacing one with the
	// same name.
	RegisterFormatter(formatter Formatter)

	// GetFormatter returns a formatter by name.
	GetFormatter(name string) (Formatter, error)

	// ListFormatters returns all available formatter names.
	ListFormatters() []string

	// Format formats the snapshot using the specified formatter.
	Format(ctx context.Context, formatName string, snap *sidebar.Snapshot, w io.Writer) error
}
