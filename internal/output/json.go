package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// jsonFormatter implements the Formatter interface for JSON output.
type jsonFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() Formatter {
	return &jsonFormatter{}
}

// Format writes the snapshot's context, model and outline as indented JSON.
func (f *jsonFormatter) Format(ctx context.Context, snap *sidebar.Snapshot, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snap)
}

// Name returns the name of the formatter.
func (f *jsonFormatter) Name() string {
	return "json"
}

// Description returns a description of the output format.
func (f *jsonFormatter) Description() string {
	return "JSON format for programmatic consumption"
}
