package sidebar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Service runs the per-page pipeline: load, classify, then extract the
// resource index or simplify the top-level tree.
type Service interface {
	// Inspect loads pagePath and derives its snapshot. A page without a
	// scroll region yields a snapshot with an empty model and no error.
	Inspect(ctx context.Context, pagePath string) (*Snapshot, error)
}

// service implements the Service interface.
type service struct {
	logger    *slog.Logger
	loader    Loader
	extractor Extractor
	registry  Registry
}

// NewService creates a new Service instance.
func NewService(logger *slog.Logger, loader Loader, extractor Extractor, registry Registry) Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{
		logger:    logger,
		loader:    loader,
		extractor: extractor,
		registry:  registry,
	}
}

// Inspect implements Service.
func (s *service) Inspect(ctx context.Context, pagePath string) (*Snapshot, error) {
	page, err := s.loader.Load(ctx, pagePath)
	if err != nil && !errors.Is(err, ErrNoScrollRegion) {
		return nil, fmt.Errorf("failed to load page: %w", err)
	}

	snap := &Snapshot{
		Page:    page,
		Path:    page.Path,
		Context: DetectContext(page.Path, s.registry),
	}
	if !page.HasScrollRegion {
		return snap, nil
	}

	region := page.ScrollRegion()
	snap.Items = ScanItems(region)
	if snap.Context.IsProvider {
		snap.Model = s.extractor.Extract(snap.Items, snap.Context)
	} else {
		HideNested(region)
		snap.Outline = Outline(region)
	}

	s.logger.Info("Inspected page",
		"path", snap.Path,
		"provider", snap.Context.ProviderID,
		"categories", len(snap.Model.Categories),
		"outline", len(snap.Outline))
	return snap, nil
}

// NewDefaultService wires a Service for bookDir with the stock loader and
// extractor.
func NewDefaultService(logger *slog.Logger, bookDir string, registry Registry) Service {
	return NewService(logger, NewLoader(bookDir, logger), NewExtractor(logger), registry)
}
