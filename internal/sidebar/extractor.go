package sidebar

import "log/slog"

// Extractor builds the provider resource index from scanned items.
type Extractor interface {
	// Extract returns the categories of pc's provider in document order.
	Extract(items []NavItem, pc PageContext) NavigationModel
}

// extractor implements the Extractor interface.
type extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a new Extractor instance.
func NewExtractor(logger *slog.Logger) Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &extractor{logger: logger}
}

// Extract runs the single-pass scan with the result logged at debug level.
func (e *extractor) Extract(items []NavItem, pc PageContext) NavigationModel {
	model := Extract(items, pc)
	e.logger.Debug("Extracted navigation model",
		"provider", pc.ProviderID,
		"items", len(items),
		"categories", len(model.Categories),
		"resources", model.ResourceCount())
	return model
}

// TraceKind names a decision taken during extraction.
type TraceKind int

const (
	// TraceCategory: a header opened a new category.
	TraceCategory TraceKind = iota
	// TraceKept: a row joined the current category.
	TraceKept
	// TraceForeign: a row under a category links outside the provider's
	// section and was skipped.
	TraceForeign
	// TraceOrphan: a provider row came before every header and was dropped.
	TraceOrphan
)

// TraceEvent is one extraction decision. Category holds the name of the
// category the item opened or was seen under, empty for orphans.
type TraceEvent struct {
	Kind     TraceKind
	Item     NavItem
	Category string
}

// Tracer receives extraction decisions in document order.
type Tracer func(TraceEvent)

// Extract walks items once, keeping a single current-category slot. Headers
// open a new category unless they are the provider's own section marker;
// rows join the current category when they link into the provider's
// section. Rows seen before any header are dropped. Categories left empty
// are pruned. Each tracer sees every decision the walk takes.
func Extract(items []NavItem, pc PageContext, tracers ...Tracer) NavigationModel {
	var (
		categories []Category
		current    = -1
	)
	headerName := pc.HeaderName()
	emit := func(kind TraceKind, item NavItem) {
		ev := TraceEvent{Kind: kind, Item: item}
		if current >= 0 {
			ev.Category = categories[current].Name
		}
		for _, t := range tracers {
			t(ev)
		}
	}

	for _, item := range items {
		switch item.Kind {
		case ItemHeader:
			name := StripNumbering(item.Label)
			if name == headerName {
				continue
			}
			categories = append(categories, Category{Name: name})
			current = len(categories) - 1
			emit(TraceCategory, item)

		case ItemRow:
			if item.Href == "" {
				continue
			}
			owned := pc.OwnsHref(item.Href)
			if current < 0 {
				if owned {
					emit(TraceOrphan, item)
				}
				continue
			}
			if !owned {
				emit(TraceForeign, item)
				continue
			}
			categories[current].Resources = append(categories[current].Resources, ResourceEntry{
				DisplayText: StripNumbering(item.Label),
				TargetHref:  item.Href,
				IsActive:    item.Active,
			})
			emit(TraceKept, item)
		}
	}

	model := NavigationModel{Categories: make([]Category, 0, len(categories))}
	for _, c := range categories {
		if len(c.Resources) > 0 {
			model.Categories = append(model.Categories, c)
		}
	}
	return model
}
