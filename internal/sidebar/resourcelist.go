package sidebar

import "strings"

// ListItem is a rendered resource entry. Hidden is the reversible filter
// marker; filtered items stay in the list.
type ListItem struct {
	Entry  ResourceEntry
	Hidden bool
}

// ListCategory is a rendered category group.
type ListCategory struct {
	Name   string
	Items  []*ListItem
	Hidden bool
}

// ResourceList is the rendered replacement content of the scroll region.
type ResourceList struct {
	Categories []*ListCategory
	query      string
}

// NewResourceList renders model into a list with everything visible.
func NewResourceList(model NavigationModel) *ResourceList {
	l := &ResourceList{Categories: make([]*ListCategory, 0, len(model.Categories))}
	for _, c := range model.Categories {
		lc := &ListCategory{Name: c.Name, Items: make([]*ListItem, 0, len(c.Resources))}
		for _, r := range c.Resources {
			lc.Items = append(lc.Items, &ListItem{Entry: r})
		}
		l.Categories = append(l.Categories, lc)
	}
	return l
}

// NormalizeQuery trims and lower-cases raw filter input.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ApplyFilter updates the hidden markers for raw. An item stays visible when
// the normalized query is empty or is a plain substring of the item's
// lower-cased text. A category is hidden only when the query is non-empty
// and none of its items matched.
func (l *ResourceList) ApplyFilter(raw string) {
	term := NormalizeQuery(raw)
	l.query = term
	for _, c := range l.Categories {
		anyVisible := false
		for _, it := range c.Items {
			if term == "" || strings.Contains(strings.ToLower(it.Entry.DisplayText), term) {
				it.Hidden = false
				anyVisible = true
			} else {
				it.Hidden = true
			}
		}
		c.Hidden = term != "" && !anyVisible
	}
}

// Query returns the normalized query of the last ApplyFilter call.
func (l *ResourceList) Query() string {
	return l.query
}

// VisibleCount returns the number of items not hidden by the filter.
func (l *ResourceList) VisibleCount() int {
	n := 0
	for _, c := range l.Categories {
		if c.Hidden {
			continue
		}
		for _, it := range c.Items {
			if !it.Hidden {
				n++
			}
		}
	}
	return n
}

// Total returns the number of items in the list.
func (l *ResourceList) Total() int {
	n := 0
	for _, c := range l.Categories {
		n += len(c.Items)
	}
	return n
}
