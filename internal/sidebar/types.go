// Package sidebar derives the navigation panel of an mdBook page: it
// classifies the page, extracts the provider resource index from the
// generated navigation markup and owns the filter and resize state that the
// browser drives.
package sidebar

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Provider is one entry of the provider registry.
type Provider struct {
	ID          string `json:"id" yaml:"id" koanf:"id"`
	PathPrefix  string `json:"path_prefix" yaml:"path_prefix" koanf:"path_prefix"`
	DisplayName string `json:"display_name" yaml:"display_name" koanf:"display_name"`
}

// Registry is the ordered provider list. Earlier entries win when several
// prefixes match the same path.
type Registry []Provider

// PageContext classifies the page being viewed. It is derived once per page
// load and never mutated afterwards.
type PageContext struct {
	IsProvider  bool   `json:"is_provider"`
	ProviderID  string `json:"provider_id,omitempty"`
	PathPrefix  string `json:"path_prefix,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// HeaderName is the label of the provider's own section marker in the
// navigation tree, e.g. "AWS Provider".
func (pc PageContext) HeaderName() string {
	return pc.DisplayName + " Provider"
}

// OwnsHref reports whether href links into the provider's section.
func (pc PageContext) OwnsHref(href string) bool {
	return pc.ProviderID != "" && strings.Contains(href, providerHrefPart+pc.ProviderID+"/")
}

// ResourceEntry is a single link of the resource index.
type ResourceEntry struct {
	DisplayText string `json:"display_text"`
	TargetHref  string `json:"target_href"`
	IsActive    bool   `json:"is_active,omitempty"`
}

// Category is a labeled group of resource entries.
type Category struct {
	Name      string          `json:"name"`
	Resources []ResourceEntry `json:"resources"`
}

// NavigationModel is the ordered category list for one provider page.
type NavigationModel struct {
	Categories []Category `json:"categories"`
}

// ResourceCount returns the number of entries across all categories.
func (m NavigationModel) ResourceCount() int {
	n := 0
	for _, c := range m.Categories {
		n += len(c.Resources)
	}
	return n
}

// ItemKind classifies a scanned navigation item.
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemHeader
	ItemRow
)

// String implements fmt.Stringer.
func (k ItemKind) String() string {
	switch k {
	case ItemHeader:
		return "header"
	case ItemRow:
		return "row"
	default:
		return "none"
	}
}

// NavItem is one token of the flat navigation stream. Headers carry only a
// label; rows carry the link text, target and active flag.
type NavItem struct {
	Kind   ItemKind `json:"kind"`
	Label  string   `json:"label"`
	Href   string   `json:"href,omitempty"`
	Active bool     `json:"active,omitempty"`
}

// Page is a loaded documentation page with its navigation tree in the state
// the generator's script leaves it in.
type Page struct {
	Path            string
	Doc             *goquery.Document
	Title           string
	Body            []string
	HasScrollRegion bool
	HasResizeHandle bool
}

// ScrollRegion returns the navigation scroll region of the page, or an empty
// selection when the page has none.
func (p *Page) ScrollRegion() *goquery.Selection {
	if p == nil || p.Doc == nil {
		return &goquery.Selection{}
	}
	return p.Doc.Find(SelScrollRegion).First()
}

// Snapshot bundles everything derived for one page load.
type Snapshot struct {
	Page    *Page           `json:"-"`
	Path    string          `json:"path"`
	Context PageContext     `json:"context"`
	Items   []NavItem       `json:"-"`
	Model   NavigationModel `json:"model"`
	Outline []OutlineEntry  `json:"outline,omitempty"`
}
