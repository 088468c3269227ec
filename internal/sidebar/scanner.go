package sidebar

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors of the markup produced by the documentation generator.
const (
	SelScrollRegion  = "mdbook-sidebar-scrollbox"
	SelChapterItem   = "li.chapter-item"
	SelLinkWrapper   = "span.chapter-link-wrapper"
	SelLabel         = "span:not(.chapter-link-wrapper)"
	SelNestedList    = "ol.section"
	SelNumbering     = "strong[aria-hidden='true']"
	SelOnThisPage    = ".on-this-page"
	SelResizeHandle  = "#mdbook-sidebar-resize-handle"
	SelSidebar       = "#mdbook-sidebar"
	SelChapterList   = "ol.chapter"
	ClassActive      = "active"
	AttrHidden       = "hidden"
	providerHrefPart = "providers/"
)

// Names of the markup and style hooks this package produces.
const (
	ClassHeader        = "sidebar-header"
	ClassProviderTitle = "sidebar-provider-title"
	IDFilterInput      = "sidebar-filter-input"
	ClassResourceList  = "provider-resource-list"
	ClassCategory      = "provider-category"
	ClassCategoryTitle = "provider-category-title"
	ClassResourceItem  = "provider-resource-item"
	ClassFilterHidden  = "sidebar-filter-hidden"
	ClassReady         = "sidebar-ready"
	ClassResizing      = "sidebar-resizing"
	VarTargetWidth     = "--sidebar-target-width"
	FilterPlaceholder  = "Filter resources... (Ctrl+K)"
	FilterLabel        = "Filter resources"
)

var numberingPrefix = regexp.MustCompile(`^[0-9.]+\s+`)

// StripNumbering removes a leading section number such as "1.2. " from a
// label. The number must be followed by whitespace, so "1.EC2" is kept.
func StripNumbering(label string) string {
	return numberingPrefix.ReplaceAllString(label, "")
}

// ScanItems flattens the navigation tree under root into document-ordered
// items. Nesting is ignored on purpose: the generator does not reliably
// nest rows under their header, so every chapter item is a token of its own.
func ScanItems(root *goquery.Selection) []NavItem {
	var items []NavItem
	root.Find(SelChapterItem).Each(func(_ int, li *goquery.Selection) {
		items = append(items, classifyItem(li))
	})
	return items
}

// classifyItem decides between header and row from the item's link wrapper.
// A wrapper holds either an anchor or a label span.
func classifyItem(li *goquery.Selection) NavItem {
	wrapper := li.Find(SelLinkWrapper).First()
	if wrapper.Length() == 0 {
		return NavItem{Kind: ItemNone}
	}

	anchor := wrapper.Find("a").First()
	if anchor.Length() > 0 {
		href, _ := anchor.Attr("href")
		return NavItem{
			Kind:   ItemRow,
			Label:  strings.TrimSpace(anchor.Text()),
			Href:   href,
			Active: anchor.HasClass(ClassActive),
		}
	}

	label := wrapper.Find(SelLabel).First()
	if label.Length() > 0 {
		return NavItem{Kind: ItemHeader, Label: strings.TrimSpace(label.Text())}
	}
	return NavItem{Kind: ItemNone}
}
