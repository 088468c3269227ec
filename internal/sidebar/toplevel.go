package sidebar

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// OutlineEntry is a visible entry of the top-level navigation.
type OutlineEntry struct {
	Label  string `json:"label"`
	Href   string `json:"href,omitempty"`
	Active bool   `json:"active,omitempty"`
}

// HideNested simplifies the navigation for pages outside any provider
// section: nested lists, numbering decorations and the "on this page" block
// are hidden. Nothing is removed from the tree and repeated calls leave it
// unchanged.
func HideNested(root *goquery.Selection) {
	root.Find(SelNestedList).SetAttr(AttrHidden, "")
	root.Find(SelNumbering).SetAttr(AttrHidden, "")
	root.Find(SelOnThisPage).First().SetAttr(AttrHidden, "")
}

// Outline lists the chapter items of root that are not inside a hidden
// subtree, with their visible text.
func Outline(root *goquery.Selection) []OutlineEntry {
	var entries []OutlineEntry
	root.Find(SelChapterItem).Each(func(_ int, li *goquery.Selection) {
		if isHidden(li) {
			return
		}
		wrapper := li.Find(SelLinkWrapper).First()
		if wrapper.Length() == 0 {
			wrapper = li
		}
		if anchor := wrapper.Find("a").First(); anchor.Length() > 0 && !isHidden(anchor) {
			href, _ := anchor.Attr("href")
			entries = append(entries, OutlineEntry{
				Label:  VisibleText(anchor),
				Href:   href,
				Active: anchor.HasClass(ClassActive),
			})
			return
		}
		if label := wrapper.Find(SelLabel).First(); label.Length() > 0 && !isHidden(label) {
			entries = append(entries, OutlineEntry{Label: VisibleText(label)})
		}
	})
	return entries
}

// VisibleText returns the text of sel without the content of hidden
// elements, with runs of whitespace collapsed.
func VisibleText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeVisible(&b, n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func writeVisible(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if hasAttr(n, AttrHidden) {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeVisible(b, c)
	}
}

func isHidden(sel *goquery.Selection) bool {
	if sel.Length() == 0 {
		return false
	}
	for n := sel.Get(0); n != nil; n = n.Parent {
		if n.Type == html.ElementNode && hasAttr(n, AttrHidden) {
			return true
		}
	}
	return false
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
