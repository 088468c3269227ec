package output

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// htmlFormatter emits the replacement panel markup with the stable class
// names the site's stylesheet targets.
type htmlFormatter struct {
	query string
}

// NewHTMLFormatter creates an HTML formatter. A non-empty query is applied
// to the resource list first, so non-matching entries carry the
// filter-hidden class.
func NewHTMLFormatter(query string) Formatter {
	return &htmlFormatter{query: query}
}

// Format renders the panel for snap. Pages without a navigation region
// have nothing to replace and yield sidebar.ErrNoScrollRegion.
func (f *htmlFormatter) Format(ctx context.Context, snap *sidebar.Snapshot, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	root, err := BuildPanel(snap, f.query)
	if err != nil {
		return err
	}
	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("failed to render panel: %w", err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// Name returns the name of the formatter.
func (f *htmlFormatter) Name() string {
	return "html"
}

// Description returns a description of the output format.
func (f *htmlFormatter) Description() string {
	return "Replacement navigation panel markup"
}

// BuildPanel constructs the finalized panel for snap: a provider header and
// resource list on provider pages, the simplified outline elsewhere.
func BuildPanel(snap *sidebar.Snapshot, query string) (*html.Node, error) {
	if snap.Page != nil && !snap.Page.HasScrollRegion {
		return nil, fmt.Errorf("%s: %w", snap.Path, sidebar.ErrNoScrollRegion)
	}

	nav := element("nav", attr("id", "mdbook-sidebar"), attr("class", "sidebar"))
	region := element(sidebar.SelScrollRegion, attr("class", sidebar.ClassReady))

	if snap.Context.IsProvider {
		list := sidebar.NewResourceList(snap.Model)
		list.ApplyFilter(query)
		nav.AppendChild(providerHeader(snap.Context, query))
		region.AppendChild(resourceList(list))
	} else {
		region.AppendChild(outlineList(snap.Outline))
	}

	nav.AppendChild(region)
	return nav, nil
}

func providerHeader(pc sidebar.PageContext, query string) *html.Node {
	header := element("div", attr("class", sidebar.ClassHeader))

	title := element("div", attr("class", sidebar.ClassProviderTitle))
	title.AppendChild(textNode(pc.DisplayName))
	header.AppendChild(title)

	input := element("input",
		attr("type", "text"),
		attr("id", sidebar.IDFilterInput),
		attr("placeholder", sidebar.FilterPlaceholder),
		attr("aria-label", sidebar.FilterLabel))
	if query != "" {
		input.Attr = append(input.Attr, attr("value", query))
	}
	header.AppendChild(input)
	return header
}

func resourceList(list *sidebar.ResourceList) *html.Node {
	root := element("div", attr("class", sidebar.ClassResourceList))
	for _, c := range list.Categories {
		cat := element("div", attr("class", hiddenClass(sidebar.ClassCategory, c.Hidden)))

		title := element("div", attr("class", sidebar.ClassCategoryTitle))
		title.AppendChild(textNode(c.Name))
		cat.AppendChild(title)

		ul := element("ul")
		for _, it := range c.Items {
			li := element("li", attr("class", hiddenClass(sidebar.ClassResourceItem, it.Hidden)))
			li.AppendChild(link(it.Entry.DisplayText, it.Entry.TargetHref, it.Entry.IsActive))
			ul.AppendChild(li)
		}
		cat.AppendChild(ul)
		root.AppendChild(cat)
	}
	return root
}

func outlineList(outline []sidebar.OutlineEntry) *html.Node {
	ol := element("ol", attr("class", "chapter"))
	for _, o := range outline {
		wrapper := element("span", attr("class", "chapter-link-wrapper"))
		if o.Href == "" {
			label := element("span")
			label.AppendChild(textNode(o.Label))
			wrapper.AppendChild(label)
		} else {
			wrapper.AppendChild(link(o.Label, o.Href, o.Active))
		}
		li := element("li", attr("class", "chapter-item"))
		li.AppendChild(wrapper)
		ol.AppendChild(li)
	}
	return ol
}

func link(label, href string, active bool) *html.Node {
	a := element("a", attr("href", href))
	if active {
		a.Attr = append(a.Attr, attr("class", sidebar.ClassActive))
	}
	a.AppendChild(textNode(label))
	return a
}

func hiddenClass(class string, hidden bool) string {
	if hidden {
		return class + " " + sidebar.ClassFilterHidden
	}
	return class
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
