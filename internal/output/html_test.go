package output

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

func renderHTML(t *testing.T, snap *sidebar.Snapshot, query string) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewHTMLFormatter(query).Format(context.Background(), snap, &buf))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return doc
}

func TestHTMLFormatterProviderMarkup(t *testing.T) {
	doc := renderHTML(t, providerSnapshot(), "")

	nav := doc.Find("nav#mdbook-sidebar")
	require.Equal(t, 1, nav.Length())
	assert.False(t, nav.HasClass(sidebar.ClassReady))
	assert.Equal(t, 1, nav.Find(sidebar.SelScrollRegion+"."+sidebar.ClassReady).Length(),
		"the ready marker belongs on the scroll region")

	header := nav.Find("div." + sidebar.ClassHeader)
	require.Equal(t, 1, header.Length())
	assert.Equal(t, "AWS", header.Find("div."+sidebar.ClassProviderTitle).Text())

	input := header.Find("input#" + sidebar.IDFilterInput)
	require.Equal(t, 1, input.Length())
	assert.Equal(t, "text", input.AttrOr("type", ""))
	assert.Equal(t, sidebar.FilterPlaceholder, input.AttrOr("placeholder", ""))
	assert.Equal(t, sidebar.FilterLabel, input.AttrOr("aria-label", ""))
	_, hasValue := input.Attr("value")
	assert.False(t, hasValue)

	// The header comes before the scroll region.
	assert.Equal(t, 1, header.NextFiltered(sidebar.SelScrollRegion).Length())

	cats := doc.Find(sidebar.SelScrollRegion + " div." + sidebar.ClassResourceList + " > div." + sidebar.ClassCategory)
	require.Equal(t, 2, cats.Length())

	var titles []string
	cats.Find("div." + sidebar.ClassCategoryTitle).Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	assert.Equal(t, []string{"Compute", "Storage"}, titles)

	items := cats.First().Find("ul > li." + sidebar.ClassResourceItem + " > a")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "instance.html", items.First().AttrOr("href", ""))
	assert.True(t, items.First().HasClass(sidebar.ClassActive))
	assert.False(t, items.Last().HasClass(sidebar.ClassActive))
	assert.Zero(t, doc.Find("."+sidebar.ClassFilterHidden).Length())
}

func TestHTMLFormatterAppliesQuery(t *testing.T) {
	doc := renderHTML(t, providerSnapshot(), "Bucket")

	assert.Equal(t, "Bucket", doc.Find("input#"+sidebar.IDFilterInput).AttrOr("value", ""))

	hidden := doc.Find("li." + sidebar.ClassResourceItem + "." + sidebar.ClassFilterHidden)
	assert.Equal(t, 2, hidden.Length(), "non-matching items stay in the markup, hidden")

	compute := doc.Find("div." + sidebar.ClassCategory).First()
	assert.True(t, compute.HasClass(sidebar.ClassFilterHidden))
	storage := doc.Find("div." + sidebar.ClassCategory).Last()
	assert.False(t, storage.HasClass(sidebar.ClassFilterHidden))
}

func TestHTMLFormatterTopLevelOutline(t *testing.T) {
	doc := renderHTML(t, topLevelSnapshot(), "")

	assert.Zero(t, doc.Find("div."+sidebar.ClassHeader).Length())
	assert.Zero(t, doc.Find("input").Length())
	assert.Equal(t, 1, doc.Find(sidebar.SelScrollRegion+"."+sidebar.ClassReady).Length())

	items := doc.Find(sidebar.SelScrollRegion + " ol.chapter > " + sidebar.SelChapterItem)
	require.Equal(t, 3, items.Length())
	assert.Equal(t, "Providers", items.Eq(1).Find(sidebar.SelLinkWrapper + " > span").Text())
	assert.Zero(t, items.Eq(1).Find("a").Length())

	active := doc.Find("a." + sidebar.ClassActive)
	require.Equal(t, 1, active.Length())
	assert.Equal(t, "index.html", active.AttrOr("href", ""))
}

func TestHTMLFormatterRoundTripsThroughScanner(t *testing.T) {
	doc := renderHTML(t, topLevelSnapshot(), "")

	items := sidebar.ScanItems(doc.Find(sidebar.SelScrollRegion))
	require.Len(t, items, 3)
	assert.Equal(t, sidebar.ItemHeader, items[1].Kind)
	assert.Equal(t, "Providers", items[1].Label)
	assert.Equal(t, "providers/aws/index.html", items[2].Href)
}

func TestHTMLFormatterWithoutRegion(t *testing.T) {
	var buf bytes.Buffer
	err := NewHTMLFormatter("").Format(context.Background(), noRegionSnapshot(), &buf)

	require.Error(t, err)
	assert.True(t, errors.Is(err, sidebar.ErrNoScrollRegion))
	assert.Empty(t, buf.String())
}

func TestHTMLFormatterEscapesText(t *testing.T) {
	snap := topLevelSnapshot()
	snap.Outline = []sidebar.OutlineEntry{{Label: "<script>alert(1)</script>", Href: "x.html?a=1&b=2"}}

	var buf bytes.Buffer
	require.NoError(t, NewHTMLFormatter("").Format(context.Background(), snap, &buf))

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
	assert.Contains(t, buf.String(), `href="x.html?a=1&amp;b=2"`)
}
