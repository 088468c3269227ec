package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripNumbering(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1. EC2", "EC2"},
		{"2.1.3. Bucket Policy", "Bucket Policy"},
		{"12 Things", "Things"},
		{"EC2", "EC2"},
		{"1.EC2", "1.EC2"},
		{"2.1.EC2", "2.1.EC2"},
		{"3.\tLambda", "Lambda"},
		{"S3 1. Bucket", "S3 1. Bucket"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripNumbering(tt.in))
		})
	}
}

func TestScanItems(t *testing.T) {
	region := parseFragment(t, `
<mdbook-sidebar-scrollbox><ol class="chapter">
  <li class="chapter-item"><span class="chapter-link-wrapper"><span> 1. EC2 </span></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="a.html" class="active"> Instance </a></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><a>Draft</a></span></li>
  <li class="chapter-item"><a href="b.html">No wrapper</a></li>
  <li class="chapter-item spacer"></li>
</ol></mdbook-sidebar-scrollbox>`)

	items := ScanItems(region)
	require.Len(t, items, 5)

	assert.Equal(t, NavItem{Kind: ItemHeader, Label: "1. EC2"}, items[0])
	assert.Equal(t, NavItem{Kind: ItemRow, Label: "Instance", Href: "a.html", Active: true}, items[1])
	assert.Equal(t, NavItem{Kind: ItemRow, Label: "Draft"}, items[2])
	assert.Equal(t, ItemNone, items[3].Kind)
	assert.Equal(t, ItemNone, items[4].Kind)
}

func TestScanItemsFlattensNesting(t *testing.T) {
	items := ScanItems(parseFragment(t, topLevelNav))
	require.Len(t, items, 4)
	assert.Equal(t, "Instance", StripNumbering(items[2].Label))
	assert.Equal(t, ItemHeader, items[3].Kind)
}

func TestItemKindString(t *testing.T) {
	assert.Equal(t, "header", ItemHeader.String())
	assert.Equal(t, "row", ItemRow.String())
	assert.Equal(t, "none", ItemNone.String())
}
