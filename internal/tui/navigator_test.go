package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigatorPushPop(t *testing.T) {
	nav := NewNavigator()

	_, ok := nav.PopState()
	assert.False(t, ok, "empty history")

	nav.PushState(ViewState{View: ViewPage, Page: "index.html", Title: "Introduction"})
	nav.AddToPath("index.html", "Introduction")
	nav.PushState(ViewState{View: ViewPage, Page: "providers/aws/index.html", Title: "AWS"})
	nav.AddToPath("providers/aws/index.html", "AWS")
	assert.Equal(t, 2, nav.GetDepth())

	prev, ok := nav.PopState()
	require.True(t, ok)
	assert.Equal(t, "providers/aws/index.html", prev.Page)
	assert.Equal(t, 1, nav.GetDepth())
	assert.Len(t, nav.(*navigator).path, 1)

	prev, ok = nav.PopState()
	require.True(t, ok)
	assert.Equal(t, "index.html", prev.Page)
	assert.Empty(t, nav.(*navigator).path)
}

func TestNavigatorAddToPath(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		title string
		want  []PathItem
	}{
		{
			name:  "title",
			page:  "index.html",
			title: "Introduction",
			want:  []PathItem{{Page: "index.html", DisplayName: "Introduction"}},
		},
		{
			name: "falls back to page",
			page: "print.html",
			want: []PathItem{{Page: "print.html", DisplayName: "print.html"}},
		},
		{
			name: "empty page ignored",
			want: []PathItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator()
			nav.AddToPath(tt.page, tt.title)
			assert.Equal(t, tt.want, nav.(*navigator).path)
		})
	}
}

func TestNavigatorTruncatesLongTitles(t *testing.T) {
	nav := NewNavigator()
	nav.AddToPath("a.html", "aws_s3_bucket_server_side_encryption_configuration")

	path := nav.(*navigator).path
	require.Len(t, path, 1)
	assert.LessOrEqual(t, len([]rune(path[0].DisplayName)), 20)
	assert.Contains(t, path[0].DisplayName, "…")
}

func TestNavigatorPathIsBounded(t *testing.T) {
	nav := NewNavigator()
	for i := 0; i < MaxNavPathLength+3; i++ {
		nav.AddToPath(fmt.Sprintf("p%d.html", i), fmt.Sprintf("Page %d", i))
	}

	path := nav.(*navigator).path
	require.Len(t, path, MaxNavPathLength)
	assert.Equal(t, "p3.html", path[0].Page)
}

func TestNavigatorRenderPath(t *testing.T) {
	nav := NewNavigator()
	assert.Empty(t, nav.RenderPath())

	nav.AddToPath("index.html", "Introduction")
	nav.AddToPath("providers/aws/index.html", "AWS")
	assert.Equal(t, "Introduction › AWS", nav.RenderPath())
}
