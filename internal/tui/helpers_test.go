package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/tui/theme"
)

func testStyles() *theme.Styles {
	return theme.NewStyles(theme.DefaultTheme())
}

// providerSnapshot returns an AWS provider page with two categories.
func providerSnapshot() *sidebar.Snapshot {
	return &sidebar.Snapshot{
		Path: "/providers/aws/instance.html",
		Page: &sidebar.Page{
			Path:            "/providers/aws/instance.html",
			Title:           "aws_instance",
			Body:            []string{"# Example", "Launches an instance."},
			HasScrollRegion: true,
			HasResizeHandle: true,
		},
		Context: sidebar.PageContext{
			IsProvider:  true,
			ProviderID:  "aws",
			PathPrefix:  "providers/aws/",
			DisplayName: "AWS",
		},
		Model: sidebar.NavigationModel{Categories: []sidebar.Category{
			{Name: "Compute", Resources: []sidebar.ResourceEntry{
				{DisplayText: "aws_instance", TargetHref: "instance.html", IsActive: true},
				{DisplayText: "aws_launch_template", TargetHref: "launch_template.html"},
			}},
			{Name: "Storage", Resources: []sidebar.ResourceEntry{
				{DisplayText: "aws_s3_bucket", TargetHref: "s3_bucket.html"},
				{DisplayText: "aws_s3_bucket_policy", TargetHref: "s3_bucket_policy.html"},
			}},
		}},
	}
}

// longProviderSnapshot returns a provider page with n resources in one
// category; resource active is marked current.
func longProviderSnapshot(n, active int) *sidebar.Snapshot {
	snap := providerSnapshot()
	resources := make([]sidebar.ResourceEntry, n)
	for i := range resources {
		resources[i] = sidebar.ResourceEntry{
			DisplayText: fmt.Sprintf("aws_resource_%02d", i),
			TargetHref:  fmt.Sprintf("resource_%02d.html", i),
			IsActive:    i == active,
		}
	}
	snap.Model = sidebar.NavigationModel{Categories: []sidebar.Category{{Name: "Everything", Resources: resources}}}
	return snap
}

// topLevelSnapshot returns a non-provider page with a simplified outline.
func topLevelSnapshot() *sidebar.Snapshot {
	return &sidebar.Snapshot{
		Path: "/index.html",
		Page: &sidebar.Page{
			Path:            "/index.html",
			Title:           "Introduction",
			Body:            []string{"Welcome."},
			HasScrollRegion: true,
		},
		Outline: []sidebar.OutlineEntry{
			{Label: "Introduction", Href: "index.html", Active: true},
			{Label: "Providers"},
			{Label: "AWS Provider", Href: "providers/aws/index.html"},
			{Label: "Kubernetes", Href: "https://kubernetes.io/"},
		},
	}
}

// noRegionSnapshot returns a page without a navigation scroll region.
func noRegionSnapshot() *sidebar.Snapshot {
	return &sidebar.Snapshot{
		Path: "/print.html",
		Page: &sidebar.Page{Path: "/print.html", Title: "Print"},
	}
}

// fakeService serves snapshots from a map keyed by page path.
type fakeService struct {
	pages map[string]*sidebar.Snapshot
	calls []string
}

func (f *fakeService) Inspect(_ context.Context, page string) (*sidebar.Snapshot, error) {
	f.calls = append(f.calls, page)
	snap, ok := f.pages[page]
	if !ok {
		return nil, fmt.Errorf("page %s not found", page)
	}
	return snap, nil
}

func newFakeService(snaps ...*sidebar.Snapshot) *fakeService {
	f := &fakeService{pages: make(map[string]*sidebar.Snapshot)}
	for _, s := range snaps {
		f.pages[s.Path] = s
	}
	return f
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// execute runs cmd synchronously and returns its message.
func execute(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
