package output

import "github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"

func providerSnapshot() *sidebar.Snapshot {
	return &sidebar.Snapshot{
		Path: "/providers/aws/instance.html",
		Page: &sidebar.Page{Title: "aws_instance", HasScrollRegion: true},
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
			}},
		}},
	}
}

func topLevelSnapshot() *sidebar.Snapshot {
	return &sidebar.Snapshot{
		Path: "/index.html",
		Page: &sidebar.Page{Title: "Introduction", HasScrollRegion: true},
		Outline: []sidebar.OutlineEntry{
			{Label: "Introduction", Href: "index.html", Active: true},
			{Label: "Providers"},
			{Label: "AWS Provider", Href: "providers/aws/index.html"},
		},
	}
}

func noRegionSnapshot() *sidebar.Snapshot {
	return &sidebar.Snapshot{
		Path: "/print.html",
		Page: &sidebar.Page{Title: "Print"},
	}
}
