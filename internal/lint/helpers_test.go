package lint

import "github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"

var awsContext = sidebar.PageContext{
	IsProvider:  true,
	ProviderID:  "aws",
	PathPrefix:  "/providers/aws/",
	DisplayName: "AWS",
}

func row(label, href string, active bool) sidebar.NavItem {
	return sidebar.NavItem{Kind: sidebar.ItemRow, Label: label, Href: href, Active: active}
}

func header(label string) sidebar.NavItem {
	return sidebar.NavItem{Kind: sidebar.ItemHeader, Label: label}
}

// messySnapshot is a provider page whose navigation trips every
// extraction rule once.
func messySnapshot() *sidebar.Snapshot {
	items := []sidebar.NavItem{
		row("Introduction", "../../index.html", false),
		row("aws_orphan", "../../providers/aws/orphan.html", false),
		header("AWS Provider"),
		header("1. Compute"),
		row("1.1. aws_instance", "../../providers/aws/instance.html", true),
		row("Guide", "../../guides/intro.html", false),
		header("Storage"),
		row("google_storage_bucket", "../../providers/google/bucket.html", false),
		header("Google Provider"),
	}
	return &sidebar.Snapshot{
		Path:    "/providers/aws/instance.html",
		Page:    &sidebar.Page{HasScrollRegion: true, HasResizeHandle: true},
		Context: awsContext,
		Items:   items,
		Model:   sidebar.Extract(items, awsContext),
	}
}

// cleanSnapshot is a provider page with nothing to report.
func cleanSnapshot() *sidebar.Snapshot {
	items := []sidebar.NavItem{
		header("AWS Provider"),
		header("Compute"),
		row("aws_instance", "../../providers/aws/instance.html", true),
		row("aws_launch_template", "../../providers/aws/launch_template.html", false),
	}
	return &sidebar.Snapshot{
		Path:    "/providers/aws/instance.html",
		Page:    &sidebar.Page{HasScrollRegion: true, HasResizeHandle: true},
		Context: awsContext,
		Items:   items,
		Model:   sidebar.Extract(items, awsContext),
	}
}

func topLevelSnapshot() *sidebar.Snapshot {
	return &sidebar.Snapshot{
		Path: "/index.html",
		Page: &sidebar.Page{HasScrollRegion: true, HasResizeHandle: true},
		Items: []sidebar.NavItem{
			row("Introduction", "index.html", true),
			header("Providers"),
			row("aws_instance", "providers/aws/instance.html", false),
		},
	}
}

func bareSnapshot() *sidebar.Snapshot {
	return &sidebar.Snapshot{
		Path: "/print.html",
		Page: &sidebar.Page{},
	}
}
