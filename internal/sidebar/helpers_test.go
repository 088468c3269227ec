package sidebar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// providerNav is the navigation tree of a provider page as the generator
// leaves it: flat chapter items, the provider's own section marker first.
const providerNav = `
<mdbook-sidebar-scrollbox>
<ol class="chapter">
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="../../index.html"><strong aria-hidden="true">1.</strong> Introduction</a></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><span>2. AWS Provider</span></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><span>2.1. EC2</span></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="../../providers/aws/instance.html" class="active">2.1.1. Instance</a></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="../../providers/aws/security_group.html">2.1.2. Security Group</a></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><span>2.2. S3</span></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="../../providers/aws/bucket.html">2.2.1. Bucket</a></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="../../providers/aws/bucket_policy.html">2.2.2. Bucket Policy</a></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><span>2.3. IAM</span></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="../../providers/aws/role.html">2.3.1. Role</a></span></li>
</ol>
</mdbook-sidebar-scrollbox>`

// topLevelNav is a top-level page tree with nesting, numbering and the
// "on this page" block.
const topLevelNav = `
<mdbook-sidebar-scrollbox>
<ol class="chapter">
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="index.html" class="active"><strong aria-hidden="true">1.</strong> Introduction</a></span>
    <div class="on-this-page"><a href="#usage">Usage</a></div>
  </li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="providers/aws/index.html"><strong aria-hidden="true">2.</strong> AWS Provider</a></span>
    <ol class="section">
      <li class="chapter-item"><span class="chapter-link-wrapper"><a href="providers/aws/instance.html"><strong aria-hidden="true">2.1.</strong> Instance</a></span></li>
    </ol>
  </li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><span>Reference</span></span></li>
</ol>
</mdbook-sidebar-scrollbox>`

func parseFragment(t *testing.T, markup string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>" + markup + "</body></html>"))
	require.NoError(t, err)
	return doc.Find(SelScrollRegion).First()
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	file := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
}

func pageHTML(title, nav, body string) string {
	return `<!DOCTYPE html><html><head><title>` + title + `</title></head><body>
<nav id="mdbook-sidebar">` + nav + `<div id="mdbook-sidebar-resize-handle"></div></nav>
<main>` + body + `</main></body></html>`
}
