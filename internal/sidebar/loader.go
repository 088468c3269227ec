package sidebar

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoScrollRegion is returned when a page has no navigation scroll region.
// Callers treat it as "nothing to adapt", never as a failure to report.
var ErrNoScrollRegion = errors.New("page has no navigation scroll region")

// TOCFile is the generator's standalone copy of the navigation tree.
const TOCFile = "toc.html"

// Loader reads pages of a built book.
type Loader interface {
	// Load reads pagePath from the book and returns it with its navigation
	// tree populated and the current entry marked active. The returned page
	// is non-nil together with ErrNoScrollRegion.
	Load(ctx context.Context, pagePath string) (*Page, error)
}

// loader implements the Loader interface.
type loader struct {
	bookDir string
	logger  *slog.Logger
}

// NewLoader creates a Loader for the book output directory bookDir.
func NewLoader(bookDir string, logger *slog.Logger) Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &loader{bookDir: bookDir, logger: logger}
}

// Load implements Loader. The generator's own script fills the scroll
// region from the table of contents and marks the current link; Load does
// the same work before returning, so the page it hands out is the tree that
// script would leave behind.
func (l *loader) Load(ctx context.Context, pagePath string) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel := CleanPagePath(pagePath)
	doc, err := l.readDocument(rel)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Path:            rel,
		Doc:             doc,
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		Body:            bodyText(doc),
		HasResizeHandle: doc.Find(SelResizeHandle).Length() > 0 && doc.Find(SelSidebar).Length() > 0,
	}

	region := doc.Find(SelScrollRegion).First()
	if region.Length() == 0 {
		l.logger.Debug("Page has no scroll region", "path", rel)
		return page, ErrNoScrollRegion
	}
	page.HasScrollRegion = true

	if region.Find(SelChapterItem).Length() == 0 {
		if err := l.fillFromTOC(region, rel); err != nil {
			return nil, err
		}
	}
	marked := markActive(region, rel)

	l.logger.Debug("Loaded page",
		"path", rel,
		"items", region.Find(SelChapterItem).Length(),
		"active_links", marked,
		"resize", page.HasResizeHandle)
	return page, nil
}

func (l *loader) readDocument(rel string) (*goquery.Document, error) {
	file := filepath.Join(l.bookDir, filepath.FromSlash(strings.TrimPrefix(rel, "/")))
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open page %s: %w", rel, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", rel, err)
	}
	return doc, nil
}

// fillFromTOC copies the chapter list of toc.html into region with links
// rebased onto the page's directory. A book without toc.html leaves the
// region empty.
func (l *loader) fillFromTOC(region *goquery.Selection, rel string) error {
	file := filepath.Join(l.bookDir, TOCFile)
	f, err := os.Open(file)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", TOCFile, err)
	}
	defer f.Close()

	toc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", TOCFile, err)
	}

	root := PathToRoot(rel)
	list := toc.Find(SelChapterList).First()
	if list.Length() == 0 {
		return nil
	}
	list.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if isLocalHref(href) && !strings.HasPrefix(href, "/") {
			a.SetAttr("href", root+href)
		}
	})

	markup, err := goquery.OuterHtml(list)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", TOCFile, err)
	}
	region.SetHtml(markup)
	return nil
}

// markActive adds the active class to every link that resolves to rel and
// returns how many links it marked. Links already marked keep their class.
func markActive(region *goquery.Selection, rel string) int {
	marked := 0
	region.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		target, ok := ResolveHref(rel, href)
		if ok && target == rel {
			a.AddClass(ClassActive)
			marked++
		}
	})
	return marked
}

// ListPages walks bookDir and returns the rooted path of every HTML page in
// lexical order. toc.html and the generator's asset directories are skipped.
func ListPages(bookDir string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(bookDir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if file != bookDir && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		rel, err := filepath.Rel(bookDir, file)
		if err != nil {
			return err
		}
		if rel == TOCFile {
			return nil
		}
		pages = append(pages, CleanPagePath(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pages in %s: %w", bookDir, err)
	}
	return pages, nil
}

var skippedDirs = map[string]bool{"css": true, "fonts": true, "FontAwesome": true, "theme": true}

// CleanPagePath normalizes a page path to a rooted, slash-separated form
// naming an HTML file.
func CleanPagePath(p string) string {
	p = filepath.ToSlash(strings.TrimSpace(p))
	dir := p == "" || strings.HasSuffix(p, "/")
	p = path.Clean("/" + p)
	if dir {
		p = path.Join(p, "index.html")
	}
	return p
}

// PathToRoot returns the relative prefix leading from rel's directory back to
// the book root, e.g. "../../" for "/providers/aws/x.html".
func PathToRoot(rel string) string {
	depth := strings.Count(strings.TrimPrefix(path.Dir(rel), "/"), "/")
	if path.Dir(rel) == "/" {
		return ""
	}
	return strings.Repeat("../", depth+1)
}

// ResolveHref resolves href against the page at current. It reports false
// for external links, fragments of the current page and empty hrefs.
func ResolveHref(current, href string) (string, bool) {
	if !isLocalHref(href) {
		return "", false
	}
	if i := strings.IndexAny(href, "#?"); i >= 0 {
		href = href[:i]
	}
	if href == "" {
		return "", false
	}
	if strings.HasPrefix(href, "/") {
		return CleanPagePath(href), true
	}
	return CleanPagePath(path.Join(path.Dir(current), href) + trailingSlash(href)), true
}

func trailingSlash(href string) string {
	if strings.HasSuffix(href, "/") {
		return "/"
	}
	return ""
}

func isLocalHref(href string) bool {
	if href == "" || strings.HasPrefix(href, "#") {
		return false
	}
	if strings.Contains(href, "://") || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
		return false
	}
	return true
}

// bodyText returns the readable blocks of the page's main content.
func bodyText(doc *goquery.Document) []string {
	var blocks []string
	doc.Find("main").First().Find("h1, h2, h3, h4, p, pre, li").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "pre":
			blocks = append(blocks, strings.TrimRight(s.Text(), "\n"))
		case "h1", "h2", "h3", "h4":
			blocks = append(blocks, "# "+VisibleText(s))
		case "li":
			if s.Find("p").Length() > 0 {
				return
			}
			blocks = append(blocks, "• "+VisibleText(s))
		default:
			if s.ParentsFiltered("li").Length() > 0 {
				blocks = append(blocks, "• "+VisibleText(s))
				return
			}
			blocks = append(blocks, VisibleText(s))
		}
	})
	return blocks
}
