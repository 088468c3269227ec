package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/config"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/output"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

const providerPage = `<!DOCTYPE html><html><head><title>aws_instance</title></head><body>
<nav id="mdbook-sidebar"><mdbook-sidebar-scrollbox><ol class="chapter">
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="../../index.html">Introduction</a></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><span>2. AWS Provider</span></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><span>2.1. Compute</span></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="../../providers/aws/instance.html">2.1.1. aws_instance</a></span></li>
  <li class="chapter-item"><span class="chapter-link-wrapper"><a href="../../providers/aws/launch_template.html">2.1.2. aws_launch_template</a></span></li>
</ol></mdbook-sidebar-scrollbox><div id="mdbook-sidebar-resize-handle"></div></nav>
<main><h1>aws_instance</h1></main></body></html>`

const printPage = `<!DOCTYPE html><html><head><title>Print</title></head><body><main><p>All chapters.</p></main></body></html>`

// newBook writes a two-page book and returns its directory together with a
// config path that does not exist yet.
func newBook(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	book := filepath.Join(dir, "book")
	for rel, content := range map[string]string{
		"providers/aws/instance.html": providerPage,
		"print.html":                  printPage,
	} {
		file := filepath.Join(book, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
		require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	}
	return book, filepath.Join(dir, "sidebar.yaml")
}

// resetFlags restores every flag of the command tree to its default so
// values set by one test do not leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mdbook-sidebar dev\n", out)
}

func TestExportJSON(t *testing.T) {
	book, cfg := newBook(t)

	out, err := execute(t, "export", "--config", cfg, "--book", book, "--format", "json", "providers/aws/instance.html")
	require.NoError(t, err)

	var snap sidebar.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "/providers/aws/instance.html", snap.Path)
	assert.Equal(t, "aws", snap.Context.ProviderID)
	require.Len(t, snap.Model.Categories, 1)
	assert.Equal(t, "Compute", snap.Model.Categories[0].Name)
	assert.Equal(t, []sidebar.ResourceEntry{
		{DisplayText: "aws_instance", TargetHref: "../../providers/aws/instance.html", IsActive: true},
		{DisplayText: "aws_launch_template", TargetHref: "../../providers/aws/launch_template.html"},
	}, snap.Model.Categories[0].Resources)
}

func TestExportHTMLWithFilterToFile(t *testing.T) {
	book, cfg := newBook(t)
	target := filepath.Join(t.TempDir(), "panel.html")

	_, err := execute(t, "export", "--config", cfg, "--book", book,
		"--format", "html", "--filter", "launch", "--output", target, "providers/aws/instance.html")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	markup := string(data)
	assert.Contains(t, markup, `value="launch"`)
	assert.Contains(t, markup, sidebar.ClassFilterHidden)
	assert.Contains(t, markup, "aws_launch_template")
}

type closeFailWriter struct {
	bytes.Buffer
	closed bool
	err    error
}

func (w *closeFailWriter) Close() error {
	w.closed = true
	return w.err
}

func TestWriteExport(t *testing.T) {
	ctx := context.Background()
	snap := &sidebar.Snapshot{Path: "/providers/aws/instance.html"}

	w := &closeFailWriter{}
	require.NoError(t, writeExport(ctx, output.NewManager(), "json", snap, w))
	assert.True(t, w.closed)
	assert.Contains(t, w.String(), `"/providers/aws/instance.html"`)

	w = &closeFailWriter{err: errors.New("disk full")}
	err := writeExport(ctx, output.NewManager(), "json", snap, w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	w = &closeFailWriter{err: errors.New("disk full")}
	err = writeExport(ctx, output.NewManager(), "dot", snap, w)
	require.Error(t, err)
	assert.True(t, w.closed, "the file is closed when formatting fails")
	assert.NotContains(t, err.Error(), "disk full")
}

func TestExportErrors(t *testing.T) {
	book, cfg := newBook(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"--format", "dot", "providers/aws/instance.html"}},
		{"missing page", []string{"--format", "json", "missing.html"}},
		{"no navigation region", []string{"--format", "html", "print.html"}},
		{"missing book", []string{"--book", filepath.Join(book, "nope"), "providers/aws/instance.html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"export", "--config", cfg, "--book", book}, tt.args...)
			_, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestCheckSinglePagePasses(t *testing.T) {
	book, cfg := newBook(t)

	out, err := execute(t, "check", "--config", cfg, "--book", book, "--no-color", "/providers/aws/instance.html")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found in 1 page(s)")
}

func TestCheckWholeBookFails(t *testing.T) {
	book, cfg := newBook(t)

	out, err := execute(t, "check", "--config", cfg, "--book", book, "--format", "github")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 error(s), 1 warning(s)")
	assert.Contains(t, out, "::error file="+filepath.ToSlash(book)+"/print.html")
}

func TestCheckDisabledRulesPass(t *testing.T) {
	book, cfg := newBook(t)

	out, err := execute(t, "check", "--config", cfg, "--book", book, "--no-color",
		"--disable", "NAV006", "--disable", "NAV007")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found in 2 page(s)")
}

func TestCheckStrictFailsOnWarning(t *testing.T) {
	book, cfg := newBook(t)

	_, err := execute(t, "check", "--config", cfg, "--book", book, "--no-color", "--strict", "--enable", "NAV007")
	assert.Error(t, err)

	_, err = execute(t, "check", "--config", cfg, "--book", book, "--no-color", "--enable", "NAV007")
	assert.NoError(t, err)
}

func TestCheckListRules(t *testing.T) {
	_, cfg := newBook(t)

	out, err := execute(t, "check", "--config", cfg, "--list-rules", "--disable", "NAV004")
	require.NoError(t, err)
	assert.Contains(t, out, "NAV001  row-before-header")
	assert.Contains(t, out, "NAV004")
	assert.Contains(t, out, "(disabled)")
}

func TestConfigInit(t *testing.T) {
	_, cfgPath := newBook(t)

	out, err := execute(t, "config", "init", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+cfgPath)

	_, err = execute(t, "config", "init", "--config", cfgPath)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--config", cfgPath, "--force")
	require.NoError(t, err)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, sidebar.DefaultRegistry(), cfg.Providers)
	assert.Equal(t, "default", cfg.Theme)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.NewConfig()
	logger, closeLog, err := newLogger(cfg, &buf)
	require.NoError(t, err)
	logger.Info("hidden")
	closeLog()
	assert.Empty(t, buf.String())

	cfg.Debug = true
	logger, closeLog, err = newLogger(cfg, &buf)
	require.NoError(t, err)
	logger.Debug("shown")
	closeLog()
	assert.Contains(t, buf.String(), "msg=shown")

	cfg.LogFile = filepath.Join(t.TempDir(), "sidebar.log")
	logger, closeLog, err = newLogger(cfg, nil)
	require.NoError(t, err)
	logger.Info("to file", "page", "/index.html")
	closeLog()
	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page=/index.html")
}
