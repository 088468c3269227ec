package sidebar

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewService(t *testing.T) {
	svc := NewService(testLogger(), NewLoader(t.TempDir(), nil), NewExtractor(nil), DefaultRegistry())
	assert.NotNil(t, svc)
}

func TestInspectProviderPage(t *testing.T) {
	svc := NewDefaultService(testLogger(), newBook(t), DefaultRegistry())

	snap, err := svc.Inspect(context.Background(), "providers/aws/instance.html")
	require.NoError(t, err)

	assert.True(t, snap.Context.IsProvider)
	assert.Equal(t, "aws", snap.Context.ProviderID)
	assert.Empty(t, snap.Outline)
	assert.Len(t, snap.Items, 8)

	require.Len(t, snap.Model.Categories, 2)
	ec2 := snap.Model.Categories[0]
	assert.Equal(t, "EC2", ec2.Name)
	assert.Equal(t, []ResourceEntry{
		{DisplayText: "Instance", TargetHref: "../../providers/aws/instance.html", IsActive: true},
		{DisplayText: "Ami", TargetHref: "../../providers/aws/ami.html"},
	}, ec2.Resources)
	assert.Equal(t, "S3", snap.Model.Categories[1].Name)
}

func TestInspectTopLevelPage(t *testing.T) {
	svc := NewDefaultService(testLogger(), newBook(t), DefaultRegistry())

	snap, err := svc.Inspect(context.Background(), "index.html")
	require.NoError(t, err)

	assert.False(t, snap.Context.IsProvider)
	assert.Empty(t, snap.Model.Categories)
	require.NotEmpty(t, snap.Outline)
	assert.Equal(t, OutlineEntry{Label: "Introduction", Href: "index.html", Active: true}, snap.Outline[0])

	_, hidden := snap.Page.ScrollRegion().Find(SelNumbering).First().Attr(AttrHidden)
	assert.True(t, hidden)
}

func TestInspectWithoutScrollRegion(t *testing.T) {
	svc := NewDefaultService(testLogger(), newBook(t), DefaultRegistry())

	snap, err := svc.Inspect(context.Background(), "plain.html")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.False(t, snap.Page.HasScrollRegion)
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.Model.Categories)
}

func TestInspectMissingPage(t *testing.T) {
	svc := NewDefaultService(testLogger(), newBook(t), DefaultRegistry())

	_, err := svc.Inspect(context.Background(), "nope.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load page")
}

func TestInspectCustomRegistry(t *testing.T) {
	registry := Registry{{ID: "awscc", PathPrefix: "/providers/awscc/", DisplayName: "AWSCC"}}
	svc := NewDefaultService(testLogger(), newBook(t), registry)

	snap, err := svc.Inspect(context.Background(), "providers/aws/instance.html")
	require.NoError(t, err)

	assert.False(t, snap.Context.IsProvider)
	assert.Empty(t, snap.Model.Categories)
	assert.NotEmpty(t, snap.Outline)
}
