package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocketeda/models"
)

func TestRegistry_OrderAndCount(t *testing.T) {
	sections := Registry()
	require.Len(t, sections, 11)

	wantSlugs := []string{
		"event-type-distribution",
		"visitor-activity",
		"session-construction",
		"conversion-funnel",
		"user-segmentation",
		"basket-size",
		"category-product-trends",
		"event-lag-analysis",
		"sunburst",
		"executive-summary",
		"references",
	}
	for i, slug := range wantSlugs {
		assert.Equal(t, slug, sections[i].Slug, "registry order at %d", i)
	}

	assert.Equal(t, "1. Event Type Distribution", sections[0].Label)
	assert.Equal(t, "11. References", sections[10].Label)
}

func TestRegistry_AllSectionsValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, section := range Registry() {
		require.NoError(t, section.Validate(), "section %s", section.Slug)
		assert.False(t, seen[section.Slug], "duplicate slug %s", section.Slug)
		seen[section.Slug] = true
	}
}

func TestRegistry_VisitorActivityColumns(t *testing.T) {
	section := findSection(t, "visitor-activity")

	var columns []models.ArtifactRef
	for _, block := range section.Blocks {
		if block.Kind == models.BlockImageColumns {
			columns = block.Columns
			break
		}
	}
	require.Len(t, columns, 2, "visitor activity lays out two images side by side")
	assert.Equal(t, "visitor_event_distribution_full.png", columns[0].Filename)
	assert.Equal(t, "visitor_event_distribution_zoomed.png", columns[1].Filename)
}

func TestRegistry_ExecutiveSummaryDownload(t *testing.T) {
	section := findSection(t, "executive-summary")

	last := section.Blocks[len(section.Blocks)-1]
	require.Equal(t, models.BlockPDFDownload, last.Kind, "download affordance comes last")
	assert.Equal(t, "executive_summary.pdf", last.Download.Filename)
}

func TestRegistry_SunburstEmbed(t *testing.T) {
	section := findSection(t, "sunburst")

	var embeds int
	for _, block := range section.Blocks {
		if block.Kind == models.BlockHTMLEmbed {
			embeds++
			assert.Equal(t, "sunburst_category_transactions.html", block.Embed.Filename)
		}
	}
	assert.Equal(t, 1, embeds)
}

func TestRegistry_ReferencesIsStatic(t *testing.T) {
	section := findSection(t, "references")
	for _, block := range section.Blocks {
		assert.Contains(t,
			[]models.BlockKind{models.BlockHeader, models.BlockMarkdown},
			block.Kind,
			"references section is purely static text")
	}
}

func TestRegistryArtifacts_Deduplicated(t *testing.T) {
	sections := Registry()
	names := RegistryArtifacts(sections)

	seen := make(map[string]bool)
	for _, name := range names {
		assert.False(t, seen[name], "duplicate artifact %s", name)
		seen[name] = true
	}

	assert.Contains(t, names, "event_type_distribution.png")
	assert.Contains(t, names, "sunburst_category_transactions.html")
	assert.Contains(t, names, "executive_summary.pdf")
}

func findSection(t *testing.T, slug string) models.Section {
	t.Helper()
	for _, section := range Registry() {
		if section.Slug == slug {
			return section
		}
	}
	t.Fatalf("section %s not in registry", slug)
	return models.Section{}
}
