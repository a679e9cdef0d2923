package ui

import (
	"rocketeda/models"
)

// Artifact filenames produced by the offline pipeline. The dashboard
// references them by exact name and never writes them.
const (
	executiveSummaryPDF = "executive_summary.pdf"
	sunburstHTML        = "sunburst_category_transactions.html"
)

// Registry returns the fixed, ordered section catalogue. Built once
// at startup and never mutated.
func Registry() []models.Section {
	return []models.Section{
		{
			Slug:  "event-type-distribution",
			Label: "1. Event Type Distribution",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "1. Event Type Distribution"},
				{Kind: models.BlockImage, Image: &models.ArtifactRef{
					Filename: "event_type_distribution.png",
					Caption:  "Distribution of views, cart additions, and transactions.",
				}},
				{Kind: models.BlockMarkdown, Text: eventTypeNarrative},
			},
		},
		{
			Slug:  "visitor-activity",
			Label: "2. Visitor Activity",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "2. Visitor Activity Patterns"},
				{Kind: models.BlockImageColumns, Columns: []models.ArtifactRef{
					{
						Filename: "visitor_event_distribution_full.png",
						Caption:  "Full distribution of event counts per visitor.",
					},
					{
						Filename: "visitor_event_distribution_zoomed.png",
						Caption:  "Zoomed distribution (0–100 events).",
					},
				}},
				{Kind: models.BlockMarkdown, Text: visitorActivityNarrative},
				{Kind: models.BlockImage, Image: &models.ArtifactRef{
					Filename: "sessions_per_visitor_distribution.png",
					Caption:  "Distribution of sessions per visitor.",
				}},
				{Kind: models.BlockMarkdown, Text: sessionsPerVisitorIntro},
				{Kind: models.BlockTable, Table: &models.Table{
					Title:   "Top session-active visitors",
					Headers: []string{"Visitor ID", "Session Count"},
					Rows: [][]string{
						{"316850", "462"},
						{"825321", "417"},
						{"895999", "414"},
					},
				}},
				{Kind: models.BlockMarkdown, Text: sessionsPerVisitorNarrative},
				{Kind: models.BlockImage, Image: &models.ArtifactRef{
					Filename: "events_per_session_distribution_zoomed.png",
					Caption:  "Events per session (0–50 range).",
				}},
				{Kind: models.BlockMarkdown, Text: sessionLengthNarrative},
			},
		},
		{
			Slug:  "session-construction",
			Label: "3. Session Construction",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "3. Session Construction & Timeout Thresholds"},
				{Kind: models.BlockImage, Image: &models.ArtifactRef{
					Filename: "time_gap_distribution_log.png",
					Caption:  "Log distribution of time gaps between events.",
				}},
				{Kind: models.BlockMarkdown, Text: sessionConstructionNarrative},
				{Kind: models.BlockMarkdown, Text: timeGapStatsIntro},
				{Kind: models.BlockTable, Table: &models.Table{
					Title:   "Summary statistics of time gaps",
					Headers: []string{"Metric", "Value (Seconds)", "Interpretation"},
					Rows: [][]string{
						{"25th %ile", "38", "25% of interactions happen within 38 seconds of each other — high browsing density"},
						{"Median", "136", "Half of all event pairs occur within just 2.3 minutes"},
						{"75th %ile", "2,449", "75% of users return within 40 minutes — within browsing intent window"},
						{"90th %ile", "263,524", "A long tail begins—10% of transitions span over 73 hours"},
						{"95th %ile", "1,190,249", "5% of transitions exceed 13.8 days"},
						{"99th %ile", "5,160,078", "Extreme lags observed—often due to multiple visits across sessions"},
						{"Maximum", "11,787,451", "Indicates multi-week session gaps (approx. 136 days)"},
					},
				}},
				{Kind: models.BlockMarkdown, Text: timeGapStatsNarrative},
			},
		},
		{
			Slug:  "conversion-funnel",
			Label: "4. Conversion Funnel",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "4. Conversion Funnel Breakdown"},
				{Kind: models.BlockImage, Image: &models.ArtifactRef{
					Filename: "conversion_funnel.png",
					Caption:  "From views to transactions: Ecommerce drop-off funnel.",
				}},
				{Kind: models.BlockMarkdown, Text: conversionFunnelNarrative},
			},
		},
		{
			Slug:  "user-segmentation",
			Label: "5. User Segmentation",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "5. One-Time vs Power Users"},
				{Kind: models.BlockImage, Image: &models.ArtifactRef{
					Filename: "visitor_interaction_distribution.png",
					Caption:  "Log-scaled distribution of events per visitor.",
				}},
				{Kind: models.BlockTable, Table: &models.Table{
					Title:   "Visitor engagement summary",
					Headers: []string{"Metric", "Value"},
					Rows: [][]string{
						{"Total Visitors", "1,407,580"},
						{"One-Time Users", "1,001,560"},
						{"Power Users (100+ events)", "408"},
					},
				}},
				{Kind: models.BlockMarkdown, Text: userSegmentationNarrative},
			},
		},
		{
			Slug:  "basket-size",
			Label: "6. Basket Size",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "6. Basket Size Analysis"},
				{Kind: models.BlockImage, Image: &models.ArtifactRef{
					Filename: "basket_size_distribution.png",
					Caption:  "Distribution of number of items per purchase.",
				}},
				{Kind: models.BlockMarkdown, Text: basketSizeNarrative},
			},
		},
		{
			Slug:  "category-product-trends",
			Label: "7. Category & Product Trends",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "7. Most Purchased Categories & Items"},
				{Kind: models.BlockImage, Image: &models.ArtifactRef{
					Filename: "top_categories_by_transactions.png",
					Caption:  "Top 10 categories ranked by number of transactions.",
				}},
				{Kind: models.BlockMarkdown, Text: categoryTrendsNarrative},
			},
		},
		{
			Slug:  "event-lag-analysis",
			Label: "8. Event Lag Analysis",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "8. Event Lag Timings"},
				{Kind: models.BlockImage, Image: &models.ArtifactRef{
					Filename: "event_lag_analysis_seconds.png",
					Caption:  "Delay between view → cart and cart → transaction (in seconds).",
				}},
				{Kind: models.BlockMarkdown, Text: eventLagNarrative},
			},
		},
		{
			Slug:  "sunburst",
			Label: "9. Sunburst Chart",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "9. Sunburst of Raw Category IDs"},
				{Kind: models.BlockHTMLEmbed, Embed: &models.ArtifactRef{
					Filename: sunburstHTML,
				}},
				{Kind: models.BlockMarkdown, Text: sunburstNarrative},
			},
		},
		{
			Slug:  "executive-summary",
			Label: "10. Executive Summary",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "10. Executive Summary"},
				{Kind: models.BlockMarkdown, Text: executiveSummaryNarrative},
				{Kind: models.BlockPDFDownload, Download: &models.ArtifactRef{
					Filename: executiveSummaryPDF,
					Caption:  "Download Executive Summary (PDF)",
				}},
			},
		},
		{
			Slug:  "references",
			Label: "11. References",
			Blocks: []models.Block{
				{Kind: models.BlockHeader, Text: "11. References"},
				{Kind: models.BlockMarkdown, Text: referencesNarrative},
			},
		},
	}
}

// RegistryArtifacts returns every artifact filename referenced by any
// section, deduplicated in first-reference order.
func RegistryArtifacts(sections []models.Section) []string {
	seen := make(map[string]bool)
	var names []string
	for _, section := range sections {
		for _, name := range section.ArtifactFilenames() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
