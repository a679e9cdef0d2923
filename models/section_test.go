package models

import (
	"testing"
)

func TestBlock_Validate(t *testing.T) {
	tests := []struct {
		name        string
		block       Block
		expectError bool
	}{
		{
			name:        "Valid header",
			block:       Block{Kind: BlockHeader, Text: "1. Overview"},
			expectError: false,
		},
		{
			name:        "Header without text",
			block:       Block{Kind: BlockHeader},
			expectError: true,
		},
		{
			name:        "Valid markdown",
			block:       Block{Kind: BlockMarkdown, Text: "Some narrative."},
			expectError: false,
		},
		{
			name: "Valid image",
			block: Block{Kind: BlockImage, Image: &ArtifactRef{
				Filename: "chart.png",
				Caption:  "A chart.",
			}},
			expectError: false,
		},
		{
			name:        "Image without reference",
			block:       Block{Kind: BlockImage},
			expectError: true,
		},
		{
			name: "Valid image columns",
			block: Block{Kind: BlockImageColumns, Columns: []ArtifactRef{
				{Filename: "left.png"},
				{Filename: "right.png"},
			}},
			expectError: false,
		},
		{
			name: "Image columns with one entry",
			block: Block{Kind: BlockImageColumns, Columns: []ArtifactRef{
				{Filename: "only.png"},
			}},
			expectError: true,
		},
		{
			name: "Valid table",
			block: Block{Kind: BlockTable, Table: &Table{
				Headers: []string{"Metric", "Value"},
				Rows:    [][]string{{"Median", "1"}},
			}},
			expectError: false,
		},
		{
			name: "Table with ragged row",
			block: Block{Kind: BlockTable, Table: &Table{
				Headers: []string{"Metric", "Value"},
				Rows:    [][]string{{"Median"}},
			}},
			expectError: true,
		},
		{
			name:        "Valid embed",
			block:       Block{Kind: BlockHTMLEmbed, Embed: &ArtifactRef{Filename: "viz.html"}},
			expectError: false,
		},
		{
			name:        "Embed without reference",
			block:       Block{Kind: BlockHTMLEmbed},
			expectError: true,
		},
		{
			name:        "Valid download",
			block:       Block{Kind: BlockPDFDownload, Download: &ArtifactRef{Filename: "summary.pdf"}},
			expectError: false,
		},
		{
			name:        "Unknown kind",
			block:       Block{Kind: "mystery", Text: "x"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.block.Validate()
			if tt.expectError && err == nil {
				t.Errorf("Expected error for %s, got nil", tt.name)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for %s: %v", tt.name, err)
			}
		})
	}
}

func TestSection_Validate(t *testing.T) {
	valid := Section{
		Slug:  "overview",
		Label: "1. Overview",
		Blocks: []Block{
			{Kind: BlockHeader, Text: "1. Overview"},
			{Kind: BlockMarkdown, Text: "Narrative."},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	noSlug := valid
	noSlug.Slug = ""
	if err := noSlug.Validate(); err == nil {
		t.Error("expected error for missing slug")
	}

	noBlocks := valid
	noBlocks.Blocks = nil
	if err := noBlocks.Validate(); err == nil {
		t.Error("expected error for empty section")
	}

	badBlock := valid
	badBlock.Blocks = []Block{{Kind: BlockImage}}
	if err := badBlock.Validate(); err == nil {
		t.Error("expected error for invalid block")
	}
}

func TestSection_ArtifactFilenames(t *testing.T) {
	section := Section{
		Slug:  "s",
		Label: "S",
		Blocks: []Block{
			{Kind: BlockImage, Image: &ArtifactRef{Filename: "one.png"}},
			{Kind: BlockImageColumns, Columns: []ArtifactRef{
				{Filename: "two.png"},
				{Filename: "three.png"},
			}},
			{Kind: BlockMarkdown, Text: "text"},
			{Kind: BlockHTMLEmbed, Embed: &ArtifactRef{Filename: "four.html"}},
			{Kind: BlockPDFDownload, Download: &ArtifactRef{Filename: "five.pdf"}},
		},
	}

	want := []string{"one.png", "two.png", "three.png", "four.html", "five.pdf"}
	got := section.ArtifactFilenames()
	if len(got) != len(want) {
		t.Fatalf("expected %d filenames, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("filename %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSection_Tables(t *testing.T) {
	first := &Table{Headers: []string{"A"}, Rows: [][]string{{"1"}}}
	second := &Table{Headers: []string{"B"}, Rows: [][]string{{"2"}}}
	section := Section{
		Slug:  "s",
		Label: "S",
		Blocks: []Block{
			{Kind: BlockTable, Table: first},
			{Kind: BlockMarkdown, Text: "between"},
			{Kind: BlockTable, Table: second},
		},
	}

	tables := section.Tables()
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if tables[0] != first || tables[1] != second {
		t.Error("tables returned out of block order")
	}
}
