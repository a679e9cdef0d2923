package models

import (
	"fmt"
)

// BlockKind identifies one kind of layout directive.
type BlockKind string

const (
	BlockHeader       BlockKind = "header"
	BlockMarkdown     BlockKind = "markdown"
	BlockImage        BlockKind = "image"
	BlockImageColumns BlockKind = "image_columns"
	BlockTable        BlockKind = "table"
	BlockHTMLEmbed    BlockKind = "html_embed"
	BlockPDFDownload  BlockKind = "pdf_download"
)

// ArtifactRef points at a pre-generated file in the results directory.
// The caption is display copy supplied here, not derived from the file.
type ArtifactRef struct {
	Filename string
	Caption  string
}

// Table is literal tabular content embedded in a section.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Block is a single layout directive. Exactly the fields implied by
// Kind are set; everything else stays zero.
type Block struct {
	Kind BlockKind

	// Header / Markdown
	Text string

	// Image
	Image *ArtifactRef

	// ImageColumns: rendered side by side in equal-width columns.
	Columns []ArtifactRef

	// Table
	Table *Table

	// HTMLEmbed / PDFDownload
	Embed    *ArtifactRef
	Download *ArtifactRef
}

// Section is one entry in the navigation registry: a label paired
// with the ordered layout directives that render it.
type Section struct {
	Slug   string
	Label  string
	Blocks []Block
}

// Validate checks kind/payload coherence of a block.
func (b Block) Validate() error {
	switch b.Kind {
	case BlockHeader, BlockMarkdown:
		if b.Text == "" {
			return fmt.Errorf("%s block requires text", b.Kind)
		}
	case BlockImage:
		if b.Image == nil || b.Image.Filename == "" {
			return fmt.Errorf("image block requires an artifact reference")
		}
	case BlockImageColumns:
		if len(b.Columns) < 2 {
			return fmt.Errorf("image_columns block requires at least two references")
		}
		for _, ref := range b.Columns {
			if ref.Filename == "" {
				return fmt.Errorf("image_columns block has an empty reference")
			}
		}
	case BlockTable:
		if b.Table == nil || len(b.Table.Headers) == 0 {
			return fmt.Errorf("table block requires headers")
		}
		for i, row := range b.Table.Rows {
			if len(row) != len(b.Table.Headers) {
				return fmt.Errorf("table row %d has %d cells, want %d", i, len(row), len(b.Table.Headers))
			}
		}
	case BlockHTMLEmbed:
		if b.Embed == nil || b.Embed.Filename == "" {
			return fmt.Errorf("html_embed block requires an artifact reference")
		}
	case BlockPDFDownload:
		if b.Download == nil || b.Download.Filename == "" {
			return fmt.Errorf("pdf_download block requires an artifact reference")
		}
	default:
		return fmt.Errorf("unknown block kind %q", b.Kind)
	}
	return nil
}

// Validate checks the section and all of its blocks.
func (s Section) Validate() error {
	if s.Slug == "" {
		return fmt.Errorf("section slug is required")
	}
	if s.Label == "" {
		return fmt.Errorf("section %s has no label", s.Slug)
	}
	if len(s.Blocks) == 0 {
		return fmt.Errorf("section %s has no blocks", s.Slug)
	}
	for i, block := range s.Blocks {
		if err := block.Validate(); err != nil {
			return fmt.Errorf("section %s block %d: %w", s.Slug, i, err)
		}
	}
	return nil
}

// Tables returns the literal tables of the section in block order.
func (s Section) Tables() []*Table {
	var tables []*Table
	for _, block := range s.Blocks {
		if block.Kind == BlockTable {
			tables = append(tables, block.Table)
		}
	}
	return tables
}

// ArtifactFilenames returns every artifact filename the section
// references, in block order.
func (s Section) ArtifactFilenames() []string {
	var names []string
	for _, block := range s.Blocks {
		switch block.Kind {
		case BlockImage:
			names = append(names, block.Image.Filename)
		case BlockImageColumns:
			for _, ref := range block.Columns {
				names = append(names, ref.Filename)
			}
		case BlockHTMLEmbed:
			names = append(names, block.Embed.Filename)
		case BlockPDFDownload:
			names = append(names, block.Download.Filename)
		}
	}
	return names
}
