package ui

import (
	"fmt"
	"html/template"
	"log"

	"rocketeda/internal/errors"
	"rocketeda/models"
)

// Notice is a human-readable inline message rendered in place of an
// artifact that could not be loaded. Level is "warning" for missing
// or undecodable artifacts and "info" for the neutral no-PDF case.
type Notice struct {
	Level   string
	Message string
}

// ImageCell is one rendered image slot: either an image reference or
// a notice, never both.
type ImageCell struct {
	Src     string
	Caption string
	Notice  *Notice
}

// EmbedView is a rendered HTML-embed slot.
type EmbedView struct {
	Src    string
	Height int
	Notice *Notice
}

// DownloadView is a rendered download affordance. When the artifact
// is absent only the notice is set and no control is shown.
type DownloadView struct {
	Href   string
	Label  string
	Notice *Notice
}

// TableView pairs a literal table with its export link.
type TableView struct {
	Table      *models.Table
	ExportHref string
}

// RenderedBlock is the view model for one layout directive. Kind is a
// plain string so templates can switch on it.
type RenderedBlock struct {
	Kind     string
	Header   string
	Markdown template.HTML
	Image    *ImageCell
	Columns  []ImageCell
	Table    *TableView
	Embed    *EmbedView
	Download *DownloadView
}

// renderBlocks executes a section's layout directives in order,
// degrading per slot: a failed artifact load becomes a visible notice
// and the rest of the page renders unaffected.
func (a *App) renderBlocks(section models.Section) []RenderedBlock {
	rendered := make([]RenderedBlock, 0, len(section.Blocks))
	tableIndex := 0

	for _, block := range section.Blocks {
		rb := RenderedBlock{Kind: string(block.Kind)}

		switch block.Kind {
		case models.BlockHeader:
			rb.Header = block.Text

		case models.BlockMarkdown:
			rb.Markdown = renderMarkdown(block.Text)

		case models.BlockImage:
			cell := a.imageCell(*block.Image)
			rb.Image = &cell

		case models.BlockImageColumns:
			rb.Columns = make([]ImageCell, 0, len(block.Columns))
			for _, ref := range block.Columns {
				rb.Columns = append(rb.Columns, a.imageCell(ref))
			}

		case models.BlockTable:
			rb.Table = &TableView{
				Table:      block.Table,
				ExportHref: fmt.Sprintf("/sections/%s/tables/%d.xlsx", section.Slug, tableIndex),
			}
			tableIndex++

		case models.BlockHTMLEmbed:
			rb.Embed = a.embedView(*block.Embed)

		case models.BlockPDFDownload:
			rb.Download = a.downloadView(*block.Download)
		}

		rendered = append(rendered, rb)
	}
	return rendered
}

func (a *App) imageCell(ref models.ArtifactRef) ImageCell {
	if _, err := a.store.LoadImage(ref.Filename); err != nil {
		return ImageCell{Notice: artifactNotice(ref.Filename, err)}
	}
	return ImageCell{
		Src:     "/artifacts/" + ref.Filename,
		Caption: ref.Caption,
	}
}

func (a *App) embedView(ref models.ArtifactRef) *EmbedView {
	if _, err := a.store.LoadHTML(ref.Filename); err != nil {
		return &EmbedView{Notice: artifactNotice(ref.Filename, err)}
	}
	return &EmbedView{
		Src:    "/embed/" + ref.Filename,
		Height: a.embedHeight,
	}
}

func (a *App) downloadView(ref models.ArtifactRef) *DownloadView {
	if !a.store.Exists(ref.Filename) {
		return &DownloadView{Notice: &Notice{
			Level:   "info",
			Message: "PDF version of the executive summary is not available.",
		}}
	}

	label := ref.Caption
	if pages, err := a.store.PDFPages(ref.Filename); err == nil && pages > 0 {
		label = fmt.Sprintf("%s — %d pages", label, pages)
	} else if err != nil {
		// The probe is informational; the download still serves the
		// exact file bytes.
		log.Printf("[render] PDF probe failed for %s: %v", ref.Filename, err)
	}

	return &DownloadView{
		Href:  "/download/executive-summary",
		Label: label,
	}
}

func artifactNotice(filename string, err error) *Notice {
	if errors.IsMalformed(err) {
		return &Notice{Level: "warning", Message: "Cannot decode: " + filename}
	}
	return &Notice{Level: "warning", Message: "Missing: " + filename}
}
