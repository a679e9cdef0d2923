package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"rocketeda/internal/errors"
	"rocketeda/models"
)

type navItem struct {
	Slug   string
	Label  string
	Active bool
}

type pageData struct {
	Title  string
	Intro  template.HTML
	Nav    []navItem
	Blocks []RenderedBlock
}

// handleIndex renders the session's current selection, defaulting to
// the first section for a fresh session.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	sessionID := a.sessions.SessionID(w, r)
	section := a.sectionOrFirst(a.sessions.Selection(sessionID))
	a.renderPage(w, r, section)
}

// handleSection records the selection and renders the section. An
// unknown slug (stale client state) falls back to the first section.
func (a *App) handleSection(w http.ResponseWriter, r *http.Request) {
	section := a.sectionOrFirst(chi.URLParam(r, "slug"))
	sessionID := a.sessions.SessionID(w, r)
	a.sessions.Select(sessionID, section.Slug)
	a.renderPage(w, r, section)
}

func (a *App) sectionOrFirst(slug string) models.Section {
	if section, ok := a.bySlug[slug]; ok {
		return section
	}
	return a.sections[0]
}

// renderPage composes the full page (or just the content fragment for
// HTMX requests). The template executes into a buffer first so a
// failure yields a clean 500 instead of a torn page.
func (a *App) renderPage(w http.ResponseWriter, r *http.Request, section models.Section) {
	data := pageData{
		Title:  pageTitle,
		Intro:  renderMarkdown(pageIntro),
		Blocks: a.renderBlocks(section),
	}
	for _, s := range a.sections {
		data.Nav = append(data.Nav, navItem{
			Slug:   s.Slug,
			Label:  s.Label,
			Active: s.Slug == section.Slug,
		})
	}

	templateName := "layout.html"
	if isHTMX(r) {
		templateName = "content.html"
	}

	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("Template error for %s: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing page response: %v", err)
	}
}

// handleArtifact serves the bytes of a registered image artifact.
func (a *App) handleArtifact(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if !a.images[filename] {
		http.NotFound(w, r)
		return
	}
	data, err := a.store.LoadFile(filename)
	if err != nil {
		if errors.IsMissing(err) {
			http.NotFound(w, r)
			return
		}
		log.Printf("[artifact] read %s failed: %v", filename, err)
		http.Error(w, "failed to read artifact", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

// handleEmbed serves a registered HTML fragment for the sandboxed
// iframe. The markup is opaque; the sandbox keeps it from gaining
// anything over the hosting page.
func (a *App) handleEmbed(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if !a.fragments[filename] {
		http.NotFound(w, r)
		return
	}
	markup, err := a.store.LoadHTML(filename)
	if err != nil {
		if errors.IsMissing(err) || errors.IsMalformed(err) {
			http.NotFound(w, r)
			return
		}
		log.Printf("[embed] read %s failed: %v", filename, err)
		http.Error(w, "failed to read artifact", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", "sandbox allow-scripts")
	w.Write([]byte(markup))
}

// handleDownload streams the executive summary PDF as an attachment
// under its fixed filename.
func (a *App) handleDownload(w http.ResponseWriter, r *http.Request) {
	data, err := a.store.LoadFile(executiveSummaryPDF)
	if err != nil {
		if errors.IsMissing(err) {
			http.NotFound(w, r)
			return
		}
		log.Printf("[download] read %s failed: %v", executiveSummaryPDF, err)
		http.Error(w, "failed to read artifact", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", executiveSummaryPDF))
	w.Write(data)
}

// handleTableExport streams one literal table as an .xlsx workbook.
func (a *App) handleTableExport(w http.ResponseWriter, r *http.Request) {
	section, ok := a.bySlug[chi.URLParam(r, "slug")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	tables := section.Tables()
	if index < 0 || index >= len(tables) {
		http.NotFound(w, r)
		return
	}

	workbook, err := buildTableWorkbook(tables[index])
	if err != nil {
		log.Printf("[export] workbook for %s table %d failed: %v", section.Slug, index, err)
		http.Error(w, "failed to build workbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s_table_%d.xlsx", section.Slug, index)))
	if err := workbook.Write(w); err != nil {
		log.Printf("[export] write workbook failed: %v", err)
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
