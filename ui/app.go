package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rocketeda/internal/artifact"
	"rocketeda/internal/config"
	"rocketeda/models"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router      *chi.Mux
	store       *artifact.Store
	sessions    *SessionStore
	templates   *template.Template
	sections    []models.Section
	bySlug      map[string]models.Section
	embedHeight int

	// Closed sets of filenames the registry references, by kind.
	// Only these are ever served.
	images    map[string]bool
	fragments map[string]bool
}

// NewApp creates the dashboard application
func NewApp(cfg *config.Config, store *artifact.Store) (*App, error) {
	sections := Registry()
	bySlug := make(map[string]models.Section, len(sections))
	images := make(map[string]bool)
	fragments := make(map[string]bool)

	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return nil, fmt.Errorf("invalid section registry: %w", err)
		}
		if _, dup := bySlug[section.Slug]; dup {
			return nil, fmt.Errorf("duplicate section slug %q", section.Slug)
		}
		bySlug[section.Slug] = section

		for _, name := range section.ArtifactFilenames() {
			switch path.Ext(name) {
			case ".png":
				images[name] = true
			case ".html":
				fragments[name] = true
			}
		}
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:      chi.NewRouter(),
		store:       store,
		sessions:    NewSessionStore(cfg.Server.SessionCookie),
		templates:   templates,
		sections:    sections,
		bySlug:      bySlug,
		embedHeight: cfg.Render.EmbedHeight,
		images:      images,
		fragments:   fragments,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/sections/{slug}", a.handleSection)
	a.router.Get("/sections/{slug}/tables/{index}.xlsx", a.handleTableExport)

	// Artifact delivery
	a.router.Get("/artifacts/{filename}", a.handleArtifact)
	a.router.Get("/embed/{filename}", a.handleEmbed)
	a.router.Get("/download/executive-summary", a.handleDownload)

	a.router.Get("/health", a.handleHealth)
}

// Router exposes the handler for the HTTP server and for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Sections returns the fixed section registry.
func (a *App) Sections() []models.Section {
	return a.sections
}

// Start starts the HTTP server
func (a *App) Start(addr string) error {
	log.Printf("Starting EDA dashboard on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// HTMX helpers
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
