package server

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed ui/index.html
var uiFS embed.FS

type handlers struct {
	siteURL       string
	register      Registerer
	indexTemplate *template.Template
	logger        Logger
	// Mockable functions
	timeNow func() time.Time
}

func newHandler(rootURL, siteURL string, register Registerer,
	logger Logger, timeNow func() time.Time) http.Handler {
	indexTemplate := template.Must(template.ParseFS(uiFS, "ui/index.html"))

	handlers := &handlers{
		siteURL:       siteURL,
		register:      register,
		indexTemplate: indexTemplate,
		logger:        logger,
		timeNow:       timeNow,
	}

	router := chi.NewRouter()
	router.Use(middleware.CleanPath, middleware.Recoverer)

	// CleanPath strips the trailing slash so both forms are routed.
	rootURL = strings.TrimSuffix(rootURL, "/")
	router.Get(rootURL+"/", handlers.index)
	if rootURL != "" {
		router.Get(rootURL, handlers.index)
	}

	return router
}
