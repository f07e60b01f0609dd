package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/qdm12/gdomains-updater/internal/models"
)

type handlers struct {
	lister    StatusesLister
	reloader  Reloader
	buildInfo models.BuildInformation
	logger    Logger
	timeNow   func() time.Time
}

func newHandler(rootURL string, lister StatusesLister, reloader Reloader,
	buildInfo models.BuildInformation, logger Logger) http.Handler {
	handlers := &handlers{
		lister:    lister,
		reloader:  reloader,
		buildInfo: buildInfo,
		logger:    logger,
		timeNow:   time.Now,
	}

	rootURL = strings.TrimSuffix(rootURL, "/")

	router := chi.NewRouter()
	router.Use(middleware.CleanPath)

	router.Get(rootURL+"/", handlers.index)
	router.Route(rootURL+"/api/v1", func(r chi.Router) {
		r.Get("/domains", handlers.getDomains)
		r.Post("/reload", handlers.reload)
		r.Get("/version", handlers.getVersion)
	})

	return router
}
