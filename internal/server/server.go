package server

import (
	"github.com/qdm12/gdomains-updater/internal/models"
	"github.com/qdm12/goservices/httpserver"
)

func New(address, rootURL string, lister StatusesLister, reloader Reloader,
	buildInfo models.BuildInformation, logger Logger) (
	server *httpserver.Server, err error) {
	name := "http"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(rootURL, lister, reloader, buildInfo, logger),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}
