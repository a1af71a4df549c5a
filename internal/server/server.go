package server

import (
	"time"

	"github.com/qdm12/goservices/httpserver"
)

// New creates the admin panel HTTP server. Each admin page request
// registers the plugins on its own dispatcher with register.
func New(address, rootURL, siteURL string, register Registerer,
	logger Logger) (server *httpserver.Server, err error) {
	name := "admin"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(rootURL, siteURL, register, logger, time.Now),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}
