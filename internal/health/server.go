package health

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/qdm12/goservices/httpserver"
)

type IsHealthyFunc func(ctx context.Context) error

func NewServer(address string, logger Logger, isHealthy IsHealthyFunc) (
	server *httpserver.Server, err error) {
	name := "health"
	return httpserver.New(httpserver.Settings{
		Handler: newRouter(isHealthy),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}

func newRouter(isHealthy IsHealthyFunc) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		err := isHealthy(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return router
}
