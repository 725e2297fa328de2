package events

import (
	"net/http"

	"github.com/arenahq/arena/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppEvents, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.EventsPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppEventDeletePattern, h.handleDeleteDialog)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppEventDeletePattern, h.handleDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.EventsPrefix+"{rest...}", h.WriteNotFound)
}
