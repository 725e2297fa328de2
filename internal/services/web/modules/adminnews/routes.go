package adminnews

import (
	"net/http"

	"github.com/arenahq/arena/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppNews, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminNewsPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppNewsDeletePattern, h.handleDeleteDialog)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppNewsDeletePattern, h.handleDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminNewsPrefix+"{rest...}", h.WriteNotFound)
}
