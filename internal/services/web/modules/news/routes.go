package news

import (
	"net/http"

	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	"github.com/arenahq/arena/internal/services/web/routepath"
	"github.com/arenahq/arena/internal/services/web/session"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsPrefix+"{$}", h.handleFeed)
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsPattern, h.handleArticle)
	mux.Handle(http.MethodPost+" "+routepath.NewsLikePattern, session.RequireSignedIn(http.HandlerFunc(h.handleLike)))
	mux.Handle(http.MethodPost+" "+routepath.NewsUnlikePattern, session.RequireSignedIn(http.HandlerFunc(h.handleUnlike)))
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsLikePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsUnlikePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.NewsPrefix+"{rest...}", h.WriteNotFound)
}
