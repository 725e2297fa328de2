package invites

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
	mux.HandleFunc(http.MethodGet+" "+routepath.InvitePattern, h.handleInvite)
	mux.Handle(http.MethodPost+" "+routepath.InviteAcceptPattern, session.RequireSignedIn(http.HandlerFunc(h.handleAccept)))
	mux.Handle(http.MethodPost+" "+routepath.InviteDeclinePattern, session.RequireSignedIn(http.HandlerFunc(h.handleDecline)))
	mux.HandleFunc(http.MethodGet+" "+routepath.InviteAcceptPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.InviteDeclinePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.InvitesPrefix+"{rest...}", h.WriteNotFound)
}
