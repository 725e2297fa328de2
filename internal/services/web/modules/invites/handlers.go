package invites

import (
	"net/http"

	"github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/weberror"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleInvite(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	inviteID := r.PathValue("inviteID")
	h.WritePage(w, r, webtemplates.T(loc, "web.invites.title"), http.StatusOK, inviteView(inviteID, h.ResolveRequestViewer(r).SignedIn, loc))
}

func (h handlers) handleAccept(w http.ResponseWriter, r *http.Request) {
	h.writeResponse(w, r, ResponseAccept)
}

func (h handlers) handleDecline(w http.ResponseWriter, r *http.Request) {
	h.writeResponse(w, r, ResponseDecline)
}

// writeResponse answers the invite. Success lands on the home page; failure
// returns to the invite with the backend message.
func (h handlers) writeResponse(w http.ResponseWriter, r *http.Request, response Response) {
	inviteID := r.PathValue("inviteID")
	message, err := h.service.respond(r.Context(), inviteID, response)
	if err != nil {
		loc, _ := h.PageLocalizer(w, r)
		h.FlashAndRedirect(w, r, flash.NoticeError("").WithMessage(weberror.PublicMessage(loc, err)), routepath.Invite(inviteID))
		return
	}
	key := "web.invites.notice_declined"
	if response == ResponseAccept {
		key = "web.invites.notice_accepted"
	}
	h.FlashAndRedirect(w, r, flash.NoticeSuccess(key).WithMessage(message), routepath.Root)
}
