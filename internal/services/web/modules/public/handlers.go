package public

import (
	"log"
	"net/http"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/requestmeta"
	"github.com/arenahq/arena/internal/services/web/platform/sessioncookie"
	"github.com/arenahq/arena/internal/services/web/platform/weberror"
	"github.com/arenahq/arena/internal/services/web/routepath"
	"github.com/arenahq/arena/internal/services/web/session"
	"github.com/arenahq/arena/internal/services/web/storage"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

// Signer starts and ends signed-in browser sessions.
type Signer interface {
	SignIn(http.ResponseWriter, *http.Request, session.Identity) (storage.Session, error)
	SignOut(http.ResponseWriter, *http.Request) error
}

type handlers struct {
	modulehandler.Base
	service service
	signer  Signer
	policy  requestmeta.SchemePolicy
}

func newHandlers(s service, signer Signer, base modulehandler.Base, policy requestmeta.SchemePolicy) handlers {
	return handlers{Base: base, service: s, signer: signer, policy: policy}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	headlines, err := h.service.latestNews(r.Context())
	if err != nil {
		log.Printf("home news unavailable err=%v", err)
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.home.title"), http.StatusOK, homeView(homePage{
		Headlines:   headlines,
		Unavailable: err != nil,
		Viewer:      h.ResolveRequestViewer(r),
	}, loc))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.service.healthBody()))
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok && sess.SignedIn() {
		httpx.WriteRedirect(w, r, landingPath(r.URL.Query().Get(routepath.NextQueryKey), sess.Role))
		return
	}
	h.writeLogin(w, r, http.StatusOK, loginPage{Next: routepath.SafeNext(r.URL.Query().Get(routepath.NextQueryKey))})
}

func (h handlers) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	form := LoginForm{Email: r.FormValue("email"), Password: r.FormValue("password")}
	next := routepath.SafeNext(r.FormValue(routepath.NextQueryKey))
	identity, problems, err := h.service.login(r.Context(), form)
	if problems != nil {
		h.writeLogin(w, r, http.StatusUnprocessableEntity, loginPage{Email: form.Email, Next: next, FieldErrors: problems})
		return
	}
	if err != nil {
		loc, _ := h.PageLocalizer(w, r)
		h.writeLogin(w, r, apperrors.HTTPStatus(err), loginPage{Email: form.Email, Next: next, Error: weberror.PublicMessage(loc, err)})
		return
	}
	if _, err := h.signer.SignIn(w, r, identity); err != nil {
		log.Printf("sign-in session failed user=%s err=%v", identity.UserID, err)
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "error.kind.unavailable", err))
		return
	}
	h.FlashAndRedirect(w, r, flash.NoticeSuccess("web.auth.notice_signed_in"), landingPath(next, identity.Role))
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, hasSession := sessioncookie.Read(r); hasSession && !requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	if err := h.signer.SignOut(w, r); err != nil {
		log.Printf("sign-out failed err=%v", err)
	}
	h.FlashAndRedirect(w, r, flash.NoticeSuccess("web.auth.notice_signed_out"), routepath.Root)
}

func (h handlers) writeLogin(w http.ResponseWriter, r *http.Request, status int, page loginPage) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "web.auth.title"), status, loginView(page, loc))
}

// landingPath is where a successful sign-in lands: the requested page when
// one was carried, otherwise the dashboard for admins and home for everyone
// else.
func landingPath(next, role string) string {
	if next = routepath.SafeNext(next); next != "" && next != routepath.Login {
		return next
	}
	if role == session.RoleAdmin {
		return routepath.AppDashboard
	}
	return routepath.Root
}
