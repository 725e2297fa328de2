package dashboard

import (
	"net/http"
	"net/url"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/arenahq/arena/internal/services/web/platform/fetcher"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/weberror"
	"github.com/arenahq/arena/internal/services/web/routepath"
	"github.com/arenahq/arena/internal/services/web/session"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
	"github.com/google/uuid"
)

type handlers struct {
	modulehandler.Base
	stats    StatsProvider
	trackers *fetcher.Registry[Stats]
}

func newHandlers(stats StatsProvider, trackers *fetcher.Registry[Stats], base modulehandler.Base) handlers {
	return handlers{Base: base, stats: stats, trackers: trackers}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	viewer := h.ResolveRequestViewer(r)
	h.WritePage(w, r, webtemplates.T(loc, "web.dashboard.title"), http.StatusOK, dashboardView(viewer.DisplayName, uuid.NewString(), loc))
}

// handleStats loads the stats panel. Every rendered panel carries its own id,
// so trackers are per user and panel: only a retry of the same panel
// supersedes a load, and the superseded request answers 204 while the
// newer one renders.
func (h handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	panel := panelID(r)
	tracker := h.trackers.Tracker(trackerKey(r, panel))
	resource, current := tracker.Load(r.Context(), h.stats.Stats)
	if !current {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if resource.Status == fetcher.StatusError {
		h.WriteFragment(w, r, apperrors.HTTPStatus(resource.Err), statsPanel(resource, panel, weberror.PublicMessage(loc, resource.Err), loc))
		return
	}
	h.WriteFragment(w, r, http.StatusOK, statsPanel(resource, panel, "", loc))
}

// panelID returns the panel query value when it is a UUID. Anything else
// gets a fresh id so the request never shares a tracker.
func panelID(r *http.Request) string {
	if id, err := uuid.Parse(r.URL.Query().Get(panelParam)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func trackerKey(r *http.Request, panel string) string {
	owner := "anonymous"
	if sess, ok := session.FromContext(r.Context()); ok {
		owner = "session:" + sess.ID
		if sess.UserID != "" {
			owner = "user:" + sess.UserID
		}
	}
	return owner + "/panel:" + panel
}

func statsURL(panel string) string {
	return routepath.AppDashboardStats + "?" + url.Values{panelParam: {panel}}.Encode()
}
