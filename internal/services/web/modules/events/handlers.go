package events

import (
	"context"
	"net/http"
	"time"

	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/listview"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

const listPageSize = 10

type handlers struct {
	modulehandler.Base
	service service
	runner  *confirm.Runner
}

func newHandlers(s service, runner *confirm.Runner, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s, runner: runner}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	query := listview.ParseQuery(r.URL.Query())
	scope := ParseScope(query.Scope)
	query.Scope = string(scope)
	events, err := h.service.listEvents(r.Context(), scope)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	filtered := listview.Filter(events,
		listview.MatchText(query.Search,
			func(e Event) string { return e.Name },
			func(e Event) string { return e.Game },
			func(e Event) string { return e.Organizer },
			func(e Event) string { return e.Location },
		),
		listview.MatchEqual(query.Category, func(e Event) string { return e.Category }),
		listview.MatchDay(query.Day(), time.UTC, func(e Event) time.Time { return e.StartDate }),
	)
	h.WritePage(w, r, webtemplates.T(loc, "web.events.title"), http.StatusOK, listView(listPage{
		Query:      query,
		Scope:      scope,
		Page:       listview.Paginate(filtered, query.Page, listPageSize),
		Empty:      listview.EmptyState(len(events), len(filtered)),
		Categories: categories(events),
	}, loc))
}

func (h handlers) handleDeleteDialog(w http.ResponseWriter, r *http.Request) {
	h.runner.ServeDialog(w, r, h, h.deleteAction(w, r))
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.runner.ServeConfirm(w, r, h, h.deleteAction(w, r))
}

// deleteAction returns to the list scope the dialog was opened from.
func (h handlers) deleteAction(w http.ResponseWriter, r *http.Request) confirm.Action {
	loc, _ := h.PageLocalizer(w, r)
	eventID := r.PathValue("eventID")
	scope := string(ParseScope(r.FormValue(listview.ParamScope)))
	back := listview.Query{Scope: scope}.URL(routepath.AppEvents)
	dialog := confirm.NewDialog(loc,
		webtemplates.T(loc, "web.events.delete_title"),
		webtemplates.T(loc, "web.events.delete_body"),
		routepath.AppEventDelete(eventID),
		back,
	)
	dialog.Fields = map[string]string{listview.ParamScope: scope}
	return confirm.Action{
		Key:    "event:delete:" + eventID,
		Dialog: dialog,
		Run: func(ctx context.Context) (string, error) {
			return h.service.deleteEvent(ctx, eventID)
		},
		SuccessKey: "web.events.notice_deleted",
		Redirect:   back,
	}
}
