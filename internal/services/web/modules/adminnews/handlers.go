package adminnews

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
	items, err := h.service.listNews(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	query := listview.ParseQuery(r.URL.Query())
	filtered := listview.Filter(items,
		listview.MatchText(query.Search,
			func(i Item) string { return i.Title },
			func(i Item) string { return i.Author },
		),
		listview.MatchEqual(query.Category, func(i Item) string { return i.Category }),
		listview.MatchDay(query.Day(), time.UTC, func(i Item) time.Time { return i.CreatedAt }),
	)
	h.WritePage(w, r, webtemplates.T(loc, "web.admin_news.title"), http.StatusOK, listView(listPage{
		Query:      query,
		Page:       listview.Paginate(filtered, query.Page, listPageSize),
		Empty:      listview.EmptyState(len(items), len(filtered)),
		Categories: categories(items),
	}, loc))
}

func (h handlers) handleDeleteDialog(w http.ResponseWriter, r *http.Request) {
	h.runner.ServeDialog(w, r, h, h.deleteAction(w, r))
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.runner.ServeConfirm(w, r, h, h.deleteAction(w, r))
}

func (h handlers) deleteAction(w http.ResponseWriter, r *http.Request) confirm.Action {
	loc, _ := h.PageLocalizer(w, r)
	newsID := r.PathValue("newsID")
	dialog := confirm.NewDialog(loc,
		webtemplates.T(loc, "web.admin_news.delete_title"),
		webtemplates.T(loc, "web.admin_news.delete_body"),
		routepath.AppNewsDelete(newsID),
		routepath.AppNews,
	)
	return confirm.Action{
		Key:    "news:delete:" + newsID,
		Dialog: dialog,
		Run: func(ctx context.Context) (string, error) {
			return h.service.deleteNews(ctx, newsID)
		},
		SuccessKey: "web.admin_news.notice_deleted",
		Redirect:   routepath.AppNews,
	}
}
