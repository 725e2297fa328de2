package news

import (
	"net/http"
	"strings"
	"time"

	"github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/listview"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/weberror"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

const feedPageSize = 10

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleFeed(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	articles, err := h.service.listNews(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	query := listview.ParseQuery(r.URL.Query())
	filtered := listview.Filter(articles,
		listview.MatchText(query.Search,
			func(a Article) string { return a.Title },
			func(a Article) string { return a.Summary },
			func(a Article) string { return a.Author },
		),
		listview.MatchEqual(query.Category, func(a Article) string { return a.Category }),
		listview.MatchDay(query.Day(), time.UTC, func(a Article) time.Time { return a.CreatedAt }),
	)
	h.WritePage(w, r, webtemplates.T(loc, "web.news.title"), http.StatusOK, feedView(feedPage{
		Query:      query,
		Page:       listview.Paginate(filtered, query.Page, feedPageSize),
		Empty:      listview.EmptyState(len(articles), len(filtered)),
		Categories: categories(articles),
	}, loc))
}

func (h handlers) handleArticle(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	article, err := h.service.article(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	viewer := h.ResolveRequestViewer(r)
	h.WritePage(w, r, article.Title, http.StatusOK, articleView(article, viewer.SignedIn, loc))
}

func (h handlers) handleLike(w http.ResponseWriter, r *http.Request) {
	h.writeLike(w, r, true)
}

func (h handlers) handleUnlike(w http.ResponseWriter, r *http.Request) {
	h.writeLike(w, r, false)
}

// writeLike records the like state and returns to the article. Failures
// surface as an error toast on the same page.
func (h handlers) writeLike(w http.ResponseWriter, r *http.Request, like bool) {
	target := articleReturnPath(r)
	message, err := h.service.setLike(r.Context(), r.PathValue("newsID"), like)
	if err != nil {
		loc, _ := h.PageLocalizer(w, r)
		h.FlashAndRedirect(w, r, flash.NoticeError("").WithMessage(weberror.PublicMessage(loc, err)), target)
		return
	}
	key := "web.news.notice_unliked"
	if like {
		key = "web.news.notice_liked"
	}
	h.FlashAndRedirect(w, r, flash.NoticeSuccess(key).WithMessage(message), target)
}

// articleReturnPath resolves the article page a like form was posted from.
func articleReturnPath(r *http.Request) string {
	if slug := strings.TrimSpace(r.FormValue("slug")); slug != "" {
		return routepath.News(slug)
	}
	return routepath.NewsPrefix
}
