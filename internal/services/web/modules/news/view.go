package news

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/arenahq/arena/internal/services/web/platform/listview"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

const dateLayout = "2 Jan 2006"

type feedPage struct {
	Query      listview.Query
	Page       listview.Page[Article]
	Empty      listview.Empty
	Categories []string
}

func feedView(page feedPage, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("section", webtemplates.As("class", "news-feed"),
		webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.news.title"))),
		webtemplates.ListFilters(webtemplates.FilterForm{
			Action:     routepath.NewsPrefix,
			Query:      page.Query,
			Categories: page.Categories,
			ShowDate:   true,
		}, loc),
		webtemplates.ListEmpty(page.Empty, "web.news.empty", loc),
		webtemplates.When(len(page.Page.Items) > 0, webtemplates.El("div", webtemplates.As("class", "news-list"),
			webtemplates.Each(page.Page.Items, func(article Article) templ.Component {
				return articleCard(article, loc)
			}),
		)),
		webtemplates.ListPagination(routepath.NewsPrefix, page.Query, page.Page, loc),
	)
}

func articleCard(article Article, loc webtemplates.Localizer) templ.Component {
	href := routepath.News(article.Path())
	return webtemplates.El("article", webtemplates.As("class", "news-card"),
		webtemplates.When(article.CoverImage != "", webtemplates.El("img", webtemplates.As("src", article.CoverImage, "alt", article.Title, "loading", "lazy"))),
		webtemplates.El("h2", nil, webtemplates.El("a", webtemplates.As("href", href), webtemplates.Text(article.Title))),
		articleMeta(article, loc),
		webtemplates.When(article.Summary != "", webtemplates.El("p", nil, webtemplates.Text(article.Summary))),
		webtemplates.El("a", webtemplates.As("class", "read-more", "href", href), webtemplates.Text(webtemplates.T(loc, "web.news.read_more"))),
	)
}

func articleMeta(article Article, loc webtemplates.Localizer) templ.Component {
	parts := make([]string, 0, 3)
	if article.Category != "" {
		parts = append(parts, article.Category)
	}
	if article.Author != "" {
		parts = append(parts, webtemplates.T(loc, "web.news.by_author", article.Author))
	}
	if !article.CreatedAt.IsZero() {
		parts = append(parts, article.CreatedAt.UTC().Format(dateLayout))
	}
	return webtemplates.El("p", webtemplates.As("class", "news-meta"), webtemplates.Text(strings.Join(parts, " · ")))
}

func articleView(article Article, signedIn bool, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("article", webtemplates.As("class", "news-article"),
		webtemplates.El("a", webtemplates.As("class", "back-link", "href", routepath.NewsPrefix), webtemplates.Text(webtemplates.T(loc, "web.news.back"))),
		webtemplates.El("h1", nil, webtemplates.Text(article.Title)),
		articleMeta(article, loc),
		webtemplates.When(article.CoverImage != "", webtemplates.El("img", webtemplates.As("src", article.CoverImage, "alt", article.Title))),
		webtemplates.Each(paragraphs(article.Content), func(p string) templ.Component {
			return webtemplates.El("p", nil, webtemplates.Text(p))
		}),
		likeBar(article, signedIn, loc),
	)
}

func likeBar(article Article, signedIn bool, loc webtemplates.Localizer) templ.Component {
	count := webtemplates.El("span", webtemplates.As("class", "like-count"), webtemplates.Text(webtemplates.T(loc, "web.news.likes", article.Likes)))
	if !signedIn {
		return webtemplates.El("div", webtemplates.As("class", "like-bar"),
			count,
			webtemplates.El("a", webtemplates.As("href", routepath.LoginWithNext(routepath.News(article.Path()))), webtemplates.Text(webtemplates.T(loc, "web.news.sign_in_to_like"))),
		)
	}
	action, label := routepath.NewsLike(article.ID), "web.news.like"
	if article.LikedByMe {
		action, label = routepath.NewsUnlike(article.ID), "web.news.unlike"
	}
	return webtemplates.El("div", webtemplates.As("class", "like-bar"),
		count,
		webtemplates.El("form", webtemplates.As("method", "post", "action", action),
			webtemplates.HiddenInput("slug", article.Path()),
			webtemplates.El("button", webtemplates.As("type", "submit", "class", "button"), webtemplates.Text(webtemplates.T(loc, label))),
		),
	)
}

// paragraphs splits article content on blank lines.
func paragraphs(content string) []string {
	var out []string
	for _, block := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n") {
		if block = strings.TrimSpace(block); block != "" {
			out = append(out, block)
		}
	}
	return out
}
