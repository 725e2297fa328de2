package adminnews

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/arenahq/arena/internal/services/web/platform/listview"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

type listPage struct {
	Query      listview.Query
	Page       listview.Page[Item]
	Empty      listview.Empty
	Categories []string
}

func listView(page listPage, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("section", webtemplates.As("class", "admin-news"),
		webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.admin_news.title"))),
		webtemplates.ListFilters(webtemplates.FilterForm{
			Action:     routepath.AppNews,
			Query:      page.Query,
			Categories: page.Categories,
			ShowDate:   true,
		}, loc),
		webtemplates.ListEmpty(page.Empty, "web.news.empty", loc),
		webtemplates.When(len(page.Page.Items) > 0, webtemplates.El("table", webtemplates.As("class", "data-table"),
			webtemplates.El("thead", nil, webtemplates.El("tr", nil,
				th(loc, "web.admin_news.col_title"),
				th(loc, "web.admin_news.col_category"),
				th(loc, "web.admin_news.col_author"),
				th(loc, "web.admin_news.col_date"),
				th(loc, "web.admin_news.col_likes"),
				webtemplates.El("th", nil),
			)),
			webtemplates.El("tbody", nil, webtemplates.Each(page.Page.Items, func(item Item) templ.Component {
				return row(item, loc)
			})),
		)),
		webtemplates.ListPagination(routepath.AppNews, page.Query, page.Page, loc),
	)
}

func th(loc webtemplates.Localizer, key string) templ.Component {
	return webtemplates.El("th", nil, webtemplates.Text(webtemplates.T(loc, key)))
}

func row(item Item, loc webtemplates.Localizer) templ.Component {
	slug := item.Slug
	if slug == "" {
		slug = item.ID
	}
	date := ""
	if !item.CreatedAt.IsZero() {
		date = item.CreatedAt.UTC().Format("2006-01-02")
	}
	return webtemplates.El("tr", nil,
		webtemplates.El("td", nil, webtemplates.El("a", webtemplates.As("href", routepath.News(slug)), webtemplates.Text(item.Title))),
		webtemplates.El("td", nil, webtemplates.Text(item.Category)),
		webtemplates.El("td", nil, webtemplates.Text(item.Author)),
		webtemplates.El("td", nil, webtemplates.Text(date)),
		webtemplates.El("td", nil, webtemplates.Text(strconv.Itoa(item.Likes))),
		webtemplates.El("td", nil, webtemplates.ModalTrigger(routepath.AppNewsDelete(item.ID), webtemplates.T(loc, "web.confirm.delete"))),
	)
}
