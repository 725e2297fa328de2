package events

import (
	"github.com/a-h/templ"
	"github.com/arenahq/arena/internal/services/web/platform/listview"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

type listPage struct {
	Query      listview.Query
	Scope      Scope
	Page       listview.Page[Event]
	Empty      listview.Empty
	Categories []string
}

func listView(page listPage, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("section", webtemplates.As("class", "admin-events"),
		webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.events.title"))),
		scopeTabs(page.Query, page.Scope, loc),
		webtemplates.ListFilters(webtemplates.FilterForm{
			Action:     routepath.AppEvents,
			Query:      page.Query,
			Categories: page.Categories,
			ShowDate:   true,
		}, loc),
		webtemplates.ListEmpty(page.Empty, "web.events.empty", loc),
		webtemplates.When(len(page.Page.Items) > 0, webtemplates.El("table", webtemplates.As("class", "data-table"),
			webtemplates.El("thead", nil, webtemplates.El("tr", nil,
				th(loc, "web.events.col_name"),
				th(loc, "web.events.col_game"),
				th(loc, "web.events.col_category"),
				th(loc, "web.events.col_date"),
				th(loc, "web.events.col_status"),
				webtemplates.El("th", nil),
			)),
			webtemplates.El("tbody", nil, webtemplates.Each(page.Page.Items, func(event Event) templ.Component {
				return row(event, page.Scope, loc)
			})),
		)),
		webtemplates.ListPagination(routepath.AppEvents, page.Query, page.Page, loc),
	)
}

// scopeTabs switches between all and own events. Switching scope keeps the
// filters and returns to page 1.
func scopeTabs(q listview.Query, current Scope, loc webtemplates.Localizer) templ.Component {
	tab := func(scope Scope, key string) templ.Component {
		href := q.With(listview.ParamScope, string(scope)).URL(routepath.AppEvents)
		attrs := webtemplates.As("href", href, "hx-get", href, "hx-target", "#"+webtemplates.MainID, "hx-push-url", "true")
		if scope == current {
			attrs = append(attrs, webtemplates.A("aria-current", "page"))
		}
		return webtemplates.El("a", attrs, webtemplates.Text(webtemplates.T(loc, key)))
	}
	return webtemplates.El("nav", webtemplates.As("class", "tabs"),
		tab(ScopeAll, "web.events.scope_all"),
		tab(ScopeMine, "web.events.scope_mine"),
	)
}

func th(loc webtemplates.Localizer, key string) templ.Component {
	return webtemplates.El("th", nil, webtemplates.Text(webtemplates.T(loc, key)))
}

func row(event Event, scope Scope, loc webtemplates.Localizer) templ.Component {
	date := ""
	if !event.StartDate.IsZero() {
		date = event.StartDate.UTC().Format("2006-01-02")
	}
	deleteURL := listview.Query{Scope: string(scope)}.URL(routepath.AppEventDelete(event.ID))
	return webtemplates.El("tr", nil,
		webtemplates.El("td", nil, webtemplates.Text(event.Name)),
		webtemplates.El("td", nil, webtemplates.Text(event.Game)),
		webtemplates.El("td", nil, webtemplates.Text(event.Category)),
		webtemplates.El("td", nil, webtemplates.Text(date)),
		webtemplates.El("td", nil, webtemplates.Text(event.Status)),
		webtemplates.El("td", nil, webtemplates.ModalTrigger(deleteURL, webtemplates.T(loc, "web.confirm.delete"))),
	)
}
