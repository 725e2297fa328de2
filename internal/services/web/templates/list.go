package templates

import (
	"github.com/a-h/templ"
	"github.com/arenahq/arena/internal/services/web/platform/listview"
)

// paginationWindow is the number of page slots shown before collapsing.
const paginationWindow = 7

// FilterForm describes the filter bar above a list.
type FilterForm struct {
	Action     string
	Query      listview.Query
	Categories []string
	ShowDate   bool
}

// ListFilters renders the filter bar. The form never carries the page
// parameter, so applying a filter always lands on page 1.
func ListFilters(form FilterForm, loc Localizer) templ.Component {
	q := form.Query
	var category templ.Component
	if len(form.Categories) > 0 {
		options := []templ.Component{
			El("option", optionAttrs("", q.Category == ""), Text(T(loc, "web.list.category_all"))),
		}
		for _, value := range form.Categories {
			options = append(options, El("option", optionAttrs(value, value == q.Category), Text(value)))
		}
		category = El("label", nil,
			Text(T(loc, "web.list.category")),
			El("select", As("name", listview.ParamCategory), options...),
		)
	}
	return El("form", As(
		"class", "list-filters",
		"method", "get",
		"action", form.Action,
		"hx-get", form.Action,
		"hx-target", "#"+MainID,
		"hx-push-url", "true",
	),
		El("label", nil,
			Text(T(loc, "web.list.search")),
			El("input", As("type", "search", "name", listview.ParamSearch, "value", q.Search)),
		),
		category,
		When(form.ShowDate, El("label", nil,
			Text(T(loc, "web.list.date")),
			El("input", As("type", "date", "name", listview.ParamDate, "value", q.Date)),
		)),
		When(q.Scope != "", HiddenInput(listview.ParamScope, q.Scope)),
		El("button", As("type", "submit", "class", "button"), Text(T(loc, "web.list.apply"))),
		When(q.Filtered(), El("a", As("href", form.Action, "class", "clear-filters"), Text(T(loc, "web.list.clear")))),
	)
}

func optionAttrs(value string, selected bool) []Attr {
	attrs := As("value", value)
	if selected {
		attrs = append(attrs, Flag("selected"))
	}
	return attrs
}

// ListPagination renders page links for a paginated list at path.
func ListPagination[T any](path string, q listview.Query, page listview.Page[T], loc Localizer) templ.Component {
	window := listview.Window(page.Number, page.TotalPages, paginationWindow)
	links := make([]PageLink, 0, len(window)+2)
	if page.HasPrev() {
		links = append(links, PageLink{Page: page.Number - 1, URL: q.PageURL(path, page.Number-1), Rel: "prev", Label: "‹"})
	}
	for _, n := range window {
		if n == listview.Ellipsis {
			links = append(links, PageLink{})
			continue
		}
		links = append(links, PageLink{Page: n, URL: q.PageURL(path, n), Current: n == page.Number})
	}
	if page.HasNext() {
		links = append(links, PageLink{Page: page.Number + 1, URL: q.PageURL(path, page.Number+1), Rel: "next", Label: "›"})
	}
	return Pagination(links, loc)
}

// ListEmpty renders the empty-state text for a list, or nothing when the
// list has items. noDataKey names the list-specific "nothing yet" copy.
func ListEmpty(state listview.Empty, noDataKey string, loc Localizer) templ.Component {
	switch state {
	case listview.EmptyNoData:
		return EmptyMessage(T(loc, noDataKey))
	case listview.EmptyNoMatch:
		return EmptyMessage(T(loc, "web.list.empty_no_match"))
	default:
		return nil
	}
}
